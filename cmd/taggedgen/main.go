// Command taggedgen generates member-forwarding accessors for tagged values
// with struct payloads.
//
// Go has no dynamic member lookup, so accessing a payload field through a
// tagged value normally means going through Raw/SetRaw by hand. taggedgen
// closes that gap mechanically: given a payload struct type and the name of
// the tagged alias wrapping it, it emits one forwarding getter and one
// forwarding setter per exported payload field. No runtime reflection is
// involved - the generated accessors are plain field reads the compiler
// inlines.
//
// Usage:
//
//	taggedgen -payload BookData -tagged Book [-dir .] [-out bookdata_tagged.go]
//
// The tagged alias is expected to exist in the same package:
//
//	type Book = tagged.Value[bookTag, BookData]
package main

import (
	"flag"
	"fmt"
	"go/types"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	payloadName := flag.String("payload", "", "name of the payload struct type (required)")
	taggedName := flag.String("tagged", "", "name of the tagged alias type the accessors forward for (required)")
	dir := flag.String("dir", ".", "directory of the package containing both types")
	out := flag.String("out", "", "output file (default <payload>_tagged.go, lowercased)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *payloadName == "" || *taggedName == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger, *payloadName, *taggedName, *dir, *out); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, payloadName, taggedName, dir, out string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
	}

	loaded, err := packages.Load(cfg, ".")
	if err != nil {
		return fmt.Errorf("loading package in %s: %w", dir, err)
	}

	if packages.PrintErrors(loaded) > 0 {
		return fmt.Errorf("package in %s has errors", dir)
	}

	if len(loaded) == 0 {
		return fmt.Errorf("no package found in %s", dir)
	}
	pkg := loaded[0]

	payloadObj := pkg.Types.Scope().Lookup(payloadName)
	if payloadObj == nil {
		return fmt.Errorf("payload type %s not found in package %s", payloadName, pkg.Name)
	}

	payloadStruct, ok := payloadObj.Type().Underlying().(*types.Struct)
	if !ok {
		return fmt.Errorf("payload type %s is not a struct", payloadName)
	}

	generated, err := GenerateAccessors(pkg.Name, taggedName, payloadStruct, pkg.Types)
	if err != nil {
		return err
	}

	if out == "" {
		out = strings.ToLower(payloadName) + "_tagged.go"
	}
	outPath := filepath.Join(dir, out)

	if err := os.WriteFile(outPath, generated, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	logger.Info("accessors generated",
		"payload", payloadName,
		"tagged", taggedName,
		"output", outPath)

	return nil
}
