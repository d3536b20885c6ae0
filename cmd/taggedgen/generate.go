package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"maps"
	"slices"
)

// GenerateAccessors emits one forwarding getter and one forwarding setter
// per exported field of the payload struct, as plain functions over the
// tagged alias type. Unexported fields are skipped: they would not be
// accessible on the bare payload outside its package either.
func GenerateAccessors(pkgName, taggedName string, payload *types.Struct, within *types.Package) ([]byte, error) {
	imports := map[string]bool{}
	qualifier := func(p *types.Package) string {
		if p == within {
			return ""
		}
		imports[p.Path()] = true

		return p.Name()
	}

	var body bytes.Buffer
	exported := 0

	for field := range payload.Fields() {
		if !field.Exported() {
			continue
		}
		exported++

		fieldType := types.TypeString(field.Type(), qualifier)

		fmt.Fprintf(&body, "// %s%s returns the payload's %s field.\n", taggedName, field.Name(), field.Name())
		fmt.Fprintf(&body, "func %s%s(v %s) %s {\n\treturn v.Raw().%s\n}\n\n",
			taggedName, field.Name(), taggedName, fieldType, field.Name())

		fmt.Fprintf(&body, "// Set%s%s assigns the payload's %s field in place.\n", taggedName, field.Name(), field.Name())
		fmt.Fprintf(&body, "func Set%s%s(v *%s, value %s) {\n\traw := v.Raw()\n\traw.%s = value\n\tv.SetRaw(raw)\n}\n\n",
			taggedName, field.Name(), taggedName, fieldType, field.Name())
	}

	if exported == 0 {
		return nil, fmt.Errorf("payload struct has no exported fields to forward")
	}

	var file bytes.Buffer
	fmt.Fprintf(&file, "// Code generated by taggedgen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&file, "package %s\n\n", pkgName)

	if len(imports) > 0 {
		fmt.Fprintf(&file, "import (\n")
		for _, path := range slices.Sorted(maps.Keys(imports)) {
			fmt.Fprintf(&file, "\t%q\n", path)
		}
		fmt.Fprintf(&file, ")\n\n")
	}

	file.Write(body.Bytes())

	formatted, err := format.Source(file.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated accessors: %w", err)
	}

	return formatted, nil
}
