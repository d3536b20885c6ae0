package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeCheckPayload(t *testing.T, src, typeName string) (*types.Struct, *types.Package) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "catalog.go", src, 0)
	require.NoError(t, err)

	conf := types.Config{}
	pkg, err := conf.Check("catalog", fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	obj := pkg.Scope().Lookup(typeName)
	require.NotNil(t, obj)

	payload, ok := obj.Type().Underlying().(*types.Struct)
	require.True(t, ok)

	return payload, pkg
}

func Test_GenerateAccessors_EmitsGetterAndSetterPerExportedField(t *testing.T) {
	payload, pkg := typeCheckPayload(t, `package catalog

type BookData struct {
	Title  string
	Pages  int
	hidden bool
}`, "BookData")

	generated, err := GenerateAccessors("catalog", "Book", payload, pkg)
	require.NoError(t, err)

	source := string(generated)
	assert.Contains(t, source, "// Code generated by taggedgen; DO NOT EDIT.")
	assert.Contains(t, source, "package catalog")
	assert.Contains(t, source, "func BookTitle(v Book) string {\n\treturn v.Raw().Title\n}")
	assert.Contains(t, source, "func SetBookTitle(v *Book, value string) {")
	assert.Contains(t, source, "func BookPages(v Book) int {")
	assert.Contains(t, source, "func SetBookPages(v *Book, value int) {")
	assert.NotContains(t, source, "hidden", "unexported payload fields must not be forwarded")
}

func Test_GenerateAccessors_QualifiesForeignFieldTypes(t *testing.T) {
	// A field type from another package must arrive qualified and imported.
	fset := token.NewFileSet()

	timeSrc := `package fakes

type Instant struct{ seconds int64 }`
	timeFile, err := parser.ParseFile(fset, "fakes.go", timeSrc, 0)
	require.NoError(t, err)

	conf := types.Config{}
	fakesPkg, err := conf.Check("example.com/fakes", fset, []*ast.File{timeFile}, nil)
	require.NoError(t, err)

	catalogSrc := `package catalog

import "example.com/fakes"

type LoanData struct {
	DueAt fakes.Instant
}`
	catalogFile, err := parser.ParseFile(fset, "catalog.go", catalogSrc, 0)
	require.NoError(t, err)

	conf = types.Config{Importer: mapImporter{"example.com/fakes": fakesPkg}}
	catalogPkg, err := conf.Check("catalog", fset, []*ast.File{catalogFile}, nil)
	require.NoError(t, err)

	payload := catalogPkg.Scope().Lookup("LoanData").Type().Underlying().(*types.Struct)

	generated, err := GenerateAccessors("catalog", "Loan", payload, catalogPkg)
	require.NoError(t, err)

	source := string(generated)
	assert.Contains(t, source, `"example.com/fakes"`)
	assert.Contains(t, source, "func LoanDueAt(v Loan) fakes.Instant {")
}

func Test_GenerateAccessors_RejectsPayloadWithoutExportedFields(t *testing.T) {
	payload, pkg := typeCheckPayload(t, `package catalog

type opaque struct {
	hidden int
}`, "opaque")

	_, err := GenerateAccessors("catalog", "Opaque", payload, pkg)

	assert.Error(t, err)
}

type mapImporter map[string]*types.Package

func (m mapImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := m[path]; ok {
		return pkg, nil
	}

	return nil, assert.AnError
}
