package generator

import (
	"bytes"
	"go/format"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractSum(t *testing.T, src string) *SumType {
	t.Helper()
	fset, decl := parseDecl(t, src)
	sum, err := ExtractDecl(fset, decl)
	require.NoError(t, err)
	return sum
}

const shapeBlock = `type (
	Shape  interface{ isShape() }
	Circle struct{ Radius float64 }
	Rect   struct{ W, H float64 }
	Dot    struct{}
)`

func TestEmitBasic(t *testing.T) {
	sum := extractSum(t, shapeBlock)

	out, err := NewEmitter().Emit(sum, ModeAnnotation)
	require.NoError(t, err)

	expected := []string{
		"func (Circle) isShape() {}",
		"func (Rect) isShape() {}",
		"func (Dot) isShape() {}",
		`func (Circle) VariantName() string { return "Circle" }`,
		`func (Rect) VariantName() string { return "Rect" }`,
		`func (Dot) VariantName() string { return "Dot" }`,
		"func ShapeVariantName(v Shape) string {",
		"case Circle:",
		"case Rect:",
		"case Dot:",
		`panic("variantgen: value is not a branch of Shape")`,
	}
	for _, want := range expected {
		assert.Contains(t, out, want)
	}

	// one case per branch, in declaration order, no duplicates
	assert.Equal(t, len(sum.Branches), strings.Count(out, "\tcase "))
	assert.Less(t, strings.Index(out, "case Circle:"), strings.Index(out, "case Rect:"))
	assert.Less(t, strings.Index(out, "case Rect:"), strings.Index(out, "case Dot:"))
}

func TestEmitGeneric(t *testing.T) {
	sum := extractSum(t, `type (
	Box[T any, N comparable]   interface{ isBox() }
	Ref[T any, N comparable]   struct{ Value *T }
	Items[T any, N comparable] struct{ All []T }
	Empty[T any, N comparable] struct{}
)`)

	out, err := NewEmitter().Emit(sum, ModeAnnotation)
	require.NoError(t, err)

	expected := []string{
		"func (Ref[T, N]) isBox() {}",
		`func (Empty[T, N]) VariantName() string { return "Empty" }`,
		"func BoxVariantName[T any, N comparable](v Box[T, N]) string {",
		"case Ref[T, N]:",
		"case Items[T, N]:",
		"case Empty[T, N]:",
	}
	for _, want := range expected {
		assert.Contains(t, out, want)
	}
}

func TestEmitLiteralIsExactIdentifier(t *testing.T) {
	sum := extractSum(t, `type (
	Mixed     interface{ isMixed() }
	HTTPError struct{ Code int }
	lowercase struct{}
)`)

	out, err := NewEmitter().Emit(sum, ModeAnnotation)
	require.NoError(t, err)

	// no case conversion, no prefixing
	assert.Contains(t, out, `return "HTTPError"`)
	assert.Contains(t, out, `return "lowercase"`)
	assert.NotContains(t, out, `"httpError"`)
}

func TestEmitFileDeterministic(t *testing.T) {
	sum := extractSum(t, shapeBlock)
	e := NewEmitter()

	first, err := e.EmitFile("shapes", []*SumType{sum}, ModeAnnotation)
	require.NoError(t, err)
	second, err := e.EmitFile("shapes", []*SumType{sum}, ModeAnnotation)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "output must be byte-identical across runs")
}

func TestEmitFileFormatted(t *testing.T) {
	sum := extractSum(t, shapeBlock)

	out, err := NewEmitter().EmitFile("shapes", []*SumType{sum}, ModeAnnotation)
	require.NoError(t, err)

	formatted, err := format.Source(out)
	require.NoError(t, err)
	assert.Equal(t, string(formatted), string(out), "generated file must be gofmt-clean")

	assert.True(t, strings.HasPrefix(string(out), "// Code generated by variantgen. DO NOT EDIT."))
	assert.Contains(t, string(out), "package shapes")
}

func TestEmitFileHeader(t *testing.T) {
	sum := extractSum(t, shapeBlock)
	e := NewEmitter()
	e.SetHeader("Copyright notice goes here.")

	out, err := e.EmitFile("shapes", []*SumType{sum}, ModeAnnotation)
	require.NoError(t, err)
	assert.Contains(t, string(out), "// Copyright notice goes here.")
}

func TestEmitFileAttachment(t *testing.T) {
	src := `//variantgen:sumtype
type (
	Shape interface{ isShape() }
	Dot   struct{}
)
`
	sum, err := ParseDeclaration([]byte(src))
	require.NoError(t, err)

	out, err := NewEmitter().EmitFile(sum.Package, []*SumType{sum}, ModeAttachment)
	require.NoError(t, err)

	text := string(out)
	// self-contained: original declaration followed by the generated code
	assert.Contains(t, text, "package main")
	assert.Contains(t, text, "Shape interface{ isShape() }")
	assert.Contains(t, text, "func (Dot) isShape() {}")
	assert.Contains(t, text, "func ShapeVariantName(v Shape) string {")
	assert.Less(t, strings.Index(text, "Shape interface"), strings.Index(text, "func (Dot) isShape()"))
}

func TestEmitAnnotationOmitsDeclaration(t *testing.T) {
	src := `package shapes

type (
	Shape interface{ isShape() }
	Dot   struct{}
)
`
	sum, err := ParseDeclaration([]byte(src))
	require.NoError(t, err)

	out, err := NewEmitter().EmitFile(sum.Package, []*SumType{sum}, ModeAnnotation)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "interface{ isShape() }")
}
