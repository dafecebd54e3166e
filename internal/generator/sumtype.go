package generator

import "go/token"

// BranchShape classifies the payload of a branch.
type BranchShape int

const (
	// ShapeEmpty is a branch without payload, declared as struct{}.
	ShapeEmpty BranchShape = iota
	// ShapePositional is an unnamed payload: a struct holding only embedded
	// fields, or any non-struct type expression.
	ShapePositional
	// ShapeNamed is a struct payload with named fields.
	ShapeNamed
)

func (s BranchShape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapePositional:
		return "positional"
	case ShapeNamed:
		return "named"
	}
	return "unknown"
}

// TypeParam is one type parameter of a sum type, with its constraint as
// written in source.
type TypeParam struct {
	Name       string
	Constraint string
}

// Branch is one alternative of a sum type.
type Branch struct {
	Name   string
	Shape  BranchShape
	Arity  int
	Fields []string // field identifiers for ShapeNamed, nil otherwise
}

// SumType describes one sealed sum type block. It is built once per
// extraction and never mutated afterwards; the emitter consumes it and the
// value is discarded.
type SumType struct {
	Name       string
	Marker     string // unexported marker method sealing the interface
	TypeParams []TypeParam
	Branches   []Branch

	// Pos locates the sum type's name, for diagnostics.
	Pos token.Position

	// Package and Dir identify where the declaration lives. Package may be
	// empty for bare declarations read from stdin.
	Package string
	Dir     string

	// DeclText is the original declaration source, kept verbatim so the
	// attachment form can re-emit it unchanged. Empty for directive scans.
	DeclText string
}
