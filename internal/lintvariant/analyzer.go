// Package lintvariant provides a vet-style checker for variantgen directive
// placement.
package lintvariant

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/variantgen/variantgen"
	"github.com/variantgen/variantgen/internal/generator"
)

// Analyzer checks that the variantgen directive sits on sealed sum type
// blocks and that sealed blocks carry the directive.
var Analyzer = &analysis.Analyzer{
	Name: "lintvariant",
	Doc:  "checks placement of the " + variantgen.Directive + " directive",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			checkDecl(pass, decl)
		}
	}
	return nil, nil
}

func checkDecl(pass *analysis.Pass, decl ast.Decl) {
	gd, ok := decl.(*ast.GenDecl)
	if !ok || gd.Tok != token.TYPE {
		if directiveOn(decl) {
			pass.Reportf(declName(decl), "directive applicable only to sum types")
		}
		return
	}

	_, err := generator.ExtractDecl(pass.Fset, gd)
	isSum := err == nil
	hasDirective := generator.HasDirective(gd.Doc)

	switch {
	case hasDirective && !isSum:
		pass.Reportf(declName(decl), "directive applicable only to sum types")
	case isSum && !hasDirective:
		pass.Reportf(declName(decl), "sealed sum type block is missing %s directive", variantgen.Directive)
	}
}

func directiveOn(decl ast.Decl) bool {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return generator.HasDirective(d.Doc)
	case *ast.GenDecl:
		return generator.HasDirective(d.Doc)
	}
	return false
}

func declName(decl ast.Decl) token.Pos {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return d.Name.Pos()
	case *ast.GenDecl:
		if len(d.Specs) > 0 {
			switch s := d.Specs[0].(type) {
			case *ast.TypeSpec:
				return s.Name.Pos()
			case *ast.ValueSpec:
				if len(s.Names) > 0 {
					return s.Names[0].Pos()
				}
			}
		}
	}
	return decl.Pos()
}
