package generator

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/variantgen/variantgen"
)

// Extractor collects sum type declarations from Go source. It drives the
// annotation form: files are parsed, declarations carrying the directive are
// extracted, everything else is ignored.
type Extractor struct {
	fset  *token.FileSet
	files map[string]*ast.File // file path -> AST
	pkgs  map[string]string    // file path -> package name
}

// NewExtractor creates an empty extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		fset:  token.NewFileSet(),
		files: make(map[string]*ast.File),
		pkgs:  make(map[string]string),
	}
}

// ParseDirectory parses all non-test Go files in a directory.
func (e *Extractor) ParseDirectory(dir string) error {
	notTest := func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}
	pkgs, err := parser.ParseDir(e.fset, dir, notTest, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parse directory %s: %w", dir, err)
	}
	for _, pkg := range pkgs {
		for path, file := range pkg.Files {
			e.files[path] = file
			e.pkgs[path] = file.Name.Name
		}
	}
	return nil
}

// ParseSource parses a single file presented as raw source. Used by tests
// and by callers that already hold the file contents.
func (e *Extractor) ParseSource(path string, src []byte) error {
	file, err := parser.ParseFile(e.fset, path, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	e.files[path] = file
	e.pkgs[path] = file.Name.Name
	return nil
}

// LoadPackages loads Go packages matching the given patterns (for example
// "./...") through the go toolchain and records their syntax trees.
func (e *Extractor) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Fset: e.fset,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			return parser.ParseFile(fset, filename, src, parser.ParseComments)
		},
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return fmt.Errorf("packages matching %s contain errors", strings.Join(patterns, " "))
	}
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			path := e.fset.Position(file.Package).Filename
			if strings.HasSuffix(path, "_test.go") {
				continue
			}
			e.files[path] = file
			e.pkgs[path] = pkg.Name
		}
	}
	return nil
}

// SumTypes extracts every declaration carrying the directive, in file-path
// then declaration order so repeated runs see the same sequence. The first
// invalid target aborts the whole pass: no partial result is returned.
func (e *Extractor) SumTypes() ([]*SumType, error) {
	paths := make([]string, 0, len(e.files))
	for p := range e.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var sums []*SumType
	for _, path := range paths {
		for _, decl := range e.files[path].Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				if fd, isFunc := decl.(*ast.FuncDecl); isFunc && HasDirective(fd.Doc) {
					return nil, &InvalidTargetError{
						Pos:      e.fset.Position(fd.Name.Pos()),
						TypeName: fd.Name.Name,
					}
				}
				continue
			}
			if !HasDirective(gd.Doc) {
				continue
			}
			sum, err := ExtractDecl(e.fset, gd)
			if err != nil {
				return nil, err
			}
			sum.Package = e.pkgs[path]
			sum.Dir = filepath.Dir(path)
			sums = append(sums, sum)
		}
	}
	return sums, nil
}

// HasDirective reports whether a doc comment contains the variantgen
// directive on a line of its own.
func HasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == variantgen.Directive {
			return true
		}
	}
	return false
}

// ExtractDecl builds a SumType from one type declaration. The declaration
// must be a parenthesized type block whose first spec is an interface sealed
// by a single unexported nullary method, followed by at least one branch.
// Anything else fails with an InvalidTargetError anchored at the type name.
func ExtractDecl(fset *token.FileSet, decl *ast.GenDecl) (*SumType, error) {
	if decl.Tok != token.TYPE || len(decl.Specs) == 0 {
		return nil, &InvalidTargetError{Pos: fset.Position(decl.Pos())}
	}
	first := decl.Specs[0].(*ast.TypeSpec)
	fail := func() (*SumType, error) {
		return nil, &InvalidTargetError{
			Pos:      fset.Position(first.Name.Pos()),
			TypeName: first.Name.Name,
		}
	}

	iface, ok := first.Type.(*ast.InterfaceType)
	if !ok || first.Assign.IsValid() {
		return fail()
	}
	marker, ok := markerMethod(iface)
	if !ok {
		return fail()
	}
	if len(decl.Specs) < 2 {
		// a seal with no branches is not a sum type
		return fail()
	}

	sum := &SumType{
		Name:   first.Name.Name,
		Marker: marker,
		Pos:    fset.Position(first.Name.Pos()),
	}
	if first.TypeParams != nil {
		for _, f := range first.TypeParams.List {
			constraint := exprString(fset, f.Type)
			for _, n := range f.Names {
				sum.TypeParams = append(sum.TypeParams, TypeParam{Name: n.Name, Constraint: constraint})
			}
		}
	}
	for _, spec := range decl.Specs[1:] {
		ts := spec.(*ast.TypeSpec)
		if ts.Assign.IsValid() {
			// aliases cannot carry methods, so they cannot be branches
			return nil, &InvalidTargetError{
				Pos:      fset.Position(ts.Name.Pos()),
				TypeName: ts.Name.Name,
			}
		}
		sum.Branches = append(sum.Branches, branchOf(ts))
	}
	return sum, nil
}

// ParseDeclaration parses a standalone declaration for the attachment form.
// The input may be a full file or a bare type block; a missing package
// clause is tolerated. The original declaration text is preserved verbatim
// on the result.
func ParseDeclaration(src []byte) (*SumType, error) {
	fset := token.NewFileSet()
	text := src
	pkg := ""
	file, err := parser.ParseFile(fset, "input.go", text, parser.ParseComments)
	if err != nil {
		fset = token.NewFileSet()
		text = append([]byte("package main\n\n"), src...)
		file, err = parser.ParseFile(fset, "input.go", text, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse declaration: %w", err)
		}
	} else {
		pkg = file.Name.Name
	}
	if len(file.Decls) == 0 {
		return nil, fmt.Errorf("no declaration in input")
	}

	var target *ast.GenDecl
	for _, decl := range file.Decls {
		if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
			target = gd
			break
		}
	}
	if target == nil {
		pos, name := declAnchor(fset, file.Decls[0])
		return nil, &InvalidTargetError{Pos: pos, TypeName: name}
	}

	sum, err := ExtractDecl(fset, target)
	if err != nil {
		return nil, err
	}
	start := target.Pos()
	if target.Doc != nil {
		start = target.Doc.Pos()
	}
	sum.DeclText = string(text[fset.Position(start).Offset:fset.Position(target.End()).Offset])
	sum.Package = pkg
	return sum, nil
}

// declAnchor locates the name of a declaration that is not a type block.
func declAnchor(fset *token.FileSet, decl ast.Decl) (token.Position, string) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return fset.Position(d.Name.Pos()), d.Name.Name
	case *ast.GenDecl:
		if len(d.Specs) > 0 {
			if vs, ok := d.Specs[0].(*ast.ValueSpec); ok && len(vs.Names) > 0 {
				return fset.Position(vs.Names[0].Pos()), vs.Names[0].Name
			}
		}
		return fset.Position(d.Pos()), ""
	}
	return fset.Position(decl.Pos()), ""
}

// markerMethod returns the name of the interface's marker method. The seal
// must be exactly one unexported method with no parameters and no results.
func markerMethod(iface *ast.InterfaceType) (string, bool) {
	if iface.Methods == nil || len(iface.Methods.List) != 1 {
		return "", false
	}
	m := iface.Methods.List[0]
	if len(m.Names) != 1 {
		return "", false // embedded interface or type constraint
	}
	name := m.Names[0].Name
	if ast.IsExported(name) {
		return "", false
	}
	ft, ok := m.Type.(*ast.FuncType)
	if !ok {
		return "", false
	}
	if ft.Params != nil && len(ft.Params.List) > 0 {
		return "", false
	}
	if ft.Results != nil && len(ft.Results.List) > 0 {
		return "", false
	}
	return name, true
}

// branchOf classifies one branch spec into its shape.
func branchOf(ts *ast.TypeSpec) Branch {
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		// a defined type over any non-struct expression carries exactly one
		// unnamed payload
		return Branch{Name: ts.Name.Name, Shape: ShapePositional, Arity: 1}
	}
	var named []string
	embedded := 0
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			embedded++
			continue
		}
		for _, n := range f.Names {
			named = append(named, n.Name)
		}
	}
	switch {
	case len(named) > 0:
		return Branch{Name: ts.Name.Name, Shape: ShapeNamed, Arity: len(named), Fields: named}
	case embedded > 0:
		return Branch{Name: ts.Name.Name, Shape: ShapePositional, Arity: embedded}
	default:
		return Branch{Name: ts.Name.Name, Shape: ShapeEmpty}
	}
}

// exprString renders an expression exactly as the printer would.
func exprString(fset *token.FileSet, x ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, x); err != nil {
		return ""
	}
	return buf.String()
}
