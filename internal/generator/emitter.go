package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// Mode selects the invocation form driving the emitter.
type Mode int

const (
	// ModeAttachment re-emits the original declaration followed by the
	// generated code, producing a self-contained file.
	ModeAttachment Mode = iota
	// ModeAnnotation emits only the generated code; the declaration stays
	// in the file where it was found.
	ModeAnnotation
)

const generatedMarker = "// Code generated by variantgen. DO NOT EDIT."

// accessorTemplate renders the code for one sum type: marker methods
// sealing the interface, one VariantName label method per branch, and the
// exhaustive dispatch function. Branch order is declaration order.
var accessorTemplate = template.Must(template.New("accessors").Parse(`
{{- if .Decl }}
{{ .Decl }}

{{ end -}}
{{- range .Branches }}
func ({{ .Case }}) {{ $.Marker }}() {}
{{ end }}
{{- range .Branches }}
// VariantName reports the identifier of the {{ .Literal }} branch.
func ({{ .Case }}) VariantName() string { return {{ printf "%q" .Literal }} }
{{ end }}
// {{ .Name }}VariantName reports the identifier of the branch held by v.
// The switch is exhaustive over the branches of {{ .Name }}; the default
// arm is unreachable for sealed values.
func {{ .Name }}VariantName{{ .DeclList }}(v {{ .Name }}{{ .UseList }}) string {
	switch v.(type) {
	{{- range .Branches }}
	case {{ .Case }}:
		return {{ printf "%q" .Literal }}
	{{- end }}
	default:
		panic("variantgen: value is not a branch of {{ .Name }}")
	}
}
`))

type emitBranch struct {
	Case    string
	Literal string
}

type emitData struct {
	Name     string
	Marker   string
	DeclList string
	UseList  string
	Decl     string
	Branches []emitBranch
}

// Emitter assembles generated source. Output is deterministic: templates
// over ordered slices only, no map iteration, no clock.
type Emitter struct {
	header string
}

// NewEmitter creates an emitter with no extra header.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// SetHeader adds a comment line written after the generated-code marker,
// typically a license or provenance note.
func (e *Emitter) SetHeader(header string) {
	e.header = header
}

// Emit renders the code fragment for one sum type. It cannot fail on any
// SumType built by the extractor; an error here is an internal bug, not a
// diagnostic.
func (e *Emitter) Emit(sum *SumType, mode Mode) (string, error) {
	sig := newImplSignature(sum.TypeParams)
	data := emitData{
		Name:     sum.Name,
		Marker:   sum.Marker,
		DeclList: sig.DeclList(),
		UseList:  sig.UseList(),
	}
	if mode == ModeAttachment {
		data.Decl = sum.DeclText
	}
	for _, b := range sum.Branches {
		p := synthesize(sum, b)
		data.Branches = append(data.Branches, emitBranch{Case: p.Case, Literal: p.Literal})
	}
	var buf bytes.Buffer
	if err := accessorTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", sum.Name, err)
	}
	return buf.String(), nil
}

// EmitFile renders a complete gofmt-formatted file for the given sum types.
func (e *Emitter) EmitFile(pkg string, sums []*SumType, mode Mode) ([]byte, error) {
	if pkg == "" {
		pkg = "main"
	}
	var buf bytes.Buffer
	buf.WriteString(generatedMarker + "\n")
	if e.header != "" {
		buf.WriteString("// " + e.header + "\n")
	}
	fmt.Fprintf(&buf, "\npackage %s\n", pkg)
	for _, sum := range sums {
		frag, err := e.Emit(sum, mode)
		if err != nil {
			return nil, err
		}
		buf.WriteString(frag)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return out, nil
}
