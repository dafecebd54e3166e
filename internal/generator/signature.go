package generator

import "strings"

// implSignature renders the generic signature of a sum type for
// reattachment to generated code. Parameter order and names are preserved
// exactly as declared; nothing is renamed, dropped or reordered, or the
// generated code would not type-check against the original declaration.
type implSignature struct {
	params []TypeParam
}

func newImplSignature(params []TypeParam) implSignature {
	return implSignature{params: params}
}

// DeclList is the declaration-side parameter list, constraints included:
// "[T any, N comparable]". Empty for a non-generic type.
func (s implSignature) DeclList() string {
	if len(s.params) == 0 {
		return ""
	}
	parts := make([]string, len(s.params))
	for i, p := range s.params {
		parts[i] = p.Name + " " + p.Constraint
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// UseList is the usage-side parameter list, names only: "[T, N]". Empty for
// a non-generic type.
func (s implSignature) UseList() string {
	if len(s.params) == 0 {
		return ""
	}
	parts := make([]string, len(s.params))
	for i, p := range s.params {
		parts[i] = p.Name
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Constraints is the ordered list of constraint expressions, passed through
// verbatim. Go folds constraints into the declaration-side list, so this is
// informational, but nothing is ever dropped from it.
func (s implSignature) Constraints() []string {
	if len(s.params) == 0 {
		return nil
	}
	out := make([]string, len(s.params))
	for i, p := range s.params {
		out[i] = p.Constraint
	}
	return out
}
