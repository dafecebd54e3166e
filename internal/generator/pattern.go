package generator

// pattern is the match arm synthesized for one branch: the type-switch case
// expression and the literal label it evaluates to.
type pattern struct {
	Case    string // e.g. "Circle" or "Ref[T, N]"
	Literal string // the branch identifier, exactly as written in source
}

// synthesize maps a branch to its pattern. Total over the three shapes: a
// type-switch case matches every value of the branch type no matter the
// payload, so Empty, Positional and Named all render as the same
// wildcard-payload pattern; only the literal ever varies, and it is always
// the identifier's exact source text.
func synthesize(sum *SumType, b Branch) pattern {
	use := newImplSignature(sum.TypeParams).UseList()
	switch b.Shape {
	case ShapeEmpty, ShapePositional, ShapeNamed:
		return pattern{Case: b.Name + use, Literal: b.Name}
	}
	// unreachable: BranchShape is closed at extraction
	return pattern{Case: b.Name + use, Literal: b.Name}
}
