package generator

import "testing"

func TestImplSignatureEmpty(t *testing.T) {
	sig := newImplSignature(nil)
	if got := sig.DeclList(); got != "" {
		t.Errorf("DeclList: got %q, want empty", got)
	}
	if got := sig.UseList(); got != "" {
		t.Errorf("UseList: got %q, want empty", got)
	}
	if got := sig.Constraints(); got != nil {
		t.Errorf("Constraints: got %v, want nil", got)
	}
}

func TestImplSignature(t *testing.T) {
	sig := newImplSignature([]TypeParam{
		{Name: "T", Constraint: "any"},
		{Name: "N", Constraint: "comparable"},
		{Name: "V", Constraint: "~int | ~string"},
	})

	if got, want := sig.DeclList(), "[T any, N comparable, V ~int | ~string]"; got != want {
		t.Errorf("DeclList: got %q, want %q", got, want)
	}
	if got, want := sig.UseList(), "[T, N, V]"; got != want {
		t.Errorf("UseList: got %q, want %q", got, want)
	}

	constraints := sig.Constraints()
	want := []string{"any", "comparable", "~int | ~string"}
	if len(constraints) != len(want) {
		t.Fatalf("Constraints: got %d entries, want %d", len(constraints), len(want))
	}
	for i := range want {
		if constraints[i] != want[i] {
			t.Errorf("Constraints[%d]: got %q, want %q", i, constraints[i], want[i])
		}
	}
}
