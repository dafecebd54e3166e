// Package variantgen declares the directive recognized by the variantgen
// code generator.
//
// Variantgen generates a branch-name accessor for sealed sum types. Go
// expresses a sum type as an interface with an unexported marker method plus
// one declared type per branch. Variantgen fixes that convention as a single
// type block: the first type in the block is the sealed interface, every
// following type is a branch, in declaration order:
//
//	//variantgen:sumtype
//	type (
//		Shape  interface{ isShape() }
//		Circle struct{ Radius float64 }
//		Rect   struct{ W, H float64 }
//		Dot    struct{}
//	)
//
// Running the generator over the package:
//
//	go run github.com/variantgen/variantgen/cmd/variantgen generate --source .
//
// produces variantgen_gen.go containing the marker methods that seal the
// interface, a VariantName method on every branch returning the branch's
// identifier as a string constant, and an exhaustive dispatch function on the
// sum type itself:
//
//	func ShapeVariantName(v Shape) string {
//		switch v.(type) {
//		case Circle:
//			return "Circle"
//		...
//		}
//	}
//
// The branch methods return untyped string constants, so calls on concrete
// values are inlined and folded by the compiler; no lookup table exists at
// runtime. Output is deterministic: the same declaration always produces the
// same bytes.
//
// Do not hand-write the marker methods for a block carrying the directive.
// The generator owns them, and a second declaration would fail to compile.
//
// Generic sum types keep their full signature. Each branch restates the sum
// type's parameter list, and the generated code reattaches it verbatim:
//
//	//variantgen:sumtype
//	type (
//		Box[T any, N comparable]   interface{ isBox() }
//		Ref[T any, N comparable]   struct{ Value *T }
//		Empty[T any, N comparable] struct{}
//	)
//
// Besides the directive scan there is an attachment form, "variantgen
// expand", which reads one declaration from a file or stdin and writes a
// self-contained file holding the declaration followed by the generated
// code. Both forms run the same engine; applying either to a declaration
// that is not a sum type block fails with a single diagnostic anchored at
// the type name and emits nothing.
package variantgen

// Directive marks a sealed sum type block for generation. It must appear in
// the doc comment of the type block, on a line of its own.
const Directive = "//variantgen:sumtype"
