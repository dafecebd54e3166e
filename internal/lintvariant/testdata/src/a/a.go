package a

//variantgen:sumtype
type (
	Shape  interface{ isShape() }
	Circle struct{ Radius float64 }
	Dot    struct{}
)

//variantgen:sumtype
type Config struct { // want `directive applicable only to sum types`
	Name string
}

type (
	Event interface{ isEvent() } // want `sealed sum type block is missing //variantgen:sumtype directive`
	Click struct{ X, Y int }
)

//variantgen:sumtype
func helper() {} // want `directive applicable only to sum types`

type Plain struct {
	ID int
}
