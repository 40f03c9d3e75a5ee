package field

// Equation is the right-hand side of dy/dx = f(x, y).
type Equation func(x, y float64) float64

// NamedEquation pairs an equation with the label shown to the user.
type NamedEquation struct {
	Name string
	Fn   Equation
}

// DoubleX is dy/dx = 2x.
var DoubleX = NamedEquation{
	Name: "dy/dx = 2x",
	Fn:   func(x, _ float64) float64 { return 2 * x },
}
