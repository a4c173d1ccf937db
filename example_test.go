package implicit_test

import (
	"fmt"

	"honnef.co/go/implicit"
)

func ExampleQuadBez_Implicitize() {
	q := implicit.QuadBez{
		P0: implicit.Pt(0, 0),
		P1: implicit.Pt(1, 1),
		P2: implicit.Pt(2, 0),
	}
	f := q.Implicitize()
	// Points on the curve satisfy f(x, y) = 0, points off the curve don't.
	fmt.Println(f.Eval(q.Eval(0.25)))
	fmt.Println(f.Eval(implicit.Pt(1, 3)))
	// Output:
	// 0
	// -20
}

func ExampleQuadBez_Invert() {
	q := implicit.QuadBez{
		P0: implicit.Pt(0, 0),
		P1: implicit.Pt(1, 1),
		P2: implicit.Pt(2, 0),
	}
	inv := q.Invert()
	// The inverse map recovers the parameter of a point on the curve.
	fmt.Println(inv.Eval(q.Eval(0.5)))
	// Output:
	// 0.5
}
