package implicit

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at t ∈ [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Coords returns the curve's coordinate functions x(t) and y(t) as
// Bernstein polynomials; their coefficients are the control coordinates.
func (q QuadBez) Coords() (x, y Bernstein) {
	return NewBernstein(q.P0.X, q.P1.X, q.P2.X),
		NewBernstein(q.P0.Y, q.P1.Y, q.P2.Y)
}

func (q QuadBez) points() []Point {
	return []Point{q.P0, q.P1, q.P2}
}

// Implicitize returns the implicit polynomial F with F(x, y) = 0 exactly
// on the curve (extended beyond t ∈ [0, 1]). For a quadratic the
// elimination resultant collapses to the closed form
// l₂₁·l₁₀ − l₂₀², where lᵢⱼ is the weighted line through control points
// i and j. The result has order 2.
func (q QuadBez) Implicitize() BiPoly {
	pts := q.points()
	l21 := lineFunc(pts, 2, 2, 1)
	l20 := lineFunc(pts, 2, 2, 0)
	l10 := lineFunc(pts, 2, 1, 0)
	return l21.Mul(l10).Sub(l20.Mul(l20))
}

// Invert returns the rational map recovering the parameter of a point on
// the curve.
func (q QuadBez) Invert() Inversion {
	pts := q.points()
	l21 := lineFunc(pts, 2, 2, 1)
	l20 := lineFunc(pts, 2, 2, 0)
	return Inversion{
		Num: l20,
		Den: l20.Sub(l21),
	}
}
