package implicit

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at t ∈ [0, 1].
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (cb CubicBez) Start() Point {
	return cb.P0
}

func (cb CubicBez) End() Point {
	return cb.P3
}

// Coords returns the curve's coordinate functions x(t) and y(t) as
// Bernstein polynomials; their coefficients are the control coordinates.
func (cb CubicBez) Coords() (x, y Bernstein) {
	return NewBernstein(cb.P0.X, cb.P1.X, cb.P2.X, cb.P3.X),
		NewBernstein(cb.P0.Y, cb.P1.Y, cb.P2.Y, cb.P3.Y)
}

func (cb CubicBez) points() []Point {
	return []Point{cb.P0, cb.P1, cb.P2, cb.P3}
}

// bezoutMatrix returns the symmetric 3×3 Bezout resultant matrix of
// weighted line functions whose determinant eliminates the parameter.
func (cb CubicBez) bezoutMatrix() [3][3]BiPoly {
	pts := cb.points()
	l32 := lineFunc(pts, 3, 3, 2)
	l31 := lineFunc(pts, 3, 3, 1)
	l30 := lineFunc(pts, 3, 3, 0)
	l21 := lineFunc(pts, 3, 2, 1)
	l20 := lineFunc(pts, 3, 2, 0)
	l10 := lineFunc(pts, 3, 1, 0)
	return [3][3]BiPoly{
		{l32, l31, l30},
		{l31, l30.Add(l21), l20},
		{l30, l20, l10},
	}
}

// Implicitize returns the implicit polynomial F with F(x, y) = 0 exactly
// on the curve (extended beyond t ∈ [0, 1]), computed as the determinant
// of the curve's Bezout matrix by cofactor expansion along the first row.
// The result has order 3 and true total degree 3, the algebraic degree of
// a generic cubic.
func (cb CubicBez) Implicitize() BiPoly {
	m := cb.bezoutMatrix()
	c0 := m[0][0].Mul(m[1][1].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][1])))
	c1 := m[0][1].Mul(m[1][0].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][0])))
	c2 := m[0][2].Mul(m[1][0].Mul(m[2][1]).Sub(m[1][1].Mul(m[2][0])))
	return c0.Sub(c1).Add(c2)
}

// Invert returns the rational map recovering the parameter of a point on
// the curve. The second return value reports whether the map exists: it
// is false when control points 1, 2 and 3 are collinear, a degenerate
// configuration for which the construction divides by zero.
func (cb CubicBez) Invert() (Inversion, bool) {
	pts := cb.points()
	det := func(i, j, k int) float64 {
		return Vec2(pts[j]).Cross(Vec2(pts[k])) -
			Vec2(pts[i]).Cross(Vec2(pts[k])) +
			Vec2(pts[i]).Cross(Vec2(pts[j]))
	}
	det123 := det(1, 2, 3)
	if det123 == 0 {
		return Inversion{}, false
	}
	c1 := det(0, 1, 3) / (3 * det123)
	c2 := -det(0, 2, 3) / (3 * det123)

	l31 := lineFunc(pts, 3, 3, 1)
	l30 := lineFunc(pts, 3, 3, 0)
	l21 := lineFunc(pts, 3, 2, 1)
	l20 := lineFunc(pts, 3, 2, 0)
	l10 := lineFunc(pts, 3, 1, 0)

	la := l31.Scale(c1).Add(l30.Add(l21).Scale(c2)).Add(l20)
	lb := l30.Scale(c1).Add(l20.Scale(c2)).Add(l10)
	return Inversion{
		Num: lb,
		Den: lb.Sub(la),
	}, true
}
