package implicit

// choose returns the binomial coefficient C(n, k).
func choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}

// lineFunc returns the implicit line through control points i and j of a
// degree-n curve, scaled by C(n,i)·C(n,j). These weighted lines are the
// entries of the resultant matrices that eliminate the curve parameter.
func lineFunc(pts []Point, n, i, j int) BiPoly {
	pi, pj := pts[i], pts[j]
	l := Line(
		pi.Y-pj.Y,
		pj.X-pi.X,
		pi.X*pj.Y-pj.X*pi.Y,
	)
	return l.Scale(choose(n, i) * choose(n, j))
}

// Inversion is the rational map t = Num(x,y) / Den(x,y) that recovers the
// parameter of a point lying on a curve. Its value is undefined away from
// the curve.
type Inversion struct {
	Num BiPoly
	Den BiPoly
}

// Eval returns the parameter of pt, which must lie on the curve the
// inversion was built from.
func (inv Inversion) Eval(pt Point) float64 {
	return inv.Num.Eval(pt) / inv.Den.Eval(pt)
}
