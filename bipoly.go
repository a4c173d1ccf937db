package implicit

import (
	"fmt"
	"math"
)

// BiPoly is a polynomial in two variables with a fixed per-axis degree
// bound. A polynomial of order n stores a dense (n+1)×(n+1) table of
// coefficients; the coefficient at (i, j) belongs to the term x^i·y^j.
// Exponents outside the table are implicitly zero. The polynomial's true
// total degree may be smaller than the table suggests.
//
// BiPoly values are immutable; every operation returns a new value.
type BiPoly struct {
	order int
	coef  []float64
}

// Line returns the order-1 polynomial a·x + b·y + c, i.e. the implicit
// form of the line a·x + b·y + c = 0.
func Line(a, b, c float64) BiPoly {
	return BiPoly{
		order: 1,
		coef:  []float64{c, b, a, 0},
	}
}

// NewBiPoly returns the polynomial with the given coefficient table.
// coef must be square; coef[i][j] is the coefficient of x^i·y^j.
func NewBiPoly(coef [][]float64) BiPoly {
	if len(coef) == 0 {
		panic("a polynomial needs at least one coefficient")
	}
	n := len(coef) - 1
	p := BiPoly{
		order: n,
		coef:  make([]float64, (n+1)*(n+1)),
	}
	for i, row := range coef {
		if len(row) != n+1 {
			panic(fmt.Sprintf("coefficient table isn't square: row %d has %d entries, want %d", i, len(row), n+1))
		}
		copy(p.coef[i*(n+1):], row)
	}
	return p
}

// Order returns the polynomial's per-axis degree bound.
func (p BiPoly) Order() int {
	return p.order
}

// Coefficient returns the coefficient of x^i·y^j. Both exponents must lie
// in [0, order].
func (p BiPoly) Coefficient(i, j int) float64 {
	if i < 0 || i > p.order || j < 0 || j > p.order {
		panic(fmt.Sprintf("exponent pair (%d, %d) out of range for order %d", i, j, p.order))
	}
	return p.coef[i*(p.order+1)+j]
}

// Scale multiplies every coefficient by k.
func (p BiPoly) Scale(k float64) BiPoly {
	out := BiPoly{
		order: p.order,
		coef:  make([]float64, len(p.coef)),
	}
	for n, c := range p.coef {
		out.coef[n] = k * c
	}
	return out
}

// Add returns the coefficient-wise sum of p and q. The operands must have
// the same order; Add never promotes degree.
func (p BiPoly) Add(q BiPoly) BiPoly {
	if p.order != q.order {
		panic(fmt.Sprintf("mismatched orders %d and %d", p.order, q.order))
	}
	out := BiPoly{
		order: p.order,
		coef:  make([]float64, len(p.coef)),
	}
	for n, c := range p.coef {
		out.coef[n] = c + q.coef[n]
	}
	return out
}

// Sub returns the coefficient-wise difference of p and q. The operands
// must have the same order.
func (p BiPoly) Sub(q BiPoly) BiPoly {
	return p.Add(q.Scale(-1))
}

// Mul returns the product of p and q. The result's order is the sum of
// the operands' orders.
func (p BiPoly) Mul(q BiPoly) BiPoly {
	n := p.order + q.order
	out := BiPoly{
		order: n,
		coef:  make([]float64, (n+1)*(n+1)),
	}
	for i1 := 0; i1 <= p.order; i1++ {
		for j1 := 0; j1 <= p.order; j1++ {
			c := p.coef[i1*(p.order+1)+j1]
			if c == 0 {
				continue
			}
			for i2 := 0; i2 <= q.order; i2++ {
				for j2 := 0; j2 <= q.order; j2++ {
					out.coef[(i1+i2)*(n+1)+(j1+j2)] += c * q.coef[i2*(q.order+1)+j2]
				}
			}
		}
	}
	return out
}

// Eval evaluates the polynomial at pt.
//
// This is the plain sum of c(i,j)·x^i·y^j; it is a reference definition,
// not a numerically hardened one.
func (p BiPoly) Eval(pt Point) float64 {
	var sum float64
	for i := 0; i <= p.order; i++ {
		for j := 0; j <= p.order; j++ {
			c := p.coef[i*(p.order+1)+j]
			sum += c * math.Pow(pt.X, float64(i)) * math.Pow(pt.Y, float64(j))
		}
	}
	return sum
}

// Compose substitutes the coordinate functions x(t) and y(t) into p,
// returning the Bernstein polynomial p(x(t), y(t)).
//
// Every term is degree-elevated to the common degree order², so the
// result has that degree regardless of which coefficients are zero. Every
// nonzero term must fit under that target degree; this holds in
// particular for an implicit polynomial composed with its own curve's
// coordinate functions, where the term x^i·y^j has degree order·(i+j)
// and nonzero coefficients satisfy i+j ≤ order.
func (p BiPoly) Compose(x, y Bernstein) Bernstein {
	target := p.order * p.order

	// Power bases x⁰..x^order and y⁰..y^order.
	xp := make([]Bernstein, p.order+1)
	yp := make([]Bernstein, p.order+1)
	xp[0] = NewBernstein(1)
	yp[0] = NewBernstein(1)
	for k := 1; k <= p.order; k++ {
		xp[k] = xp[k-1].Mul(x)
		yp[k] = yp[k-1].Mul(y)
	}

	sum := Bernstein{coef: make([]float64, target+1)}
	for i := 0; i <= p.order; i++ {
		for j := 0; j <= p.order; j++ {
			c := p.coef[i*(p.order+1)+j]
			if c == 0 {
				// Terms beyond the true total degree are always zero, so
				// skipping zero coefficients also skips every term that
				// would overshoot the target degree.
				continue
			}
			term := xp[i].Mul(yp[j]).Scale(c)
			k := target - term.Degree()
			if k < 0 {
				panic(fmt.Sprintf("term x^%d·y^%d exceeds target degree %d", i, j, target))
			}
			sum = sum.Add(term.Elevate(k))
		}
	}
	return sum
}
