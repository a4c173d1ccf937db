package implicit

import "fmt"

// Bernstein is a univariate polynomial of fixed degree, stored as
// coefficients over the Bernstein basis: p(t) = Σ coef[k]·B(n,k)(t) with
// B(n,k)(t) = C(n,k)·(1−t)^(n−k)·t^k. A Bézier curve's coordinate
// functions are Bernstein polynomials whose coefficients are the control
// coordinates themselves.
//
// Bernstein values are immutable; every operation returns a new value.
type Bernstein struct {
	coef []float64
}

// NewBernstein returns the Bernstein polynomial with the given
// coefficients. The degree is len(coef)−1.
func NewBernstein(coef ...float64) Bernstein {
	if len(coef) == 0 {
		panic("a Bernstein polynomial needs at least one coefficient")
	}
	out := make([]float64, len(coef))
	copy(out, coef)
	return Bernstein{coef: out}
}

// Degree returns the polynomial's degree.
func (b Bernstein) Degree() int {
	return len(b.coef) - 1
}

// Coefficient returns the k-th Bernstein coefficient.
func (b Bernstein) Coefficient(k int) float64 {
	return b.coef[k]
}

// Add returns the coefficient-wise sum of b and o. The operands must have
// the same degree; use Elevate to match degrees first.
func (b Bernstein) Add(o Bernstein) Bernstein {
	if len(b.coef) != len(o.coef) {
		panic(fmt.Sprintf("mismatched degrees %d and %d", b.Degree(), o.Degree()))
	}
	out := make([]float64, len(b.coef))
	for k, c := range b.coef {
		out[k] = c + o.coef[k]
	}
	return Bernstein{coef: out}
}

// Scale multiplies every coefficient by k. Because the basis functions
// sum to one, this scales the polynomial's value everywhere.
func (b Bernstein) Scale(k float64) Bernstein {
	out := make([]float64, len(b.coef))
	for n, c := range b.coef {
		out[n] = k * c
	}
	return Bernstein{coef: out}
}

// Mul returns the product of b and o in the Bernstein basis. The result's
// degree is the sum of the operands' degrees; nothing is truncated.
func (b Bernstein) Mul(o Bernstein) Bernstein {
	m := b.Degree()
	n := o.Degree()
	out := make([]float64, m+n+1)
	for i, c := range b.coef {
		if c == 0 {
			continue
		}
		for j, d := range o.coef {
			out[i+j] += choose(m, i) * choose(n, j) / choose(m+n, i+j) * c * d
		}
	}
	return Bernstein{coef: out}
}

// Elevate raises the polynomial's degree by k without changing its value,
// by multiplying with the all-ones polynomial of degree k. The all-ones
// coefficient sequence is identically 1 in the Bernstein basis (the basis
// functions partition unity), which is what makes this identity hold; it
// is not a property of polynomial bases in general.
func (b Bernstein) Elevate(k int) Bernstein {
	if k < 0 {
		panic(fmt.Sprintf("cannot elevate by %d", k))
	}
	if k == 0 {
		return b
	}
	ones := make([]float64, k+1)
	for n := range ones {
		ones[n] = 1
	}
	return b.Mul(Bernstein{coef: ones})
}

// Eval evaluates the polynomial at t using de Casteljau's algorithm.
func (b Bernstein) Eval(t float64) float64 {
	tmp := make([]float64, len(b.coef))
	copy(tmp, b.coef)
	for r := 1; r < len(tmp); r++ {
		for k := 0; k < len(tmp)-r; k++ {
			tmp[k] += t * (tmp[k+1] - tmp[k])
		}
	}
	return tmp[0]
}
