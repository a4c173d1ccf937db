package implicit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBernsteinEval(t *testing.T) {
	// Endpoint interpolation.
	b := NewBernstein(2, -1, 3)
	diff(t, 2.0, b.Eval(0))
	diff(t, 3.0, b.Eval(1))

	// A degree-1 Bernstein polynomial is a lerp of its coefficients.
	l := NewBernstein(1, 5)
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		require.InDelta(t, 1+4*ts, l.Eval(ts), 1e-12)
	}

	// B(2,1) peaks at 1/2 with value 1/2.
	require.InDelta(t, 0.5, NewBernstein(0, 1, 0).Eval(0.5), 1e-12)
}

func TestBernsteinAddScale(t *testing.T) {
	diff(t, NewBernstein(4, 6), NewBernstein(1, 2).Add(NewBernstein(3, 4)))
	diff(t, NewBernstein(-2, -4), NewBernstein(1, 2).Scale(-2))
	require.Panics(t, func() { NewBernstein(1, 2).Add(NewBernstein(1, 2, 3)) })
	require.Panics(t, func() { NewBernstein() })
}

func TestBernsteinMul(t *testing.T) {
	f := NewBernstein(1, 2, 4)
	g := NewBernstein(3, -1)
	h := f.Mul(g)
	if n := h.Degree(); n != 3 {
		t.Fatalf("got degree %d, want 3", n)
	}
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		require.InDelta(t, f.Eval(ts)*g.Eval(ts), h.Eval(ts), 1e-12)
	}
}

func TestBernsteinElevate(t *testing.T) {
	// The all-ones coefficient sequence is the constant 1 in the Bernstein
	// basis, so elevation must not change the polynomial's value.
	ones := NewBernstein(1, 1, 1, 1)
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		require.InDelta(t, 1.0, ones.Eval(ts), 1e-12)
	}

	b := NewBernstein(2, -1, 3)
	e := b.Elevate(3)
	if n := e.Degree(); n != 5 {
		t.Fatalf("got degree %d, want 5", n)
	}
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		require.InDelta(t, b.Eval(ts), e.Eval(ts), 1e-12)
	}

	diff(t, b, b.Elevate(0))
	require.Panics(t, func() { b.Elevate(-1) })
}
