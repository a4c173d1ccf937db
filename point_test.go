package implicit

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Vec(3, -4), Pt(1, 2).Sub(Pt(-2, 6)))
	diff(t, Pt(1, 3), Pt(0, 2).Lerp(Pt(4, 6), 0.25))
	diff(t, Pt(2, 4), Pt(0, 2).Midpoint(Pt(4, 6)))

	x, y := Pt(7, -1).Splat()
	diff(t, 7.0, x)
	diff(t, -1.0, y)
}

func TestPointDistance(t *testing.T) {
	if d := Pt(0, 10).Distance(Pt(0, 5)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := Pt(-11, 1).Distance(Pt(-7, -2)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVec2Products(t *testing.T) {
	diff(t, 11.0, Vec(1, 2).Dot(Vec(3, 4)))
	diff(t, -2.0, Vec(1, 2).Cross(Vec(3, 4)))
	if h := Vec(3, 4).Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
}
