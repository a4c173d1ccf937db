// Package implicit converts quadratic and cubic Bézier segments to
// implicit algebraic form and back.
//
// A parametric curve (x(t), y(t)) traces the zero set of some bivariate
// polynomial F, its implicit equation. Implicitization computes F from
// the control points; the companion inversion computes the rational map
// that recovers t from a point known to lie on the curve. Together they
// turn point-membership tests and curve–curve intersection into
// polynomial arithmetic: intersecting two curves reduces to substituting
// one curve's parametrization into the other's implicit equation and
// finding the roots of the resulting univariate polynomial.
//
// # Construction
//
// The implicit polynomials are built from weighted line functions, the
// implicit lines through pairs of control points scaled by binomial
// coefficients. For a quadratic the elimination resultant collapses to a
// closed-form product of line functions; for a cubic it is the
// determinant of a symmetric 3×3 Bezout matrix. See [QuadBez.Implicitize]
// and [CubicBez.Implicitize]. The corresponding inverse maps are ratios
// of linear combinations of the same line functions; see [QuadBez.Invert]
// and [CubicBez.Invert].
//
// # Polynomial types
//
// [BiPoly] is a bivariate polynomial with a per-axis degree bound, dense
// square coefficient table, and deliberately simple algebra: addition and
// subtraction require equal orders and never promote degree, while
// multiplication is a full convolution whose result order is the sum of
// the operand orders.
//
// [Bernstein] is a univariate polynomial over the Bernstein basis, the
// basis in which a Bézier curve's coordinate functions are just its
// control coordinates. It exists so that [BiPoly.Compose] can substitute
// a curve's parametrization into an implicit equation symbolically.
// Degree elevation by multiplication with an all-ones coefficient
// sequence is a Bernstein-basis identity (the basis partitions unity) and
// is relied upon throughout; a power-basis polynomial type could not be
// substituted.
//
// All types in this package are immutable values; every operation returns
// a new value, and all operations are pure, so concurrent use needs no
// coordination.
package implicit
