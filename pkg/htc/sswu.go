package htc

import "github.com/bandersnatch-vrf/ringvrf/pkg/curveset"

import "math/big"

// SSWUParams holds the Simplified SWU constants for a short-Weierstrass
// curve (or an isogenous curve E' mapped back via an isogeny the caller
// applies separately), generalizing the teacher's hard-coded BLS12-381 G1
// SSWU constants (A', B', Z) into reusable parameters for any SW suite
// (P-256/384/521, secp256k1) registered against pkg/suite.
type SSWUParams struct {
	Field *curveset.Field
	A, B  *big.Int
	Z     *big.Int
}

// Map applies RFC 9380 §6.6.2 Simplified SWU to a field element u,
// returning a point (x, y) on y^2 = x^3 + A*x + B.
func (s *SSWUParams) Map(u *big.Int) (x, y *big.Int) {
	f := s.Field

	u2 := f.Sqr(u)
	zU2 := f.Mul(s.Z, u2)
	zU2sq := f.Sqr(zU2)
	tv1 := f.Add(zU2sq, zU2)

	var x1 *big.Int
	if tv1.Sign() == 0 {
		x1 = f.Mul(s.B, f.Inv(f.Mul(s.Z, s.A)))
	} else {
		negBA := f.Mul(f.Neg(s.B), f.Inv(s.A))
		x1 = f.Mul(negBA, f.Add(big.NewInt(1), f.Inv(tv1)))
	}

	gx1 := f.Add(f.Add(f.Mul(f.Sqr(x1), x1), f.Mul(s.A, x1)), s.B)

	x2 := f.Mul(zU2, x1)
	gx2 := f.Add(f.Add(f.Mul(f.Sqr(x2), x2), f.Mul(s.A, x2)), s.B)

	if f.Legendre(gx1) >= 0 {
		x = x1
		y = f.Sqrt(gx1)
	} else {
		x = x2
		y = f.Sqrt(gx2)
	}
	if y == nil {
		return new(big.Int), new(big.Int)
	}

	if Sgn0(u, s.Field.P) != Sgn0(y, s.Field.P) {
		y = f.Neg(y)
	}
	return
}
