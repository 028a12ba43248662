package curveset

import "math/big"

// TEParams describes a twisted Edwards curve a*x^2 + y^2 = 1 + d*x^2*y^2
// over a prime field, plus its prime-order-subgroup generator and order.
// This is the generalization of the Bandersnatch/Banderwagon instantiation
// (a = -5, P = BLS12-381 Fr) to any TE curve in this family: Ed25519,
// Ed448, JubJub, BabyJubJub and Bandersnatch itself all fit this shape.
type TEParams struct {
	Field *Field
	A, D  *big.Int
	Gx, Gy *big.Int
	// N is the order of the prime-order subgroup generated by (Gx, Gy).
	// Cofactor = (curve order)/N; Bandersnatch has cofactor 4, Ed25519 has
	// cofactor 8.
	N *big.Int
}

// TEPoint is a point in extended twisted Edwards coordinates (X, Y, T, Z),
// x = X/Z, y = Y/Z, T = X*Y/Z, following Hisil et al. 2008. This is the same
// representation the teacher's Banderwagon implementation used, generalized
// to accept any TEParams rather than a single hard-coded (a, d, P).
type TEPoint struct {
	X, Y, T, Z *big.Int
	p          *TEParams
}

// Identity returns the neutral element (0, 1).
func (p *TEParams) Identity() *TEPoint {
	return &TEPoint{X: new(big.Int), Y: big.NewInt(1), T: new(big.Int), Z: big.NewInt(1), p: p}
}

// Generator returns the configured subgroup generator.
func (p *TEParams) Generator() *TEPoint {
	f := p.Field
	return &TEPoint{X: new(big.Int).Set(p.Gx), Y: new(big.Int).Set(p.Gy), T: f.Mul(p.Gx, p.Gy), Z: big.NewInt(1), p: p}
}

// IsOnCurve reports whether the affine point (x, y) satisfies
// a*x^2 + y^2 = 1 + d*x^2*y^2.
func (p *TEParams) IsOnCurve(x, y *big.Int) bool {
	f := p.Field
	x2, y2 := f.Sqr(x), f.Sqr(y)
	lhs := f.Add(f.Mul(p.A, x2), y2)
	rhs := f.Add(big.NewInt(1), f.Mul(p.D, f.Mul(x2, y2)))
	return lhs.Cmp(rhs) == 0
}

// FromAffine builds a point from affine coordinates, checking the curve
// equation.
func (p *TEParams) FromAffine(x, y *big.Int) (*TEPoint, error) {
	f := p.Field
	xm, ym := f.Reduce(x), f.Reduce(y)
	if !p.IsOnCurve(xm, ym) {
		return nil, ErrNotOnCurve
	}
	return &TEPoint{X: xm, Y: ym, T: f.Mul(xm, ym), Z: big.NewInt(1), p: p}, nil
}

// Affine converts back to (x, y); the identity maps to (0, 1).
func (pt *TEPoint) Affine() (x, y *big.Int) {
	f := pt.p.Field
	if pt.Z.Cmp(big.NewInt(1)) == 0 {
		return new(big.Int).Set(pt.X), new(big.Int).Set(pt.Y)
	}
	zInv := f.Inv(pt.Z)
	return f.Mul(pt.X, zInv), f.Mul(pt.Y, zInv)
}

// IsIdentity reports whether pt is the neutral element.
func (pt *TEPoint) IsIdentity() bool {
	f := pt.p.Field
	return f.IsZero(pt.X) && f.Reduce(pt.Y).Cmp(f.Reduce(pt.Z)) == 0
}

// Add implements the unified TE addition law in extended coordinates.
func (pt *TEPoint) Add(other *TEPoint) *TEPoint {
	f := pt.p.Field
	a, d := pt.p.A, pt.p.D

	A := f.Mul(pt.X, other.X)
	B := f.Mul(pt.Y, other.Y)
	C := f.Mul(f.Mul(pt.T, d), other.T)
	D := f.Mul(pt.Z, other.Z)

	E := f.Sub(f.Mul(f.Add(pt.X, pt.Y), f.Add(other.X, other.Y)), f.Add(A, B))
	F := f.Sub(D, C)
	G := f.Add(D, C)
	H := f.Sub(B, f.Mul(a, A))

	return &TEPoint{X: f.Mul(E, F), Y: f.Mul(G, H), T: f.Mul(E, H), Z: f.Mul(F, G), p: pt.p}
}

// Double implements the dedicated TE doubling formula.
func (pt *TEPoint) Double() *TEPoint {
	f := pt.p.Field
	a := pt.p.A

	A := f.Sqr(pt.X)
	B := f.Sqr(pt.Y)
	C := f.Mul(big.NewInt(2), f.Sqr(pt.Z))
	D := f.Mul(a, A)
	E := f.Sub(f.Sqr(f.Add(pt.X, pt.Y)), f.Add(A, B))
	G := f.Add(D, B)
	F := f.Sub(G, C)
	H := f.Sub(D, B)

	return &TEPoint{X: f.Mul(E, F), Y: f.Mul(G, H), T: f.Mul(E, H), Z: f.Mul(F, G), p: pt.p}
}

// Neg returns -pt; for TE curves -(x, y) = (-x, y).
func (pt *TEPoint) Neg() *TEPoint {
	f := pt.p.Field
	return &TEPoint{X: f.Neg(pt.X), Y: new(big.Int).Set(pt.Y), T: f.Neg(pt.T), Z: new(big.Int).Set(pt.Z), p: pt.p}
}

// ScalarMul computes k*pt with a fixed-width, branch-free-in-the-scalar
// Montgomery ladder (ladder.go), suitable for secret scalars. Scalars are
// reduced modulo the subgroup order N.
func (pt *TEPoint) ScalarMul(k *big.Int) *TEPoint {
	scalar := new(big.Int).Mod(k, pt.p.N)
	return teLadder(pt, scalar, pt.p.N.BitLen())
}

// MSM computes sum(scalars[i] * points[i]) with a simple accumulator. This
// is a public-input operation (ring roots, Pedersen commitments over public
// generators) so it does not need the constant-time ladder.
func MSM(points []*TEPoint, scalars []*big.Int) *TEPoint {
	if len(points) == 0 || len(points) != len(scalars) {
		return nil
	}
	params := points[0].p
	acc := params.Identity()
	for i, pt := range points {
		if scalars[i].Sign() == 0 {
			continue
		}
		acc = acc.Add(pt.addVariableTime(scalars[i]))
	}
	return acc
}

// addVariableTime is a plain double-and-add scalar mul used only for public
// inputs (MSM accumulation), where timing leakage carries no risk.
func (pt *TEPoint) addVariableTime(k *big.Int) *TEPoint {
	scalar := new(big.Int).Mod(k, pt.p.N)
	if scalar.Sign() == 0 {
		return pt.p.Identity()
	}
	result := pt.p.Identity()
	base := pt
	for i := scalar.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if scalar.Bit(i) == 1 {
			result = result.Add(base)
		}
	}
	return result
}

// Equal reports whether pt and other denote the same affine point.
func (pt *TEPoint) Equal(other *TEPoint) bool {
	f := pt.p.Field
	lx := f.Mul(pt.X, other.Z)
	rx := f.Mul(other.X, pt.Z)
	ly := f.Mul(pt.Y, other.Z)
	ry := f.Mul(other.Y, pt.Z)
	return lx.Cmp(rx) == 0 && ly.Cmp(ry) == 0
}

// Params returns the curve parameters this point belongs to.
func (pt *TEPoint) Params() *TEParams { return pt.p }
