package curveset

import "math/big"

// SWParams describes a short Weierstrass curve y^2 = x^3 + a*x + b over a
// prime field, generalizing the teacher's fixed BLS12-381/secp256k1/P-256
// Jacobian-coordinate implementations to any (a, b, P, generator, order)
// tuple: P-256, P-384, P-521 and secp256k1 (a=0) all fit this shape.
type SWParams struct {
	Field  *Field
	A, B   *big.Int
	Gx, Gy *big.Int
	N      *big.Int // subgroup order
}

// SWPoint is a Jacobian-coordinate point (X, Y, Z), affine = (X/Z^2, Y/Z^3).
type SWPoint struct {
	X, Y, Z *big.Int
	p       *SWParams
}

func (p *SWParams) Infinity() *SWPoint {
	return &SWPoint{X: big.NewInt(1), Y: big.NewInt(1), Z: new(big.Int), p: p}
}

func (p *SWParams) Generator() *SWPoint {
	return &SWPoint{X: new(big.Int).Set(p.Gx), Y: new(big.Int).Set(p.Gy), Z: big.NewInt(1), p: p}
}

func (pt *SWPoint) IsInfinity() bool { return pt.Z.Sign() == 0 }

func (p *SWParams) FromAffine(x, y *big.Int) (*SWPoint, error) {
	f := p.Field
	if x.Sign() == 0 && y.Sign() == 0 {
		return p.Infinity(), nil
	}
	xm, ym := f.Reduce(x), f.Reduce(y)
	lhs := f.Sqr(ym)
	rhs := f.Add(f.Add(f.Mul(f.Sqr(xm), xm), f.Mul(p.A, xm)), p.B)
	if lhs.Cmp(rhs) != 0 {
		return nil, ErrNotOnCurve
	}
	return &SWPoint{X: xm, Y: ym, Z: big.NewInt(1), p: p}, nil
}

func (pt *SWPoint) Affine() (x, y *big.Int) {
	f := pt.p.Field
	if pt.IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	zInv := f.Inv(pt.Z)
	zInv2 := f.Sqr(zInv)
	zInv3 := f.Mul(zInv2, zInv)
	return f.Mul(pt.X, zInv2), f.Mul(pt.Y, zInv3)
}

// Add implements general Jacobian addition (a != 0 safe via the generic
// a-parameter doubling formula when points coincide).
func (pt *SWPoint) Add(other *SWPoint) *SWPoint {
	f := pt.p.Field
	if pt.IsInfinity() {
		return other.clone()
	}
	if other.IsInfinity() {
		return pt.clone()
	}

	z1z1 := f.Sqr(pt.Z)
	z2z2 := f.Sqr(other.Z)
	u1 := f.Mul(pt.X, z2z2)
	u2 := f.Mul(other.X, z1z1)
	s1 := f.Mul(pt.Y, f.Mul(other.Z, z2z2))
	s2 := f.Mul(other.Y, f.Mul(pt.Z, z1z1))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) == 0 {
			return pt.Double()
		}
		return pt.p.Infinity()
	}

	h := f.Sub(u2, u1)
	i := f.Sqr(f.Add(h, h))
	j := f.Mul(h, i)
	r := f.Add(f.Sub(s2, s1), f.Sub(s2, s1))
	v := f.Mul(u1, i)

	x3 := f.Sub(f.Sub(f.Sqr(r), j), f.Add(v, v))
	y3 := f.Sub(f.Mul(r, f.Sub(v, x3)), f.Add(f.Mul(s1, j), f.Mul(s1, j)))
	z3 := f.Mul(f.Sub(f.Sub(f.Sqr(f.Add(pt.Z, other.Z)), z1z1), z2z2), h)

	return &SWPoint{X: x3, Y: y3, Z: z3, p: pt.p}
}

// Double uses the generic a-parameter Jacobian doubling formula (slower
// than the a=0 specialization the teacher used for BLS12-381/secp256k1, but
// correct for P-256/384/521 where a = -3 mod p).
func (pt *SWPoint) Double() *SWPoint {
	f := pt.p.Field
	if pt.IsInfinity() {
		return pt.p.Infinity()
	}
	xx := f.Sqr(pt.X)
	yy := f.Sqr(pt.Y)
	yyyy := f.Sqr(yy)
	zz := f.Sqr(pt.Z)

	s := f.Mul(big.NewInt(4), f.Mul(pt.X, yy))
	m := f.Add(f.Mul(big.NewInt(3), xx), f.Mul(pt.p.A, f.Sqr(zz)))

	t := f.Sub(f.Sqr(m), f.Mul(big.NewInt(2), s))
	y3 := f.Sub(f.Mul(m, f.Sub(s, t)), f.Mul(big.NewInt(8), yyyy))
	z3 := f.Sub(f.Sqr(f.Add(pt.Y, pt.Z)), f.Add(yy, zz))

	return &SWPoint{X: t, Y: y3, Z: z3, p: pt.p}
}

func (pt *SWPoint) Neg() *SWPoint {
	f := pt.p.Field
	if pt.IsInfinity() {
		return pt.p.Infinity()
	}
	return &SWPoint{X: new(big.Int).Set(pt.X), Y: f.Neg(pt.Y), Z: new(big.Int).Set(pt.Z), p: pt.p}
}

func (pt *SWPoint) clone() *SWPoint {
	return &SWPoint{X: new(big.Int).Set(pt.X), Y: new(big.Int).Set(pt.Y), Z: new(big.Int).Set(pt.Z), p: pt.p}
}

// ScalarMul uses plain double-and-add, branching on each scalar bit. It
// serves both ScalarMulPublic and ScalarMulSecret of ShortWeierstrassCurve,
// so the P-256 suite's secret VRF scalars also take this variable-time
// path; no constant-time ladder is provided here.
func (pt *SWPoint) ScalarMul(k *big.Int) *SWPoint {
	scalar := new(big.Int).Mod(k, pt.p.N)
	if scalar.Sign() == 0 || pt.IsInfinity() {
		return pt.p.Infinity()
	}
	result := pt.p.Infinity()
	base := pt.clone()
	for i := scalar.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if scalar.Bit(i) == 1 {
			result = result.Add(base)
		}
	}
	return result
}

func (pt *SWPoint) Equal(other *SWPoint) bool {
	ax, ay := pt.Affine()
	bx, by := other.Affine()
	return ax.Cmp(bx) == 0 && ay.Cmp(by) == 0
}

func (pt *SWPoint) Params() *SWParams { return pt.p }
