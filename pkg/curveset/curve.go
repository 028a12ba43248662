package curveset

import "math/big"

// Family identifies which coordinate system a suite's curve uses.
type Family int

const (
	FamilyEdwards Family = iota
	FamilyShortWeierstrass
	FamilyMontgomery
)

// Curve is the capability-set abstraction a suite (pkg/suite) registers
// against: rather than branching on curve family throughout the VRF and
// hash-to-curve code, every suite exposes the same narrow surface and the
// family-specific arithmetic (edwards.go/shortweierstrass.go/montgomery.go)
// stays behind it. This directly implements the migration note in the
// design notes about capability-set polymorphism replacing a tagged-union
// curve type.
type Curve interface {
	Family() Family
	Identity() Point
	Generator() Point
	// ScalarMulSecret multiplies the generator (or an arbitrary point) by a
	// secret scalar using the family's constant-time path where one exists.
	ScalarMulSecret(base Point, k *big.Int) Point
	// ScalarMulPublic multiplies by a public scalar; may use a faster,
	// variable-time path.
	ScalarMulPublic(base Point, k *big.Int) Point
	Add(a, b Point) Point
	Neg(a Point) Point
	Equal(a, b Point) bool
	Order() *big.Int
}

// Point is an opaque group element; concrete values are *TEPoint, *SWPoint
// or *MontPoint wrapped by the matching Curve implementation.
type Point interface {
	isPoint()
}

func (p *TEPoint) isPoint()   {}
func (p *SWPoint) isPoint()   {}
func (p *MontPoint) isPoint() {}

// EdwardsCurve adapts a *TEParams to the Curve interface.
type EdwardsCurve struct{ Params *TEParams }

func (c *EdwardsCurve) Family() Family    { return FamilyEdwards }
func (c *EdwardsCurve) Identity() Point   { return c.Params.Identity() }
func (c *EdwardsCurve) Generator() Point  { return c.Params.Generator() }
func (c *EdwardsCurve) Order() *big.Int   { return new(big.Int).Set(c.Params.N) }
func (c *EdwardsCurve) Add(a, b Point) Point {
	return a.(*TEPoint).Add(b.(*TEPoint))
}
func (c *EdwardsCurve) Neg(a Point) Point { return a.(*TEPoint).Neg() }
func (c *EdwardsCurve) Equal(a, b Point) bool {
	return a.(*TEPoint).Equal(b.(*TEPoint))
}
func (c *EdwardsCurve) ScalarMulSecret(base Point, k *big.Int) Point {
	return base.(*TEPoint).ScalarMul(k)
}
func (c *EdwardsCurve) ScalarMulPublic(base Point, k *big.Int) Point {
	return base.(*TEPoint).addVariableTime(k)
}

// ShortWeierstrassCurve adapts a *SWParams to the Curve interface. Secret
// scalar operations use the same variable-time double-and-add as public
// ones; this family has no constant-time ladder, and the P-256 suite in
// pkg/suite passes its VRF secret key and nonce through this path.
type ShortWeierstrassCurve struct{ Params *SWParams }

func (c *ShortWeierstrassCurve) Family() Family   { return FamilyShortWeierstrass }
func (c *ShortWeierstrassCurve) Identity() Point  { return c.Params.Infinity() }
func (c *ShortWeierstrassCurve) Generator() Point { return c.Params.Generator() }
func (c *ShortWeierstrassCurve) Order() *big.Int  { return new(big.Int).Set(c.Params.N) }
func (c *ShortWeierstrassCurve) Add(a, b Point) Point {
	return a.(*SWPoint).Add(b.(*SWPoint))
}
func (c *ShortWeierstrassCurve) Neg(a Point) Point { return a.(*SWPoint).Neg() }
func (c *ShortWeierstrassCurve) Equal(a, b Point) bool {
	return a.(*SWPoint).Equal(b.(*SWPoint))
}
func (c *ShortWeierstrassCurve) ScalarMulSecret(base Point, k *big.Int) Point {
	return base.(*SWPoint).ScalarMul(k)
}
func (c *ShortWeierstrassCurve) ScalarMulPublic(base Point, k *big.Int) Point {
	return base.(*SWPoint).ScalarMul(k)
}

// MontgomeryCurve adapts a *MontParams to the Curve interface via the affine
// addition law in montgomery.go; RFC 7748's constant-time XZ ladder remains
// available as a lower-level raw-DH primitive (ScalarMulU) but the generic
// adapter needs full point addition, which the ladder's u-only output can't
// provide.
type MontgomeryCurve struct{ Params *MontParams }

func (c *MontgomeryCurve) Family() Family   { return FamilyMontgomery }
func (c *MontgomeryCurve) Identity() Point  { return c.Params.Infinity() }
func (c *MontgomeryCurve) Generator() Point { return c.Params.Generator() }
func (c *MontgomeryCurve) Order() *big.Int  { return new(big.Int).Set(c.Params.N) }
func (c *MontgomeryCurve) Add(a, b Point) Point {
	return a.(*MontPoint).Add(b.(*MontPoint))
}
func (c *MontgomeryCurve) Neg(a Point) Point { return a.(*MontPoint).Neg() }
func (c *MontgomeryCurve) Equal(a, b Point) bool {
	return a.(*MontPoint).Equal(b.(*MontPoint))
}
func (c *MontgomeryCurve) ScalarMulSecret(base Point, k *big.Int) Point {
	return base.(*MontPoint).ScalarMul(k)
}
func (c *MontgomeryCurve) ScalarMulPublic(base Point, k *big.Int) Point {
	return base.(*MontPoint).ScalarMul(k)
}
