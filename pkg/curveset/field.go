// Package curveset generalizes the three elliptic-curve coordinate families
// used across the suites this library supports: short Weierstrass (SW),
// Montgomery, and twisted Edwards (TE). Each family is parameterized by its
// field modulus and curve constants rather than hard-coded to one curve, the
// way a single concrete curve (e.g. Banderwagon over the BLS12-381 scalar
// field) would be.
//
// Field arithmetic here is math/big based: correct, but not constant-time by
// construction. Secret-scalar operations additionally route through the
// fixed-width ladder in ladder.go, which is branch-free in the scalar bits
// even though the underlying big.Int field ops are not.
package curveset

import (
	"errors"
	"math/big"
)

var (
	// ErrNotOnCurve is returned when a candidate affine point fails its
	// curve equation.
	ErrNotOnCurve = errors.New("curveset: point not on curve")
	// ErrOutOfRange is returned when a decoded field element is >= the
	// field modulus.
	ErrOutOfRange = errors.New("curveset: coordinate out of range")
	// ErrNoSqrt is returned when a field element has no square root.
	ErrNoSqrt = errors.New("curveset: not a quadratic residue")
)

// Field is a prime field Fp with a fixed modulus, shared by every point on
// one curve family instance.
type Field struct {
	P *big.Int
}

// NewField builds a Field from a modulus.
func NewField(p *big.Int) *Field {
	return &Field{P: new(big.Int).Set(p)}
}

func (f *Field) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.P)
}

func (f *Field) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.P)
}

func (f *Field) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.P)
}

func (f *Field) Sqr(a *big.Int) *big.Int {
	return f.Mul(a, a)
}

func (f *Field) Neg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(f.P, new(big.Int).Mod(a, f.P))
}

func (f *Field) Inv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, f.P)
}

// Sqrt returns a square root of a, or nil if a is not a quadratic residue.
// Correct for any prime modulus via math/big's Tonelli-Shanks.
func (f *Field) Sqrt(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).ModSqrt(a, f.P)
}

// Legendre returns 1, -1, or 0 depending on whether a is a nonzero QR,
// non-residue, or zero.
func (f *Field) Legendre(a *big.Int) int {
	if a.Sign() == 0 {
		return 0
	}
	e := new(big.Int).Rsh(new(big.Int).Sub(f.P, big.NewInt(1)), 1)
	r := new(big.Int).Exp(a, e, f.P)
	if r.Cmp(big.NewInt(1)) == 0 {
		return 1
	}
	return -1
}

func (f *Field) Reduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, f.P)
}

// IsZero reports whether a ≡ 0 (mod P).
func (f *Field) IsZero(a *big.Int) bool {
	return f.Reduce(a).Sign() == 0
}
