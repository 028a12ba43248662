// Package poly provides the dense-polynomial and NTT/INTT layer the ring
// arithmetization and KZG commitment components share, over the BLS12-381
// scalar field. It wraps gnark-crypto's ecc/bls12-381/fr and fr/fft packages
// rather than hand-rolling Montgomery arithmetic or a Cooley-Tukey butterfly
// network, following the same library other retrieved gnark-fork repos use
// for their own PLONK/FRI domains.
package poly

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// ErrDomainMismatch is returned when two polynomials or a polynomial and a
// domain disagree on size in an operation that requires them to match.
var ErrDomainMismatch = errors.New("poly: domain size mismatch")

// Domain wraps a gnark-crypto fft.Domain: the evaluation domain of size N
// (a power of two) used for NTT/INTT and for the vanishing polynomial Z_H
// the ring arithmetization's quotient polynomial divides by.
type Domain struct {
	inner *fft.Domain
	size  uint64
}

// NewDomain builds (or reuses gnark-crypto's cached precomputation for) a
// multiplicative subgroup of size n. n must be a power of two.
func NewDomain(n uint64) *Domain {
	return &Domain{inner: fft.NewDomain(n), size: n}
}

// Size returns the domain's cardinality N.
func (d *Domain) Size() uint64 { return d.size }

// Generator returns the domain's generator element (the primitive N-th root
// of unity).
func (d *Domain) Generator() fr.Element { return d.inner.Generator }

// Poly is a dense polynomial represented by its coefficient vector,
// coeffs[i] being the coefficient of x^i.
type Poly struct {
	Coeffs []fr.Element
}

// New builds a Poly from a coefficient slice (not copied).
func New(coeffs []fr.Element) *Poly {
	return &Poly{Coeffs: coeffs}
}

// Zero returns the zero polynomial of the given length.
func Zero(n int) *Poly {
	return &Poly{Coeffs: make([]fr.Element, n)}
}

// Degree returns the index of the highest nonzero coefficient, or -1 for
// the zero polynomial.
func (p *Poly) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if !p.Coeffs[i].IsZero() {
			return i
		}
	}
	return -1
}

// Evaluate evaluates p at x via Horner's method.
func (p *Poly) Evaluate(x fr.Element) fr.Element {
	var result fr.Element
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p.Coeffs[i])
	}
	return result
}

// Add returns p + q, padding the shorter operand with zeros.
func (p *Poly) Add(q *Poly) *Poly {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i].Add(&a, &b)
	}
	return &Poly{Coeffs: out}
}

// Scale returns c*p.
func (p *Poly) Scale(c fr.Element) *Poly {
	out := make([]fr.Element, len(p.Coeffs))
	for i := range p.Coeffs {
		out[i].Mul(&p.Coeffs[i], &c)
	}
	return &Poly{Coeffs: out}
}

// MulNaive multiplies two polynomials with schoolbook O(n*m) convolution;
// used for small constraint-gate polynomials in the ring arithmetization
// where an NTT round trip would cost more than it saves.
func (p *Poly) MulNaive(q *Poly) *Poly {
	if len(p.Coeffs) == 0 || len(q.Coeffs) == 0 {
		return Zero(1)
	}
	out := make([]fr.Element, len(p.Coeffs)+len(q.Coeffs)-1)
	for i, a := range p.Coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.Coeffs {
			var t fr.Element
			t.Mul(&a, &b)
			out[i+j].Add(&out[i+j], &t)
		}
	}
	return &Poly{Coeffs: out}
}

// ToCanonical returns a coefficient vector padded or truncated to exactly n
// entries.
func (p *Poly) ToCanonical(n int) []fr.Element {
	out := make([]fr.Element, n)
	copy(out, p.Coeffs)
	return out
}
