package poly

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// ErrNotDivisible is returned when DivideByVanishing is asked to divide a
// polynomial that does not vanish exactly on the size-n domain (a nonzero
// remainder would mean the quotient polynomial t(x) the ring arithmetization
// builds does not correspond to a satisfied constraint system).
var ErrNotDivisible = ErrDomainMismatch

// DivideByVanishing computes q(x) = p(x) / (x^n - 1), assuming p vanishes on
// every n-th root of unity (exact division, zero remainder). It uses the
// standard fold-down recurrence for dividing by the monic binomial x^n - 1:
// the leading n coefficients of each "window" become quotient coefficients,
// and get added back into the window below, same as reducing p modulo
// (x^n - 1) one step at a time.
func (p *Poly) DivideByVanishing(n uint64) (*Poly, error) {
	d := p.Degree()
	if d < int(n) {
		// A constraint polynomial degree lower than N can only be exactly
		// divisible by x^N - 1 if it is the zero polynomial.
		if d < 0 {
			return Zero(1), nil
		}
		return nil, ErrNotDivisible
	}

	coeffs := make([]fr.Element, d+1)
	copy(coeffs, p.Coeffs)

	N := int(n)
	qLen := d - N + 1
	q := make([]fr.Element, qLen)
	for i := d; i >= N; i-- {
		q[i-N] = coeffs[i]
		coeffs[i-N].Add(&coeffs[i-N], &coeffs[i])
	}
	for i := 0; i < N && i <= d; i++ {
		if !coeffs[i].IsZero() {
			return nil, ErrNotDivisible
		}
	}
	return &Poly{Coeffs: q}, nil
}
