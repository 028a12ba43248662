package ring

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/poly"
	"github.com/bandersnatch-vrf/ringvrf/pkg/transcript"
)

// deriveGateChallenge draws the gate-combination challenge alpha from the
// transcript's current state. Both Prove (to weight the gates it is
// combining) and Verify (to recompute the same combination from claimed
// openings alone) call this at the matching point in their otherwise
// identical transcript replay, so they agree on alpha without Verify ever
// needing the witness.
func deriveGateChallenge(tr *transcript.Transcript) fr.Element {
	var alpha fr.Element
	alpha.SetBigInt(tr.ChallengeScalar(fr.Modulus()))
	return alpha
}

// combineGates folds every named constraint gate's evaluation vector into a
// single combined constraint vector, in evaluation form, via a Fiat-Shamir
// random linear combination C = Σ alpha^k * gate_k. A single challenge
// scalar drawn from the running transcript (rather than an independent
// weight per gate) turns "every gate vanishes on the domain" into "one
// weighted sum vanishes on the domain", the standard aggregation trick so
// the whole gate set reduces to one quotient-polynomial division.
func combineGates(rp *RingParams, tr *transcript.Transcript, g *gateSet) []fr.Element {
	gates := g.all()
	alpha := deriveGateChallenge(tr)

	combined := make([]fr.Element, rp.DomainSize)
	power := fr.One()
	for _, gate := range gates {
		for i := 0; i < int(rp.DomainSize); i++ {
			var term fr.Element
			term.Mul(&gate[i], &power)
			combined[i].Add(&combined[i], &term)
		}
		power.Mul(&power, &alpha)
	}
	return combined
}

// quotientPolynomial converts the combined constraint vector to coefficient
// form and divides it by the domain's vanishing polynomial Z_H(x) = x^N - 1.
// The division is exact (zero remainder) exactly when every gate vanished on
// every domain row, i.e. the witness satisfies the ring arithmetization
// (§4.H); poly.ErrNotDivisible otherwise.
func quotientPolynomial(rp *RingParams, combinedEvals []fr.Element) (*poly.Poly, error) {
	cPoly := rp.domain.INTT(combinedEvals)
	return cPoly.DivideByVanishing(rp.DomainSize)
}
