package ring

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
	"github.com/bandersnatch-vrf/ringvrf/pkg/kzg"
	"github.com/bandersnatch-vrf/ringvrf/pkg/suite"
	"github.com/bandersnatch-vrf/ringvrf/pkg/transcript"
	"github.com/bandersnatch-vrf/ringvrf/pkg/vrf"
)

// Verify implements §4.I's verification side: check the embedded Pedersen
// VRF component, replay the Fiat-Shamir transcript to recover the same
// gate-combination challenge and opening point ζ the prover used, check the
// batched KZG openings, and finally check that the claimed openings satisfy
// the quotient-polynomial identity C(ζ) = t(ζ) * Z_H(ζ). root and srs must
// correspond to the same ring and parameters the proof was produced
// against.
func Verify(rp *RingParams, alpha, ad []byte, root *RingRoot, proof *RingProof, srs *kzg.SRS) error {
	s := bandersnatchSuite()
	b2 := suite.BandersnatchSecondGenerator()

	if err := vrf.PedersenVerify(s, b2, alpha, ad, nil, proof.Pedersen); err != nil {
		logger.Debug("ring verify failed", "reason", "pedersen_component")
		return ErrInvalidProof
	}

	h, err := s.EncodeToCurve(alpha, nil)
	if err != nil {
		return ErrInvalidProof
	}
	hx, hy := h.(*curveset.TEPoint).Affine()
	hxFe, hyFe := feFromBig(hx), feFromBig(hy)

	witnessCommits := []kzg.Digest{
		proof.CommitAccX, proof.CommitAccY,
		proof.CommitDblX, proof.CommitDblY,
		proof.CommitBit, proof.CommitSel,
		proof.CommitRunSel,
		proof.CommitGamAccX, proof.CommitGamAccY,
		proof.CommitGamDblX, proof.CommitGamDblY,
	}

	// zeta is re-derived from the transcript, never taken from proof.Zeta.
	tr := transcript.New("ring_vrf")
	appendTranscriptPrefix(tr, s, root, proof.Pedersen, witnessCommits)
	tr.AppendBytes(alpha)
	tr.AppendBytes(ad)
	deriveGateChallenge(tr)
	tr.AppendBytes(proof.CommitQuotient.Marshal())

	var zeta fr.Element
	zeta.SetBigInt(tr.ChallengeScalar(fr.Modulus()))

	allDigests := append(append([]kzg.Digest{}, witnessCommits...), root.CommitX, root.CommitY, proof.CommitQuotient)
	if err := srs.BatchVerify(allDigests, proof.BatchProof, zeta, sha256HashFn); err != nil {
		logger.Debug("ring verify failed", "reason", "batch_open_zeta")
		return ErrInvalidProof
	}

	shiftDigests := []kzg.Digest{
		proof.CommitAccX, proof.CommitAccY, proof.CommitRunSel,
		proof.CommitGamAccX, proof.CommitGamAccY,
	}
	if err := srs.BatchVerify(shiftDigests, proof.ShiftProof, rp.shiftedPoint(zeta), sha256HashFn); err != nil {
		logger.Debug("ring verify failed", "reason", "batch_open_shift")
		return ErrInvalidProof
	}

	finalDigests := []kzg.Digest{
		proof.CommitAccX, proof.CommitAccY,
		proof.CommitGamAccX, proof.CommitGamAccY,
	}
	if err := srs.BatchVerify(finalDigests, proof.FinalProof, rp.traceFinalRowPoint, sha256HashFn); err != nil {
		logger.Debug("ring verify failed", "reason", "batch_open_final")
		return ErrInvalidProof
	}

	// The gamma trace's terminal row must equal the embedded Pedersen
	// proof's gamma = sk*h: this is what ties that component's sk to the
	// same sk the ring-selector trace (and hence SelX/SelY's tie to the
	// declared ring member) uses, closing the gap a ring-selector tie alone
	// would leave between "some sk picked a ring row" and "that same sk
	// produced this proof's gamma/pk_blind".
	gammaX, gammaY := proof.Pedersen.Gamma.(*curveset.TEPoint).Affine()
	var gammaXFe, gammaYFe fr.Element
	gammaXFe.SetBigInt(gammaX)
	gammaYFe.SetBigInt(gammaY)
	if !proof.EvalGamFinalAccX.Equal(&gammaXFe) || !proof.EvalGamFinalAccY.Equal(&gammaYFe) {
		logger.Debug("ring verify failed", "reason", "gamma_tie_mismatch")
		return ErrInvalidProof
	}

	// recombineConstraint re-derives the same gate-combination challenge
	// from a fresh transcript replay of the identical prefix, independent
	// of the zeta-deriving transcript above.
	tr2 := transcript.New("ring_vrf")
	appendTranscriptPrefix(tr2, s, root, proof.Pedersen, witnessCommits)
	tr2.AppendBytes(alpha)
	tr2.AppendBytes(ad)
	combined := recombineConstraint(rp, tr2, proof, zeta, hxFe, hyFe)

	var zetaN, vanishing, one fr.Element
	one = fr.One()
	zetaN.Exp(zeta, big.NewInt(int64(rp.DomainSize)))
	vanishing.Sub(&zetaN, &one)

	var rhs fr.Element
	rhs.Mul(&proof.EvalQuotient, &vanishing)

	if !combined.Equal(&rhs) {
		logger.Debug("ring verify failed", "reason", "quotient_identity")
		return ErrInvalidProof
	}

	return nil
}
