package ring

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
	"github.com/bandersnatch-vrf/ringvrf/pkg/kzg"
	"github.com/bandersnatch-vrf/ringvrf/pkg/poly"
	"github.com/bandersnatch-vrf/ringvrf/pkg/suite"
	"github.com/bandersnatch-vrf/ringvrf/pkg/transcript"
	"github.com/bandersnatch-vrf/ringvrf/pkg/vrf"
	"github.com/bandersnatch-vrf/ringvrf/pkg/zeroize"
)

// witnessPolys computes the eleven non-ring witness columns' coefficient-form
// polynomials via INTT, in the fixed order every commitment/opening list
// uses. The ring columns X, Y are committed once in RingRoot and are not
// recommitted here; their coefficient polynomials are still needed locally
// to produce their KZG openings.
func witnessPolys(rp *RingParams, w *witness) []*poly.Poly {
	return []*poly.Poly{
		rp.domain.INTT(w.AccX),
		rp.domain.INTT(w.AccY),
		rp.domain.INTT(w.DblX),
		rp.domain.INTT(w.DblY),
		rp.domain.INTT(w.Bit),
		rp.domain.INTT(w.Sel),
		rp.domain.INTT(w.RunSel),
		rp.domain.INTT(w.GamAccX),
		rp.domain.INTT(w.GamAccY),
		rp.domain.INTT(w.GamDblX),
		rp.domain.INTT(w.GamDblY),
	}
}

func commitColumns(srs *kzg.SRS, polys []*poly.Poly) ([]kzg.Digest, error) {
	out := make([]kzg.Digest, len(polys))
	for i, p := range polys {
		d, err := srs.Commit(p)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// appendTranscriptPrefix folds the ring root, the Pedersen proof, and the
// witness commitments into tr, in the order both Prove and Verify use to
// derive the same gate-combination and opening challenges.
func appendTranscriptPrefix(tr *transcript.Transcript, s *vrf.Suite, root *RingRoot, pedersen *vrf.PedersenProof, witnessCommits []kzg.Digest) {
	tr.AppendBytes(root.CommitX.Marshal())
	tr.AppendBytes(root.CommitY.Marshal())
	enc := vrf.EncodePedersenProof(s, pedersen)
	tr.AppendBytes(enc[:])
	for _, c := range witnessCommits {
		tr.AppendBytes(c.Marshal())
	}
}

// Prove implements §4.I: a Pedersen VRF proof over alpha bundled with a
// succinct argument that the unblinded key behind pk_blind (sk*G) belongs to
// the declared ring, without revealing which member. root must already be
// ConstructRingRoot'd from ringPks with the same srs.
func Prove(rp *RingParams, alpha, ad []byte, sk *zeroize.Bytes32, pk curveset.Point, ringPks []*curveset.TEPoint, root *RingRoot, srs *kzg.SRS) (*RingProof, error) {
	s := bandersnatchSuite()
	b2 := suite.BandersnatchSecondGenerator()

	index, err := locateInRing(s.Curve, pk, ringPks)
	if err != nil {
		return nil, err
	}

	pedersen, err := vrf.PedersenProve(s, b2, sk, alpha, ad, nil)
	if err != nil {
		return nil, err
	}

	h, err := s.EncodeToCurve(alpha, nil)
	if err != nil {
		return nil, err
	}
	hx, hy := h.(*curveset.TEPoint).Affine()
	hxFe, hyFe := feFromBig(hx), feFromBig(hy)

	var skInt big.Int
	sk.Use(func(buf *[32]byte) { skInt.SetBytes(buf[:]) })

	accX, accY, dblX, dblY, bit := scalarMulTrace(rp, &skInt)
	gamAccX, gamAccY, gamDblX, gamDblY := gammaMulTrace(rp, &skInt, hx, hy)
	sel, runSel := selectorColumns(rp, index)
	xEvals, yEvals, err := buildRingColumns(rp, ringPks)
	if err != nil {
		return nil, err
	}

	w := &witness{
		X: xEvals, Y: yEvals,
		AccX: accX, AccY: accY,
		DblX: dblX, DblY: dblY,
		GamAccX: gamAccX, GamAccY: gamAccY,
		GamDblX: gamDblX, GamDblY: gamDblY,
		Bit: bit, Sel: sel, RunSel: runSel,
	}

	wPolys := witnessPolys(rp, w)
	wCommits, err := commitColumns(srs, wPolys)
	if err != nil {
		return nil, err
	}
	xPoly := rp.domain.INTT(xEvals)
	yPoly := rp.domain.INTT(yEvals)

	tr := transcript.New("ring_vrf")
	appendTranscriptPrefix(tr, s, root, pedersen, wCommits)
	tr.AppendBytes(alpha)
	tr.AppendBytes(ad)

	gates := evaluateGates(rp, w, hxFe, hyFe)
	combined := combineGates(rp, tr, gates)
	quotient, err := quotientPolynomial(rp, combined)
	if err != nil {
		return nil, err
	}

	commitQuotient, err := srs.Commit(quotient)
	if err != nil {
		return nil, err
	}
	tr.AppendBytes(commitQuotient.Marshal())

	var zeta fr.Element
	zeta.SetBigInt(tr.ChallengeScalar(fr.Modulus()))

	allPolys := append(append([]*poly.Poly{}, wPolys...), xPoly, yPoly, quotient)
	allDigests := append(append([]kzg.Digest{}, wCommits...), root.CommitX, root.CommitY, commitQuotient)

	batchProof, err := srs.BatchOpen(allPolys, allDigests, zeta, sha256HashFn)
	if err != nil {
		return nil, err
	}

	// The doubling-law and running-sum recurrence gates reference the
	// previous trace row (AccX, AccY, GamAccX, GamAccY, RunSel at ζ/ω), and
	// the ring-selector and gamma-tie checks reference the traces' fixed
	// terminal row (AccX, AccY, GamAccX, GamAccY at ω^traceFinalRow). Both
	// are opened separately since they're each a single shared evaluation
	// point distinct from ζ.
	shiftPoint := rp.shiftedPoint(zeta)
	shiftPolys := []*poly.Poly{wPolys[0], wPolys[1], wPolys[6], wPolys[7], wPolys[8]}
	shiftDigests := []kzg.Digest{wCommits[0], wCommits[1], wCommits[6], wCommits[7], wCommits[8]}
	shiftProof, err := srs.BatchOpen(shiftPolys, shiftDigests, shiftPoint, sha256HashFn)
	if err != nil {
		return nil, err
	}

	finalPolys := []*poly.Poly{wPolys[0], wPolys[1], wPolys[7], wPolys[8]}
	finalDigests := []kzg.Digest{wCommits[0], wCommits[1], wCommits[7], wCommits[8]}
	finalProof, err := srs.BatchOpen(finalPolys, finalDigests, rp.traceFinalRowPoint, sha256HashFn)
	if err != nil {
		return nil, err
	}

	logger.Debug("ring prove", "ring_size", len(ringPks))

	return &RingProof{
		Pedersen: pedersen,

		CommitAccX: wCommits[0], CommitAccY: wCommits[1],
		CommitDblX: wCommits[2], CommitDblY: wCommits[3],
		CommitBit: wCommits[4], CommitSel: wCommits[5],
		CommitRunSel:  wCommits[6],
		CommitGamAccX: wCommits[7], CommitGamAccY: wCommits[8],
		CommitGamDblX: wCommits[9], CommitGamDblY: wCommits[10],
		CommitQuotient: commitQuotient,

		Zeta: zeta,

		EvalAccX: wPolys[0].Evaluate(zeta), EvalAccY: wPolys[1].Evaluate(zeta),
		EvalDblX: wPolys[2].Evaluate(zeta), EvalDblY: wPolys[3].Evaluate(zeta),
		EvalBit: wPolys[4].Evaluate(zeta), EvalSel: wPolys[5].Evaluate(zeta),
		EvalRunSel: wPolys[6].Evaluate(zeta),
		EvalGamAccX: wPolys[7].Evaluate(zeta), EvalGamAccY: wPolys[8].Evaluate(zeta),
		EvalGamDblX: wPolys[9].Evaluate(zeta), EvalGamDblY: wPolys[10].Evaluate(zeta),
		EvalX:        xPoly.Evaluate(zeta),
		EvalY:        yPoly.Evaluate(zeta),
		EvalQuotient: quotient.Evaluate(zeta),
		BatchProof:   batchProof,

		EvalAccXPrev:   wPolys[0].Evaluate(shiftPoint),
		EvalAccYPrev:   wPolys[1].Evaluate(shiftPoint),
		EvalRunSelPrev: wPolys[6].Evaluate(shiftPoint),
		EvalGamAccXPrev: wPolys[7].Evaluate(shiftPoint),
		EvalGamAccYPrev: wPolys[8].Evaluate(shiftPoint),
		ShiftProof:      shiftProof,

		EvalFinalAccX: wPolys[0].Evaluate(rp.traceFinalRowPoint),
		EvalFinalAccY: wPolys[1].Evaluate(rp.traceFinalRowPoint),
		EvalGamFinalAccX: wPolys[7].Evaluate(rp.traceFinalRowPoint),
		EvalGamFinalAccY: wPolys[8].Evaluate(rp.traceFinalRowPoint),
		FinalProof:       finalProof,
	}, nil
}
