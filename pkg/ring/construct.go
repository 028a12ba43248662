package ring

import (
	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
	"github.com/bandersnatch-vrf/ringvrf/pkg/kzg"
)

// ConstructRingRoot commits to a declared ring's padded column polynomials
// X(x), Y(x) (§4.H "Padding"): the public artifact a verifier must already
// hold before checking any proof against that ring, computed once and
// reused across every member's proof.
func ConstructRingRoot(rp *RingParams, ringPks []*curveset.TEPoint, srs *kzg.SRS) (*RingRoot, error) {
	xEvals, yEvals, err := buildRingColumns(rp, ringPks)
	if err != nil {
		return nil, err
	}

	xPoly := rp.domain.INTT(xEvals)
	yPoly := rp.domain.INTT(yEvals)

	commitX, err := srs.Commit(xPoly)
	if err != nil {
		return nil, err
	}
	commitY, err := srs.Commit(yPoly)
	if err != nil {
		return nil, err
	}

	return &RingRoot{CommitX: commitX, CommitY: commitY, DomainSize: rp.DomainSize}, nil
}

// locateInRing finds pk's row in the declared ring, needed by the prover to
// build the Sel/RunSel selector columns; it is never run by the verifier,
// which never learns which row was selected.
func locateInRing(curve curveset.Curve, pk curveset.Point, ringPks []*curveset.TEPoint) (int, error) {
	for i, p := range ringPks {
		if curve.Equal(pk, p) {
			return i, nil
		}
	}
	return -1, ErrKeyNotInRing
}
