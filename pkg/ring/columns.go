package ring

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
)

// buildRingColumns evaluates the padded ring's X(x), Y(x) columns on
// rp's domain: ring members occupy rows [0, len(ringPks)), padding occupies
// the rest. Because Bandersnatch's base field is BLS12-381's scalar field
// (§3), a TE point's affine coordinates convert directly to fr.Element
// without an intermediate reduction step.
func buildRingColumns(rp *RingParams, ringPks []*curveset.TEPoint) (x, y []fr.Element, err error) {
	if len(ringPks) > rp.RingCapacity {
		return nil, nil, ErrDomainMismatch
	}

	x = make([]fr.Element, rp.DomainSize)
	y = make([]fr.Element, rp.DomainSize)

	for i := 0; i < int(rp.DomainSize); i++ {
		var pt *curveset.TEPoint
		if i < len(ringPks) {
			pt = ringPks[i]
		} else {
			pt = paddingPoint
		}
		px, py := pt.Affine()
		x[i] = feFromBig(px)
		y[i] = feFromBig(py)
	}
	return x, y, nil
}

// selectorColumns builds the boolean "which row is the prover's key" Sel
// column and its running sum RunSel, used by the ring-selector gate
// (§4.H's "selected row" constraint) to tie the scalar-mult trace's
// terminal point to exactly one ring row without revealing which one.
func selectorColumns(rp *RingParams, index int) (sel, runSel []fr.Element) {
	sel = make([]fr.Element, rp.DomainSize)
	runSel = make([]fr.Element, rp.DomainSize)

	one := fr.One()
	var running fr.Element
	for i := 0; i < int(rp.DomainSize); i++ {
		if i == index {
			sel[i] = one
		}
		running.Add(&running, &sel[i])
		runSel[i] = running
	}
	return sel, runSel
}
