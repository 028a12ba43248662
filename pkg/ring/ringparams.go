package ring

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/poly"
)

// RingParams fixes the Lagrangian domain size N the ring arithmetization
// runs over, and caches every public column/point that depends only on N.
// scalarBitLen is pinned by Bandersnatch's subgroup order, so only the
// domain size varies: a larger N admits a larger ring at the cost of a
// larger proof. DefaultRingParams (N=512) holds rings up to 257 members;
// LargeRingParams (N=2048) holds rings up to 1793 members.
type RingParams struct {
	DomainSize    uint64
	RingCapacity  int
	TraceStart    int
	TraceFinalRow int

	domain             *poly.Domain
	stepMask           []fr.Element
	stepMaskPoly       *poly.Poly
	startSelector      []fr.Element
	endSelector        []fr.Element
	notRowZeroMask     []fr.Element
	notRowZeroMaskPoly *poly.Poly
	domainOmega        fr.Element
	domainOmegaInv     fr.Element
	traceFinalRowPoint fr.Element
}

// NewRingParams builds the cached column/point set for a domain of the
// given size. domainSize must leave room for the scalar-mult trace
// (scalarBitLen rows) plus its two boundary rows.
func NewRingParams(domainSize uint64) (*RingParams, error) {
	if domainSize <= uint64(scalarBitLen+2) {
		return nil, ErrDomainMismatch
	}

	rp := &RingParams{DomainSize: domainSize}
	rp.RingCapacity = int(domainSize) - scalarBitLen - 2
	rp.TraceStart = rp.RingCapacity
	rp.TraceFinalRow = rp.TraceStart + scalarBitLen
	rp.domain = poly.NewDomain(domainSize)

	rp.domainOmega = rp.domain.Generator()
	rp.domainOmegaInv = invertElement(rp.domainOmega)
	rp.traceFinalRowPoint = rp.domainPointAt(rp.TraceFinalRow)

	one := fr.One()

	rp.stepMask = make([]fr.Element, domainSize)
	for i := rp.TraceStart + 1; i <= rp.TraceStart+scalarBitLen; i++ {
		rp.stepMask[i] = one
	}
	rp.stepMaskPoly = rp.domain.INTT(rp.stepMask)

	rp.startSelector = rp.rowIndicator(rp.TraceStart)
	rp.endSelector = rp.rowIndicator(int(domainSize) - 1)

	rp.notRowZeroMask = make([]fr.Element, domainSize)
	for i := range rp.notRowZeroMask {
		rp.notRowZeroMask[i] = one
	}
	rp.notRowZeroMask[0] = fr.Element{}
	rp.notRowZeroMaskPoly = rp.domain.INTT(rp.notRowZeroMask)

	return rp, nil
}

// rowIndicator is 1 at exactly row idx and 0 elsewhere -- the evaluation-
// domain realization of a Lagrange basis selector (§4.H's L_start/L_end).
func (rp *RingParams) rowIndicator(idx int) []fr.Element {
	out := make([]fr.Element, rp.DomainSize)
	out[idx] = fr.One()
	return out
}

// domainPointAt returns ω^i, the domain's i-th point.
func (rp *RingParams) domainPointAt(i int) fr.Element {
	var out fr.Element
	out.Exp(rp.domainOmega, big.NewInt(int64(i)))
	return out
}

// shiftedPoint returns ζ/ω, the evaluation point corresponding to "the row
// before ζ" on this Lagrangian domain.
func (rp *RingParams) shiftedPoint(zeta fr.Element) fr.Element {
	var out fr.Element
	out.Mul(&zeta, &rp.domainOmegaInv)
	return out
}

// notRowZeroAt evaluates the public notRowZeroMask column's interpolating
// polynomial at an arbitrary point.
func (rp *RingParams) notRowZeroAt(zeta fr.Element) fr.Element {
	return rp.notRowZeroMaskPoly.Evaluate(zeta)
}

func invertElement(e fr.Element) fr.Element {
	var inv fr.Element
	inv.Inverse(&e)
	return inv
}

// DefaultRingParams is the baseline domain (§4.H), large enough for the
// common case of rings up to a few hundred members.
var DefaultRingParams = mustRingParams(512)

// LargeRingParams is a domain sized for ring membership in the low
// thousands, the scale a production validator-set ring reaches.
var LargeRingParams = mustRingParams(2048)

func mustRingParams(domainSize uint64) *RingParams {
	rp, err := NewRingParams(domainSize)
	if err != nil {
		panic(err)
	}
	return rp
}
