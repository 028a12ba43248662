// Package ring implements the Ring VRF's arithmetization and glue (§4.H,
// §4.I): a Pedersen VRF proof bundled with a succinct argument that the
// blinded signer's key belongs to a declared ring, expressed as column
// polynomials over a Lagrangian domain, committed with KZG and opened at a
// Fiat-Shamir challenge. The scalar-multiplication trace and TE
// addition-law gates are grounded on pkg/curveset's Edwards addition
// formulas (the same add-2008-hwcd-3 law the teacher's banderwagon.go
// BanderAdd uses), lifted here into a division-free polynomial-constraint
// form suitable for a quotient-polynomial argument instead of direct
// per-point arithmetic.
package ring

import (
	"crypto/sha256"
	"errors"
	"hash"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/bandersnatch"
	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
	"github.com/bandersnatch-vrf/ringvrf/pkg/kzg"
	"github.com/bandersnatch-vrf/ringvrf/pkg/log"
	"github.com/bandersnatch-vrf/ringvrf/pkg/suite"
	"github.com/bandersnatch-vrf/ringvrf/pkg/transcript"
	"github.com/bandersnatch-vrf/ringvrf/pkg/vrf"
)

// sha256HashFn is the hash.Hash constructor the batched KZG opening proof's
// internal Fiat-Shamir combination uses (pkg/kzg.BatchOpen/BatchVerify).
func sha256HashFn() hash.Hash { return sha256.New() }

var logger = log.Default().Module("ring")

var (
	// ErrKeyNotInRing is returned when the prover's public key is not a
	// member of the declared ring.
	ErrKeyNotInRing = errors.New("ring: public key not found in ring")
	// ErrDomainMismatch is returned when the ring size exceeds the domain's
	// usable capacity (after reserving rows for the scalar-mult trace).
	ErrDomainMismatch = errors.New("ring: ring size exceeds domain capacity")
	// ErrInvalidProof is returned when the quotient-polynomial identity or
	// the embedded Pedersen component fails to verify.
	ErrInvalidProof = errors.New("ring: invalid proof")
	// ErrInvalidEncoding is returned when proof or ring-root bytes fail to
	// parse.
	ErrInvalidEncoding = errors.New("ring: invalid encoding")
)

// scalarBitLen is the number of bits reserved for the scalar-multiplication
// trace (sk's bit decomposition); Bandersnatch's subgroup order is just
// under 2^253, so 253 steps suffice to reach any valid scalar. The domain
// size N itself -- and everything that depends on it -- is parameterized
// via RingParams (ringparams.go) rather than fixed here, so both a
// few-hundred-member ring (DefaultRingParams) and a thousand-plus-member
// ring (LargeRingParams) are reachable.
const scalarBitLen = 253

// paddingPoint is the ring's "nothing up my sleeve" filler for unused ring
// slots: hash-to-curve of a fixed, public label distinct from any
// legitimate key-derivation label, so no honest key can coincide with it.
var paddingPoint = derivePaddingPoint()

func derivePaddingPoint() *curveset.TEPoint {
	b2 := suite.BandersnatchSecondGenerator()
	// The padding point only needs to be a valid, fixed curve point with no
	// known relation to any prover's key; the second generator already is
	// exactly that, and reusing it avoids deriving yet another
	// nothing-up-my-sleeve constant.
	return b2.(*curveset.TEPoint)
}

// RingRoot commits to the padded ring's column polynomials X(x), Y(x): two
// G1 KZG commitments plus the domain size, 104 bytes as EncodeRingRoot
// lays it out. It carries no padding-point identifier.
type RingRoot struct {
	CommitX    kzg.Digest
	CommitY    kzg.Digest
	DomainSize uint64
}

// RingProof is a Pedersen VRF proof plus the ring-membership SNARK
// argument: witness commitments, the quotient commitment, openings at the
// Fiat-Shamir challenge ζ (plus the two auxiliary points the recurrence and
// boundary gates need -- the previous row ζ/ω and the trace's fixed
// terminal row), and their batched KZG opening proofs.
//
// Zeta is recomputed independently by Verify from the transcript and is
// never trusted as an input; it is carried here only as a convenience for
// callers that want to inspect a proof.
type RingProof struct {
	Pedersen *vrf.PedersenProof

	CommitAccX, CommitAccY       kzg.Digest
	CommitDblX, CommitDblY       kzg.Digest
	CommitGamAccX, CommitGamAccY kzg.Digest
	CommitGamDblX, CommitGamDblY kzg.Digest
	CommitBit, CommitSel         kzg.Digest
	CommitRunSel                 kzg.Digest
	CommitQuotient               kzg.Digest

	Zeta fr.Element

	EvalAccX, EvalAccY       fr.Element
	EvalDblX, EvalDblY       fr.Element
	EvalGamAccX, EvalGamAccY fr.Element
	EvalGamDblX, EvalGamDblY fr.Element
	EvalBit, EvalSel         fr.Element
	EvalRunSel               fr.Element
	EvalX, EvalY             fr.Element
	EvalQuotient             fr.Element
	BatchProof               kzg.BatchOpeningProof

	// EvalAccXPrev/EvalAccYPrev/EvalGamAccXPrev/EvalGamAccYPrev/EvalRunSelPrev
	// are AccX, AccY, GamAccX, GamAccY and RunSel opened at ζ/ω (the
	// previous trace row relative to ζ), needed by the doubling-law and
	// running-selector-sum recurrence gates.
	EvalAccXPrev, EvalAccYPrev       fr.Element
	EvalGamAccXPrev, EvalGamAccYPrev fr.Element
	EvalRunSelPrev                   fr.Element
	ShiftProof                       kzg.BatchOpeningProof

	// EvalFinalAccX/EvalFinalAccY are AccX, AccY opened at the trace's
	// fixed terminal row ω^finalRow, pinning the scalar-mult trace's
	// result for the ring-selector gate. EvalGamFinalAccX/EvalGamFinalAccY
	// are the gamma trace's terminal row, checked directly against the
	// embedded Pedersen proof's gamma to bind both traces' sk together.
	EvalFinalAccX, EvalFinalAccY       fr.Element
	EvalGamFinalAccX, EvalGamFinalAccY fr.Element
	FinalProof                         kzg.BatchOpeningProof
}

func feFromBig(v *big.Int) fr.Element {
	var e fr.Element
	e.SetBigInt(v)
	return e
}

func bandersnatchSuite() *vrf.Suite {
	return suite.Bandersnatch()
}

func generatorCoords() (gx, gy *big.Int) {
	params := bandersnatch.Params()
	return params.Gx, params.Gy
}

func curveAParam() *big.Int {
	return bandersnatch.Params().A
}
