package ring

import (
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/kzg"
	"github.com/bandersnatch-vrf/ringvrf/pkg/vrf"
)

// EncodeRingRoot serializes a RingRoot as CommitX ‖ CommitY ‖ domain size
// (8-byte little-endian), 104 bytes (2*48 G1 plus the size marker), with no
// padding-point identifier. §6
// leaves the ring root's exact byte framing to the implementation
// ("implicit in the source" for the reference construction); this is this
// module's own concrete convention rather than a claim of byte-for-byte
// parity with an unpublished reference layout.
func EncodeRingRoot(root *RingRoot) []byte {
	cx := root.CommitX.Marshal()
	cy := root.CommitY.Marshal()
	out := make([]byte, 0, len(cx)+len(cy)+8)
	out = append(out, cx...)
	out = append(out, cy...)
	var sizeBuf [8]byte
	binary.LittleEndian.PutUint64(sizeBuf[:], root.DomainSize)
	out = append(out, sizeBuf[:]...)
	return out
}

// DecodeRingRoot parses the wire format EncodeRingRoot produces.
func DecodeRingRoot(data []byte) (*RingRoot, error) {
	if len(data) < 48+48+8 {
		return nil, ErrInvalidEncoding
	}
	var root RingRoot
	if err := root.CommitX.Unmarshal(data[0:48]); err != nil {
		return nil, ErrInvalidEncoding
	}
	if err := root.CommitY.Unmarshal(data[48:96]); err != nil {
		return nil, ErrInvalidEncoding
	}
	root.DomainSize = binary.LittleEndian.Uint64(data[96:104])
	return &root, nil
}

func feToBytes32(e fr.Element) [32]byte {
	var b big.Int
	e.BigInt(&b)
	var out [32]byte
	b.FillBytes(out[:])
	return out
}

func feFromBytes32(data []byte) fr.Element {
	var e fr.Element
	e.SetBigInt(new(big.Int).SetBytes(data))
	return e
}

func appendCommit(out []byte, d kzg.Digest) []byte {
	return append(out, d.Marshal()...)
}

func appendFE(out []byte, e fr.Element) []byte {
	b := feToBytes32(e)
	return append(out, b[:]...)
}

func appendBatchProof(out []byte, p kzg.BatchOpeningProof) []byte {
	out = append(out, p.H.Marshal()...)
	for _, v := range p.ClaimedValues {
		out = appendFE(out, v)
	}
	return out
}

// cursor walks a byte slice, tracking the decode error so call sites don't
// need to check one at every step.
type cursor struct {
	data []byte
	off  int
	err  error
}

func (c *cursor) commit() kzg.Digest {
	var d kzg.Digest
	if c.err != nil {
		return d
	}
	if c.off+48 > len(c.data) {
		c.err = ErrInvalidEncoding
		return d
	}
	if err := d.Unmarshal(c.data[c.off : c.off+48]); err != nil {
		c.err = ErrInvalidEncoding
		return d
	}
	c.off += 48
	return d
}

func (c *cursor) fe() fr.Element {
	if c.err != nil {
		return fr.Element{}
	}
	if c.off+32 > len(c.data) {
		c.err = ErrInvalidEncoding
		return fr.Element{}
	}
	e := feFromBytes32(c.data[c.off : c.off+32])
	c.off += 32
	return e
}

func (c *cursor) batchProof(count int) kzg.BatchOpeningProof {
	var p kzg.BatchOpeningProof
	if c.err != nil {
		return p
	}
	if c.off+48 > len(c.data) {
		c.err = ErrInvalidEncoding
		return p
	}
	if err := p.H.Unmarshal(c.data[c.off : c.off+48]); err != nil {
		c.err = ErrInvalidEncoding
		return p
	}
	c.off += 48
	p.ClaimedValues = make([]fr.Element, count)
	for i := 0; i < count; i++ {
		p.ClaimedValues[i] = c.fe()
	}
	return p
}

// EncodeRingProof serializes a RingProof: the embedded Pedersen component,
// the twelve witness/quotient commitments, the ζ-point openings and their
// batched proof, the ζ/ω-point ("previous row") openings and their batched
// proof, and the pinned trace-terminus openings (both the ring-selector
// trace and the gamma trace) and their batched proof. As with RingRoot, §6
// leaves the ring proof's exact byte framing to the implementation; this is
// this module's own convention, sized for DomainSize's fixed opening counts
// (14 at ζ, 5 at ζ/ω, 4 at the trace terminus) rather than a
// general-purpose variable-length format.
func EncodeRingProof(s *vrf.Suite, proof *RingProof) []byte {
	pedersenLen := 4*s.PointSize + 64
	out := make([]byte, 0, pedersenLen+12*48+32+14*32+(48+14*32)+5*32+(48+5*32)+4*32+(48+4*32))

	pedersen := vrf.EncodePedersenProof(s, proof.Pedersen)
	out = append(out, pedersen...)

	for _, d := range []kzg.Digest{
		proof.CommitAccX, proof.CommitAccY,
		proof.CommitDblX, proof.CommitDblY,
		proof.CommitBit, proof.CommitSel, proof.CommitRunSel,
		proof.CommitGamAccX, proof.CommitGamAccY,
		proof.CommitGamDblX, proof.CommitGamDblY,
		proof.CommitQuotient,
	} {
		out = appendCommit(out, d)
	}

	out = appendFE(out, proof.Zeta)
	for _, e := range []fr.Element{
		proof.EvalAccX, proof.EvalAccY,
		proof.EvalDblX, proof.EvalDblY,
		proof.EvalBit, proof.EvalSel, proof.EvalRunSel,
		proof.EvalGamAccX, proof.EvalGamAccY,
		proof.EvalGamDblX, proof.EvalGamDblY,
		proof.EvalX, proof.EvalY,
		proof.EvalQuotient,
	} {
		out = appendFE(out, e)
	}
	out = appendBatchProof(out, proof.BatchProof)

	for _, e := range []fr.Element{
		proof.EvalAccXPrev, proof.EvalAccYPrev, proof.EvalRunSelPrev,
		proof.EvalGamAccXPrev, proof.EvalGamAccYPrev,
	} {
		out = appendFE(out, e)
	}
	out = appendBatchProof(out, proof.ShiftProof)

	for _, e := range []fr.Element{
		proof.EvalFinalAccX, proof.EvalFinalAccY,
		proof.EvalGamFinalAccX, proof.EvalGamFinalAccY,
	} {
		out = appendFE(out, e)
	}
	out = appendBatchProof(out, proof.FinalProof)

	return out
}

// DecodeRingProof parses the wire format EncodeRingProof produces.
func DecodeRingProof(s *vrf.Suite, data []byte) (*RingProof, error) {
	pedersenLen := 4*s.PointSize + 64
	if len(data) < pedersenLen {
		return nil, ErrInvalidEncoding
	}
	pedersen, err := vrf.DecodePedersenProof(s, data[:pedersenLen])
	if err != nil {
		return nil, ErrInvalidEncoding
	}

	c := &cursor{data: data, off: pedersenLen}

	proof := &RingProof{Pedersen: pedersen}
	proof.CommitAccX = c.commit()
	proof.CommitAccY = c.commit()
	proof.CommitDblX = c.commit()
	proof.CommitDblY = c.commit()
	proof.CommitBit = c.commit()
	proof.CommitSel = c.commit()
	proof.CommitRunSel = c.commit()
	proof.CommitGamAccX = c.commit()
	proof.CommitGamAccY = c.commit()
	proof.CommitGamDblX = c.commit()
	proof.CommitGamDblY = c.commit()
	proof.CommitQuotient = c.commit()

	proof.Zeta = c.fe()
	proof.EvalAccX = c.fe()
	proof.EvalAccY = c.fe()
	proof.EvalDblX = c.fe()
	proof.EvalDblY = c.fe()
	proof.EvalBit = c.fe()
	proof.EvalSel = c.fe()
	proof.EvalRunSel = c.fe()
	proof.EvalGamAccX = c.fe()
	proof.EvalGamAccY = c.fe()
	proof.EvalGamDblX = c.fe()
	proof.EvalGamDblY = c.fe()
	proof.EvalX = c.fe()
	proof.EvalY = c.fe()
	proof.EvalQuotient = c.fe()
	proof.BatchProof = c.batchProof(14)

	proof.EvalAccXPrev = c.fe()
	proof.EvalAccYPrev = c.fe()
	proof.EvalRunSelPrev = c.fe()
	proof.EvalGamAccXPrev = c.fe()
	proof.EvalGamAccYPrev = c.fe()
	proof.ShiftProof = c.batchProof(5)

	proof.EvalFinalAccX = c.fe()
	proof.EvalFinalAccY = c.fe()
	proof.EvalGamFinalAccX = c.fe()
	proof.EvalGamFinalAccY = c.fe()
	proof.FinalProof = c.batchProof(4)

	if c.err != nil {
		return nil, c.err
	}
	return proof, nil
}
