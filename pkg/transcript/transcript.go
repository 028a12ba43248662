// Package transcript provides a small SHA-256 Fiat-Shamir transcript,
// generalized from the teacher's ipaTranscript (pkg/crypto/ipa.go) to accept
// arbitrary byte-encodable points and scalars rather than a single
// hard-coded Banderwagon type. Both the Pedersen VRF blinding challenge and
// the ring arithmetization's constraint-combination challenges are derived
// through this type.
package transcript

import (
	"crypto/sha256"
	"math/big"
)

// Transcript accumulates domain-separated protocol messages and derives
// challenge scalars from them.
type Transcript struct {
	state []byte
}

// New starts a transcript seeded with a label, domain-separating one
// protocol's transcript from another's (e.g. "ietf_vrf" vs "ring_vrf").
func New(label string) *Transcript {
	h := sha256.Sum256([]byte(label))
	return &Transcript{state: h[:]}
}

// AppendBytes folds an arbitrary byte string (a serialized point, a wire
// value) into the transcript state.
func (t *Transcript) AppendBytes(b []byte) {
	h := sha256.New()
	h.Write(t.state)
	h.Write(b)
	t.state = h.Sum(nil)
}

// AppendScalar folds a scalar, encoded as 32 bytes big-endian, into the
// transcript state.
func (t *Transcript) AppendScalar(s *big.Int) {
	var buf [32]byte
	b := s.Bytes()
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(buf[32-len(b):], b)
	t.AppendBytes(buf[:])
}

// ChallengeScalar derives a challenge reduced modulo modulus, and advances
// the transcript state so a subsequent challenge differs from this one.
func (t *Transcript) ChallengeScalar(modulus *big.Int) *big.Int {
	h := sha256.New()
	h.Write(t.state)
	h.Write([]byte("challenge"))
	digest := h.Sum(nil)
	t.state = digest

	c := new(big.Int).SetBytes(digest)
	c.Mod(c, modulus)
	if c.Sign() == 0 {
		c.SetInt64(1)
	}
	return c
}

// ChallengeBytes derives n raw challenge bytes without reducing modulo any
// field, used for the IETF/Pedersen VRF's challenge and output digests (the
// nonce is drawn with ChallengeScalar).
func (t *Transcript) ChallengeBytes(n int) []byte {
	h := sha256.New()
	h.Write(t.state)
	h.Write([]byte("challenge_bytes"))
	digest := h.Sum(nil)
	t.state = digest

	out := make([]byte, 0, n)
	counter := byte(0)
	for len(out) < n {
		h2 := sha256.New()
		h2.Write(digest)
		h2.Write([]byte{counter})
		out = append(out, h2.Sum(nil)...)
		counter++
	}
	return out[:n]
}
