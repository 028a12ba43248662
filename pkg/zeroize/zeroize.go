// Package zeroize provides a wrapper for secret scalar material that makes
// it hard to accidentally log, copy, or leave lying around in memory after
// use. It does not provide hardware-backed protection; it only removes the
// easy footguns (fmt.Stringer/slog leaking bytes, lingering copies after the
// caller is done with a secret).
package zeroize

import "fmt"

// Bytes32 holds a 32-byte secret value (a VRF secret scalar or seed). The
// zero value is an all-zero secret and is a valid, inert starting point.
type Bytes32 struct {
	b [32]byte
}

// NewBytes32 copies data into a new Bytes32. data must be exactly 32 bytes.
func NewBytes32(data []byte) (*Bytes32, error) {
	if len(data) != 32 {
		return nil, fmt.Errorf("zeroize: want 32 bytes, got %d", len(data))
	}
	z := &Bytes32{}
	copy(z.b[:], data)
	return z, nil
}

// Bytes returns a copy of the underlying 32 bytes. Callers that need the
// secret only transiently should prefer Use.
func (z *Bytes32) Bytes() [32]byte {
	return z.b
}

// Use invokes fn with the underlying bytes without copying them out, then
// returns. This keeps a secret from needing a second owned copy just to
// pass it to one consumer.
func (z *Bytes32) Use(fn func(b *[32]byte)) {
	fn(&z.b)
}

// Zero overwrites the secret with zeros. Callers should call Zero as soon
// as a secret is no longer needed; it is always safe to call more than
// once.
func (z *Bytes32) Zero() {
	for i := range z.b {
		z.b[i] = 0
	}
}

// String deliberately does not reveal the secret; it exists so that a
// Bytes32 accidentally passed to a logger or fmt.Sprintf does not leak.
func (z *Bytes32) String() string {
	return "zeroize.Bytes32(REDACTED)"
}

// GoString mirrors String for %#v formatting.
func (z *Bytes32) GoString() string {
	return z.String()
}
