package htc

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
)

// ErrTAIExhausted is returned when try-and-increment fails to find a valid
// curve point within the bounded retry budget. Per the design notes, this
// maps to the library's InternalInvariant error kind: it should not happen
// for a well-formed suite and indicates something has gone structurally
// wrong rather than a normal "no point for this input" outcome.
var ErrTAIExhausted = errors.New("htc: try-and-increment exceeded retry budget")

// maxTAIAttempts bounds the try-and-increment loop. 256 matches RFC 9381's
// own ECVRF_hash_to_curve_try_and_increment bound and gives a failure
// probability on the order of 2^-256 for any single VRF input.
const maxTAIAttempts = 256

// TryAndIncrement implements the RFC 9381 §5.4.1.1 ECVRF_hash_to_curve_try_
// and_increment strategy for a twisted Edwards suite: hash
// (suiteString || 0x01 || pk || alpha || ctr || 0x00) and attempt to decode
// the low 32 bytes as a compressed point, incrementing ctr on failure.
//
// decode is the suite's point-decoding function (e.g. bandersnatch.Decode);
// cofactorClear multiplies by the curve's cofactor to land in the prime-
// order subgroup.
func TryAndIncrement(suiteString, pk, alpha []byte, decode func([32]byte) (*curveset.TEPoint, error), cofactorClear func(*curveset.TEPoint) *curveset.TEPoint) (*curveset.TEPoint, error) {
	for ctr := 0; ctr < maxTAIAttempts; ctr++ {
		h := sha256.New()
		h.Write(suiteString)
		h.Write([]byte{0x01})
		h.Write(pk)
		h.Write(alpha)
		var ctrBuf [4]byte
		binary.BigEndian.PutUint32(ctrBuf[:], uint32(ctr))
		h.Write(ctrBuf[3:]) // RFC 9381 uses a single-byte ctr for suites with ctr < 256
		h.Write([]byte{0x00})
		sum := h.Sum(nil)

		var candidate [32]byte
		copy(candidate[:], sum[:32])

		pt, err := decode(candidate)
		if err != nil {
			continue
		}
		return cofactorClear(pt), nil
	}
	return nil, ErrTAIExhausted
}
