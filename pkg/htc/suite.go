package htc

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Encoding selects between the random-oracle (indifferentiable) and
// non-uniform encode_to_curve variants of RFC 9380 §3.
type Encoding int

const (
	// RO combines two independently mapped field elements (hash_to_curve);
	// indifferentiable from a random oracle, used whenever a suite's
	// output must resist the adversarial-input attacks §8 of RFC 9380
	// discusses.
	RO Encoding = iota
	// NU maps a single field element (encode_to_curve); faster, but not
	// indifferentiable -- only used where the spec explicitly calls for
	// the non-uniform variant.
	NU
)

// ExpandFn is one of ExpandMessageXMD or ExpandMessageXOF, curried over its
// hash/XOF choice, used by HashToCurveSuite to turn (msg, dst) into enough
// uniform bytes for hash_to_field.
type ExpandFn func(msg, dst []byte, lenInBytes int) ([]byte, error)

// XMDSha256 returns an ExpandFn using expand_message_xmd with SHA-256.
func XMDSha256() ExpandFn {
	return func(msg, dst []byte, lenInBytes int) ([]byte, error) {
		return ExpandMessageXMD(func() hash.Hash { return sha256.New() }, 32, 64, msg, dst, lenInBytes)
	}
}

// XMDSha512 returns an ExpandFn using expand_message_xmd with SHA-512.
func XMDSha512() ExpandFn {
	return func(msg, dst []byte, lenInBytes int) ([]byte, error) {
		return ExpandMessageXMD(func() hash.Hash { return sha512.New() }, 64, 128, msg, dst, lenInBytes)
	}
}

// XOFShake128 returns an ExpandFn using expand_message_xof with SHAKE128.
func XOFShake128(k int) ExpandFn {
	return func(msg, dst []byte, lenInBytes int) ([]byte, error) {
		return ExpandMessageXOF(Shake128, k, msg, dst, lenInBytes)
	}
}

// XOFShake256 returns an ExpandFn using expand_message_xof with SHAKE256.
func XOFShake256(k int) ExpandFn {
	return func(msg, dst []byte, lenInBytes int) ([]byte, error) {
		return ExpandMessageXOF(Shake256, k, msg, dst, lenInBytes)
	}
}
