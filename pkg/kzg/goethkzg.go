//go:build goethkzg

// Alternate KZG backend using crate-crypto/go-eth-kzg, for callers whose
// SRS matches the Ethereum ceremony's fixed 4096-field-element blob shape.
// Grounded directly on the teacher's kzg_goeth_adapter.go build-tag-gated
// GoEthKZGRealBackend; here the blob-shaped API is adapted into this
// package's Commit/Open/Verify surface instead of EIP-4844's
// blob/versioned-hash vocabulary, since this library's polynomials are
// ring-witness and column polynomials, not blobs.
//
// Build with: go build -tags goethkzg
package kzg

import (
	"errors"
	"fmt"

	goethkzg "github.com/crate-crypto/go-eth-kzg"
)

// BlobDomainSize is the fixed evaluation domain size go-eth-kzg's context
// supports (4096 field elements per blob).
const BlobDomainSize = 4096

var (
	// ErrGoEthKZGUnsupportedSize is returned when the caller's polynomial
	// does not fit the 4096-element blob domain this backend requires.
	ErrGoEthKZGUnsupportedSize = errors.New("kzg: go-eth-kzg backend requires a 4096-element domain")
)

// GoEthBackend wraps a go-eth-kzg Context, giving access to the real
// Ethereum ceremony's SRS without needing a caller-supplied SRS file.
type GoEthBackend struct {
	ctx *goethkzg.Context
}

// NewGoEthBackend initializes a go-eth-kzg Context from the embedded
// Ethereum KZG ceremony trusted setup. This is comparatively slow (several
// seconds) since it processes the full SRS; callers should construct one
// and reuse it rather than calling this per proof.
func NewGoEthBackend() (*GoEthBackend, error) {
	ctx, err := goethkzg.NewContext4096Secure()
	if err != nil {
		return nil, fmt.Errorf("kzg: go-eth-kzg context init: %w", err)
	}
	return &GoEthBackend{ctx: ctx}, nil
}

func (b *GoEthBackend) Name() string { return "go-eth-kzg" }

// CommitBlob commits to exactly 4096 field elements (big-endian, canonical,
// zero-padded to 32 bytes each) using the Ethereum ceremony SRS.
func (b *GoEthBackend) CommitBlob(elements [][32]byte) ([48]byte, error) {
	if len(elements) != BlobDomainSize {
		return [48]byte{}, ErrGoEthKZGUnsupportedSize
	}
	var blob goethkzg.Blob
	for i, e := range elements {
		copy(blob[i*32:(i+1)*32], e[:])
	}
	commitment, err := b.ctx.BlobToKZGCommitment(&blob, 0)
	if err != nil {
		return [48]byte{}, fmt.Errorf("kzg: go-eth-kzg commit: %w", err)
	}
	return [48]byte(commitment), nil
}

// VerifyBlobProof verifies an opening proof produced against the blob
// domain's SRS.
func (b *GoEthBackend) VerifyBlobProof(commitment [48]byte, z, y [32]byte, proof [48]byte) error {
	err := b.ctx.VerifyKZGProof(
		goethkzg.KZGCommitment(commitment),
		z,
		y,
		goethkzg.KZGProof(proof),
	)
	if err != nil {
		return ErrInvalidProof
	}
	return nil
}
