//go:build blst

// blst-accelerated MSMBackend, grounded on the teacher's bls_blst_adapter.go
// build-tag pattern: the portable default ships with no cgo dependency, and
// this file only compiles in when a caller opts in with -tags blst.
//
// Build with: go build -tags blst
package kzg

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	blst "github.com/supranational/blst/bindings/go"
)

var errBlstMSMFailed = errors.New("kzg: blst MSM failed")

// BlstBackend implements MSMBackend using supranational/blst's assembly-
// optimized MSM; its pairing check is gnark-crypto's.
type BlstBackend struct{}

func (BlstBackend) Name() string { return "blst" }

func (BlstBackend) MSMG1(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Jac, error) {
	if len(points) != len(scalars) {
		return bls12381.G1Jac{}, errBlstMSMFailed
	}

	blstPoints := make([]*blst.P1Affine, len(points))
	blstScalars := make([][]byte, len(scalars))
	for i := range points {
		affine := points[i]
		encoded := affine.Bytes()
		var p blst.P1Affine
		if p.Deserialize(encoded[:]) == nil {
			return bls12381.G1Jac{}, errBlstMSMFailed
		}
		blstPoints[i] = &p

		var sBig big.Int
		scalars[i].BigInt(&sBig)
		b := sBig.Bytes()
		var buf [32]byte
		copy(buf[32-len(b):], b)
		blstScalars[i] = buf[:]
	}

	acc := new(blst.P1).FromAffine(blstPoints[0])
	acc.Mult(blstScalars[0])
	for i := 1; i < len(blstPoints); i++ {
		term := new(blst.P1).FromAffine(blstPoints[i])
		term.Mult(blstScalars[i])
		acc.Add(term)
	}

	var out bls12381.G1Affine
	if _, err := out.SetBytes(acc.ToAffine().Serialize()); err != nil {
		return bls12381.G1Jac{}, errBlstMSMFailed
	}
	var jac bls12381.G1Jac
	jac.FromAffine(&out)
	return jac, nil
}

func (BlstBackend) PairingCheck(g1 []bls12381.G1Affine, g2 []bls12381.G2Affine) (bool, error) {
	// The pairing check delegates to gnark-crypto; no blst routine or
	// point conversion is involved here.
	return bls12381.PairingCheck(g1, g2)
}
