package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MSMBackend is a multi-scalar-multiplication and pairing capability with
// two implementations: the portable default routes through gnark-crypto's
// own G1 MSM and pairing, while a caller who has built with the "blst" tag
// can use supranational/blst's cgo-backed G1 MSM instead. The interface
// covers G1 MSM and the pairing check only, and the SRS, commit, open and
// verify functions in kzg.go call gnark-crypto's kzg package directly
// rather than through this interface. This mirrors the teacher's own split between a portable
// backend and an optional blst-accelerated one (bls_blst_adapter.go).
type MSMBackend interface {
	Name() string
	MSMG1(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Jac, error)
	PairingCheck(g1 []bls12381.G1Affine, g2 []bls12381.G2Affine) (bool, error)
}

// PortableBackend is the default, pure-Go MSMBackend, used whenever the
// caller has not opted into a cgo-backed alternative.
type PortableBackend struct{}

func (PortableBackend) Name() string { return "gnark-crypto-portable" }

func (PortableBackend) MSMG1(points []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Jac, error) {
	var result bls12381.G1Jac
	if _, err := result.MultiExp(points, scalars, ecConfig); err != nil {
		return bls12381.G1Jac{}, err
	}
	return result, nil
}

func (PortableBackend) PairingCheck(g1 []bls12381.G1Affine, g2 []bls12381.G2Affine) (bool, error) {
	return bls12381.PairingCheck(g1, g2)
}

var ecConfig = func() ecMultiExpConfig {
	return ecMultiExpConfig{}
}()

// ecMultiExpConfig aliases gnark-crypto's own MultiExpConfig so this file
// does not need a second import alias at every call site.
type ecMultiExpConfig = bls12381.MultiExpConfig
