package vrf

import (
	"crypto/rand"
	"math/big"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
	"github.com/bandersnatch-vrf/ringvrf/pkg/zeroize"
)

// PedersenProof is the blinded VRF proof of §4.E: (gamma, pk_blind, R, Ok, s,
// sb). Wire size is 192 bytes on Bandersnatch (6 * 32), per §6.
type PedersenProof struct {
	Gamma   curveset.Point
	PkBlind curveset.Point
	R       curveset.Point
	Ok      curveset.Point
	S       *big.Int
	Sb      *big.Int
}

// PedersenProve implements §4.E: the signer's public key is never revealed,
// only pk_blind = sk*G + b*B for a fresh random blinding b and a second,
// fixed, independent generator B (typically hash-to-curve of a distinct DST,
// see pkg/suite).
func PedersenProve(s *Suite, b2 curveset.Point, sk *zeroize.Bytes32, alpha, ad, salt []byte) (*PedersenProof, error) {
	order := s.Curve.Order()

	h, err := s.EncodeToCurve(alpha, salt)
	if err != nil {
		return nil, err
	}

	var skInt big.Int
	sk.Use(func(buf *[32]byte) { skInt.SetBytes(buf[:]) })

	blinding, err := rand.Int(rand.Reader, order)
	if err != nil {
		return nil, err
	}

	gamma := s.Curve.ScalarMulSecret(h, &skInt)
	pkBlind := s.Curve.Add(
		s.Curve.ScalarMulSecret(s.Curve.Generator(), &skInt),
		s.Curve.ScalarMulSecret(b2, blinding),
	)

	k, err := rand.Int(rand.Reader, order)
	if err != nil {
		return nil, err
	}
	kb, err := rand.Int(rand.Reader, order)
	if err != nil {
		return nil, err
	}

	r := s.Curve.Add(
		s.Curve.ScalarMulSecret(s.Curve.Generator(), k),
		s.Curve.ScalarMulSecret(b2, kb),
	)
	ok := s.Curve.ScalarMulSecret(h, k)

	c := challengeGeneration(s, []curveset.Point{h, gamma, pkBlind, r, ok}, ad, order)

	respS := new(big.Int).Add(k, new(big.Int).Mul(c, &skInt))
	respS.Mod(respS, order)
	respSb := new(big.Int).Add(kb, new(big.Int).Mul(c, blinding))
	respSb.Mod(respSb, order)

	logger.Debug("pedersen prove", "alpha_len", len(alpha), "ad_len", len(ad))

	return &PedersenProof{
		Gamma:   gamma,
		PkBlind: pkBlind,
		R:       r,
		Ok:      ok,
		S:       respS,
		Sb:      respSb,
	}, nil
}

// PedersenVerify implements §4.E's two-equation check:
//
//	s*G + sb*B == R + c*pk_blind
//	s*H        == Ok + c*gamma
func PedersenVerify(s *Suite, b2 curveset.Point, alpha, ad, salt []byte, proof *PedersenProof) error {
	order := s.Curve.Order()

	h, err := s.EncodeToCurve(alpha, salt)
	if err != nil {
		return err
	}

	c := challengeGeneration(s, []curveset.Point{h, proof.Gamma, proof.PkBlind, proof.R, proof.Ok}, ad, order)

	lhs1 := s.Curve.Add(
		s.Curve.ScalarMulPublic(s.Curve.Generator(), proof.S),
		s.Curve.ScalarMulPublic(b2, proof.Sb),
	)
	rhs1 := s.Curve.Add(proof.R, s.Curve.ScalarMulPublic(proof.PkBlind, c))
	if !s.Curve.Equal(lhs1, rhs1) {
		logger.Debug("pedersen verify failed", "reason", "equation1_mismatch")
		return ErrInvalidProof
	}

	lhs2 := s.Curve.ScalarMulPublic(h, proof.S)
	rhs2 := s.Curve.Add(proof.Ok, s.Curve.ScalarMulPublic(proof.Gamma, c))
	if !s.Curve.Equal(lhs2, rhs2) {
		logger.Debug("pedersen verify failed", "reason", "equation2_mismatch")
		return ErrInvalidProof
	}

	return nil
}

// EncodePedersenProof serializes a proof as gamma ‖ pk_blind ‖ R ‖ Ok ‖ s ‖
// sb, each point PointSize bytes, the two scalars 32 bytes, generalizing
// §6's fixed 192-byte Bandersnatch wire format to any suite's point size.
func EncodePedersenProof(s *Suite, proof *PedersenProof) []byte {
	ps := s.PointSize
	out := make([]byte, 4*ps+64)
	fields := []curveset.Point{proof.Gamma, proof.PkBlind, proof.R, proof.Ok}
	for i, p := range fields {
		copy(out[i*ps:(i+1)*ps], s.Encode(p))
	}
	sEnc := scalarToBytes32(proof.S)
	copy(out[4*ps:4*ps+32], sEnc[:])
	sbEnc := scalarToBytes32(proof.Sb)
	copy(out[4*ps+32:4*ps+64], sbEnc[:])
	return out
}

// DecodePedersenProof parses the wire format EncodePedersenProof produces
// back into a PedersenProof.
func DecodePedersenProof(s *Suite, data []byte) (*PedersenProof, error) {
	ps := s.PointSize
	if len(data) != 4*ps+64 {
		return nil, ErrInvalidEncoding
	}
	decodeField := func(i int) (curveset.Point, error) {
		return s.Decode(data[i*ps : (i+1)*ps])
	}
	gamma, err := decodeField(0)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	pkBlind, err := decodeField(1)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	r, err := decodeField(2)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	ok, err := decodeField(3)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	respS := new(big.Int).SetBytes(data[4*ps : 4*ps+32])
	respSb := new(big.Int).SetBytes(data[4*ps+32 : 4*ps+64])
	return &PedersenProof{Gamma: gamma, PkBlind: pkBlind, R: r, Ok: ok, S: respS, Sb: respSb}, nil
}
