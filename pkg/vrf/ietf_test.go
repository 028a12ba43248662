package vrf_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/bandersnatch-vrf/ringvrf/pkg/suite"
	"github.com/bandersnatch-vrf/ringvrf/pkg/vrf"
	"github.com/bandersnatch-vrf/ringvrf/pkg/zeroize"
)

func mustSK(t *testing.T, hex string) *zeroize.Bytes32 {
	t.Helper()
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		t.Fatalf("bad hex: %s", hex)
	}
	b := v.Bytes()
	var buf [32]byte
	copy(buf[32-len(b):], b)
	sk, err := zeroize.NewBytes32(buf[:])
	if err != nil {
		t.Fatalf("NewBytes32: %v", err)
	}
	return sk
}

func TestIETFProveVerifyRoundTrip(t *testing.T) {
	sk := mustSK(t, "3d6406500d4009fdf2604546093665911e753f2213570a29521fd88bc30ede18")
	s := suite.Bandersnatch()

	var skInt big.Int
	sk.Use(func(b *[32]byte) { skInt.SetBytes(b[:]) })
	pk := s.Curve.ScalarMulPublic(s.Curve.Generator(), &skInt)

	alpha := []byte{}
	ad := []byte{}

	proof, err := vrf.IETFProve(s, sk, pk, alpha, ad, nil)
	if err != nil {
		t.Fatalf("IETFProve: %v", err)
	}

	if err := vrf.IETFVerify(s, pk, alpha, ad, nil, proof); err != nil {
		t.Fatalf("IETFVerify: %v", err)
	}
}

func TestIETFVerifyRejectsFlippedByte(t *testing.T) {
	sk := mustSK(t, "3d6406500d4009fdf2604546093665911e753f2213570a29521fd88bc30ede18")
	s := suite.Bandersnatch()

	var skInt big.Int
	sk.Use(func(b *[32]byte) { skInt.SetBytes(b[:]) })
	pk := s.Curve.ScalarMulPublic(s.Curve.Generator(), &skInt)

	proof, err := vrf.IETFProve(s, sk, pk, nil, nil, nil)
	if err != nil {
		t.Fatalf("IETFProve: %v", err)
	}

	encoded := vrf.EncodeIETFProof(s, proof)
	encoded[50] ^= 0xff

	decoded, err := vrf.DecodeIETFProof(s, encoded)
	if err != nil {
		t.Fatalf("DecodeIETFProof: %v", err)
	}

	if err := vrf.IETFVerify(s, pk, nil, nil, nil, decoded); err == nil {
		t.Fatal("expected verification failure for flipped proof byte")
	}
}

func TestIETFProveDeterministicGamma(t *testing.T) {
	sk := mustSK(t, "3d6406500d4009fdf2604546093665911e753f2213570a29521fd88bc30ede18")
	s := suite.Bandersnatch()

	var skInt big.Int
	sk.Use(func(b *[32]byte) { skInt.SetBytes(b[:]) })
	pk := s.Curve.ScalarMulPublic(s.Curve.Generator(), &skInt)

	alpha := []byte("hello")

	p1, err := vrf.IETFProve(s, sk, pk, alpha, nil, nil)
	if err != nil {
		t.Fatalf("IETFProve 1: %v", err)
	}
	p2, err := vrf.IETFProve(s, sk, pk, alpha, nil, nil)
	if err != nil {
		t.Fatalf("IETFProve 2: %v", err)
	}

	g1 := s.Encode(p1.Gamma)
	g2 := s.Encode(p2.Gamma)
	if !bytes.Equal(g1, g2) {
		t.Fatal("expected identical gamma across repeated prove calls")
	}
}

func TestIETFEncodeProofSize(t *testing.T) {
	sk := mustSK(t, "3d6406500d4009fdf2604546093665911e753f2213570a29521fd88bc30ede18")
	s := suite.Bandersnatch()
	var skInt big.Int
	sk.Use(func(b *[32]byte) { skInt.SetBytes(b[:]) })
	pk := s.Curve.ScalarMulPublic(s.Curve.Generator(), &skInt)

	proof, err := vrf.IETFProve(s, sk, pk, nil, nil, nil)
	if err != nil {
		t.Fatalf("IETFProve: %v", err)
	}
	encoded := vrf.EncodeIETFProof(s, proof)
	if len(encoded) != 96 {
		t.Fatalf("expected 96-byte proof, got %d", len(encoded))
	}
}
