package vrf_test

import (
	"bytes"
	"testing"

	"github.com/bandersnatch-vrf/ringvrf/pkg/suite"
	"github.com/bandersnatch-vrf/ringvrf/pkg/vrf"
)

func TestPedersenProveVerifyRoundTrip(t *testing.T) {
	sk := mustSK(t, "3d6406500d4009fdf2604546093665911e753f2213570a29521fd88bc30ede18")
	s := suite.Bandersnatch()
	b2 := suite.BandersnatchSecondGenerator()

	proof, err := vrf.PedersenProve(s, b2, sk, []byte("alpha"), []byte("ad"), nil)
	if err != nil {
		t.Fatalf("PedersenProve: %v", err)
	}

	if err := vrf.PedersenVerify(s, b2, []byte("alpha"), []byte("ad"), nil, proof); err != nil {
		t.Fatalf("PedersenVerify: %v", err)
	}
}

func TestPedersenFreshBlindingSameGamma(t *testing.T) {
	sk := mustSK(t, "3d6406500d4009fdf2604546093665911e753f2213570a29521fd88bc30ede18")
	s := suite.Bandersnatch()
	b2 := suite.BandersnatchSecondGenerator()

	p1, err := vrf.PedersenProve(s, b2, sk, []byte("x"), nil, nil)
	if err != nil {
		t.Fatalf("PedersenProve 1: %v", err)
	}
	p2, err := vrf.PedersenProve(s, b2, sk, []byte("x"), nil, nil)
	if err != nil {
		t.Fatalf("PedersenProve 2: %v", err)
	}

	if bytes.Equal(s.Encode(p1.PkBlind), s.Encode(p2.PkBlind)) {
		t.Fatal("expected fresh blinding to change pk_blind across calls")
	}
	if !bytes.Equal(s.Encode(p1.Gamma), s.Encode(p2.Gamma)) {
		t.Fatal("expected both proofs to decode the same gamma")
	}

	if err := vrf.PedersenVerify(s, b2, []byte("x"), nil, nil, p1); err != nil {
		t.Fatalf("verify p1: %v", err)
	}
	if err := vrf.PedersenVerify(s, b2, []byte("x"), nil, nil, p2); err != nil {
		t.Fatalf("verify p2: %v", err)
	}
}

func TestPedersenEncodeProofSize(t *testing.T) {
	sk := mustSK(t, "3d6406500d4009fdf2604546093665911e753f2213570a29521fd88bc30ede18")
	s := suite.Bandersnatch()
	b2 := suite.BandersnatchSecondGenerator()

	proof, err := vrf.PedersenProve(s, b2, sk, nil, nil, nil)
	if err != nil {
		t.Fatalf("PedersenProve: %v", err)
	}
	encoded := vrf.EncodePedersenProof(s, proof)
	if len(encoded) != 192 {
		t.Fatalf("expected 192-byte proof, got %d", len(encoded))
	}

	decoded, err := vrf.DecodePedersenProof(s, encoded)
	if err != nil {
		t.Fatalf("DecodePedersenProof: %v", err)
	}
	if err := vrf.PedersenVerify(s, b2, nil, nil, nil, decoded); err != nil {
		t.Fatalf("PedersenVerify after round trip: %v", err)
	}
}
