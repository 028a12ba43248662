package ring_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/curveset"
	"github.com/bandersnatch-vrf/ringvrf/pkg/kzg"
	"github.com/bandersnatch-vrf/ringvrf/pkg/ring"
	"github.com/bandersnatch-vrf/ringvrf/pkg/suite"
	"github.com/bandersnatch-vrf/ringvrf/pkg/vrf"
	"github.com/bandersnatch-vrf/ringvrf/pkg/zeroize"
)

// testTau is a fixed, known "toxic waste" value for an insecure test-only
// SRS (kzg.NewTestSRS): fine for exercising the protocol, never for a real
// ring root.
func testTau(t *testing.T) *fr.Element {
	t.Helper()
	var tau fr.Element
	tau.SetUint64(424242424242)
	return &tau
}

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

// buildTestRing derives n distinct keypairs (by hashing an index into a
// scalar) and returns their secret keys, public keys (as curveset.Point),
// and TE-point ring members for ConstructRingRoot/Prove.
func buildTestRing(t *testing.T, s *vrf.Suite, n int) ([]*zeroize.Bytes32, []curveset.Point, []*curveset.TEPoint) {
	t.Helper()
	sks := make([]*zeroize.Bytes32, n)
	pks := make([]curveset.Point, n)
	members := make([]*curveset.TEPoint, n)
	for i := 0; i < n; i++ {
		var buf [32]byte
		buf[31] = byte(i + 1)
		buf[30] = byte((i + 1) >> 8)
		buf[0] = 0x01 // keep well below the subgroup order
		sk, err := zeroize.NewBytes32(buf[:])
		if err != nil {
			t.Fatalf("NewBytes32(%d): %v", i, err)
		}
		var skInt big.Int
		sk.Use(func(b *[32]byte) { skInt.SetBytes(b[:]) })
		pk := s.Curve.ScalarMulPublic(s.Curve.Generator(), &skInt)

		sks[i] = sk
		pks[i] = pk
		members[i] = pk.(*curveset.TEPoint)
	}
	return sks, pks, members
}

func TestRingVRFProveVerifyRoundTrip(t *testing.T) {
	rp := ring.DefaultRingParams
	s := suite.Bandersnatch()
	srs, err := kzg.NewTestSRS(rp.DomainSize, testTau(t))
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	sks, pks, ringPks := buildTestRing(t, s, 8)

	root, err := ring.ConstructRingRoot(rp, ringPks, srs)
	if err != nil {
		t.Fatalf("ConstructRingRoot: %v", err)
	}

	const proverIdx = 3
	alpha := []byte("ring vrf input")
	ad := []byte("extra data")

	proof, err := ring.Prove(rp, alpha, ad, sks[proverIdx], pks[proverIdx], ringPks, root, srs)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := ring.Verify(rp, alpha, ad, root, proof, srs); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

// TestRingVRFProveVerifyRoundTripLargeRing exercises the N=2048 domain
// (ring.LargeRingParams), large enough to seat a thousand-plus member ring,
// confirming the arithmetization generalizes beyond the default domain.
func TestRingVRFProveVerifyRoundTripLargeRing(t *testing.T) {
	rp := ring.LargeRingParams
	s := suite.Bandersnatch()
	srs, err := kzg.NewTestSRS(rp.DomainSize, testTau(t))
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	sks, pks, ringPks := buildTestRing(t, s, 1023)

	root, err := ring.ConstructRingRoot(rp, ringPks, srs)
	if err != nil {
		t.Fatalf("ConstructRingRoot: %v", err)
	}

	const proverIdx = 511
	alpha := []byte("large ring vrf input")
	ad := []byte("extra data")

	proof, err := ring.Prove(rp, alpha, ad, sks[proverIdx], pks[proverIdx], ringPks, root, srs)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := ring.Verify(rp, alpha, ad, root, proof, srs); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestRingVRFProveRejectsKeyNotInRing(t *testing.T) {
	rp := ring.DefaultRingParams
	s := suite.Bandersnatch()
	srs, err := kzg.NewTestSRS(rp.DomainSize, testTau(t))
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	_, _, ringPks := buildTestRing(t, s, 4)
	root, err := ring.ConstructRingRoot(rp, ringPks, srs)
	if err != nil {
		t.Fatalf("ConstructRingRoot: %v", err)
	}

	outsiderSK := mustSK(t, "02")
	var skInt big.Int
	outsiderSK.Use(func(b *[32]byte) { skInt.SetBytes(b[:]) })
	outsiderPK := s.Curve.ScalarMulPublic(s.Curve.Generator(), &skInt)

	_, err = ring.Prove(rp, []byte("a"), nil, outsiderSK, outsiderPK, ringPks, root, srs)
	if err != ring.ErrKeyNotInRing {
		t.Fatalf("expected ErrKeyNotInRing, got %v", err)
	}
}

func TestRingVRFVerifyRejectsMismatchedAlpha(t *testing.T) {
	rp := ring.DefaultRingParams
	s := suite.Bandersnatch()
	srs, err := kzg.NewTestSRS(rp.DomainSize, testTau(t))
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	sks, pks, ringPks := buildTestRing(t, s, 8)
	root, err := ring.ConstructRingRoot(rp, ringPks, srs)
	if err != nil {
		t.Fatalf("ConstructRingRoot: %v", err)
	}

	alpha := []byte("alpha")
	proof, err := ring.Prove(rp, alpha, nil, sks[0], pks[0], ringPks, root, srs)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	// A proof produced under a different input string must not verify
	// against the original alpha: the Pedersen component's challenge binds
	// alpha, so swapping it must fail without touching the ring argument.
	if err := ring.Verify(rp, []byte("different alpha"), nil, root, proof, srs); err == nil {
		t.Fatal("expected verification failure for mismatched alpha")
	}
}

func TestRingVRFVerifyRejectsWrongRoot(t *testing.T) {
	rp := ring.DefaultRingParams
	s := suite.Bandersnatch()
	srs, err := kzg.NewTestSRS(rp.DomainSize, testTau(t))
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	sks, pks, ringA := buildTestRing(t, s, 8)
	rootA, err := ring.ConstructRingRoot(rp, ringA, srs)
	if err != nil {
		t.Fatalf("ConstructRingRoot A: %v", err)
	}

	_, _, ringB := buildTestRing(t, s, 9)
	rootB, err := ring.ConstructRingRoot(rp, ringB, srs)
	if err != nil {
		t.Fatalf("ConstructRingRoot B: %v", err)
	}

	alpha := []byte("alpha")
	proof, err := ring.Prove(rp, alpha, nil, sks[0], pks[0], ringA, rootA, srs)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := ring.Verify(rp, alpha, nil, rootB, proof, srs); err == nil {
		t.Fatal("expected verification failure against a different ring's root")
	}
}

func TestRingVRFDomainMismatchOnOversizedRing(t *testing.T) {
	rp := ring.DefaultRingParams
	s := suite.Bandersnatch()
	srs, err := kzg.NewTestSRS(rp.DomainSize, testTau(t))
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	// rp.RingCapacity (DomainSize - scalarBitLen - 2) tops out at 257
	// members for the default domain; one more than that must be rejected
	// rather than silently truncated.
	_, _, ringPks := buildTestRing(t, s, rp.RingCapacity+1)
	if _, err := ring.ConstructRingRoot(rp, ringPks, srs); err != ring.ErrDomainMismatch {
		t.Fatalf("expected ErrDomainMismatch, got %v", err)
	}
}

func TestRingRootEncodeDecodeRoundTrip(t *testing.T) {
	rp := ring.DefaultRingParams
	s := suite.Bandersnatch()
	srs, err := kzg.NewTestSRS(rp.DomainSize, testTau(t))
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	_, _, ringPks := buildTestRing(t, s, 8)
	root, err := ring.ConstructRingRoot(rp, ringPks, srs)
	if err != nil {
		t.Fatalf("ConstructRingRoot: %v", err)
	}

	encoded := ring.EncodeRingRoot(root)
	decoded, err := ring.DecodeRingRoot(encoded)
	if err != nil {
		t.Fatalf("DecodeRingRoot: %v", err)
	}
	if decoded.DomainSize != root.DomainSize {
		t.Fatalf("domain size mismatch: got %d want %d", decoded.DomainSize, root.DomainSize)
	}
	if decoded.CommitX.Marshal() != root.CommitX.Marshal() {
		t.Fatal("CommitX mismatch after round trip")
	}
	if decoded.CommitY.Marshal() != root.CommitY.Marshal() {
		t.Fatal("CommitY mismatch after round trip")
	}
}

func TestRingProofEncodeDecodeRoundTrip(t *testing.T) {
	rp := ring.DefaultRingParams
	s := suite.Bandersnatch()
	srs, err := kzg.NewTestSRS(rp.DomainSize, testTau(t))
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	sks, pks, ringPks := buildTestRing(t, s, 8)
	root, err := ring.ConstructRingRoot(rp, ringPks, srs)
	if err != nil {
		t.Fatalf("ConstructRingRoot: %v", err)
	}

	alpha := []byte("alpha")
	proof, err := ring.Prove(rp, alpha, nil, sks[5], pks[5], ringPks, root, srs)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	encoded := ring.EncodeRingProof(s, proof)
	decoded, err := ring.DecodeRingProof(s, encoded)
	if err != nil {
		t.Fatalf("DecodeRingProof: %v", err)
	}

	if err := ring.Verify(rp, alpha, nil, root, decoded, srs); err != nil {
		t.Fatalf("Verify after round trip: %v", err)
	}
}
