package kzg

import (
	"crypto/sha256"
	"hash"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/bandersnatch-vrf/ringvrf/pkg/poly"
)

func sha256Hasher() hash.Hash { return sha256.New() }

func feFromInt(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestCommitOpenVerifyRoundTrip(t *testing.T) {
	var tau fr.Element
	tau.SetInt64(1234567)

	srs, err := NewTestSRS(8, &tau)
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	p := poly.New([]fr.Element{feFromInt(1), feFromInt(2), feFromInt(3), feFromInt(4)})

	commitment, err := srs.Commit(p)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	point := feFromInt(5)
	proof, err := srs.Open(p, point)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := srs.Verify(commitment, proof, point); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsWrongEvaluation(t *testing.T) {
	var tau fr.Element
	tau.SetInt64(99)

	srs, err := NewTestSRS(4, &tau)
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	p := poly.New([]fr.Element{feFromInt(1), feFromInt(1)})
	commitment, err := srs.Commit(p)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	point := feFromInt(3)
	proof, err := srs.Open(p, point)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	wrongPoint := feFromInt(4)
	if err := srs.Verify(commitment, proof, wrongPoint); err == nil {
		t.Fatal("expected verification failure for wrong evaluation point")
	}
}

func TestBatchOpenVerifyRoundTrip(t *testing.T) {
	var tau fr.Element
	tau.SetInt64(777)

	srs, err := NewTestSRS(8, &tau)
	if err != nil {
		t.Fatalf("NewTestSRS: %v", err)
	}

	p1 := poly.New([]fr.Element{feFromInt(1), feFromInt(2)})
	p2 := poly.New([]fr.Element{feFromInt(3), feFromInt(4), feFromInt(5)})

	c1, err := srs.Commit(p1)
	if err != nil {
		t.Fatalf("Commit p1: %v", err)
	}
	c2, err := srs.Commit(p2)
	if err != nil {
		t.Fatalf("Commit p2: %v", err)
	}

	point := feFromInt(9)
	proof, err := srs.BatchOpen([]*poly.Poly{p1, p2}, []Digest{c1, c2}, point, sha256Hasher)
	if err != nil {
		t.Fatalf("BatchOpen: %v", err)
	}

	if err := srs.BatchVerify([]Digest{c1, c2}, proof, point, sha256Hasher); err != nil {
		t.Fatalf("BatchVerify: %v", err)
	}
}
