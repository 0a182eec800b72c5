package rkvac

import (
	"bytes"
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/go-rkvac/prover/internal/common"
)

func TestFrArithmeticStaysCanonical(t *testing.T) {
	a := new(big.Int).Sub(common.Order, big.NewInt(1))
	b := big.NewInt(2)

	sum := frAdd(a, b)
	if !frIsValid(sum) {
		t.Fatalf("frAdd result not canonical: %v", sum)
	}
	if sum.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("frAdd wraparound: got %v, want 1", sum)
	}

	neg := frNeg(a)
	if !frIsValid(neg) {
		t.Fatalf("frNeg result not canonical: %v", neg)
	}
}

func TestFrInvRejectsZero(t *testing.T) {
	if _, err := frInv(big.NewInt(0)); err == nil {
		t.Fatal("expected error inverting zero")
	}
	inv, err := frInv(big.NewInt(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	product := frMul(big.NewInt(2), inv)
	if product.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("2 * inv(2) = %v, want 1", product)
	}
}

func TestFrFromCSPRNGIsCanonical(t *testing.T) {
	v, err := frFromCSPRNG(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !frIsValid(v) {
		t.Errorf("sampled scalar not canonical: %v", v)
	}
}

func TestG1AddMulRoundTrip(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()

	doubled := g1Mul(g1, big.NewInt(2))
	added := g1Add(g1, g1)
	if !doubled.Equal(&added) {
		t.Errorf("2*G1 != G1+G1")
	}
	if !g1IsValid(doubled) {
		t.Errorf("2*G1 not subgroup-valid")
	}
}

func TestG1ClearToIdentityIsAdditiveIdentity(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()

	idJac := g1ClearToIdentity()
	var g1Jac bls12381.G1Jac
	g1Jac.FromAffine(&g1)
	idJac.AddAssign(&g1Jac)

	result := g1Normalize(idJac)
	if !result.Equal(&g1) {
		t.Errorf("identity + G1 != G1")
	}
}

func TestBytesToFrMatchesZeroFill(t *testing.T) {
	v, err := bytesToFr(bytes.Repeat([]byte{0}, common.SHADigestLength))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Sign() != 0 {
		t.Errorf("all-zero digest should map to 0, got %v", v)
	}
}
