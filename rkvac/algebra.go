package rkvac

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/go-rkvac/prover/internal/common"
)

// randomnessRetryBudget bounds the number of CSPRNG draws frFromCSPRNG makes
// before it gives up. A draw masked to the 255-bit width of the order is
// rejected less than one time in ten, so a handful of retries only guards
// against a broken reader.
const randomnessRetryBudget = 8

// frAdd, frSub, frMul, and frNeg are the Fr facade's field operations. Their
// results are always canonical by construction (Mod reduces into [0, Order)),
// so callers never need to re-validate them.
func frAdd(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), common.Order)
}

func frSub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), common.Order)
}

func frMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), common.Order)
}

func frNeg(a *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Neg(a), common.Order)
}

// frInv returns the multiplicative inverse of a mod the curve order, failing
// cleanly on a zero divisor rather than letting ModInverse return nil.
func frInv(a *big.Int) (*big.Int, error) {
	if a.Sign() == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	return new(big.Int).ModInverse(a, common.Order), nil
}

func frSetInt(n int64) *big.Int {
	return new(big.Int).Mod(big.NewInt(n), common.Order)
}

// frIsValid reports whether a is the canonical representative of an Fr
// element: non-nil and in [0, Order).
func frIsValid(a *big.Int) bool {
	return a != nil && a.Sign() >= 0 && a.Cmp(common.Order) < 0
}

// frFromCSPRNG draws a uniform scalar from rng (crypto/rand.Reader if nil)
// via rejection sampling: each 32-byte big-endian draw is masked to the bit
// length of the order and resampled, up to randomnessRetryBudget times, if it
// is not below the order. In practice the first draw is almost always
// accepted; the retry bound makes a broken reader fail cleanly instead of
// looping forever.
func frFromCSPRNG(rng io.Reader) (*big.Int, error) {
	if rng == nil {
		rng = rand.Reader
	}
	buf := make([]byte, common.ECSize)
	for attempt := 0; attempt < randomnessRetryBudget; attempt++ {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, fmt.Errorf("reading CSPRNG output: %w", err)
		}
		buf[0] &= byte(0xff >> (len(buf)*8 - common.Order.BitLen()))
		v := new(big.Int).SetBytes(buf)
		if frIsValid(v) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("exhausted randomness retry budget")
}

// g1Add returns a + b in G1, both affine in, affine out.
func g1Add(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var r bls12381.G1Affine
	r.FromJacobian(&aj)
	return r
}

// g1Mul returns scalar*p in G1.
func g1Mul(p bls12381.G1Affine, scalar *big.Int) bls12381.G1Affine {
	var pj bls12381.G1Jac
	pj.FromAffine(&p)
	s := new(big.Int).Mod(scalar, common.Order)
	pj.ScalarMultiplication(&pj, s)
	var r bls12381.G1Affine
	r.FromJacobian(&pj)
	return r
}

// g1ClearToIdentity returns the G1 identity in Jacobian coordinates, ready to
// accumulate AddAssign calls into.
func g1ClearToIdentity() bls12381.G1Jac {
	var z bls12381.G1Jac
	z.X.SetOne()
	z.Y.SetOne()
	z.Z.SetZero()
	return z
}

// g1Normalize converts a Jacobian accumulator to its canonical affine form.
func g1Normalize(p bls12381.G1Jac) bls12381.G1Affine {
	var r bls12381.G1Affine
	r.FromJacobian(&p)
	return r
}

// g1IsValid reports whether p is on the curve and in the correct subgroup.
func g1IsValid(p bls12381.G1Affine) bool {
	return p.IsInSubGroup()
}
