package rkvac

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// g1MultiScalarMul computes Σ scalars[i]*points[i] in G1, used for
// commitment F's Σ_und term. Input length is bounded by common.MaxAttributes,
// so a single Jacobian accumulation pass outperforms a bucketing scheme; this
// is adapted from the teacher's pkg/crypto.MultiScalarMulG1 and fixes that
// function's Jacobian-identity bug (it initialized Z to one instead of zero).
func g1MultiScalarMul(points []bls12381.G1Affine, scalars []*big.Int) (bls12381.G1Affine, error) {
	if len(points) != len(scalars) {
		return bls12381.G1Affine{}, newInvalidArgument("mismatched point/scalar lengths", nil)
	}

	acc := g1ClearToIdentity()
	for i, p := range points {
		if scalars[i].Sign() == 0 || p.IsInfinity() {
			continue
		}
		term := g1Mul(p, scalars[i])
		var termJac bls12381.G1Jac
		termJac.FromAffine(&term)
		acc.AddAssign(&termJac)
	}
	return g1Normalize(acc), nil
}
