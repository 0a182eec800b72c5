package rkvac

import (
	"github.com/go-rkvac/prover/internal/common"
)

// newInvalidArgument wraps a precondition failure (bad attribute count, bad
// disclosure count, out-of-range randomizer index, empty nonce/epoch) as a
// ProofComputationError with Cause InvalidArgument.
func newInvalidArgument(op string, err error) error {
	return common.NewProofError(common.InvalidArgument, op, err)
}

// newAlgebraError wraps a G1/Fr validity failure (off-curve point, wrong
// subgroup, non-canonical scalar, zero divisor) as Cause AlgebraInvalid.
func newAlgebraError(op string, err error) error {
	return common.NewProofError(common.AlgebraInvalid, op, err)
}

// newHashError wraps a hash-to-scalar conversion failure as Cause
// HashConversionFailed.
func newHashError(op string, err error) error {
	return common.NewProofError(common.HashConversionFailed, op, err)
}

// newRandomnessError wraps a CSPRNG failure as Cause RandomnessFailed.
func newRandomnessError(op string, err error) error {
	return common.NewProofError(common.RandomnessFailed, op, err)
}
