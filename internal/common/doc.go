// Package common provides shared constants and the error taxonomy used
// throughout the rkvac prover: the curve order, the smart-card wire-format
// constants, and the single structured ProofComputationError type.
//
// This is an internal package not intended for direct use by applications.
package common
