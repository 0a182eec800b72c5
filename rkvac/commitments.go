package rkvac

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// tValues holds the five Schnorr-style commitments of §4.F.
type tValues struct {
	tVerify, tRevoke, tSig, tSig1, tSig2 bls12381.G1Affine
}

// computeCommitments implements §4.F. Σ_und, the sum over undisclosed
// attributes, is the only variable-length term in this protocol; it goes
// through g1MultiScalarMul.
func computeCommitments(
	sys *SystemParameters,
	ra *RevocationAuthorityParameters,
	ieSig *IssuerSignature,
	attrs *UserAttributes,
	cred *Credential,
	rnd *randomnessBundle,
) (*tValues, error) {
	tVerify := g1Add(
		g1Mul(sys.G1, rnd.rhoV),
		g1Mul(ieSig.RevocationSigma, frMul(rnd.rhoMr, rnd.rho)),
	)

	var undPoints []bls12381.G1Affine
	var undScalars []*big.Int
	for idx := 0; idx < attrs.Len(); idx++ {
		if attrs.Disclosed(idx) {
			continue
		}
		undPoints = append(undPoints, ieSig.AttributeSigmas[idx])
		undScalars = append(undScalars, rnd.rhoMz[idx])
	}
	undersSum, err := g1MultiScalarMul(undPoints, undScalars)
	if err != nil {
		return nil, err
	}
	tVerify = g1Add(tVerify, g1Mul(undersSum, rnd.rho))
	if !g1IsValid(tVerify) {
		return nil, newAlgebraError("t_verify", nil)
	}

	tRevoke := g1Add(g1Mul(cred.Pseudonym, rnd.rhoMr), g1Mul(cred.Pseudonym, rnd.rhoI))
	if !g1IsValid(tRevoke) {
		return nil, newAlgebraError("t_revoke", nil)
	}

	tSig := g1Add(
		g1Add(g1Mul(sys.G1, rnd.rhoI), g1Mul(ra.AlphasMul[0], rnd.rhoE1)),
		g1Mul(ra.AlphasMul[1], rnd.rhoE2),
	)
	if !g1IsValid(tSig) {
		return nil, newAlgebraError("t_sig", nil)
	}

	tSig1 := g1Add(g1Mul(sys.G1, rnd.rhoV), g1Mul(cred.SigmaHatE1, rnd.rhoE1))
	if !g1IsValid(tSig1) {
		return nil, newAlgebraError("t_sig1", nil)
	}

	tSig2 := g1Add(g1Mul(sys.G1, rnd.rhoV), g1Mul(cred.SigmaHatE2, rnd.rhoE2))
	if !g1IsValid(tSig2) {
		return nil, newAlgebraError("t_sig2", nil)
	}

	return &tValues{tVerify: tVerify, tRevoke: tRevoke, tSig: tSig, tSig1: tSig1, tSig2: tSig2}, nil
}
