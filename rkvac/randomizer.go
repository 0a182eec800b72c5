package rkvac

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Credential is the randomized signature and pseudonym a prover emits for one
// verifier interaction. Every field is normalized and subgroup-valid.
type Credential struct {
	Pseudonym    bls12381.G1Affine
	SigmaHat     bls12381.G1Affine
	SigmaHatE1   bls12381.G1Affine
	SigmaHatE2   bls12381.G1Affine
	SigmaMinusE1 bls12381.G1Affine
	SigmaMinusE2 bls12381.G1Affine
}

// credentialContext carries the values computeCommitments and
// computeResponses need but that do not belong in the emitted Credential:
// the selected randomizer scalars and their bound group elements, and the
// shared scalar i.
type credentialContext struct {
	e1, e2           *big.Int
	sigmaE1, sigmaE2 bls12381.G1Affine
	i                *big.Int
}

// computeCredential implements §4.E: it selects e1/e2 and their bound group
// elements by index, derives the shared scalar i and the pseudonym C, and
// randomizes the issuer's signature triple under a single rho.
func computeCredential(
	sys *SystemParameters,
	ra *RevocationAuthorityParameters,
	raSig *RevocationAuthoritySignature,
	ieSig *IssuerSignature,
	i, ii int,
	epoch []byte,
	rnd *randomnessBundle,
) (*Credential, *credentialContext, error) {
	e1 := ra.Randomizers[i]
	e2 := ra.Randomizers[ii]
	sigmaE1 := ra.RandomizersSigma[i]
	sigmaE2 := ra.RandomizersSigma[ii]

	iScalar := frAdd(frMul(ra.Alphas[0], e1), frMul(ra.Alphas[1], e2))
	if !frIsValid(iScalar) {
		return nil, nil, newAlgebraError("i", nil)
	}

	hEpoch, err := hashToScalar(epoch)
	if err != nil {
		return nil, nil, newHashError("H(epoch)", err)
	}

	denom := frAdd(frSub(iScalar, raSig.Mr), hEpoch)
	if denom.Sign() == 0 {
		return nil, nil, newAlgebraError("pseudonym denominator is zero", nil)
	}
	denomInv, err := frInv(denom)
	if err != nil {
		return nil, nil, newAlgebraError("invert pseudonym denominator", err)
	}
	pseudonym := g1Mul(sys.G1, denomInv)
	if !g1IsValid(pseudonym) {
		return nil, nil, newAlgebraError("pseudonym", nil)
	}

	sigmaHat := g1Mul(ieSig.Sigma, rnd.rho)
	if !g1IsValid(sigmaHat) {
		return nil, nil, newAlgebraError("sigma_hat", nil)
	}
	sigmaHatE1 := g1Mul(sigmaE1, rnd.rho)
	if !g1IsValid(sigmaHatE1) {
		return nil, nil, newAlgebraError("sigma_hat_e1", nil)
	}
	sigmaHatE2 := g1Mul(sigmaE2, rnd.rho)
	if !g1IsValid(sigmaHatE2) {
		return nil, nil, newAlgebraError("sigma_hat_e2", nil)
	}

	rhoG1 := g1Mul(sys.G1, rnd.rho)

	sigmaMinusE1 := g1Add(g1Mul(sigmaHatE1, frNeg(e1)), rhoG1)
	if !g1IsValid(sigmaMinusE1) {
		return nil, nil, newAlgebraError("sigma_minus_e1", nil)
	}
	sigmaMinusE2 := g1Add(g1Mul(sigmaHatE2, frNeg(e2)), rhoG1)
	if !g1IsValid(sigmaMinusE2) {
		return nil, nil, newAlgebraError("sigma_minus_e2", nil)
	}

	cred := &Credential{
		Pseudonym:    pseudonym,
		SigmaHat:     sigmaHat,
		SigmaHatE1:   sigmaHatE1,
		SigmaHatE2:   sigmaHatE2,
		SigmaMinusE1: sigmaMinusE1,
		SigmaMinusE2: sigmaMinusE2,
	}
	ctx := &credentialContext{e1: e1, e2: e2, sigmaE1: sigmaE1, sigmaE2: sigmaE2, i: iScalar}
	return cred, ctx, nil
}
