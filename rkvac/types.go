package rkvac

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// SystemParameters holds the group generator shared by every component.
type SystemParameters struct {
	G1 bls12381.G1Affine
}

// RevocationAuthorityParameters holds the revocation authority's public
// scalars, their bound group elements, and the per-epoch randomizer tables
// the verifier selects I and II from.
type RevocationAuthorityParameters struct {
	Alphas           [2]*big.Int
	AlphasMul        [2]bls12381.G1Affine
	Randomizers      []*big.Int
	RandomizersSigma []bls12381.G1Affine
}

// RevocationAuthoritySignature holds the user's revocation handle.
type RevocationAuthoritySignature struct {
	Mr *big.Int
}

// IssuerSignature holds the issuer's signature root and the group elements
// bound to the revocation handle and each attribute slot.
type IssuerSignature struct {
	Sigma           bls12381.G1Affine
	RevocationSigma bls12381.G1Affine
	AttributeSigmas []bls12381.G1Affine
}
