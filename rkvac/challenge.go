package rkvac

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// computeChallenge implements §4.G. The concatenation order is normative: a
// verifier rebuilding e must see byte-for-byte the same sequence.
func computeChallenge(t *tValues, cred *Credential, nonce []byte) (*big.Int, error) {
	points := []bls12381.G1Affine{
		t.tVerify, t.tRevoke, t.tSig, t.tSig1, t.tSig2,
		cred.SigmaHat, cred.SigmaHatE1, cred.SigmaHatE2,
		cred.SigmaMinusE1, cred.SigmaMinusE2,
		cred.Pseudonym,
	}

	var buf []byte
	for _, p := range points {
		buf = append(buf, p.Marshal()...)
	}
	buf = append(buf, nonce...)

	e, err := hashToScalar(buf)
	if err != nil {
		return nil, newHashError("e", err)
	}
	return e, nil
}
