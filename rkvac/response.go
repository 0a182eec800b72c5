package rkvac

import (
	"math/big"
)

// Proof is the non-interactive zero-knowledge proof π of §3. SMz is keyed by
// undisclosed attribute index; disclosed indices carry no entry.
type Proof struct {
	E   *big.Int
	SV  *big.Int
	SMr *big.Int
	SI  *big.Int
	SE1 *big.Int
	SE2 *big.Int
	SMz map[int]*big.Int
}

// computeResponses implements §4.H. Sign discipline is normative and was
// resolved against original_source: s_mr, s_e1, s_e2 subtract e·x; s_v, s_i
// add e·x.
func computeResponses(
	e *big.Int,
	raSig *RevocationAuthoritySignature,
	ctx *credentialContext,
	attrs *UserAttributes,
	rnd *randomnessBundle,
) (*Proof, error) {
	sV := frAdd(rnd.rhoV, frMul(e, rnd.rho))
	sMr := frSub(rnd.rhoMr, frMul(e, raSig.Mr))
	sI := frAdd(rnd.rhoI, frMul(e, ctx.i))
	sE1 := frSub(rnd.rhoE1, frMul(e, ctx.e1))
	sE2 := frSub(rnd.rhoE2, frMul(e, ctx.e2))

	sMz := make(map[int]*big.Int, len(rnd.rhoMz))
	for idx, rho := range rnd.rhoMz {
		mz, err := bytesToFr(attrs.Attributes[idx].Value[:])
		if err != nil {
			return nil, newHashError("m_z", err)
		}
		sMz[idx] = frSub(rho, frMul(e, mz))
	}

	return &Proof{E: e, SV: sV, SMr: sMr, SI: sI, SE1: sE1, SE2: sE2, SMz: sMz}, nil
}
