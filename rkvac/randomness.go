package rkvac

import (
	"io"
	"math/big"
)

// randomnessBundle holds the commitment randomizers sampled once per proof
// computation.
type randomnessBundle struct {
	rho   *big.Int
	rhoV  *big.Int
	rhoI  *big.Int
	rhoMr *big.Int
	rhoE1 *big.Int
	rhoE2 *big.Int
	rhoMz map[int]*big.Int // keyed by undisclosed attribute index
}

// sampleRandomness draws rho, rho_v, rho_i, rho_mr, rho_e1, rho_e2, and one
// rho_mz per undisclosed attribute. rng may be nil to use crypto/rand; tests
// inject a deterministic reader to get reproducible proofs. attrs must
// already have its disclosure flags set (applyDisclosure must run first).
func sampleRandomness(rng io.Reader, attrs *UserAttributes) (*randomnessBundle, error) {
	b := &randomnessBundle{rhoMz: make(map[int]*big.Int)}
	var err error

	if b.rho, err = frFromCSPRNG(rng); err != nil {
		return nil, newRandomnessError("rho", err)
	}
	if b.rhoV, err = frFromCSPRNG(rng); err != nil {
		return nil, newRandomnessError("rho_v", err)
	}
	if b.rhoI, err = frFromCSPRNG(rng); err != nil {
		return nil, newRandomnessError("rho_i", err)
	}
	if b.rhoMr, err = frFromCSPRNG(rng); err != nil {
		return nil, newRandomnessError("rho_mr", err)
	}
	for i := 0; i < attrs.Len(); i++ {
		if attrs.Disclosed(i) {
			continue
		}
		v, err := frFromCSPRNG(rng)
		if err != nil {
			return nil, newRandomnessError("rho_mz", err)
		}
		b.rhoMz[i] = v
	}
	if b.rhoE1, err = frFromCSPRNG(rng); err != nil {
		return nil, newRandomnessError("rho_e1", err)
	}
	if b.rhoE2, err = frFromCSPRNG(rng); err != nil {
		return nil, newRandomnessError("rho_e2", err)
	}

	return b, nil
}
