package rkvac

import (
	"io"

	"github.com/go-rkvac/prover/internal/common"
)

// ComputeProofOfKnowledge implements §4.I, the orchestrator wiring
// components C through H into one operation. rng may be nil to draw from
// crypto/rand; tests inject a deterministic reader.
//
// attrs must not yet have had applyDisclosure run on it for this call;
// ComputeProofOfKnowledge applies the disclosure rule itself from
// disclosedCount so the same *UserAttributes can be reused across calls with
// different disclosure counts.
func ComputeProofOfKnowledge(
	sys *SystemParameters,
	ra *RevocationAuthorityParameters,
	raSig *RevocationAuthoritySignature,
	ieSig *IssuerSignature,
	i, ii int,
	nonce, epoch []byte,
	attrs *UserAttributes,
	disclosedCount int,
	rng io.Reader,
) (*Credential, *Proof, error) {
	if len(nonce) == 0 {
		return nil, nil, newInvalidArgument("nonce must not be empty", nil)
	}
	if len(epoch) == 0 {
		return nil, nil, newInvalidArgument("epoch must not be empty", nil)
	}
	if attrs == nil {
		return nil, nil, newInvalidArgument("attrs must not be nil", nil)
	}
	n := attrs.Len()
	if n < 1 || n > common.MaxAttributes {
		return nil, nil, newInvalidArgument("attribute count out of range", nil)
	}
	if disclosedCount < 0 || disclosedCount > n {
		return nil, nil, newInvalidArgument("disclosure count out of range", nil)
	}
	if i < 0 || i >= len(ra.Randomizers) || ii < 0 || ii >= len(ra.Randomizers) ||
		i >= len(ra.RandomizersSigma) || ii >= len(ra.RandomizersSigma) {
		return nil, nil, newInvalidArgument("randomizer index out of range", nil)
	}

	if err := applyDisclosure(attrs, disclosedCount); err != nil {
		return nil, nil, newInvalidArgument(err.Error(), err)
	}

	rnd, err := sampleRandomness(rng, attrs)
	if err != nil {
		return nil, nil, err
	}

	cred, ctx, err := computeCredential(sys, ra, raSig, ieSig, i, ii, epoch, rnd)
	if err != nil {
		return nil, nil, err
	}

	t, err := computeCommitments(sys, ra, ieSig, attrs, cred, rnd)
	if err != nil {
		return nil, nil, err
	}

	e, err := computeChallenge(t, cred, nonce)
	if err != nil {
		return nil, nil, err
	}

	proof, err := computeResponses(e, raSig, ctx, attrs, rnd)
	if err != nil {
		return nil, nil, err
	}

	return cred, proof, nil
}
