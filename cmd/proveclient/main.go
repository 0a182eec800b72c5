// Command proveclient loads a scenario fixture describing system, revocation
// authority, and issuer parameters together with a user's attributes, and
// computes a randomized credential and proof of knowledge for a verifier
// nonce and epoch.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/go-rkvac/prover/rkvac"
)

type g1Point string

func (g g1Point) decode() (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	raw, err := base64.StdEncoding.DecodeString(string(g))
	if err != nil {
		return p, fmt.Errorf("decoding G1 point: %w", err)
	}
	if err := p.Unmarshal(raw); err != nil {
		return p, fmt.Errorf("unmarshaling G1 point: %w", err)
	}
	return p, nil
}

func decodeScalar(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal scalar %q", s)
	}
	return v, nil
}

// scenario is the on-disk fixture format: every group element is base64 of
// the curve library's compressed encoding, every scalar a decimal string.
type scenario struct {
	SystemG1 g1Point `json:"system_g1"`

	RAAlphas           [2]string  `json:"ra_alphas"`
	RAAlphasMul        [2]g1Point `json:"ra_alphas_mul"`
	RARandomizers      []string   `json:"ra_randomizers"`
	RARandomizersSigma []g1Point  `json:"ra_randomizers_sigma"`

	RASignatureMr string `json:"ra_signature_mr"`

	IssuerSigma           g1Point   `json:"issuer_sigma"`
	IssuerRevocationSigma g1Point   `json:"issuer_revocation_sigma"`
	IssuerAttributeSigmas []g1Point `json:"issuer_attribute_sigmas"`

	AttributeValues []string `json:"attribute_values"` // hex, up to EC_SIZE bytes each

	I              int    `json:"i"`
	II             int    `json:"ii"`
	Nonce          string `json:"nonce"`           // hex
	Epoch          string `json:"epoch"`           // hex
	DisclosedCount int    `json:"disclosed_count"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var s scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario JSON: %w", err)
	}
	return &s, nil
}

func buildInputs(s *scenario) (*rkvac.SystemParameters, *rkvac.RevocationAuthorityParameters, *rkvac.RevocationAuthoritySignature, *rkvac.IssuerSignature, *rkvac.UserAttributes, error) {
	g1, err := s.SystemG1.decode()
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("system_g1: %w", err)
	}
	sys := &rkvac.SystemParameters{G1: g1}

	ra := &rkvac.RevocationAuthorityParameters{}
	for i := 0; i < 2; i++ {
		a, err := decodeScalar(s.RAAlphas[i])
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("ra_alphas[%d]: %w", i, err)
		}
		ra.Alphas[i] = a
		p, err := s.RAAlphasMul[i].decode()
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("ra_alphas_mul[%d]: %w", i, err)
		}
		ra.AlphasMul[i] = p
	}
	for idx, raw := range s.RARandomizers {
		v, err := decodeScalar(raw)
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("ra_randomizers[%d]: %w", idx, err)
		}
		ra.Randomizers = append(ra.Randomizers, v)
	}
	for idx, raw := range s.RARandomizersSigma {
		p, err := raw.decode()
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("ra_randomizers_sigma[%d]: %w", idx, err)
		}
		ra.RandomizersSigma = append(ra.RandomizersSigma, p)
	}

	mr, err := decodeScalar(s.RASignatureMr)
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("ra_signature_mr: %w", err)
	}
	raSig := &rkvac.RevocationAuthoritySignature{Mr: mr}

	sigma, err := s.IssuerSigma.decode()
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("issuer_sigma: %w", err)
	}
	revSigma, err := s.IssuerRevocationSigma.decode()
	if err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("issuer_revocation_sigma: %w", err)
	}
	ieSig := &rkvac.IssuerSignature{Sigma: sigma, RevocationSigma: revSigma}
	for idx, raw := range s.IssuerAttributeSigmas {
		p, err := raw.decode()
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("issuer_attribute_sigmas[%d]: %w", idx, err)
		}
		ieSig.AttributeSigmas = append(ieSig.AttributeSigmas, p)
	}

	attrValues := make([]rkvac.Attribute, len(s.AttributeValues))
	for idx, hexVal := range s.AttributeValues {
		raw, err := hex.DecodeString(hexVal)
		if err != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("attribute_values[%d]: %w", idx, err)
		}
		var a rkvac.Attribute
		copy(a.Value[:], raw)
		attrValues[idx] = a
	}
	attrs := rkvac.NewUserAttributes(attrValues)

	return sys, ra, raSig, ieSig, attrs, nil
}

func main() {
	scenarioFile := flag.String("scenario", "scenario.json", "scenario fixture file")
	credentialOut := flag.String("credential-out", "credential.json", "output file for the credential")
	proofOut := flag.String("proof-out", "proof.json", "output file for the proof")
	flag.Parse()

	log := slog.Default()

	s, err := loadScenario(*scenarioFile)
	if err != nil {
		log.Error("loading scenario", "error", err)
		os.Exit(1)
	}

	sys, ra, raSig, ieSig, attrs, err := buildInputs(s)
	if err != nil {
		log.Error("building inputs", "error", err)
		os.Exit(1)
	}

	nonce, err := hex.DecodeString(s.Nonce)
	if err != nil {
		log.Error("invalid nonce", "error", err)
		os.Exit(1)
	}
	epoch, err := hex.DecodeString(s.Epoch)
	if err != nil {
		log.Error("invalid epoch", "error", err)
		os.Exit(1)
	}

	cred, proof, err := rkvac.ComputeProofOfKnowledge(sys, ra, raSig, ieSig, s.I, s.II, nonce, epoch, attrs, s.DisclosedCount, nil)
	if err != nil {
		log.Error("proof computation failed", "error", err)
		os.Exit(1)
	}

	credData, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		log.Error("marshaling credential", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*credentialOut, credData, 0644); err != nil {
		log.Error("writing credential", "error", err)
		os.Exit(1)
	}

	proofData, err := json.MarshalIndent(proof, "", "  ")
	if err != nil {
		log.Error("marshaling proof", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*proofOut, proofData, 0644); err != nil {
		log.Error("writing proof", "error", err)
		os.Exit(1)
	}

	log.Info("proof computed", "credential_file", *credentialOut, "proof_file", *proofOut)
}
