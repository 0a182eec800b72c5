package rkvac

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// credentialJSON and proofJSON mirror the teacher's length-prefixed wire
// encoding (bbs/types.go SerializeSignature/SerializeProof), adapted to JSON:
// G1 points are the curve library's canonical uncompressed Marshal() bytes,
// base64-wrapped; Fr scalars are decimal strings. Undisclosed-index maps sort
// their keys for deterministic output, the same discipline the teacher's
// SerializeProof uses for MHat.
type credentialJSON struct {
	Pseudonym    string `json:"pseudonym"`
	SigmaHat     string `json:"sigma_hat"`
	SigmaHatE1   string `json:"sigma_hat_e1"`
	SigmaHatE2   string `json:"sigma_hat_e2"`
	SigmaMinusE1 string `json:"sigma_minus_e1"`
	SigmaMinusE2 string `json:"sigma_minus_e2"`
}

func marshalG1(p bls12381.G1Affine) string {
	enc := p.Marshal()
	return base64.StdEncoding.EncodeToString(enc)
}

func unmarshalG1(s string) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return p, fmt.Errorf("decoding G1 point: %w", err)
	}
	if err := p.Unmarshal(raw); err != nil {
		return p, fmt.Errorf("unmarshaling G1 point: %w", err)
	}
	return p, nil
}

func (c *Credential) MarshalJSON() ([]byte, error) {
	return json.Marshal(credentialJSON{
		Pseudonym:    marshalG1(c.Pseudonym),
		SigmaHat:     marshalG1(c.SigmaHat),
		SigmaHatE1:   marshalG1(c.SigmaHatE1),
		SigmaHatE2:   marshalG1(c.SigmaHatE2),
		SigmaMinusE1: marshalG1(c.SigmaMinusE1),
		SigmaMinusE2: marshalG1(c.SigmaMinusE2),
	})
}

func (c *Credential) UnmarshalJSON(data []byte) error {
	var aux credentialJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if c.Pseudonym, err = unmarshalG1(aux.Pseudonym); err != nil {
		return err
	}
	if c.SigmaHat, err = unmarshalG1(aux.SigmaHat); err != nil {
		return err
	}
	if c.SigmaHatE1, err = unmarshalG1(aux.SigmaHatE1); err != nil {
		return err
	}
	if c.SigmaHatE2, err = unmarshalG1(aux.SigmaHatE2); err != nil {
		return err
	}
	if c.SigmaMinusE1, err = unmarshalG1(aux.SigmaMinusE1); err != nil {
		return err
	}
	if c.SigmaMinusE2, err = unmarshalG1(aux.SigmaMinusE2); err != nil {
		return err
	}
	return nil
}

type proofJSON struct {
	E   string         `json:"e"`
	SV  string         `json:"s_v"`
	SMr string         `json:"s_mr"`
	SI  string         `json:"s_i"`
	SE1 string         `json:"s_e1"`
	SE2 string         `json:"s_e2"`
	SMz map[int]string `json:"s_mz"`
}

func (p *Proof) MarshalJSON() ([]byte, error) {
	indices := make([]int, 0, len(p.SMz))
	for idx := range p.SMz {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	smz := make(map[int]string, len(indices))
	for _, idx := range indices {
		smz[idx] = p.SMz[idx].String()
	}

	return json.Marshal(proofJSON{
		E:   p.E.String(),
		SV:  p.SV.String(),
		SMr: p.SMr.String(),
		SI:  p.SI.String(),
		SE1: p.SE1.String(),
		SE2: p.SE2.String(),
		SMz: smz,
	})
}

func (p *Proof) UnmarshalJSON(data []byte) error {
	var aux proofJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	parse := func(s string) (*big.Int, error) {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("invalid decimal scalar %q", s)
		}
		return v, nil
	}

	var err error
	if p.E, err = parse(aux.E); err != nil {
		return err
	}
	if p.SV, err = parse(aux.SV); err != nil {
		return err
	}
	if p.SMr, err = parse(aux.SMr); err != nil {
		return err
	}
	if p.SI, err = parse(aux.SI); err != nil {
		return err
	}
	if p.SE1, err = parse(aux.SE1); err != nil {
		return err
	}
	if p.SE2, err = parse(aux.SE2); err != nil {
		return err
	}
	p.SMz = make(map[int]*big.Int, len(aux.SMz))
	for idx, s := range aux.SMz {
		v, err := parse(s)
		if err != nil {
			return err
		}
		p.SMz[idx] = v
	}
	return nil
}
