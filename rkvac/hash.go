package rkvac

import (
	"crypto/sha1"
	"fmt"
	"math/big"

	"github.com/go-rkvac/prover/internal/common"
)

// bytesToFr interprets buf as the low-order bytes of a little-endian,
// ECSize-byte field-element buffer and converts it to Fr without any modular
// reduction, rejecting the value if it is not a canonical representative.
// buf itself may be shorter than
// ECSize (e.g. a SHA-1 digest); it is zero-padded on the high-order side.
//
// This is the byte-to-Fr conversion the protocol's smart card uses: the
// buffer is little-endian, so the supplied bytes occupy the low-order end and
// the padding goes at the high-order end, which after the endianness flip
// needed to build a big.Int lands at the front of the reversed buffer.
func bytesToFr(buf []byte) (*big.Int, error) {
	if len(buf) > common.ECSize {
		return nil, fmt.Errorf("buffer exceeds field width: %d bytes", len(buf))
	}
	padded := make([]byte, common.ECSize)
	copy(padded, buf)
	for i, j := 0, len(padded)-1; i < j; i, j = i+1, j-1 {
		padded[i], padded[j] = padded[j], padded[i]
	}
	v := new(big.Int).SetBytes(padded)
	if !frIsValid(v) {
		return nil, fmt.Errorf("value is not a canonical field element")
	}
	return v, nil
}

// hashToScalar hashes data with SHA-1 and maps the digest into Fr using the
// padding convention inherited from the smart card that issues the protocol
// constants: the 20-byte digest occupies the low-order bytes of a 32-byte
// field-element buffer, and the remaining SHADigestPadding high-order bytes
// stay zero.
//
// This convention is normative for interoperability with the verifier.
// Substituting a different hash, or moving the padding to the other side,
// silently produces a different challenge and breaks cross-party
// verification.
func hashToScalar(data []byte) (*big.Int, error) {
	digest := sha1.Sum(data)
	return bytesToFr(digest[:])
}
