package common

import (
	"math/big"
)

// Order is the order r of the BLS12-381 scalar field Fr. Every scalar this
// module produces or consumes is reduced modulo Order.
var Order, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// Wire-format and protocol-bound constants inherited from the smart-card
// issuer. See the hash-to-scalar padding convention in the rkvac package for
// why SHADigestLength and SHADigestPadding must not change independently.
const (
	// ECSize is the fixed byte width of a field element and of one attribute slot.
	ECSize = 32

	// SHADigestLength is the length in bytes of a SHA-1 digest.
	SHADigestLength = 20

	// SHADigestPadding is the number of high-order zero bytes needed to widen
	// a SHA-1 digest to ECSize bytes.
	SHADigestPadding = ECSize - SHADigestLength

	// MaxAttributes bounds the number of attribute slots a user may carry.
	MaxAttributes = 16
)
