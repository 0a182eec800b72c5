package rkvac

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/go-rkvac/prover/internal/common"
)

// Attribute is one fixed-width attribute slot belonging to a user.
type Attribute struct {
	Value [common.ECSize]byte
}

// UserAttributes is the ordered sequence of a user's attribute slots,
// together with the disclosure bitset applyDisclosure computes. Slots are
// never reordered; disclosure is purely positional (see applyDisclosure).
type UserAttributes struct {
	Attributes []Attribute
	disclosed  *bitset.BitSet
}

// NewUserAttributes wraps values as a UserAttributes with every slot
// initially undisclosed.
func NewUserAttributes(values []Attribute) *UserAttributes {
	return &UserAttributes{
		Attributes: values,
		disclosed:  bitset.New(uint(len(values))),
	}
}

// Len returns the number of attribute slots, N.
func (u *UserAttributes) Len() int {
	return len(u.Attributes)
}

// Disclosed reports whether slot i is marked disclosed.
func (u *UserAttributes) Disclosed(i int) bool {
	return u.disclosed != nil && u.disclosed.Test(uint(i))
}

// applyDisclosure marks the last d of N slots disclosed and the first N-d
// undisclosed, per the protocol's positional "last-D" rule: if a user has 4
// attributes and the verifier asks for 2 disclosed, slots 2 and 3 (0-indexed)
// become disclosed while 0 and 1 stay hidden. No reordering happens.
func applyDisclosure(attrs *UserAttributes, d int) error {
	n := attrs.Len()
	if d < 0 || d > n {
		return fmt.Errorf("disclosure count %d out of range for %d attributes", d, n)
	}
	disclosed := bitset.New(uint(n))
	for i := n - d; i < n; i++ {
		disclosed.Set(uint(i))
	}
	attrs.disclosed = disclosed
	return nil
}
