package rkvac

import (
	"testing"

	"github.com/go-rkvac/prover/internal/common"
)

func newTestAttributes(n int) *UserAttributes {
	attrs := make([]Attribute, n)
	for i := range attrs {
		attrs[i].Value[common.ECSize-1] = byte(i + 1)
	}
	return NewUserAttributes(attrs)
}

func TestApplyDisclosureLastD(t *testing.T) {
	tests := []struct {
		n, d       int
		disclosed  []int
		undisclose []int
	}{
		{4, 2, []int{2, 3}, []int{0, 1}},
		{4, 0, nil, []int{0, 1, 2, 3}},
		{4, 4, []int{0, 1, 2, 3}, nil},
		{1, 1, []int{0}, nil},
	}

	for _, tt := range tests {
		attrs := newTestAttributes(tt.n)
		if err := applyDisclosure(attrs, tt.d); err != nil {
			t.Fatalf("n=%d d=%d: unexpected error: %v", tt.n, tt.d, err)
		}
		for _, idx := range tt.disclosed {
			if !attrs.Disclosed(idx) {
				t.Errorf("n=%d d=%d: expected index %d disclosed", tt.n, tt.d, idx)
			}
		}
		for _, idx := range tt.undisclose {
			if attrs.Disclosed(idx) {
				t.Errorf("n=%d d=%d: expected index %d undisclosed", tt.n, tt.d, idx)
			}
		}
	}
}

func TestApplyDisclosureRejectsOutOfRange(t *testing.T) {
	attrs := newTestAttributes(4)
	if err := applyDisclosure(attrs, 5); err == nil {
		t.Fatal("expected error for disclosure count exceeding attribute count")
	}
	if err := applyDisclosure(attrs, -1); err == nil {
		t.Fatal("expected error for negative disclosure count")
	}
}
