package rkvac

import (
	"testing"

	"github.com/go-rkvac/prover/internal/common"
)

func TestHashToScalarDeterministic(t *testing.T) {
	a, err := hashToScalar([]byte("nonce-123"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := hashToScalar([]byte("nonce-123"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Cmp(b) != 0 {
		t.Errorf("hashToScalar not deterministic: %v != %v", a, b)
	}

	c, err := hashToScalar([]byte("nonce-124"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Cmp(c) == 0 {
		t.Errorf("different inputs hashed to the same scalar")
	}
}

func TestBytesToFrRejectsOversizeBuffer(t *testing.T) {
	buf := make([]byte, common.ECSize+1)
	if _, err := bytesToFr(buf); err == nil {
		t.Fatal("expected error for oversize buffer")
	}
}

func TestBytesToFrRejectsNonCanonical(t *testing.T) {
	// Order itself, little-endian, is not a canonical representative.
	buf := make([]byte, common.ECSize)
	orderLE := reverseBytes(common.Order.Bytes())
	copy(buf, orderLE)
	if _, err := bytesToFr(buf); err == nil {
		t.Fatal("expected error for non-canonical value equal to the order")
	}
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
