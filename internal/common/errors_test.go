package common

import (
	"errors"
	"testing"
)

func TestProofComputationErrorUnwrap(t *testing.T) {
	cause := errors.New("zero denominator")
	err := NewProofError(AlgebraInvalid, "pseudonym", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is did not find wrapped cause")
	}
	if err.Cause != AlgebraInvalid {
		t.Errorf("Cause = %v, want AlgebraInvalid", err.Cause)
	}
}

func TestCauseString(t *testing.T) {
	tests := []struct {
		cause Cause
		want  string
	}{
		{InvalidArgument, "invalid_argument"},
		{AlgebraInvalid, "algebra_invalid"},
		{HashConversionFailed, "hash_conversion_failed"},
		{RandomnessFailed, "randomness_failed"},
		{Unspecified, "unspecified"},
	}
	for _, tt := range tests {
		if got := tt.cause.String(); got != tt.want {
			t.Errorf("Cause(%d).String() = %q, want %q", tt.cause, got, tt.want)
		}
	}
}

func TestProofComputationErrorWithoutCause(t *testing.T) {
	err := NewProofError(AlgebraInvalid, "t_verify", nil)
	if err.Unwrap() != nil {
		t.Errorf("expected nil Unwrap when Err is nil")
	}
	if err.Error() == "" {
		t.Errorf("expected non-empty error message")
	}
}
