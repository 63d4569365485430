package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are distinct
// and can be checked with errors.Is()
func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrMalformedNotation,
		ErrIllegalMove,
		ErrNoPendingPromotion,
		ErrUnexpectedPromotion,
		ErrInvalidPromotion,
		ErrGameOver,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if got := errors.Is(a, b); got != (i == j) {
				t.Errorf("errors.Is(%v, %v) = %v", a, b, got)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrMalformedNotation)

	if !errors.Is(wrapped, ErrMalformedNotation) {
		t.Errorf("errors.Is(wrapped, ErrMalformedNotation) = false, want true")
	}
}

// TestNotationError_Error verifies the error message format
func TestNotationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotationError
		contains []string
	}{
		{
			name: "full context",
			err: &NotationError{
				Err:      ErrMalformedNotation,
				Field:    "castling",
				Got:      "KX",
				Expected: "subset of KQkq",
			},
			contains: []string{"castling", "KX", "subset of KQkq", "malformed"},
		},
		{
			name:     "got only",
			err:      &NotationError{Err: ErrMalformedNotation, Field: "placement", Got: "x"},
			contains: []string{"placement", "unexpected", "x"},
		},
		{
			name:     "no context",
			err:      &NotationError{Err: ErrMalformedNotation},
			contains: []string{"malformed position notation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("NotationError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestNotationError_As verifies that errors.As works with NotationError
func TestNotationError_As(t *testing.T) {
	notationErr := &NotationError{
		Err:   ErrMalformedNotation,
		Field: "en passant",
		Got:   "e5",
	}

	wrapped := fmt.Errorf("loading game: %w", notationErr)

	var extracted *NotationError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract NotationError")
	}
	if extracted.Field != "en passant" {
		t.Errorf("extracted.Field = %q, want %q", extracted.Field, "en passant")
	}
	if !errors.Is(wrapped, ErrMalformedNotation) {
		t.Error("errors.Is(wrapped, ErrMalformedNotation) = false, want true")
	}
}

// TestMoveError_Error verifies MoveError formatting and unwrapping
func TestMoveError_Error(t *testing.T) {
	err := &MoveError{
		Err:      ErrUnexpectedPromotion,
		PlyNum:   31,
		MoveText: "a2a1",
	}

	msg := err.Error()
	for _, s := range []string{"ply 31", "a2a1", "promotion pending"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrUnexpectedPromotion) {
		t.Error("errors.Is(moveErr, ErrUnexpectedPromotion) = false, want true")
	}

	bare := &MoveError{Err: ErrGameOver}
	if got := bare.Error(); got != ErrGameOver.Error() {
		t.Errorf("bare MoveError.Error() = %q, want %q", got, ErrGameOver.Error())
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrMalformedNotation, "decoding start position")

	if !errors.Is(wrapped, ErrMalformedNotation) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "decoding start position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidConfig, "perft depth %d", -1)

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "perft depth -1") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
