package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"empty name", ErrEmptyName},
		{"invalid contact", ErrInvalidContact},
		{"account not found", ErrAccountNotFound},
		{"account inactive", ErrAccountInactive},
		{"empty item", ErrEmptyItem},
		{"invalid amount", ErrInvalidAmount},
		{"invalid status", ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("create: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match sentinel: %v", tc.err)
			}
		})
	}
}
