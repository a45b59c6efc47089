package navlink

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrorsDistinct(t *testing.T) {
	errs := []error{
		ErrNoRoute,
		ErrBadPayload,
		ErrSignatureInvalid,
		ErrDecryptFailed,
		ErrNoNavigator,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestIsNoRoute(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrNoRoute", ErrNoRoute, true},
		{"wrapped ErrNoRoute", fmt.Errorf("wrapped: %w", ErrNoRoute), true},
		{"other error", errors.New("other"), false},
		{"ErrBadPayload", ErrBadPayload, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsNoRoute(tt.err); result != tt.expect {
				t.Errorf("IsNoRoute(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestIsPayloadError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrBadPayload", ErrBadPayload, true},
		{"ErrSignatureInvalid", ErrSignatureInvalid, true},
		{"ErrDecryptFailed", ErrDecryptFailed, true},
		{"wrapped ErrBadPayload", fmt.Errorf("wrapped: %w", ErrBadPayload), true},
		{"ErrNoRoute", ErrNoRoute, false},
		{"other error", errors.New("other"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsPayloadError(tt.err); result != tt.expect {
				t.Errorf("IsPayloadError(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}
