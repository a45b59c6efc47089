package navlink

import "errors"

// Sentinel errors for link and prefetch-endpoint operations.
var (
	ErrNoRoute          = errors.New("navlink: route resolution failed")
	ErrBadPayload       = errors.New("navlink: invalid prefetch payload")
	ErrSignatureInvalid = errors.New("navlink: signature verification failed")
	ErrDecryptFailed    = errors.New("navlink: payload decryption failed")
	ErrNoNavigator      = errors.New("navlink: no navigator configured")
)

// IsNoRoute checks if err is a route-resolution failure.
func IsNoRoute(err error) bool {
	return errors.Is(err, ErrNoRoute)
}

// IsPayloadError checks if err is a malformed, tampered, or undecryptable
// prefetch payload.
func IsPayloadError(err error) bool {
	return errors.Is(err, ErrBadPayload) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrDecryptFailed)
}
