// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across api/repository layers.
var (
	// ErrAuthRequired indicates an authenticated operation was invoked with no
	// stored session; the call must fail before any network I/O happens.
	ErrAuthRequired = errors.New("authentication required (login first)")

	// ErrNoSession indicates the token store holds no session.
	ErrNoSession = errors.New("no session")

	// ErrSessionExpired indicates the stored access token is past its expiry.
	ErrSessionExpired = errors.New("session expired (login required)")

	// ErrDecode indicates a 2xx response body did not match the expected shape.
	ErrDecode = errors.New("malformed response body")
)
