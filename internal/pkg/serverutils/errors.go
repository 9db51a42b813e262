package serverutils

import "errors"

// Sentinel errors the error-handler middleware knows how to map to HTTP
// status codes. Services wrap these with %w and a human-readable detail.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
)
