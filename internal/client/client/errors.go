package client

import "errors"

var (
	// ErrUnavailable means the server could not be reached: connection
	// refused, timeout, DNS failure. The request may never have arrived.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the server answered and rejected the credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the server answered and the resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRejected means the server answered with a validation or conflict
	// error not covered by the more specific sentinels.
	ErrRejected = errors.New("request rejected")
)
