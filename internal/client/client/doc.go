// Package client contains client-side building blocks for the trip diary.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the trip diary backend: Register/Login, profile management,
//     trip listing and editing, and a liveness probe.
//  2. A concrete HTTP implementation (see HTTPClient) that manages a base
//     endpoint, injects the access token as a bearer header after login,
//     and maps transport failures and HTTP status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is. The important distinction is between ErrUnavailable (the
// server could not be reached at all, so nothing authoritative was said)
// and the rejection errors (ErrUnauthorized, ErrNotFound, ErrRejected),
// which mean the server answered and said no. Offline fallback logic in
// the services layer keys off exactly this split.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
package client
