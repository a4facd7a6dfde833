// Copyright 2026 The Nimbus Authors
// SPDX-License-Identifier: Apache-2.0

package errdefs

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions with no variable detail. The command
// layer matches these with errors.Is to pick exit codes and hints; the
// message text is what the user sees, so it carries the remediation.
var (
	// ErrNotLoggedIn means no API token could be resolved from flags,
	// environment, or the persisted credential.
	ErrNotLoggedIn = errors.New(`not logged in — run "nimbus login" first`)

	// ErrNoLinkedOrg means no organization could be resolved for this
	// invocation.
	ErrNoLinkedOrg = errors.New(`no linked organization — run "nimbus link" or pass --org`)

	// ErrNoLinkedApp means no application could be resolved for this
	// invocation.
	ErrNoLinkedApp = errors.New(`no linked application — run "nimbus link" or pass --app`)

	// ErrUnauthorized means the server rejected the token (HTTP 401).
	ErrUnauthorized = errors.New(`unauthorized — your session may have expired, run "nimbus login"`)

	// ErrRateLimited means the server throttled the request (HTTP 429).
	ErrRateLimited = errors.New("rate limited — wait a moment and try again")
)

// NotFoundError is an HTTP 404 response. Message carries the
// server-supplied detail when the error body was parseable.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.Message
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// APIError is any non-2xx response that does not map to a more specific
// taxonomy member. StatusCode is always set; Message is the
// server-supplied detail or a synthesized fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return "api error: " + e.Message
}

// InvalidInputError is malformed local input (for example an
// unparsable UUID in an environment variable) detected before any
// network call is made.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Message
}

// InvalidInput constructs an *InvalidInputError with a formatted message.
func InvalidInput(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}

// CorruptStateError means the persisted config file exists but could
// not be parsed. The underlying parse error is preserved for Unwrap so
// callers can inspect it, but the user-facing message points at the
// file rather than JSON internals.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("config file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// IsCorruptState reports whether err is a *CorruptStateError.
func IsCorruptState(err error) bool {
	var corrupt *CorruptStateError
	return errors.As(err, &corrupt)
}
