package domain

import "errors"

// ErrMissingUserID is returned when the trigger record carries no usable
// user_id.
var ErrMissingUserID = errors.New("missing user_id in record")

// ErrNotFound is returned by repositories when nothing matches.
var ErrNotFound = errors.New("not found")

// RequestError wraps a failure to decode the inbound body.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

// TransportError means the outbound provider call never produced a response:
// DNS, connection refused, timeout, context cancellation.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError means the provider answered, but with a body that could not
// be relayed (unreadable or not JSON).
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }
