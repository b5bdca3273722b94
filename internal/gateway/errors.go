package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport covers timeouts, DNS failures and refused connections.
	ErrTransport = errors.New("upstream transport failure")
	// ErrUnexpectedStatus is wrapped by every *StatusError.
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	// ErrMalformedPayload means the response body was not the expected JSON envelope.
	ErrMalformedPayload = errors.New("malformed upstream payload")
	// ErrNotFound means the upstream has no such record.
	ErrNotFound = errors.New("upstream record not found")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned %d", ErrUnexpectedStatus, e.Endpoint, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

// Is lets a 404 match ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

func transportError(endpoint string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, endpoint, err)
}

func malformedError(endpoint string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedPayload, endpoint, err)
}

// IsUpstreamFailure reports whether err came from talking to the upstream API.
func IsUpstreamFailure(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrUnexpectedStatus) || errors.Is(err, ErrMalformedPayload)
}
