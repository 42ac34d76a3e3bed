package calendar

import (
	"errors"
	"fmt"
)

// ErrNotInteractive is returned for clicks on days that do not accept them.
var ErrNotInteractive = errors.New("day is not interactive")

// TransportError means no response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("calendar request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("calendar request returned HTTP %d", e.Code)
	}
	return fmt.Sprintf("calendar request returned HTTP %d: %s", e.Code, e.Message)
}

// ApplicationError is a 2xx response carrying status "error".
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	return "calendar update rejected: " + e.Message
}
