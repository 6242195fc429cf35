package failopen

import (
	"context"
	"errors"
	"fmt"
)

// Category is the normalized failure taxonomy shared by every collaborator.
type Category string

const (
	// TransportFailure covers unreachable hosts, timeouts and non-2xx responses.
	TransportFailure Category = "transport_failure"

	// MalformedResponse covers bodies that could not be decoded.
	MalformedResponse Category = "malformed_response"

	// PermissionUnavailable means the render surface refused to show.
	PermissionUnavailable Category = "permission_unavailable"

	// StaleOverlayRace means teardown hit a surface that was already removed.
	StaleOverlayRace Category = "stale_overlay_race"

	// Unclassified is returned by CategoryOf for errors outside the taxonomy.
	Unclassified Category = "unclassified"
)

// Error wraps a collaborator failure with its category.
type Error struct {
	Category   Category
	Component  string
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", e.Component, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Component, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(category Category, component, message string, underlying error) *Error {
	return &Error{
		Category:   category,
		Component:  component,
		Message:    message,
		Underlying: underlying,
	}
}

// Transport classifies err as a TransportFailure. Context deadline errors keep
// their identity through Unwrap so callers can still match them.
func Transport(component, message string, err error) *Error {
	return New(TransportFailure, component, message, err)
}

func Malformed(component, message string, err error) *Error {
	return New(MalformedResponse, component, message, err)
}

// CategoryOf extracts the category from err. Bare context errors are
// transport failures, anything else unknown is Unclassified.
func CategoryOf(err error) Category {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Category
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return TransportFailure
	}
	return Unclassified
}

// Is reports whether err belongs to category c.
func Is(err error, c Category) bool {
	return err != nil && CategoryOf(err) == c
}
