package core

import (
	"errors"
	"fmt"
	"time"
)

// VenueError represents a structured failure reported by a venue, either as
// a non-success HTTP status or as an error-shaped body in a 2xx response.
// It is a value returned to callers, never a panic that unwinds past the
// client boundary.
type VenueError struct {
	// Venue identifies which venue produced the error.
	Venue string `json:"venue"`
	// Code is the canonical failure category.
	Code ErrorCode `json:"code"`
	// Message is the raw venue text, unmodified.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code, or zero when the failure was
	// encoded in a 2xx body.
	HTTPStatus int `json:"http_status,omitempty"`
	// Timestamp is when the error was observed.
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface for VenueError.
func (e *VenueError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("[%s] %s (%d): %s", e.Venue, e.Code, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Venue, e.Code, e.Message)
}

// WithStatus returns the error with the HTTP status filled in.
func (e *VenueError) WithStatus(status int) *VenueError {
	e.HTTPStatus = status
	return e
}

// NewVenueError creates a VenueError with the current timestamp.
func NewVenueError(venue string, code ErrorCode, message string) *VenueError {
	return &VenueError{
		Venue:     venue,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// IsRateLimitError returns true if the error is a rate limit violation.
// Rate limit errors should be retried after the reported delay.
func IsRateLimitError(err error) bool {
	return IsErrorCode(err, ErrCodeRateLimit)
}

// IsWrongSymbolError returns true if the venue rejected the trading pair.
func IsWrongSymbolError(err error) bool {
	return IsErrorCode(err, ErrCodeWrongSymbol)
}

// IsParseError returns true if the response shape was unrecognized.
func IsParseError(err error) bool {
	return IsErrorCode(err, ErrCodeParse)
}

// AsVenueError extracts a VenueError from an error chain, if present.
func AsVenueError(err error) (*VenueError, bool) {
	var venueErr *VenueError
	if errors.As(err, &venueErr) {
		return venueErr, true
	}
	return nil, false
}
