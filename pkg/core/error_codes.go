package core

import "errors"

// ErrorCode is a canonical failure category.
// Codes provide a stable, machine-readable classification of venue failures
// regardless of the venue's own error vocabulary.
type ErrorCode string

// Error code constants define standardized failure categories across venues.
const (
	// ErrCodeWrongSymbol indicates the trading pair is not recognized.
	ErrCodeWrongSymbol ErrorCode = "WRONG_SYMBOL"
	// ErrCodeRateLimit indicates the venue rate limit was exceeded.
	ErrCodeRateLimit ErrorCode = "RATE_LIMIT"
	// ErrCodeUnauthorized indicates authentication or authorization failure.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeBadRequest indicates invalid request parameters.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeServerError indicates a venue-side failure.
	ErrCodeServerError ErrorCode = "SERVER_ERROR"
	// ErrCodeParse indicates a response shape this layer could not recognize.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeUnknown indicates an unclassified venue failure.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

// IsErrorCode checks if the error carries the specified canonical code.
func IsErrorCode(err error, code ErrorCode) bool {
	var venueErr *VenueError
	if errors.As(err, &venueErr) {
		return venueErr.Code == code
	}
	return false
}
