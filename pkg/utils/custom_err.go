package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")

	ErrTripNotFound  = errors.New("trip not found")
	ErrDatabaseError = errors.New("database error")

	// ErrDestinationMissing is the terminal state of the places flow:
	// no resolved destination exists, the user has to create a trip
	// first.
	ErrDestinationMissing = errors.New("destination missing, create a trip first")

	// ErrMissingConfig marks a request that needs an upstream base URL
	// or API key which was never configured. Degrades to an error
	// response instead of crashing.
	ErrMissingConfig = errors.New("required configuration missing")

	ErrUpstreamError    = errors.New("upstream service error")
	ErrGenerationFailed = errors.New("itinerary generation failed")
	ErrChatUnavailable  = errors.New("chat service unavailable")
)
