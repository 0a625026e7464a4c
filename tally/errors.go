package tally

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier is returned when an input is neither a numeric proposal id nor a URL containing one.
var ErrInvalidIdentifier = errors.New("invalid proposal identifier")

// TransportError is returned when the request could not be completed or the API answered with a
// non-2xx status. StatusCode is zero when no response was received.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("tally request failed: %v", e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("tally API returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("tally API returned status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GraphQLError is returned when a response carries a GraphQL `errors` array. Payload holds the
// raw JSON of that array.
type GraphQLError struct {
	Payload string
}

func (e *GraphQLError) Error() string {
	return "GraphQL error: " + e.Payload
}

// NotFoundError is returned when the API has no proposal for the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("proposal %s not found", e.ID)
}
