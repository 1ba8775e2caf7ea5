package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned before any network call when no API key is set.
	ErrNotConfigured = errors.New("weather api key is not configured")
	// ErrMalformedResponse is returned when a 2xx payload lacks the location or current object.
	ErrMalformedResponse = errors.New("weather api response is missing location or current data")
)

// UpstreamStatusError reports a non-2xx provider response. Body is kept for diagnostics only.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("HTTP error (status %d)", e.StatusCode)
}
