package nhl

import (
	"errors"
	"fmt"
)

// StatusError captures a non-200 response from the stats API.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("nhl: unexpected status %d for %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("nhl: unexpected status %d for %s", e.StatusCode, e.URL)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
