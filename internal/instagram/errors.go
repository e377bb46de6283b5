package instagram

import (
	"errors"
	"fmt"
)

// ErrMediaNotFound indicates the Instagram media object no longer exists.
// The Graph API signals this with error code 100 / subcode 33.
// Detect it with errors.Is or the IsMediaNotFound helper.
var ErrMediaNotFound = errors.New("instagram media not found")

// APIError represents a failed Graph API call.
// Code is the remote-supplied error code when the API returned an error
// object, the HTTP status otherwise, and 0 for transport-level failures
// (network error, non-JSON body).
type APIError struct {
	Message string
	Code    int
	Err     error // underlying cause for transport failures, nil otherwise
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("instagram API error (code=%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("instagram API error: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsMediaNotFound checks if an error signals a missing media object
func IsMediaNotFound(err error) bool {
	return errors.Is(err, ErrMediaNotFound)
}

// AsAPIError extracts an *APIError from an error chain.
// Note that media-not-found errors are reported via ErrMediaNotFound and do
// not match here; check IsMediaNotFound first.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
