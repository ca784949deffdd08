package courier

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates required courier credentials or the account id
// are missing from configuration. Fatal to the operation, not the process.
var ErrNotConfigured = errors.New("courier provider not configured")

// APIError is a non-success response from the courier API. Body carries the
// provider's error payload verbatim so operators can diagnose it against the
// provider's documentation.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("courier API error (status %d): %s", e.StatusCode, string(e.Body))
}

// AuthError is a failed token exchange. The provider's error body is
// preserved verbatim.
type AuthError struct {
	StatusCode int
	Body       []byte
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("courier token exchange failed (status %d): %s", e.StatusCode, string(e.Body))
}
