package api

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is a non-success HTTP response from the backend. StatusCode and
// Body allow structured handling; Error() preserves the legacy text
// contract (raw body, or "HTTP <status>" when the body is empty) so
// callers that match on message substrings keep working.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// AsError unwraps err to the gateway's *Error if one is in the chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// a gateway error (e.g. a transport failure).
func StatusCode(err error) int {
	if apiErr, ok := AsError(err); ok {
		return apiErr.StatusCode
	}
	return 0
}
