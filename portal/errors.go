package portal

import (
	"errors"
	"fmt"
	"strings"
)

// TransportError is a non-2xx HTTP response from the portal.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("portal returned HTTP %d", e.StatusCode)
}

// ApplicationError is a non-zero envelope code on an otherwise successful
// transport response. The portal's own message is surfaced verbatim.
type ApplicationError struct {
	Code    int
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portal error code %d", e.Code)
	}
	return e.Message
}

// IsAuthFailure classifies an error as an authorization failure: a 401/403
// transport status, or message text indicating the credential is dead.
// The invalidate-on-auth-failure policy belongs to the caller, not the client.
func IsAuthFailure(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode == 401 || transportErr.StatusCode == 403
	}

	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		msg := strings.ToLower(appErr.Message)
		return strings.Contains(msg, "unauthorized") || strings.Contains(msg, "forbidden")
	}

	return false
}
