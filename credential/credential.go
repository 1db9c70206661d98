// Package credential captures, validates, and persists the portal credential pair.
//
// A credential is the bearer-token Authorization header plus the Cookie
// header of an authenticated portal session, usually lifted from a raw
// request the user copies out of their browser's developer tools.
package credential

import (
	"fmt"
	"strings"
)

// bearerPrefix is the required scheme prefix of the Authorization header.
const bearerPrefix = "Bearer "

// Credential is the header pair required by every portal request.
type Credential struct {
	Authorization string `json:"authorization"`
	Cookie        string `json:"cookie"`
}

// ValidationError reports a credential that is structurally unusable.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid credential: %s", e.Reason)
}

// Validate checks the structural invariants of the credential pair.
// A credential failing validation must never be persisted or reused.
func (c Credential) Validate() error {
	if c.Authorization == "" {
		return &ValidationError{Reason: "authorization header is empty"}
	}
	if !strings.HasPrefix(c.Authorization, bearerPrefix) {
		return &ValidationError{Reason: `authorization header must start with "Bearer "`}
	}
	if strings.TrimSpace(strings.TrimPrefix(c.Authorization, bearerPrefix)) == "" {
		return &ValidationError{Reason: "bearer token is empty"}
	}
	if c.Cookie == "" {
		return &ValidationError{Reason: "cookie header is empty"}
	}
	return nil
}

// Token returns the raw bearer token without the scheme prefix.
func (c Credential) Token() string {
	return strings.TrimPrefix(c.Authorization, bearerPrefix)
}
