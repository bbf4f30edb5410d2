package branding

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Precondition failures: detected client-side, never sent to the network.
var (
	// ErrNoCredential means a write was attempted with no bearer token present.
	ErrNoCredential = errors.New("branding: no credential")
	// ErrNotPermitted means the injected capability check denied the caller.
	ErrNotPermitted = errors.New("branding: caller may not manage branding assets")
)

// TransportError is any non-2xx response outside the statuses with their own
// meaning (404 on a single-type read, 401/403/400 on writes), or would-be
// success responses the client could not use. The backend's body is carried
// for operator-facing messages.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("branding: http %d: %s", e.StatusCode, msg)
}

// AuthError is a 401/403 from a write: the server rejected the credential or
// the caller's authority. Surfaced distinctly so a UI can prompt
// re-authentication instead of showing a generic failure.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("branding: http %d: not authorized", e.StatusCode)
}

// ValidationError is a 400 from a write: the backend rejected the content,
// type, or size. Message is the server's body verbatim so callers can show
// actionable feedback.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("branding: rejected: %s", e.Message)
}

func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// writeError maps a non-2xx write response onto the error taxonomy.
func writeError(status int, body string) error {
	switch status {
	case http.StatusBadRequest:
		return &ValidationError{Message: strings.TrimSpace(body)}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{StatusCode: status, Body: body}
	default:
		return &TransportError{StatusCode: status, Body: body}
	}
}
