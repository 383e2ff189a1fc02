package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

const maxErrorBody = 1 << 20

const (
	msgInvalidData     = "Invalid data. Check the fields."
	msgBadCredentials  = "Invalid email or password."
	msgForbidden       = "You do not have permission to access this resource."
	msgUnavailable     = "Service unavailable. Try again later."
	msgRateLimited     = "Too many attempts. Wait a moment and try again."
	msgServerProblem   = "Server problem. Try again later."
	msgNetworkProblem  = "No connection or the request timed out. Try again."
	msgInvalidResponse = "invalid response from server"
)

// ErrInvalidLoginResponse is returned when a successful login reply carries no email.
var ErrInvalidLoginResponse = errors.New("invalid login response")

// HTTPError is a completed request with a non-2xx status.
type HTTPError struct {
	Status int
	// Message is human readable and already mapped from the status.
	Message string
	// Body is the raw response body, trimmed.
	Body string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NetworkError is a request that produced no response: refused connections,
// DNS failures and attempt timeouts.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s (%s %s: %v)", msgNetworkProblem, e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the attempt ran out of time.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// ValidationError is raised locally before any request is sent.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// UserMessage returns the message to show for err without transport details.
func UserMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return msgNetworkProblem
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return err.Error()
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}

// DecodeError consumes and closes the body of a failed response.
func DecodeError(resp *http.Response) *HTTPError {
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	raw := strings.TrimSpace(string(data))

	return &HTTPError{
		Status:  resp.StatusCode,
		Message: StatusMessage(resp.StatusCode, bodyMessage(raw)),
		Body:    raw,
	}
}

// StatusMessage maps a status to the message shown to the user. bodyMsg is the
// message extracted from the response, possibly empty.
func StatusMessage(status int, bodyMsg string) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return withFallback(bodyMsg, msgInvalidData)
	case http.StatusUnauthorized:
		return msgBadCredentials
	case http.StatusForbidden:
		return msgForbidden
	case http.StatusNotFound:
		return msgUnavailable
	case http.StatusTooManyRequests:
		return msgRateLimited
	default:
		return withFallback(bodyMsg, msgServerProblem)
	}
}

// bodyMessage reads {"message": "..."} bodies, JSON strings and plain text.
func bodyMessage(raw string) string {
	if raw == "" {
		return ""
	}

	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return raw
	}

	switch v := data.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		if msg, ok := v["message"].(string); ok {
			return strings.TrimSpace(msg)
		}
	}

	return ""
}

func withFallback(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
