package gemini

import (
	"errors"
	"fmt"
)

// ErrUnexpectedShape indicates a syntactically valid response with no answer
// text and no error payload.
var ErrUnexpectedShape = errors.New("unexpected response structure; no text found")

// HTTPError is a non-2xx status from the endpoint.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.Status, e.Body)
}

// NetworkError is a failure below HTTP: DNS, connect, TLS, or timeout.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Cause) }
func (e *NetworkError) Unwrap() error { return e.Cause }

// MalformedError is a response body that is not valid JSON. Snippet carries
// at most the first 200 bytes for diagnostics.
type MalformedError struct {
	Snippet string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("non-JSON response from server: %q", e.Snippet)
}

// APIError is a structured error payload returned by the API itself.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return "API error: " + e.Message }
