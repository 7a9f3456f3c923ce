package services

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned by the courses client when the server answers with a non-2xx status
type HTTPError struct {
	StatusCode int
	StatusText string
	Method     string
	URL        string
	Message    string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.StatusText)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an *HTTPError
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err carries a 404 status
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
