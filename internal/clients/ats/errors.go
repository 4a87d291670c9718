package ats

import (
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"net/http"
)

var (
	ErrConnectivity = errors.New("could not reach the server")
	ErrUnauthorized = errors.New("not authorized")
	ErrNotFound     = errors.New("not found")
)

// APIError is any non-2xx response. Message carries the server's own message
// field verbatim when the body had one; pages display it as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func newAPIError(statusCode int, body []byte) *APIError {

	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	return &APIError{StatusCode: statusCode, Message: payload.Message}
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}
