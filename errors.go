package swell

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Configuration errors reported synchronously by New, before any network
// activity.
var (
	ErrMissingStore = errors.New(`missing required option "store"`)
	ErrMissingKey   = errors.New(`missing required option "key"`)
)

// APIError is returned for any non-2xx response. The raw status and body are
// surfaced unchanged; the SDK never retries and never swallows failures.
type APIError struct {
	Status  int
	Method  string
	Path    string
	Code    string
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with a 401 status.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// newAPIError builds an APIError from a non-2xx response body, extracting the
// error code and message when the body carries the standard error envelope.
func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{
		Status: status,
		Method: method,
		Path:   path,
		Body:   body,
	}

	var envelope struct {
		Message string `json:"message"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		} else {
			apiErr.Message = envelope.Message
		}
	}

	return apiErr
}
