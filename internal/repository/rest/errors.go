package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const (
	MessageUnauthorized = "No autorizado."
	MessageRequestError = "Error en la solicitud."
)

var (
	ErrNoToken     = errors.New("no backend token for request")
	ErrUnavailable = errors.New("backend unavailable")
)

// APIError is a non-2xx backend answer. Error returns the backend message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, body []byte) *APIError {
	msg := decodeMessage(body)
	if msg == "" {
		if status == http.StatusUnauthorized {
			msg = MessageUnauthorized
		} else {
			msg = MessageRequestError
		}
	}
	return &APIError{StatusCode: status, Message: msg}
}

// decodeMessage reads {"message": ...}; a list of messages is joined with commas.
func decodeMessage(body []byte) string {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Message) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Message, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(envelope.Message, &list); err == nil {
		return strings.Join(list, ",")
	}
	return ""
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
