package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx reply from the game service, carrying the status code
// and whatever message the server included.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("game service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("game service returned status %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the error is a 404.
func (e *Error) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// errorFromResponse extracts the server's message field when the body is the
// service's JSON error shape, falling back to the raw body text.
func errorFromResponse(status int, raw []byte) *Error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return &Error{StatusCode: status, Message: body.Message}
		}
		if body.Error != "" {
			return &Error{StatusCode: status, Message: body.Error}
		}
	}
	return &Error{StatusCode: status, Message: strings.TrimSpace(string(raw))}
}
