package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a failed backend call. Message carries the server-provided text
// when the response body held one; callers surface it to the user in place
// of a generic fallback.
type Error struct {
	Status  int
	Message string
	Code    string
	Details string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

// Error codes the backend is known to emit.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInternalError = "INTERNAL_ERROR"
)

// errorPayload mirrors the backend's error body. Some endpoints use "error",
// others "message"; both are accepted.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	apiErr.Message = payload.Error
	if apiErr.Message == "" {
		apiErr.Message = payload.Message
	}
	apiErr.Code = payload.Code
	apiErr.Details = payload.Details
	return apiErr
}
