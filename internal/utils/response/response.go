// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Success responses carry the computed result as-is. Error responses
// always look like:
//
//	{ "status": "error", "error": "field PNR must be 10 characters long" }
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases and for bare
// acknowledgements such as the health check.
//
// Error is omitted when empty, so a success envelope encodes as
// { "status": "ok" }.
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error,omitempty"`
}

// Status string constants; a typo in a constant name is a compile error,
// a typo in a literal is a silent "eroor" on the wire.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes data as JSON with the given HTTP status code.
//
// Order matters: Header() → WriteHeader() → body. Headers are locked once
// WriteHeader (or the first Write) runs.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")

	// The status line must go out before any body bytes.
	w.WriteHeader(status)

	// Encode streams straight into w and appends a newline.
	return json.NewEncoder(w).Encode(data)
}

// OK is the body of a bare success response, e.g. a health check.
func OK() Response {
	return Response{Status: StatusOK}
}

// GeneralError wraps any Go error into the standard Response shape. Use it
// for decode failures and for errors that carry no per-field detail.
//
//	response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts validator field errors into a single readable
// Response, one sentence per failing field joined with ", ".
//
// Example output:
//
//	{ "status": "error", "error": "field PNR must be 10 characters long, field Train is required" }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		// ActualTag is the rule that failed; Param is its argument
		// ("10" for len=10).
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "notblank":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must not be blank", e.Field()))
		case "min":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must have at least %s entries", e.Field(), e.Param()))
		case "len":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be %s characters long", e.Field(), e.Param()))
		case "number":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must contain only digits", e.Field()))
		// Namespace pinpoints the element, e.g. Student.Marks[2].Score.
		case "gte":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at least %s, got %v", e.Namespace(), e.Param(), e.Value()))
		case "lte":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at most %s, got %v", e.Namespace(), e.Param(), e.Value()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}
