package reminders

import (
	"errors"
	"fmt"
)

// Error codes surfaced in tool error envelopes.
const (
	CodeAppleScript = "APPLESCRIPT_ERROR"
	CodePermission  = "PERMISSION_DENIED"
	CodeTimeout     = "TIMEOUT"
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// Error is the typed failure carried across the scripting boundary.
// Recoverable signals whether a retry can possibly succeed without
// out-of-band intervention.
type Error struct {
	Code        string
	Message     string
	Recoverable bool
}

func (e *Error) Error() string { return e.Message }

// NewAppleScriptError wraps a failure reported by the Reminders app.
func NewAppleScriptError(message string) *Error {
	return &Error{Code: CodeAppleScript, Message: message, Recoverable: true}
}

// NewPermissionError reports missing automation consent. Not recoverable
// until the user grants access in System Settings.
func NewPermissionError(message string) *Error {
	return &Error{Code: CodePermission, Message: message, Recoverable: false}
}

// NewTimeoutError reports a forcibly terminated script run.
func NewTimeoutError(message string) *Error {
	return &Error{Code: CodeTimeout, Message: message, Recoverable: true}
}

// NewNotFoundError reports an absent list or reminder.
func NewNotFoundError(resource, identifier string) *Error {
	return &Error{
		Code:        CodeNotFound,
		Message:     fmt.Sprintf("%s not found: %s", resource, identifier),
		Recoverable: true,
	}
}

// NewValidationError reports malformed input caught before any script runs.
func NewValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Recoverable: true}
}

// ErrorResponse is the JSON error envelope returned from tool handlers.
type ErrorResponse struct {
	Error       bool   `json:"error"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable"`
}

// FormatError converts any error into the standard envelope. Errors outside
// the typed taxonomy report as UNKNOWN_ERROR and non-recoverable.
func FormatError(err error) ErrorResponse {
	var e *Error
	if errors.As(err, &e) {
		return ErrorResponse{Error: true, Code: e.Code, Message: e.Message, Recoverable: e.Recoverable}
	}
	return ErrorResponse{Error: true, Code: CodeUnknown, Message: err.Error(), Recoverable: false}
}
