package apperr

import "fmt"

// Error codes reported by the driver.
const (
	CodeFull            = 1001
	CodeEmpty           = 1002
	CodeInvalidCapacity = 1003
	CodeInvalidInput    = 1004
	CodeInternal        = 1500
)

// AppError carries a code and a user-facing message on top of the cause.
type AppError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements error.
func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError.
func New(code int, msg string, cause error) *AppError {
	return &AppError{Code: code, Message: msg, Cause: cause}
}

// Wrap wraps err with a code and message. Returns nil if err is nil.
func Wrap(err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, err)
}
