package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgFull            = "is Full"
	MsgEmpty           = "is Empty"
	MsgInvalidCapacity = "has an invalid capacity"
	MsgInvalidInput    = "got invalid input"
	MsgFailed          = "failed"
)

// MapError wraps err with code and a message prefixed by the display name,
// e.g. "Circular Queue is Full".
func MapError(name string, err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf("%s %s", name, msg))
}

// NewError creates an AppError with the standardized message format.
func NewError(name string, code int, msg string, cause error) *AppError {
	return New(code, fmt.Sprintf("%s %s", name, msg), cause)
}
