package driver

import (
	"errors"

	"github.com/huynhanx03/go-linear/pkg/common/apperr"
	"github.com/huynhanx03/go-linear/pkg/datastructs/queue"
	"github.com/huynhanx03/go-linear/pkg/datastructs/stack"
)

// classify maps a data-structure error to an AppError whose message starts
// with name, e.g. "Queue is Full".
func classify(name string, err error) *apperr.AppError {
	switch {
	case errors.Is(err, queue.ErrFull), errors.Is(err, stack.ErrFull):
		return apperr.MapError(name, err, apperr.CodeFull, apperr.MsgFull)
	case errors.Is(err, queue.ErrEmpty), errors.Is(err, stack.ErrEmpty):
		return apperr.MapError(name, err, apperr.CodeEmpty, apperr.MsgEmpty)
	case errors.Is(err, queue.ErrInvalidCapacity), errors.Is(err, stack.ErrInvalidCapacity):
		return apperr.MapError(name, err, apperr.CodeInvalidCapacity, apperr.MsgInvalidCapacity)
	default:
		return apperr.MapError(name, err, apperr.CodeInternal, apperr.MsgFailed)
	}
}
