package apperr

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	cause := errors.New("queue is full")
	got := MapError("Circular Queue", pkgerrors.Wrap(cause, "enqueue 60"), CodeFull, MsgFull)

	assert.Equal(t, CodeFull, got.Code)
	assert.Equal(t, "Circular Queue is Full", got.Message)
	assert.ErrorIs(t, got, cause)
	assert.Equal(t, "Circular Queue is Full: enqueue 60: queue is full", got.Error())
}

func TestMapError_Nil(t *testing.T) {
	assert.Nil(t, MapError("Stack", nil, CodeEmpty, MsgEmpty))
	assert.Nil(t, Wrap(nil, CodeFull, "x"))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "bad", New(CodeInvalidInput, "bad", nil).Error())
	assert.Equal(t, "Stack got invalid input: eof",
		NewError("Stack", CodeInvalidInput, MsgInvalidInput, errors.New("eof")).Error())
}
