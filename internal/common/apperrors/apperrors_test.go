package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorChaining(t *testing.T) {
	ErrBase := New("base error")
	assert.Equal(t, "base error", ErrBase.Error())
	assert.Equal(t, "msg", ErrBase.New("msg").Error())
	assert.ErrorIs(t, ErrBase, ErrBase)

	ErrDerived := ErrBase.New("derived")
	assert.Equal(t, "derived", ErrDerived.Error())
	assert.ErrorIs(t, ErrDerived, ErrBase)

	cause := errors.New("connection refused")
	wrapped := ErrDerived.Msg("request failed")
	assert.Equal(t, "request failed", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
	assert.ErrorIs(t, wrapped, ErrDerived)

	wrapped = ErrDerived.MsgErr("request failed", cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, ErrBase)

	first := fmt.Errorf("first")
	second := fmt.Errorf("second")
	attached := ErrDerived.Err(first, second)
	assert.Equal(t, "derived", attached.Error())
	assert.ErrorIs(t, attached, first)
	assert.ErrorIs(t, attached, second)
}

func TestStatusCode(t *testing.T) {
	ErrBadInput := New("bad input").SetStatusCode(http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, ErrBadInput.StatusCode())

	// derived errors inherit the status code
	assert.Equal(t, http.StatusBadRequest, ErrBadInput.New("bad url").StatusCode())
	assert.Equal(t, http.StatusBadRequest, ErrBadInput.Msg("bad method").StatusCode())

	// a copy can override it without touching the original
	conflict := ErrBadInput.SetStatusCode(http.StatusConflict)
	assert.Equal(t, http.StatusConflict, conflict.StatusCode())
	assert.Equal(t, http.StatusBadRequest, ErrBadInput.StatusCode())
}
