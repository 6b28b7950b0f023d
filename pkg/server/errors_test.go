package server

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errDummy = errors.New("dummy")

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(errDummy, ErrNotFound, "city %s not found", "Warszawa")

	assert.True(t, errors.Is(err, errDummy))
	assert.Equal(t, ErrNotFound, CodeOf(err))
	assert.Equal(t, "city Warszawa not found: dummy", err.Error())

	var ierr *Error
	assert.True(t, errors.As(err, &ierr))
	assert.Equal(t, "city Warszawa not found", ierr.Message())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrUnknown, CodeOf(errDummy))
	assert.Equal(t, ErrUnknown, CodeOf(nil))

	wrapped := fmt.Errorf("outer: %w", NewErrorf(ErrConflict, "route used"))
	assert.Equal(t, ErrConflict, CodeOf(wrapped))
	assert.Equal(t, "conflict", CodeOf(wrapped).String())
}
