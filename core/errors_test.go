package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EINVALID, "unsupported rotation %d", 45)
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "unsupported rotation 45", UserMessage(err))
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "[123]")
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.False(t, IsConfigurationError(nil))
}

func TestWrappedErrors(t *testing.T) {
	cause := errors.New("disk on fire")
	err := WrapError(cause, EINTERNAL, "cannot encode %s", "svg")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, EINTERNAL, Code(err))
	assert.Equal(t, "cannot encode svg", UserMessage(err))
	//
	outer := fmt.Errorf("surface: %w", err)
	assert.Equal(t, EINTERNAL, Code(outer))
	assert.False(t, IsConfigurationError(outer))
	//
	plain := errors.New("plain")
	assert.Equal(t, EINTERNAL, Code(plain))
	assert.Equal(t, "internal error", UserMessage(plain))
	//
	coded := WrapError(nil, EMISSING, "no font")
	assert.Equal(t, EMISSING, Code(coded))
	assert.Equal(t, "no font", UserMessage(coded))
}
