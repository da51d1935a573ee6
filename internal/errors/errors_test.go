package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	dnderr "github.com/KirkDiggler/wilran/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := dnderr.NotFoundf("move '%s' not found", "ember")
	wrapped := dnderr.Wrap(base, "resolving attack")

	assert.True(t, dnderr.IsNotFound(wrapped))
	assert.Equal(t, "resolving attack: move 'ember' not found", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := dnderr.Wrap(fmt.Errorf("boom"), "loading catalog")
	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
}

func TestWithMeta(t *testing.T) {
	err := dnderr.InvalidTypef("type %q not in chart", "sound").WithMeta("type", "sound")
	assert.True(t, dnderr.IsInvalidType(err))
	assert.Equal(t, "sound", dnderr.GetMeta(err)["type"])

	wrapped := dnderr.WrapWithCode(err, dnderr.CodeValidation, "profile")
	assert.True(t, dnderr.IsValidation(wrapped))
	assert.Equal(t, "sound", dnderr.GetMeta(wrapped)["type"])
}

func TestSentinels(t *testing.T) {
	err := fmt.Errorf("cli: %w", dnderr.Wrapf(dnderr.Validationf("%s has no PP left", "PIKACHU"), "use move"))

	assert.True(t, stderrors.Is(err, dnderr.ErrValidation))
	assert.False(t, stderrors.Is(err, dnderr.ErrNotFound))
	assert.True(t, dnderr.IsValidation(err))
	assert.False(t, stderrors.Is(fmt.Errorf("plain"), dnderr.ErrValidation))
}

func TestWrapWithCode_Nil(t *testing.T) {
	assert.Nil(t, dnderr.WrapWithCode(nil, dnderr.CodeValidation, "nothing"))
}
