package validator

import (
	"testing"

	"attendbot/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	Kind string `validate:"oneof=a b"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "x", Kind: "a"}))

	err := Struct(sample{Kind: "c"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidCommand, appErr.Code)
	assert.Contains(t, appErr.Err.Error(), "Name(required)")
	assert.Contains(t, appErr.Err.Error(), "Kind(oneof)")
}

func TestStructWithCode(t *testing.T) {
	err := StructWithCode(sample{}, errors.ErrCodeInvalidConfig, "bad config")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfig))
}
