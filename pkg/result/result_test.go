package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "mindvault/pkg/errors"
)

func TestOK(t *testing.T) {
	res := OK(42)
	assert.True(t, res.Success)
	assert.Equal(t, 42, res.Data)
	assert.NoError(t, res.Err())

	data, err := res.Unwrap()
	assert.Equal(t, 42, data)
	assert.NoError(t, err)
}

func TestFail(t *testing.T) {
	cause := errors.New("boom")
	res := Fail[int](cause)
	assert.False(t, res.Success)
	assert.Equal(t, "boom", res.Error)
	assert.ErrorIs(t, res.Err(), cause)

	_, err := res.Unwrap()
	require.Error(t, err)
}

func TestFailMessage(t *testing.T) {
	res := FailMessage[string]("service said no")
	assert.False(t, res.Success)
	assert.True(t, pkgerrors.IsServiceFailure(res.Err()))
}
