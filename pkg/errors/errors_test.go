package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnNotFoundError(t *testing.T) {
	err := NewColumnNotFoundError("payable", "", []string{"release title", "withheld amount"})

	assert.True(t, IsColumnNotFound(err))
	assert.Contains(t, err.Error(), "could not auto-detect payable column")
	assert.Contains(t, err.Error(), "withheld amount")

	explicit := NewColumnNotFoundError("title", "song", []string{"release title"})
	assert.Contains(t, explicit.Error(), `title column "song" not found`)
}

func TestInvalidContractDataError(t *testing.T) {
	err := NewInvalidContractDataError("no works found in the provided contract data")

	assert.True(t, IsInvalidContractData(err))
	assert.False(t, IsEmptyStatement(err))
	assert.Equal(t, "invalid contract data: no works found in the provided contract data", err.Error())
}

func TestEmptyStatementError(t *testing.T) {
	assert.Equal(t, "no songs found in royalty statement", NewEmptyStatementError("").Error())
	withPath := NewEmptyStatementError("q1.csv")
	assert.True(t, IsEmptyStatement(withPath))
	assert.Contains(t, withPath.Error(), "q1.csv")
}

func TestWrapIO(t *testing.T) {
	assert.NoError(t, WrapIO("read", "f.csv", nil))

	cause := errors.New("permission denied")
	err := WrapIO("read", "f.csv", cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "f.csv")
}

func TestWrapParse(t *testing.T) {
	assert.NoError(t, WrapParse("yaml", "c.yaml", nil))

	cause := errors.New("bad indent")
	err := WrapParse("yaml", "c.yaml", cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "c.yaml")
}

func TestAuthenticationError(t *testing.T) {
	err := &AuthenticationError{Service: "gemini", Message: "no API key configured"}
	assert.ErrorIs(t, err, ErrAPIKeyRequired)
	assert.Contains(t, err.Error(), "gemini")
}
