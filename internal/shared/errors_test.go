package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataAccessErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDataAccessError("revenue data", cause)

	// The message names the operation and nothing else; the cause only
	// travels through Unwrap for logging.
	assert.Equal(t, "failed to fetch revenue data", err.Error())
	require.ErrorIs(t, err, cause)
}
