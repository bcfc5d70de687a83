package status

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	require.Equal(t, Status("OK"), Text(OK))
	require.Equal(t, Status("Not Found"), Text(NotFound))
	require.Equal(t, Status("Loop Detected"), Text(LoopDetected))
	require.Equal(t, Status("Unknown Status Code"), Text(599))
}

func TestIsError(t *testing.T) {
	require.False(t, IsError(OK))
	require.False(t, IsError(Found))
	require.True(t, IsError(NotFound))
	require.True(t, IsError(InternalServerError))
}

func TestIsValid(t *testing.T) {
	require.True(t, IsValid(OK))
	require.True(t, IsValid(999))
	require.False(t, IsValid(0))
	require.False(t, IsValid(42))
	require.False(t, IsValid(1000))
}

func TestCodeOf(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		require.Equal(t, InternalServerError, CodeOf(fmt.Errorf("boom"), InternalServerError))
	})

	t.Run("http error", func(t *testing.T) {
		require.Equal(t, NotFound, CodeOf(ErrNotFound, InternalServerError))
	})

	t.Run("wrapped http error", func(t *testing.T) {
		err := fmt.Errorf("lookup user: %w", ErrForbidden)
		require.Equal(t, Forbidden, CodeOf(err, InternalServerError))
	})
}
