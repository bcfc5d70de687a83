package mime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccepts(t *testing.T) {
	require.True(t, Accepts("application/json", JSON))
	require.True(t, Accepts("text/html, application/json;q=0.9", JSON))
	require.False(t, Accepts("text/html, */*;q=0.8", JSON))
	require.False(t, Accepts("", JSON))
}
