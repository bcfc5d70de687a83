package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateName(t *testing.T) {
	require.Equal(t, "users/list", TemplateName("users", "list"))
	require.Equal(t, "list", TemplateName("", "list"))
}
