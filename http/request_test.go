package http

import (
	"context"
	"testing"

	"github.com/indigo-web/controller/http/method"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	request := NewRequest(method.GET, "/users")
	require.NotNil(t, request.Headers)
	require.NotNil(t, request.Params)
	require.NotNil(t, request.Vars)
	require.Equal(t, context.Background(), request.Context())

	request.Ctx = nil
	require.NotNil(t, request.Context())
}
