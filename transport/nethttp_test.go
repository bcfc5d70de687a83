package transport

import (
	"net/http/httptest"
	"testing"

	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/http/method"
	"github.com/indigo-web/controller/http/mime"
	"github.com/indigo-web/controller/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	t.Run("body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := ResponseWriter{W: rec, DefaultHeaders: map[string]string{"Server": "indigo"}}
		resp := http.NewResponse().
			Code(status.Created).
			ContentType(mime.JSON).
			Header("X-Id", "1", "2").
			String(`{"id":1}`)

		require.NoError(t, rw.Emit(http.NewRequest(method.POST, "/"), resp))
		require.Equal(t, 201, rec.Code)
		require.Equal(t, `{"id":1}`, rec.Body.String())
		require.Equal(t, mime.JSON, rec.Header().Get("Content-Type"))
		require.Equal(t, "indigo", rec.Header().Get("Server"))
		require.Equal(t, []string{"1", "2"}, rec.Header().Values("X-Id"))
	})

	t.Run("override default header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := ResponseWriter{W: rec, DefaultHeaders: map[string]string{"Server": "indigo"}}
		resp := http.NewResponse().Header("Server", "custom")

		require.NoError(t, rw.Emit(nil, resp))
		require.Equal(t, []string{"custom"}, rec.Header().Values("Server"))
	})

	t.Run("HEAD", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resp := http.NewResponse().String("body")

		require.NoError(t, ResponseWriter{W: rec}.Emit(http.NewRequest(method.HEAD, "/"), resp))
		require.Equal(t, 200, rec.Code)
		require.Empty(t, rec.Body.String())
	})

	t.Run("invalid code", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resp := http.NewResponse().Code(42).String("odd")

		var err error
		require.NotPanics(t, func() {
			err = ResponseWriter{W: rec}.Emit(nil, resp)
		})
		require.ErrorIs(t, err, ErrInvalidCode)
		require.False(t, rec.Flushed)
		require.Empty(t, rec.Body.String())
	})
}
