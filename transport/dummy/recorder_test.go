package dummy

import (
	"errors"
	"testing"

	"github.com/indigo-web/controller/http"
	"github.com/indigo-web/controller/http/status"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Run("records copies", func(t *testing.T) {
		rec := NewRecorder()
		resp := http.NewResponse().String("first")
		require.NoError(t, rec.Emit(nil, resp))
		resp.Code(status.NotFound).String("second")
		require.NoError(t, rec.Emit(nil, resp))

		require.Equal(t, 2, rec.Calls())
		require.Equal(t, "first", string(rec.Emissions()[0].Response.Reveal().Body))
		require.Equal(t, status.NotFound, rec.Last().Reveal().Code)
	})

	t.Run("failing", func(t *testing.T) {
		boom := errors.New("connection reset")
		rec := NewRecorder().Failing(boom)
		require.ErrorIs(t, rec.Emit(nil, http.NewResponse()), boom)
		require.Equal(t, 1, rec.Calls())
	})

	t.Run("reset", func(t *testing.T) {
		rec := NewRecorder()
		require.Nil(t, rec.Last())
		require.NoError(t, rec.Emit(nil, http.NewResponse()))
		rec.Reset()
		require.Zero(t, rec.Calls())
	})
}
