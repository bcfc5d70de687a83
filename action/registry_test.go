package action

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func ok(*Context, Args) (Result, error) {
	return String("OK"), nil
}

func TestRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.RegisterFunc("list", ok))

		a, found := r.Lookup("list")
		require.True(t, found)
		result, err := a.Invoke(NewContext(nil, nil), nil)
		require.NoError(t, err)
		require.Equal(t, "OK", result.Body())
	})

	t.Run("missing", func(t *testing.T) {
		_, found := NewRegistry().Lookup(uniuri.New())
		require.False(t, found)
	})

	t.Run("nil registry", func(t *testing.T) {
		var r *Registry
		_, found := r.Lookup("list")
		require.False(t, found)
	})

	t.Run("names are case-sensitive", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.RegisterFunc("list", ok))
		_, found := r.Lookup("LIST")
		require.False(t, found)
	})

	t.Run("duplicate", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.RegisterFunc("list", ok))
		require.ErrorIs(t, r.RegisterFunc("list", ok), ErrAlreadyRegistered)
	})

	t.Run("invalid", func(t *testing.T) {
		r := NewRegistry()
		require.ErrorIs(t, r.RegisterFunc("", ok), ErrEmptyName)
		require.ErrorIs(t, r.Register("nil", nil), ErrNilAction)
		require.ErrorIs(t, r.RegisterFunc("nil", nil), ErrNilAction)
		require.Zero(t, r.Len())
	})

	t.Run("must register panics", func(t *testing.T) {
		r := NewRegistry().MustRegister("list", Func(ok))
		require.Panics(t, func() {
			r.MustRegister("list", Func(ok))
		})
	})

	t.Run("names", func(t *testing.T) {
		r := NewRegistry()
		for _, name := range []string{"show", "index", "edit"} {
			require.NoError(t, r.RegisterFunc(name, ok))
		}

		require.Equal(t, []string{"edit", "index", "show"}, r.Names())
		require.Equal(t, 3, r.Len())
	})
}
