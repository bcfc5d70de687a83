package kv

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getHeaders := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("hello", "Pavlo")
	}

	t.Run("get", func(t *testing.T) {
		kv := getHeaders()
		value, found := kv.Get("HELLO")
		require.True(t, found)
		require.Equal(t, "World", value)

		_, found = kv.Get("missing")
		require.False(t, found)
		require.Empty(t, kv.Value("missing"))
	})

	t.Run("values", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, []string{"World", "Pavlo"}, slices.Collect(kv.Values("hello")))
		require.Empty(t, slices.Collect(kv.Values("missing")))
	})

	t.Run("early stop", func(t *testing.T) {
		var first string
		for value := range getHeaders().Values("hello") {
			first = value
			break
		}

		require.Equal(t, "World", first)
	})

	t.Run("has", func(t *testing.T) {
		kv := getHeaders()
		require.True(t, kv.Has("lorem"))
		require.False(t, kv.Has("ipsum"))
	})
}
