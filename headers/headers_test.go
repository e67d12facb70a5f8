package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_With(t *testing.T) {
	h := NewBuilder().
		With("Content-Type", "text/plain", 2).
		With("X-Multi", "a", 3).
		With("X-Multi", "b", 4).
		Build()

	t.Run("GetFirst is case-insensitive", func(t *testing.T) {
		v, ok := h.GetFirst("content-type")
		require.True(t, ok)
		require.Equal(t, "text/plain", v)
	})

	t.Run("Get returns every value in order", func(t *testing.T) {
		require.Equal(t, []string{"a", "b"}, h.Get("x-multi"))
	})

	t.Run("Get on a missing name is empty", func(t *testing.T) {
		require.Empty(t, h.Get("Missing"))
	})

	t.Run("Count", func(t *testing.T) {
		require.Equal(t, 2, h.Count("X-Multi"))
		require.Equal(t, 0, h.Count("Missing"))
	})

	t.Run("LineNumbers", func(t *testing.T) {
		require.Equal(t, []int{3, 4}, h.LineNumbers("X-Multi"))
	})

	t.Run("Len", func(t *testing.T) {
		require.Equal(t, 3, h.Len())
	})
}

func TestBuilder_Overwrite(t *testing.T) {
	b := NewBuilder().
		With("Host", "old.example", 2).
		With("Accept", "*/*", 3)

	b.Overwrite("Host", "new.example", 2)
	h := b.Build()

	require.Equal(t, 1, h.Count("Host"))

	v, ok := h.GetFirst("Host")
	require.True(t, ok)
	require.Equal(t, "new.example", v)

	// insertion order of the untouched entry is preserved
	require.Equal(t, "Accept", h.Entries()[1].Name)
}

func TestBuilder_OverwriteWhenAbsentAppends(t *testing.T) {
	h := NewBuilder().Overwrite("Host", "example.com", 0).Build()

	require.True(t, h.Contains("Host"))
	require.Equal(t, 1, h.Len())
}

func TestHeaders_Entries(t *testing.T) {
	h := NewBuilder().With("A", "1", 2).With("B", "2", 3).Build()

	var names []string
	for _, e := range h.Entries() {
		names = append(names, e.Name)
	}

	require.Equal(t, []string{"A", "B"}, names)
}
