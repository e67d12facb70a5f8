package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("HTTP/1.1", func(t *testing.T) {
		v, ok := Parse("HTTP/1.1")
		require.True(t, ok)
		require.Equal(t, HTTP11, v)
	})

	t.Run("HTTP/1.0", func(t *testing.T) {
		v, ok := Parse("HTTP/1.0")
		require.True(t, ok)
		require.Equal(t, HTTP10, v)
	})

	t.Run("unsupported major version", func(t *testing.T) {
		_, ok := Parse("HTTP/2.0")
		require.False(t, ok)
	})

	t.Run("garbage", func(t *testing.T) {
		_, ok := Parse("not-a-version")
		require.False(t, ok)
	})

	t.Run("missing dot", func(t *testing.T) {
		_, ok := Parse("HTTP/11")
		require.False(t, ok)
	})
}

func TestParseBytes(t *testing.T) {
	v, ok := ParseBytes([]byte("HTTP/1.1"))
	require.True(t, ok)
	require.Equal(t, HTTP11, v)
}

func TestString(t *testing.T) {
	require.Equal(t, "HTTP/1.1", HTTP11.String())
	require.Equal(t, "HTTP/1.0", HTTP10.String())
}

func TestValid(t *testing.T) {
	require.True(t, HTTP11.Valid())
	require.False(t, HttpVersion{Major: 2, Minor: 0}.Valid())
}
