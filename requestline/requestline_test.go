package requestline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flrdv/rawhttp/httperror"
)

func newErrFactory() httperror.ErrorFactory {
	return func(msg string, line int) error { return httperror.NewInvalidRequest(msg, line) }
}

func TestParse_ThreeTokens(t *testing.T) {
	rl, err := Parse("GET /index.html HTTP/1.1", true, 1, newErrFactory())
	require.NoError(t, err)
	require.Equal(t, "GET", rl.Method)
	require.Equal(t, "/index.html", rl.Target)
	require.True(t, rl.Version.Valid())
}

func TestParse_TwoTokensInsertsVersion(t *testing.T) {
	rl, err := Parse("GET /index.html", true, 1, newErrFactory())
	require.NoError(t, err)
	require.Equal(t, "GET", rl.Method)
}

func TestParse_TwoTokensWithoutInsertFails(t *testing.T) {
	_, err := Parse("GET /index.html", false, 1, newErrFactory())
	require.Error(t, err)
}

func TestParse_EmptyLine(t *testing.T) {
	_, err := Parse("", true, 1, newErrFactory())
	require.Error(t, err)
}

func TestParse_InvalidMethod(t *testing.T) {
	_, err := Parse("G(T /x HTTP/1.1", true, 1, newErrFactory())
	require.Error(t, err)
}

func TestParse_OriginFormGetsHTTPPrefix(t *testing.T) {
	rl, err := Parse("GET /a/b?c=d HTTP/1.1", true, 1, newErrFactory())
	require.NoError(t, err)
	require.Equal(t, "/a/b", rl.URI.Path)
	require.Equal(t, "c=d", rl.URI.RawQuery)
}

func TestParse_AbsoluteFormKeepsScheme(t *testing.T) {
	rl, err := Parse("GET http://example.com/a HTTP/1.1", true, 1, newErrFactory())
	require.NoError(t, err)
	require.Equal(t, "example.com", rl.URI.Host)
}

func TestWithHost(t *testing.T) {
	rl, err := Parse("GET /a HTTP/1.1", true, 1, newErrFactory())
	require.NoError(t, err)

	next, err := rl.WithHost("example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", next.URI.Host)
	require.Equal(t, "/a", next.Target)
}

func TestWithHost_InvalidAuthorityFails(t *testing.T) {
	rl, err := Parse("GET /a HTTP/1.1", true, 1, newErrFactory())
	require.NoError(t, err)

	_, err = rl.WithHost("exa mple.com/\x7f")
	require.Error(t, err)
}

func TestIsValidMethodToken(t *testing.T) {
	require.True(t, IsValidMethodToken("GET"))
	require.True(t, IsValidMethodToken("PROPFIND"))
	require.False(t, IsValidMethodToken(""))
	require.False(t, IsValidMethodToken("GE T"))
	require.False(t, IsValidMethodToken("GE(T"))
}
