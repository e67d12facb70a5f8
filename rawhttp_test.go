package rawhttp

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flrdv/rawhttp/body"
	"github.com/flrdv/rawhttp/requestline"
)

func TestParseRequest_Simple(t *testing.T) {
	raw := "GET /index.html HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\n"

	req, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.NoError(t, err)

	require.Equal(t, "GET", req.RequestLine.Method)
	require.Equal(t, "/index.html", req.RequestLine.Target)

	host, ok := req.Headers.GetFirst("Host")
	require.True(t, ok)
	require.Equal(t, "example.com", host)

	require.False(t, req.HasBody())
}

func TestParseRequest_ContentLengthBody(t *testing.T) {
	raw := "POST /submit HTTP/1.1\r\nHost: example.com\r\nContent-Length: 5\r\n\r\nhello"

	req, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.NoError(t, err)
	require.True(t, req.HasBody())

	data, err := req.Body.Eagerly()
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}

func TestParseRequest_ChunkedBody(t *testing.T) {
	raw := "POST /submit HTTP/1.1\r\nHost: example.com\r\nTransfer-Encoding: chunked\r\n\r\n4\r\nWiki\r\n0\r\n\r\n"

	req, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.NoError(t, err)
	require.True(t, req.HasBody())

	data, err := req.Body.Eagerly()
	require.NoError(t, err)
	require.Equal(t, "Wiki", string(data))
}

func TestParseRequest_HostFromRequestLine(t *testing.T) {
	raw := "GET http://example.com/index.html HTTP/1.1\r\n\r\n"

	req, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.NoError(t, err)

	host, ok := req.Headers.GetFirst("Host")
	require.True(t, ok)
	require.Equal(t, "example.com", host)
}

func TestParseRequest_MissingHostStrict(t *testing.T) {
	opts := Default()
	opts.options.InsertHostHeaderIfMissing = false

	raw := "GET /index.html HTTP/1.1\r\n\r\n"
	_, err := opts.ParseRequest(strings.NewReader(raw), nil)
	require.Error(t, err)
}

func TestParseRequest_ConflictingHost(t *testing.T) {
	raw := "GET http://example.com/index.html HTTP/1.1\r\nHost: other.com\r\n\r\n"
	_, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.Error(t, err)
}

func TestParseRequest_DuplicateHostHeader(t *testing.T) {
	raw := "GET /index.html HTTP/1.1\r\nHost: a.com\r\nHost: b.com\r\n\r\n"
	_, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.Error(t, err)
}

func TestParseResponse_NoBodyStatuses(t *testing.T) {
	raw := "HTTP/1.1 204 No Content\r\n\r\n"
	resp, err := Default().ParseResponse(strings.NewReader(raw), nil)
	require.NoError(t, err)
	require.False(t, resp.HasBody())
}

func TestParseResponse_HeadRequestSuppressesBody(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\n"
	req := requestline.RequestLine{Method: "HEAD"}

	resp, err := Default().ParseResponse(strings.NewReader(raw), &req)
	require.NoError(t, err)
	require.False(t, resp.HasBody())
}

func TestParseResponse_CloseTerminatedBody(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n\r\nno length given here"
	resp, err := Default().ParseResponse(strings.NewReader(raw), nil)
	require.NoError(t, err)
	require.True(t, resp.HasBody())

	data, err := resp.Body.Eagerly()
	require.NoError(t, err)
	require.Equal(t, "no length given here", string(data))
}

func TestRequestHasBody(t *testing.T) {
	raw := "POST /x HTTP/1.1\r\nHost: a\r\n\r\n"
	req, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.NoError(t, err)
	require.False(t, RequestHasBody(req.Headers))
}

func TestGetBodyType_UnsupportedTransferEncoding(t *testing.T) {
	raw := "POST /x HTTP/1.1\r\nHost: a\r\nTransfer-Encoding: gzip\r\n\r\n"
	_, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.Error(t, err)
}

func TestGetBodyType_ChunkedWinsOverContentLength(t *testing.T) {
	raw := "POST /x HTTP/1.1\r\nHost: a\r\nContent-Length: 100\r\nTransfer-Encoding: chunked\r\n\r\n4\r\nWiki\r\n0\r\n\r\n"
	req, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.NoError(t, err)
	require.True(t, req.HasBody())

	data, err := req.Body.Eagerly()
	require.NoError(t, err)
	require.Equal(t, "Wiki", string(data))
}

func TestGetBodyType_InvalidTransferEncodingIgnoresContentLength(t *testing.T) {
	raw := "POST /x HTTP/1.1\r\nHost: a\r\nContent-Length: 5\r\nTransfer-Encoding: gzip\r\n\r\nhello"
	_, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.Error(t, err)
}

type closeTrackingReader struct {
	io.Reader
	closed bool
}

func (c *closeTrackingReader) Close() error {
	c.closed = true
	return nil
}

func TestParseRequest_ClosesSourceOnFramingError(t *testing.T) {
	src := &closeTrackingReader{Reader: strings.NewReader("GET /x HTTP/1.1\r\nHost a.com\r\n\r\n")}

	_, err := Default().ParseRequest(src, nil)
	require.Error(t, err)
	require.True(t, src.closed)
}

func TestParseRequest_DoesNotCloseSourceOnSuccess(t *testing.T) {
	src := &closeTrackingReader{Reader: strings.NewReader("GET /x HTTP/1.1\r\nHost: a.com\r\n\r\n")}

	_, err := Default().ParseRequest(src, nil)
	require.NoError(t, err)
	require.False(t, src.closed)
}

func TestEagerly_PreservesChunkedType(t *testing.T) {
	raw := "POST /x HTTP/1.1\r\nHost: a\r\nTransfer-Encoding: chunked\r\n\r\n4\r\nWiki\r\n0\r\n\r\n"
	req, err := Default().ParseRequest(strings.NewReader(raw), nil)
	require.NoError(t, err)

	require.NoError(t, req.Eagerly())
	require.Equal(t, body.Chunked, req.Body.Type())

	data, err := req.Body.Eagerly()
	require.NoError(t, err)
	require.Equal(t, "Wiki", string(data))
}
