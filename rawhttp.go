// Package rawhttp parses and serializes raw HTTP/1.0 and HTTP/1.1 messages:
// turning wire bytes into structured Request/Response values with streamed
// bodies, and turning those values back into wire bytes, without ever
// opening a socket itself.
//
// Grounded on RawHttp.java as the top-level entry point, and on the
// teacher's indigo package for how a small, configuration-holding type
// (compare config.Config) exposes a handful of top-level operations instead
// of a large interface.
package rawhttp

import (
	"bufio"
	"io"
	"net"
	"os"

	"github.com/flrdv/rawhttp/body"
	"github.com/flrdv/rawhttp/headers"
	"github.com/flrdv/rawhttp/httperror"
	"github.com/flrdv/rawhttp/options"
	"github.com/flrdv/rawhttp/requestline"
	"github.com/flrdv/rawhttp/statusline"
)

// RawHTTP parses and serializes HTTP messages under a fixed set of leniency
// options. Construct one with New or Default; the zero value parses with
// every leniency switch off, the same as New(options.Strict()).
type RawHTTP struct {
	options options.Options
}

// New returns a RawHTTP configured with opts.
func New(opts options.Options) RawHTTP {
	return RawHTTP{options: opts}
}

// Default returns a RawHTTP configured with options.Default(): the same
// lenient defaults RawHttp.java's no-args constructor uses.
func Default() RawHTTP {
	return New(options.Default())
}

// ParseRequest parses a single HTTP request from src. remoteAddr, if
// non-nil, is recorded on the returned Request (spec.md §10).
//
// On any framing error, src is closed before the error is returned (spec.md
// §4.2, §7), mirroring RawHttp.java's unconditional inputStream.close() in
// its parse methods' failure paths.
func (r RawHTTP) ParseRequest(src io.Reader, remoteAddr net.Addr) (req Request, err error) {
	defer closeOnError(src, &err)

	buf := asBufioReader(src)
	newErr := func(msg string, line int) error { return httperror.NewInvalidRequest(msg, line) }

	lines, _, err := readMetadataLines(buf, r.options.IgnoreLeadingEmptyLine, r.options.AllowNewLineWithoutReturn, newErr)
	if err != nil {
		return Request{}, err
	}
	if len(lines) == 0 {
		return Request{}, httperror.NewInvalidRequest("no content", 0)
	}

	rl, err := requestline.Parse(lines[0], r.options.InsertHTTPVersionIfMissing, 1, newErr)
	if err != nil {
		return Request{}, err
	}

	hb, err := parseHeaderLines(lines[1:], newErr)
	if err != nil {
		return Request{}, err
	}

	rl, err = verifyHost(rl, hb, r.options.InsertHostHeaderIfMissing, newErr)
	if err != nil {
		return Request{}, err
	}

	h := hb.Build()

	bodyReader, err := r.bodyReaderFor(buf, h, RequestHasBody(h))
	if err != nil {
		return Request{}, err
	}

	return Request{RequestLine: rl, Headers: h, Body: bodyReader, RemoteAddr: remoteAddr}, nil
}

// ParseRequestBytes parses a single HTTP request out of an in-memory byte
// slice.
func (r RawHTTP) ParseRequestBytes(data []byte) (Request, error) {
	return r.ParseRequest(byteReader(data), nil)
}

// ParseRequestFile reads and eagerly parses a request from a file, the same
// role RawHttp.java's parseRequest(File) plays.
func (r RawHTTP) ParseRequestFile(path string) (Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return Request{}, err
	}
	defer f.Close()

	req, err := r.ParseRequest(f, nil)
	if err != nil {
		return Request{}, err
	}

	return req, eagerlyDrain(&req)
}

// ParseResponse parses a single HTTP response from src. req, if non-nil, is
// the request-line of the request that produced this response, and is
// consulted (spec.md §10, from RawHttp.java's requestLine parameter) to
// decide whether a body is expected for methods like HEAD and CONNECT.
//
// On any framing error, src is closed before the error is returned, the same
// as ParseRequest.
func (r RawHTTP) ParseResponse(src io.Reader, req *requestline.RequestLine) (resp Response, err error) {
	defer closeOnError(src, &err)

	buf := asBufioReader(src)
	newErr := func(msg string, line int) error { return httperror.NewInvalidResponse(msg, line) }

	lines, _, err := readMetadataLines(buf, r.options.IgnoreLeadingEmptyLine, r.options.AllowNewLineWithoutReturn, newErr)
	if err != nil {
		return Response{}, err
	}
	if len(lines) == 0 {
		return Response{}, httperror.NewInvalidResponse("no content", 0)
	}

	sl, err := statusline.Parse(lines[0], r.options.InsertHTTPVersionIfMissing, 1, newErr)
	if err != nil {
		return Response{}, err
	}

	hb, err := parseHeaderLines(lines[1:], newErr)
	if err != nil {
		return Response{}, err
	}

	h := hb.Build()

	bodyReader, err := r.bodyReaderFor(buf, h, ResponseHasBody(sl.Code, req))
	if err != nil {
		return Response{}, err
	}

	return Response{StatusLine: sl, Headers: h, Body: bodyReader}, nil
}

// ParseResponseBytes parses a single HTTP response out of an in-memory byte
// slice.
func (r RawHTTP) ParseResponseBytes(data []byte, req *requestline.RequestLine) (Response, error) {
	return r.ParseResponse(byteReader(data), req)
}

// ParseResponseFile reads and eagerly parses a response from a file.
func (r RawHTTP) ParseResponseFile(path string, req *requestline.RequestLine) (Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return Response{}, err
	}
	defer f.Close()

	resp, err := r.ParseResponse(f, req)
	if err != nil {
		return Response{}, err
	}

	return resp, eagerlyDrainResponse(&resp)
}

func (r RawHTTP) bodyReaderFor(src *bufio.Reader, h headers.Headers, hasBody bool) (*body.Reader, error) {
	if !hasBody {
		return nil, nil
	}

	length, hasLength, err := ParseContentLength(h)
	if err != nil {
		return nil, err
	}

	kind, err := GetBodyType(h, length, hasLength)
	if err != nil {
		return nil, err
	}

	switch kind {
	case body.ContentLength:
		return body.NewContentLength(src, length), nil
	case body.Chunked:
		return body.NewChunked(src, r.options.AllowNewLineWithoutReturn), nil
	default:
		return body.NewCloseTerminated(src), nil
	}
}

// closeOnError closes src if it implements io.Closer and *errp is non-nil,
// mirroring RawHttp.java's parse methods, which always close the underlying
// InputStream once parsing fails partway through. Any error from Close
// itself is discarded in favor of the original parsing error.
func closeOnError(src io.Reader, errp *error) {
	if *errp == nil {
		return
	}

	if c, ok := src.(io.Closer); ok {
		_ = c.Close()
	}
}

// asBufioReader avoids double-wrapping a reader the caller already buffered,
// since parsing and body streaming share a single *bufio.Reader throughout.
func asBufioReader(src io.Reader) *bufio.Reader {
	if buf, ok := src.(*bufio.Reader); ok {
		return buf
	}

	return bufio.NewReader(src)
}

// byteReader adapts a []byte to io.Reader without copying, the Go analogue
// of RawHttp.java wrapping request/response strings in a ByteArrayInputStream.
func byteReader(data []byte) *byteSliceReader {
	return &byteSliceReader{data: data}
}

type byteSliceReader struct {
	data []byte
	pos  int
}

func (b *byteSliceReader) Read(p []byte) (int, error) {
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}

	n := copy(p, b.data[b.pos:])
	b.pos += n
	return n, nil
}

func eagerlyDrain(req *Request) error {
	if req.Body == nil {
		return nil
	}

	data, err := req.Body.Eagerly()
	if err != nil {
		return err
	}

	req.Trailers = req.Body.Trailers()
	req.Body = body.NewDrained(data, req.Body.Type())
	return nil
}

func eagerlyDrainResponse(resp *Response) error {
	if resp.Body == nil {
		return nil
	}

	data, err := resp.Body.Eagerly()
	if err != nil {
		return err
	}

	resp.Trailers = resp.Body.Trailers()
	resp.Body = body.NewDrained(data, resp.Body.Type())
	return nil
}
