package rawhttp

import (
	"strconv"
	"strings"

	"github.com/flrdv/rawhttp/body"
	"github.com/flrdv/rawhttp/headers"
	"github.com/flrdv/rawhttp/httperror"
	"github.com/flrdv/rawhttp/requestline"
)

// RequestHasBody reports whether a request carrying the given headers should
// have a body, per RFC 7230 §3.3: framing is signaled by Content-Length or
// Transfer-Encoding alone, independent of the method.
//
// Grounded verbatim on RawHttp.java's requestHasBody.
func RequestHasBody(h headers.Headers) bool {
	return h.Contains("Content-Length") || h.Contains("Transfer-Encoding")
}

// ResponseHasBody reports whether a response with the given status code
// should have a body. req, if non-nil, is the request-line of the request
// that produced the response; its method can rule a body out entirely (HEAD
// responses, and successful CONNECT responses) per RFC 7230 §3.3.
//
// Grounded verbatim on RawHttp.java's responseHasBody(StatusLine,RequestLine).
func ResponseHasBody(statusCode int, req *requestline.RequestLine) bool {
	if req != nil {
		switch {
		case strings.EqualFold(req.Method, "HEAD"):
			return false
		case strings.EqualFold(req.Method, "CONNECT") && statusCode/100 == 2:
			return false
		}
	}

	if statusCode/100 == 1 || statusCode == 204 || statusCode == 304 {
		return false
	}

	return true
}

// ParseContentLength returns the value of the first Content-Length header,
// if any.
//
// Grounded on RawHttp.java's parseContentLength.
func ParseContentLength(h headers.Headers) (uint64, bool, error) {
	v, ok := h.GetFirst("Content-Length")
	if !ok {
		return 0, false, nil
	}

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, err
	}

	return n, true, nil
}

// GetBodyType decides a message's body framing given its headers and a
// content length, if one was found via ParseContentLength. Transfer-Encoding
// is checked first: a "chunked" coding always selects chunked framing
// regardless of any Content-Length also present, and any other coding is
// rejected outright. Only when Transfer-Encoding is absent does a known
// Content-Length apply; the absence of both falls back to reading until the
// connection closes.
//
// Grounded on RawHttp.java's getBodyType/parseContentEncoding, which checks
// Transfer-Encoding before Content-Length. The Java version throws on any
// Transfer-Encoding value other than exactly "chunked"; preserved here as
// httperror.UnsupportedTransferEncoding (§9 Open Question: comma-separated
// and identity codings are deliberately unsupported rather than partially
// handled).
func GetBodyType(h headers.Headers, length uint64, hasLength bool) (body.Type, error) {
	if encoding, ok := lastTransferEncoding(h); ok {
		if strings.EqualFold(encoding, "chunked") {
			return body.Chunked, nil
		}

		return 0, httperror.NewUnsupportedTransferEncoding(encoding)
	}

	if hasLength {
		return body.ContentLength, nil
	}

	return body.CloseTerminated, nil
}

// lastTransferEncoding mirrors RawHttp.java's use of the *last* value among
// possibly-repeated Transfer-Encoding headers, not the first.
func lastTransferEncoding(h headers.Headers) (string, bool) {
	values := h.Get("Transfer-Encoding")
	if len(values) == 0 {
		return "", false
	}

	return values[len(values)-1], true
}
