package rawhttp

import (
	"net"

	"github.com/flrdv/rawhttp/body"
	"github.com/flrdv/rawhttp/headers"
	"github.com/flrdv/rawhttp/requestline"
	"github.com/flrdv/rawhttp/statusline"
)

// Request is a parsed HTTP request: its request-line, headers, and an
// optional lazily-streamed body.
//
// Grounded on RawHttpRequest, with the Java type's optional sender
// InetAddress field carried over as RemoteAddr (spec.md §10, supplemented
// from original_source/ since the distilled spec doesn't mention it but
// nothing in Non-goals excludes it).
type Request struct {
	RequestLine requestline.RequestLine
	Headers     headers.Headers
	Body        *body.Reader
	// RemoteAddr is the sender's address, if the caller supplied one to
	// ParseRequest. Nil when parsing in-memory bytes or a file.
	RemoteAddr net.Addr
	// Trailers holds any chunked-body trailer fields, populated once the
	// body has been fully consumed via Eagerly (streaming readers should
	// instead call Body.Trailers() after draining Body themselves).
	Trailers headers.Headers
}

// HasBody reports whether this request carries a body.
func (r Request) HasBody() bool {
	return r.Body != nil
}

// Eagerly fully drains r's body (if any) into memory, replacing Body with an
// equivalent in-memory reader and populating Trailers, mirroring
// RawHttpRequest's eagerly() (spec.md §6, "eagerly() on a parsed message").
// After this returns, Body can be read again from the start by a later call,
// unlike a body read via streaming Read calls.
func (r *Request) Eagerly() error {
	return eagerlyDrain(r)
}

// Response is a parsed HTTP response: its status-line, headers, and an
// optional lazily-streamed body.
type Response struct {
	StatusLine statusline.StatusLine
	Headers    headers.Headers
	Body       *body.Reader
	// Trailers mirrors Request.Trailers.
	Trailers headers.Headers
}

// HasBody reports whether this response carries a body.
func (r Response) HasBody() bool {
	return r.Body != nil
}

// Eagerly fully drains r's body (if any) into memory, replacing Body with an
// equivalent in-memory reader and populating Trailers. Mirrors Request.Eagerly.
func (r *Response) Eagerly() error {
	return eagerlyDrainResponse(r)
}
