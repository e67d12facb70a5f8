// Package requestline implements the RequestLine value type described in
// spec.md §3 and §4.3.
//
// Grounded on RawHttp.java's parseRequestLine/createUri (the 2-vs-3 token
// rule, the "http://" prefix quirk when the target doesn't already look like
// an absolute URI) and, for the Go idiom, on the teacher's http/method
// package for how a wire token becomes a typed value — except that here the
// method is an open RFC 7230 token rather than a closed enum, per spec.md §3
// ("Method... any RFC 7230 token, not restricted to a fixed set").
package requestline

import (
	"net/url"
	"strings"

	"github.com/scott-ainsworth/go-ascii"

	"github.com/flrdv/rawhttp/httperror"
	"github.com/flrdv/rawhttp/version"
)

// RequestLine is a parsed HTTP request-line: method, request-target, and
// protocol version.
type RequestLine struct {
	Method string
	// Target is the request-target exactly as it appeared on the wire
	// (origin-form path+query, absolute-form URI, authority-form for
	// CONNECT, or "*"), kept for byte-faithful re-serialization.
	Target string
	// URI is Target parsed as a URI, prefixed with "http://" first if it
	// doesn't already start with "http" (RawHttp.java's createUri quirk),
	// so origin-form and authority-form targets parse instead of being
	// rejected as relative references.
	URI     *url.URL
	Version version.HttpVersion
}

// Parse parses a request-line's three (or two) whitespace-separated tokens,
// grounded on RawHttp.java's parseRequestLine. line is 1 for a freshly parsed
// message; callers that reparse an isolated request-line for other purposes
// may pass whatever line number is meaningful to them.
func Parse(raw string, insertVersionIfMissing bool, line int, newErr httperror.ErrorFactory) (RequestLine, error) {
	if raw == "" {
		return RequestLine{}, newErr("empty request line", line)
	}

	parts := strings.Fields(raw)
	if len(parts) != 2 && len(parts) != 3 {
		return RequestLine{}, newErr("invalid request line", line)
	}

	method := parts[0]
	if !IsValidMethodToken(method) {
		return RequestLine{}, newErr("invalid method name", line)
	}

	uri, err := buildURI(parts[1])
	if err != nil {
		return RequestLine{}, newErr("invalid request-target: "+err.Error(), line)
	}

	v := version.HttpVersion{}
	haveVersion := false

	if len(parts) == 3 {
		v, haveVersion = version.Parse(parts[2])
		if !haveVersion {
			return RequestLine{}, newErr("invalid HTTP version", line)
		}
	} else if insertVersionIfMissing {
		v, haveVersion = version.HTTP11, true
	}

	if !haveVersion {
		return RequestLine{}, newErr("missing HTTP version", line)
	}

	return RequestLine{Method: method, Target: parts[1], URI: uri, Version: v}, nil
}

// WithHost returns a copy of r with Target and URI rebuilt against a new
// authority, used by callers that want to redirect a parsed request to a
// different host while keeping its path, query, and method intact. authority
// is validated the same way buildURI validates a request-target, so a
// malformed Host header value is reported as an error rather than silently
// accepted.
func (r RequestLine) WithHost(authority string) (RequestLine, error) {
	if _, err := url.Parse("http://" + authority); err != nil {
		return r, err
	}

	next := *r.URI
	next.Host = authority
	r.URI = &next
	r.Target = next.RequestURI()
	return r, nil
}

// String renders the request-line back to its wire form.
func (r RequestLine) String() string {
	return r.Method + " " + r.Target + " " + r.Version.String()
}

// IsValidMethodToken reports whether s is a legal RFC 7230 "token": one or
// more tchar characters, no separators, no whitespace. Grounded on the
// teacher's http/parser package use of ascii.IsPrint at each grammar-checked
// byte, narrowed further to the RFC token charset since not every printable
// ASCII byte is a legal token character (e.g. '(' and '"' are not).
func IsValidMethodToken(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !ascii.IsPrint(c) || !isTChar(c) {
			return false
		}
	}

	return true
}

// isTChar implements RFC 7230 §3.2.6's tchar production.
func isTChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}

	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}

	return false
}

// buildURI implements RawHttp.java's createUri: request-targets that don't
// already look like an absolute URI (i.e. don't start with "http") are given
// an "http://" scheme before being parsed, purely so net/url's absolute-URI
// parser accepts origin-form and authority-form targets too. This is
// preserved as-is (§9 Design Notes Open Question: kept for RFC transport
// compatibility with the corpus this behavior was distilled from), including
// its quirk of leaving unprefixed any target that merely starts with "http"
// without being an http URI (e.g. "httpx://host" or "httpfoo"), which is
// then parsed exactly as given.
func buildURI(target string) (*url.URL, error) {
	if !strings.HasPrefix(target, "http") {
		target = "http://" + target
	}

	return url.Parse(target)
}
