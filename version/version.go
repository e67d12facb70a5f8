// Package version implements the HttpVersion value type.
//
// Grounded on the teacher's http/proto.Protocol: a small closed enum with a
// byte-slice fast-path parser (proto.FromBytes) and a String method driven by
// a lookup table. Unlike proto.Protocol, which also represents HTTP/2, an
// HttpVersion here is restricted to the two wire versions this library
// speaks, per spec.md §3.
package version

import (
	"fmt"

	"github.com/flrdv/uf"
)

// HttpVersion is a (major, minor) pair restricted to (1,0) and (1,1).
type HttpVersion struct {
	Major, Minor uint8
}

var (
	HTTP10 = HttpVersion{Major: 1, Minor: 0}
	HTTP11 = HttpVersion{Major: 1, Minor: 1}
)

func (v HttpVersion) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}

// Valid reports whether v is one of the two versions this library supports.
func (v HttpVersion) Valid() bool {
	return v == HTTP10 || v == HTTP11
}

const prefix = "HTTP/"

// Parse parses a token of the exact shape "HTTP/<d>.<d>". Any other shape, or
// a major/minor outside the (1,0)/(1,1) pair, is rejected: the caller decides
// what error and line number to surface.
func Parse(token string) (HttpVersion, bool) {
	// len("HTTP/x.x")
	if len(token) != len(prefix)+3 || token[:len(prefix)] != prefix {
		return HttpVersion{}, false
	}

	major, minor := token[len(prefix)], token[len(prefix)+2]
	if token[len(prefix)+1] != '.' || !isDigit(major) || !isDigit(minor) {
		return HttpVersion{}, false
	}

	v := HttpVersion{Major: major - '0', Minor: minor - '0'}
	if !v.Valid() {
		return HttpVersion{}, false
	}

	return v, true
}

// ParseBytes is the zero-copy variant of Parse for callers holding a byte
// slice, avoiding a string conversion the same way http/proto.FromBytes does.
func ParseBytes(token []byte) (HttpVersion, bool) {
	return Parse(uf.B2S(token))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
