// Package options holds the leniency switches that parameterize the parser.
//
// There is no builder DSL here on purpose: Options is a plain value struct,
// the same way config.Config holds plain data in the teacher library. Build
// one with Default or Strict, or construct it directly.
package options

// Options controls how tolerant the parser is of deviations from strict
// RFC 7230 framing. All fields default to true (Default); Strict turns every
// one of them off.
type Options struct {
	// AllowNewLineWithoutReturn makes a bare LF terminate a metadata line.
	// Otherwise only CRLF does, and a bare LF is a framing error.
	AllowNewLineWithoutReturn bool

	// IgnoreLeadingEmptyLine skips leading empty line(s) before the start-line
	// instead of treating the first of them as an empty start-line.
	IgnoreLeadingEmptyLine bool

	// InsertHTTPVersionIfMissing accepts a start-line with only two
	// whitespace-separated tokens, assigning it HTTP/1.1.
	InsertHTTPVersionIfMissing bool

	// InsertHostHeaderIfMissing accepts a request with no Host header when its
	// request-target is in absolute-URI form, synthesizing a Host header from
	// the URI authority.
	InsertHostHeaderIfMissing bool
}

// Default returns the lenient configuration: every switch enabled.
func Default() Options {
	return Options{
		AllowNewLineWithoutReturn:  true,
		IgnoreLeadingEmptyLine:     true,
		InsertHTTPVersionIfMissing: true,
		InsertHostHeaderIfMissing:  true,
	}
}

// Strict returns the RFC-literal configuration: every switch disabled.
func Strict() Options {
	return Options{}
}
