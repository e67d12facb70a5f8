// Package statusline implements the StatusLine value type described in
// spec.md §3 and §4.3.
//
// Grounded on RawHttp.java's parseStatusLine: the three-way disambiguation
// between "code", "code reason", and "version code reason" depending on
// whether the first token starts with "HTTP", and the up-to-3-token split
// that folds any extra whitespace-separated words into the reason phrase
// rather than rejecting them.
package statusline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/flrdv/rawhttp/httperror"
	"github.com/flrdv/rawhttp/version"
)

// StatusLine is a parsed HTTP status-line: protocol version, status code,
// and reason phrase.
type StatusLine struct {
	Version version.HttpVersion
	Code    int
	Reason  string
}

// statusCodePattern mirrors RawHttp.java's exact Pattern.compile("\\d{3}"):
// any three digits, leading zero included (e.g. "012" is syntactically
// valid here even though no registered status code looks like it).
var statusCodePattern = regexp.MustCompile(`^\d{3}$`)

// Parse parses a status-line's tokens, grounded on RawHttp.java's
// parseStatusLine. line is the 1-based source line number to attach to any
// error.
func Parse(raw string, insertVersionIfMissing bool, line int, newErr httperror.ErrorFactory) (StatusLine, error) {
	if strings.TrimSpace(raw) == "" {
		return StatusLine{}, newErr("empty status line", line)
	}

	parts := splitWhitespaceN(raw, 3)

	var httpVersion, statusCode, reason string

	switch {
	case len(parts) == 1:
		statusCode = parts[0]
	case strings.HasPrefix(parts[0], "HTTP"):
		httpVersion = parts[0]
		statusCode = parts[1]
		if len(parts) == 3 {
			reason = parts[2]
		}
	default:
		statusCode = parts[0]
		reason = parts[1]
		if len(parts) == 3 {
			reason += " " + parts[2]
		}
	}

	var v version.HttpVersion

	if httpVersion == "" {
		if !insertVersionIfMissing {
			return StatusLine{}, newErr("missing HTTP version", line)
		}
		v = version.HTTP11
	} else {
		parsed, ok := version.Parse(httpVersion)
		if !ok {
			return StatusLine{}, newErr("invalid HTTP version", line)
		}
		v = parsed
	}

	if !statusCodePattern.MatchString(statusCode) {
		return StatusLine{}, newErr("invalid status code", line)
	}

	code, err := strconv.Atoi(statusCode)
	if err != nil {
		return StatusLine{}, newErr("invalid status code", line)
	}

	return StatusLine{Version: v, Code: code, Reason: reason}, nil
}

// splitWhitespaceN splits s at each single whitespace character (so
// consecutive whitespace yields empty tokens), stopping once n tokens have
// been produced (the final token retains any remaining text, whitespace
// included), mirroring Java's String.split("\\s", n).
func splitWhitespaceN(s string, n int) []string {
	var parts []string

	for len(parts) < n-1 {
		idx := strings.IndexAny(s, " \t\r\n\f\v")
		if idx == -1 {
			break
		}

		parts = append(parts, s[:idx])
		s = s[idx+1:]
	}

	return append(parts, s)
}

// String renders the status-line back to its wire form.
func (s StatusLine) String() string {
	if s.Reason == "" {
		return s.Version.String() + " " + strconv.Itoa(s.Code)
	}

	return s.Version.String() + " " + strconv.Itoa(s.Code) + " " + s.Reason
}
