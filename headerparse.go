package rawhttp

import (
	"strings"

	"github.com/flrdv/rawhttp/headers"
	"github.com/flrdv/rawhttp/httperror"
)

// parseHeaderLines turns the metadata lines following a start-line into a
// Headers builder. lines must already have the start-line removed; line
// numbering starts at 2, matching metadata line 1 being the start-line.
//
// Grounded verbatim on RawHttp.java's parseHeaders: each line is split on
// the first colon followed by at most one space (":\s?" with a 2-element
// limit), so a value itself containing a colon is never truncated, and any
// line failing to split into exactly two parts is an error (§9 Open
// Question: preserved exactly as-is, including consuming only one leading
// space rather than all leading whitespace).
func parseHeaderLines(lines []string, newErr httperror.ErrorFactory) (*headers.Builder, error) {
	builder := headers.NewBuilder()

	for i, line := range lines {
		lineNumber := i + 2
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}

		name, value, ok := strings.Cut(trimmed, ":")
		if !ok {
			return nil, newErr("invalid header", lineNumber)
		}

		if len(value) > 0 && value[0] == ' ' {
			value = value[1:]
		}

		builder.With(name, value, lineNumber)
	}

	return builder, nil
}
