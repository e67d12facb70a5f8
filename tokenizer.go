package rawhttp

import (
	"bufio"
	"io"

	"github.com/flrdv/rawhttp/httperror"
)

// readMetadataLines reads the start-line and header lines of a message off
// src, one line per CR?LF (or bare LF when allowBareLF is set), stopping at
// the first blank line. It returns the collected lines and the number of the
// line immediately following the metadata block, so callers can continue
// numbering header/trailer lines consistently.
//
// Grounded on RawHttp.java's parseMetadataLines: a byte-by-byte reader that
// tracks whether the previous byte closed a line (wasNewLine) so consecutive
// terminators collapse into "end of metadata" rather than emitting empty
// lines, and that optionally swallows every leading blank line before the
// start-line (ignoreLeadingEmptyLine, for servers tolerant of stray
// newlines left over from a previous request).
func readMetadataLines(src *bufio.Reader, ignoreLeadingEmptyLine, allowBareLF bool, newErr httperror.ErrorFactory) ([]string, int, error) {
	var (
		lines      []string
		line       []byte
		wasNewLine = true
		skipLine   = ignoreLeadingEmptyLine
		lineNumber = 1
	)

	for {
		b, err := src.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, 0, err
		}

		switch b {
		case '\r':
			next, err := src.ReadByte()
			if err != nil && err != io.EOF {
				return nil, 0, err
			}

			if err == io.EOF || next == '\n' {
				if skipLine {
					continue
				}

				lineNumber++
				if wasNewLine {
					goto done
				}

				lines = append(lines, string(line))
				if err == io.EOF {
					goto done
				}

				line = nil
				wasNewLine = true
				continue
			}

			return nil, 0, newErr("illegal character after return", lineNumber)

		case '\n':
			if skipLine {
				continue
			}

			if !allowBareLF {
				return nil, 0, newErr("illegal new-line character without preceding return", lineNumber)
			}

			lineNumber++
			if wasNewLine {
				goto done
			}

			lines = append(lines, string(line))
			line = nil
			wasNewLine = true
			continue

		default:
			line = append(line, b)
			wasNewLine = false
		}

		skipLine = false
	}

done:
	if len(line) > 0 {
		lines = append(lines, string(line))
	}

	return lines, lineNumber, nil
}
