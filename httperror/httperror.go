// Package httperror defines the error variants the parser can raise.
//
// Modeled on the teacher's http/status.HTTPError: a struct implementing
// error, constructed via a package-level function, never a sentinel smuggled
// through for control flow. Here the "code" the teacher attaches is replaced
// by the line number spec.md requires every parse failure to carry.
package httperror

import "fmt"

// InvalidRequest is raised when request bytes violate framing or syntax
// rules. Line is the 1-based line number (counting from the start-line) where
// the fault was detected, or 0 when no line is meaningful (e.g. empty input).
type InvalidRequest struct {
	Message string
	Line    int
}

func NewInvalidRequest(message string, line int) error {
	return &InvalidRequest{Message: message, Line: line}
}

func (e *InvalidRequest) Error() string {
	return fmt.Sprintf("invalid request: %s (line %d)", e.Message, e.Line)
}

// InvalidResponse is raised when response bytes violate framing or syntax
// rules. Line follows the same convention as InvalidRequest.Line.
type InvalidResponse struct {
	Message string
	Line    int
}

func NewInvalidResponse(message string, line int) error {
	return &InvalidResponse{Message: message, Line: line}
}

func (e *InvalidResponse) Error() string {
	return fmt.Sprintf("invalid response: %s (line %d)", e.Message, e.Line)
}

// UnsupportedTransferEncoding is raised when Transfer-Encoding names a coding
// other than a bare, solitary "chunked" (§9 Open Question: identity and
// comma-separated codings are deliberately unsupported, not specially
// handled).
type UnsupportedTransferEncoding struct {
	Encoding string
}

func NewUnsupportedTransferEncoding(encoding string) error {
	return &UnsupportedTransferEncoding{Encoding: encoding}
}

func (e *UnsupportedTransferEncoding) Error() string {
	return fmt.Sprintf("unsupported transfer-encoding: %q", e.Encoding)
}

// ErrorFactory builds a request- or response-flavored error from a message
// and a line number. The tokenizer and message parser are shared between the
// request and response code paths and take one of these as a closure, the
// same role RawHttp.java's BiFunction<String,Integer,RuntimeException>
// createError plays, and the same role teacher's
// BiFunction-via-interface-method pattern would take in Go: a function
// value, not a generic parameter, since the two shapes are just pick one of
// two variants.
type ErrorFactory func(message string, line int) error
