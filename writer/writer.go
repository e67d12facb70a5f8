// Package writer serializes Request/Response values back into wire bytes,
// the inverse of the root package's parsing.
//
// Grounded on the teacher's internal/protocol/http1.serializer: the same
// split between a plain, length-prefixed body writer and a chunked writer
// that frames each Write call as its own chunk. Simplified from the
// teacher's connection-buffer-arena design (which writes straight into a
// pooled, growable slice shared with the transport layer) down to a
// bufio.Writer over whatever io.Writer the caller supplies, since this
// library never owns a connection.
package writer

import (
	"bufio"
	"io"
	"strconv"

	rawhttp "github.com/flrdv/rawhttp"
	"github.com/flrdv/rawhttp/body"
	"github.com/flrdv/rawhttp/headers"
)

var crlf = []byte("\r\n")

// WriteRequest serializes req to w: request-line, headers, and body (if
// any), each terminated per RFC 7230 framing.
func WriteRequest(w io.Writer, req rawhttp.Request) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(req.RequestLine.String()); err != nil {
		return err
	}
	if _, err := bw.Write(crlf); err != nil {
		return err
	}

	if err := writeHeaders(bw, req.Headers); err != nil {
		return err
	}

	if err := writeBody(bw, req.Headers, req.Body, req.Trailers); err != nil {
		return err
	}

	return bw.Flush()
}

// WriteResponse serializes resp to w: status-line, headers, and body (if
// any).
func WriteResponse(w io.Writer, resp rawhttp.Response) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(resp.StatusLine.String()); err != nil {
		return err
	}
	if _, err := bw.Write(crlf); err != nil {
		return err
	}

	if err := writeHeaders(bw, resp.Headers); err != nil {
		return err
	}

	if err := writeBody(bw, resp.Headers, resp.Body, resp.Trailers); err != nil {
		return err
	}

	return bw.Flush()
}

func writeHeaders(bw *bufio.Writer, h headers.Headers) error {
	for _, e := range h.Entries() {
		if _, err := bw.WriteString(e.Name); err != nil {
			return err
		}
		if _, err := bw.WriteString(": "); err != nil {
			return err
		}
		if _, err := bw.WriteString(e.Value); err != nil {
			return err
		}
		if _, err := bw.Write(crlf); err != nil {
			return err
		}
	}

	_, err := bw.Write(crlf)
	return err
}

func writeBody(bw *bufio.Writer, h headers.Headers, r *body.Reader, trailers headers.Headers) error {
	if r == nil {
		return nil
	}

	switch r.Type() {
	case body.Chunked:
		cw := &chunkedWriter{w: bw}
		if _, err := io.Copy(cw, r); err != nil {
			return err
		}

		// Prefer the message-level Trailers: a body drained via
		// Request.Eagerly/Response.Eagerly no longer carries trailers on its
		// own Reader (it's been replaced with a plain in-memory one), so the
		// trailers captured onto the message at drain time are the only
		// copy left. A still-streaming Reader has them on itself instead,
		// now that the copy above has run it to completion.
		effective := trailers
		if effective.Len() == 0 {
			effective = r.Trailers()
		}

		return cw.Close(effective)
	default:
		// ContentLength and CloseTerminated both write raw bytes as-is; the
		// difference between them is only how the reading side knows when
		// to stop, which doesn't affect how the writing side behaves.
		_, err := io.Copy(bw, r)
		return err
	}
}

// chunkedWriter frames each Write call as one chunk, grounded on the
// teacher's chunkedWriter but without its shared-buffer-arena plumbing: it
// writes the hex length, CRLF, the data, and a trailing CRLF straight to the
// underlying bufio.Writer.
type chunkedWriter struct {
	w *bufio.Writer
}

func (c *chunkedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if _, err := c.w.WriteString(strconv.FormatInt(int64(len(p)), 16)); err != nil {
		return 0, err
	}
	if _, err := c.w.Write(crlf); err != nil {
		return 0, err
	}
	if _, err := c.w.Write(p); err != nil {
		return 0, err
	}
	if _, err := c.w.Write(crlf); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Close writes the terminating zero-length chunk, followed by any trailer
// field-lines and the final blank line, per spec.md §4.9 ("0 CRLF, trailers,
// blank line"). With no trailers this reduces to body.ChunkZeroTrailer.
func (c *chunkedWriter) Close(trailers headers.Headers) error {
	if _, err := c.w.WriteString("0\r\n"); err != nil {
		return err
	}

	for _, e := range trailers.Entries() {
		if _, err := c.w.WriteString(e.Name); err != nil {
			return err
		}
		if _, err := c.w.WriteString(": "); err != nil {
			return err
		}
		if _, err := c.w.WriteString(e.Value); err != nil {
			return err
		}
		if _, err := c.w.Write(crlf); err != nil {
			return err
		}
	}

	if _, err := c.w.Write(crlf); err != nil {
		return err
	}

	return c.w.Flush()
}
