// Package body implements the lazy, streaming body reader and the
// chunked-transfer codec described in spec.md §3 ("BodyType") and §4.8
// ("Body reader contract").
//
// Grounded on the teacher's internal/protocol/http1 body readers
// (plainBodyReader, chunkedBodyReader), adapted from their non-blocking,
// push-style tcp.Client model to a blocking io.Reader model: a Reader here
// pulls bytes from a single shared *bufio.Reader threaded in from whatever
// parsed the message's start-line and headers, exactly the way RawHttp.java's
// body readers pull from the same InputStream the metadata was read from.
package body

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/flrdv/rawhttp/headers"
)

// ErrBodyConsumed is returned by Reader.Read once the body has already been
// fully read or discarded; a Reader is single-use, per spec.md §4.8 ("a body
// reader may be consumed exactly once").
var ErrBodyConsumed = errors.New("rawhttp: body already consumed")

// Reader streams a message body out of the shared connection/source reader,
// framing it according to Type. It implements io.Reader; Eagerly reads the
// whole body into a single []byte. Trailers of a chunked body are available
// via Trailers once the body has been read to io.EOF, by either route.
type Reader struct {
	src  *bufio.Reader
	kind Type

	// reportType overrides Type() when non-zero. Set by NewDrained, whose
	// bytes are delivered exactly like a ContentLength body but must still
	// report their original framing so a message can be re-serialized with
	// the wire framing it was parsed with.
	reportType Type

	// remaining counts down the undelivered bytes for ContentLength bodies.
	remaining uint64

	// chunked is non-nil only when kind == Chunked.
	chunked *chunkedDecoder
	// unparsed holds raw chunked-framing bytes already read from src but not
	// yet fed through chunked.parse.
	unparsed []byte
	// decoded holds chunk data chunked.parse has already produced but Read
	// hasn't yet copied out to the caller.
	decoded  []byte
	trailers *headers.Builder

	done bool
	err  error
}

// NewContentLength builds a Reader that delivers exactly length bytes before
// reporting io.EOF.
func NewContentLength(src *bufio.Reader, length uint64) *Reader {
	return &Reader{src: src, kind: ContentLength, remaining: length}
}

// NewCloseTerminated builds a Reader that delivers bytes until src itself
// reaches EOF.
func NewCloseTerminated(src *bufio.Reader) *Reader {
	return &Reader{src: src, kind: CloseTerminated}
}

// NewChunked builds a Reader that decodes chunked framing, accumulating any
// trailer fields into a Headers value retrievable via Trailers once Read has
// returned io.EOF. allowBareLF mirrors options.Options.AllowNewLineWithoutReturn.
func NewChunked(src *bufio.Reader, allowBareLF bool) *Reader {
	builder := headers.NewBuilder()
	r := &Reader{src: src, kind: Chunked, trailers: builder}
	r.chunked = newChunkedDecoder(allowBareLF, func(name, value string) {
		builder.With(name, value, 0)
	})

	return r
}

// NewDrained wraps already-fully-read body bytes (typically the result of a
// prior Eagerly call) back into a Reader that delivers them like a
// ContentLength body but reports originalType via Type, so a message drained
// once can still be re-serialized with the wire framing it was parsed with
// (e.g. re-chunked rather than written as a bare Content-Length body).
func NewDrained(data []byte, originalType Type) *Reader {
	r := NewContentLength(bufio.NewReader(bytes.NewReader(data)), uint64(len(data)))
	r.reportType = originalType
	return r
}

// Type reports the framing mode this Reader decodes.
func (r *Reader) Type() Type {
	if r.reportType != 0 {
		return r.reportType
	}

	return r.kind
}

// Trailers returns the trailer fields collected while decoding a chunked
// body. It is only meaningful once Read has returned io.EOF; for any other
// Type it always returns the empty Headers.
func (r *Reader) Trailers() headers.Headers {
	if r.trailers == nil {
		return headers.Empty
	}

	return r.trailers.Build()
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	if r.done {
		return 0, ErrBodyConsumed
	}

	if len(p) == 0 {
		return 0, nil
	}

	var n int
	var err error

	switch r.kind {
	case ContentLength:
		n, err = r.readContentLength(p)
	case CloseTerminated:
		n, err = r.readCloseTerminated(p)
	case Chunked:
		n, err = r.readChunked(p)
	default:
		panic("rawhttp: body.Reader with zero Type")
	}

	if err == io.EOF {
		r.done = true
	} else if err != nil {
		r.err = err
	}

	return n, err
}

func (r *Reader) readContentLength(p []byte) (int, error) {
	if r.remaining == 0 {
		return 0, io.EOF
	}

	if uint64(len(p)) > r.remaining {
		p = p[:r.remaining]
	}

	n, err := r.src.Read(p)
	r.remaining -= uint64(n)

	if err == nil && r.remaining == 0 {
		// Report the final bytes now; the next Read call reports io.EOF, the
		// same two-call boundary the teacher's plainBodyReader exposes since
		// it also stops as soon as its own count of undelivered bytes hits
		// zero rather than eagerly consuming a trailing EOF.
		return n, nil
	}

	if err == io.EOF && r.remaining > 0 {
		return n, io.ErrUnexpectedEOF
	}

	return n, err
}

func (r *Reader) readCloseTerminated(p []byte) (int, error) {
	return r.src.Read(p)
}

func (r *Reader) readChunked(p []byte) (int, error) {
	for {
		if len(r.decoded) > 0 {
			n := copy(p, r.decoded)
			r.decoded = r.decoded[n:]
			return n, nil
		}

		if len(r.unparsed) == 0 {
			buf := make([]byte, 4096)
			rn, rerr := r.src.Read(buf)
			if rn == 0 {
				if rerr == io.EOF {
					return 0, io.ErrUnexpectedEOF
				}
				return 0, rerr
			}
			r.unparsed = buf[:rn]
		}

		chunk, extra, perr := r.chunked.parse(r.unparsed)
		r.unparsed = extra

		if len(chunk) > 0 {
			n := copy(p, chunk)
			if n < len(chunk) {
				r.decoded = append(r.decoded, chunk[n:]...)
			}
			return n, nil
		}

		if perr != nil {
			// io.EOF here means the trailers (if any) have been fully parsed;
			// any leftover unparsed bytes belong to whatever follows the body
			// (e.g. a pipelined next message) and are left in r.unparsed,
			// mirroring the teacher's own "extra" pushback rather than
			// consuming bytes that aren't this body's.
			return 0, perr
		}

		// parse consumed everything without producing a chunk or an error
		// (e.g. it only advanced past a chunk-size line); loop and read more.
	}
}

// Eagerly drains the Reader fully and returns the collected bytes, the same
// role RawHttp.java's EagerBodyReader plays for callers that don't want to
// stream. Trailers (if any) are available via Trailers after this returns.
func (r *Reader) Eagerly() ([]byte, error) {
	return io.ReadAll(r)
}
