package rawhttp

import (
	"github.com/flrdv/rawhttp/headers"
	"github.com/flrdv/rawhttp/httperror"
	"github.com/flrdv/rawhttp/requestline"
)

// verifyHost reconciles a request-line's URI authority (if any) against its
// Host header, inserting or overwriting whichever one is missing so the
// parsed request always carries both in agreement, and rejecting the
// messages where they conflict or where a host can't be determined at all.
//
// Grounded verbatim on RawHttp.java's verifyHost reconciliation table.
func verifyHost(rl requestline.RequestLine, h *headers.Builder, insertIfMissing bool, newErr httperror.ErrorFactory) (requestline.RequestLine, error) {
	hostValues := h.Get("Host")
	uriHost := rl.URI.Host

	switch len(hostValues) {
	case 0:
		if !insertIfMissing {
			return rl, newErr("Host header is missing", 1)
		}
		if uriHost == "" {
			return rl, newErr("Host not given either in method line or Host header", 1)
		}
		h.With("Host", uriHost, 1)
		return rl, nil

	case 1:
		if uriHost != "" {
			return rl, newErr("Host specified both in Host header and in method line", 1)
		}

		next, err := rl.WithHost(hostValues[0])
		if err != nil || next.URI.Host == "" {
			line := firstOr(h.LineNumbers("Host"), 1)
			return rl, newErr("invalid host header", line)
		}

		h.Overwrite("Host", next.URI.Host, 1)
		return next, nil

	default:
		lines := h.LineNumbers("Host")
		line := 1
		if len(lines) > 1 {
			line = lines[1]
		}
		return rl, newErr("more than one Host header specified", line)
	}
}

func firstOr(vals []int, fallback int) int {
	if len(vals) == 0 {
		return fallback
	}
	return vals[0]
}
