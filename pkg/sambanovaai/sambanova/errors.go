package sambanova

import (
	"fmt"
	"net/http"
	"strings"
)

// The client maps every failure path onto one of four error kinds so callers
// can branch with errors.As instead of string matching:
//
//   - ValidationError: bad input rejected before any network call.
//   - TransportError:  the HTTP round trip itself failed (DNS, reset, timeout).
//   - UpstreamError:   the service answered with a non-2xx status.
//   - DecodeError:     the stream completed without any parseable content.

// ValidationError reports an input rejected locally, before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "sambanova: invalid input: " + e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// TransportError reports a network-level failure (connection, DNS, timeout,
// cancellation). The underlying error is preserved for errors.Is inspection,
// e.g. context.DeadlineExceeded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "sambanova: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a non-2xx HTTP status from the service, carrying the
// status code and a bounded slice of the response body.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	detail := strings.TrimSpace(e.Body)
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	if e.StatusCode == http.StatusUnauthorized {
		return fmt.Sprintf("sambanova: invalid authentication credentials (http %d): %s", e.StatusCode, detail)
	}
	return fmt.Sprintf("sambanova: upstream returned http %d: %s", e.StatusCode, detail)
}

// IsAuthentication reports whether the upstream rejected the cookie.
func (e *UpstreamError) IsAuthentication() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// DecodeError reports a stream that ended without any parseable content.
type DecodeError struct {
	// MalformedFrames counts the data frames that failed JSON decoding.
	MalformedFrames int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("sambanova: no content parsed from stream (%d malformed frames)", e.MalformedFrames)
}
