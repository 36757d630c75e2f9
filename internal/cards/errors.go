package cards

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// Kind classifies a fetch failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadURL
	KindBadResponse
	KindTransport
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindBadURL:
		return "bad_url"
	case KindBadResponse:
		return "bad_response"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// User-facing messages.
const (
	MessageGeneric           = "Sorry, something went wrong."
	MessageServerFailed      = "Sorry, the connection to our server failed."
	MessageTransportFallback = "Something went wrong."
)

// Error is the only error type returned across the Fetcher boundary.
type Error struct {
	Kind       Kind
	StatusCode int    // KindBadResponse only
	Detail     string // transport or decoder message, may be empty
	Err        error
}

// Error returns the diagnostic description. It includes the status code or
// decoder detail and is not meant for end users; see Message.
func (e *Error) Error() string {
	switch e.Kind {
	case KindBadURL:
		return "invalid URL"
	case KindBadResponse:
		return fmt.Sprintf("bad response with status code %d", e.StatusCode)
	case KindTransport:
		if e.Detail != "" {
			return e.Detail
		}
		if e.Err != nil {
			return e.Err.Error()
		}
		return "url session error"
	case KindParse:
		return "parsing error " + e.Detail
	default:
		return "unknown error"
	}
}

// Message returns the short text shown to the user.
func (e *Error) Message() string {
	switch e.Kind {
	case KindBadResponse:
		return MessageServerFailed
	case KindTransport:
		if e.Detail != "" {
			return e.Detail
		}
		return MessageTransportFallback
	default:
		return MessageGeneric
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind (and status code for bad
// responses), so sentinels like ErrBadURL work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// Sentinels for errors.Is.
var (
	ErrBadURL      = &Error{Kind: KindBadURL}
	ErrBadResponse = &Error{Kind: KindBadResponse}
	ErrTransport   = &Error{Kind: KindTransport}
	ErrParse       = &Error{Kind: KindParse}
	ErrUnknown     = &Error{Kind: KindUnknown}
)

// BadURL builds a KindBadURL error.
func BadURL(cause error) *Error {
	return &Error{Kind: KindBadURL, Err: cause}
}

// BadResponse builds a KindBadResponse error for the given status code.
func BadResponse(statusCode int) *Error {
	return &Error{Kind: KindBadResponse, StatusCode: statusCode}
}

// TransportError wraps a network failure. Detail is filled from the cause
// when it is one of the recognised transport conditions.
func TransportError(cause error) *Error {
	return &Error{Kind: KindTransport, Detail: describeTransport(cause), Err: cause}
}

// ParseError wraps a decoder failure.
func ParseError(cause error) *Error {
	e := &Error{Kind: KindParse, Err: cause}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

// AsError returns err as a taxonomy error, classifying anything else as
// KindUnknown. It returns nil for a nil err.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindUnknown, Err: err}
}

// describeTransport maps recognised transport failures to a short sentence a
// user can act on. Other causes return "" and the user sees the fallback
// message: Go's own error text carries URLs and socket addresses, so it only
// reaches Error() and the logs.
func describeTransport(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The request timed out."
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return "The request timed out."
		}
		return "A server with the specified hostname could not be found."
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "Could not connect to the server."
	}
	if errors.Is(err, syscall.ENETUNREACH) {
		return "The Internet connection appears to be offline."
	}
	if errors.Is(err, syscall.ECONNRESET) {
		return "The network connection was lost."
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "The request timed out."
	}
	return ""
}
