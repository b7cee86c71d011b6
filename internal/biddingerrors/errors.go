package biddingerrors

import (
	"fmt"
	"strings"
)

// Kind classifies an error produced by the core bidding components.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidBid
	KindBidTooLow
	KindInternal
)

// Internal error codes, surfaced as the optional "code" field of API
// error responses.
const (
	CodeCriticalError   = 1
	CodeUnexpectedError = 2
	CodeRetryableError  = 3
)

// Error is the tagged error type used across the catalog, ledger and
// bidding service: an error kind, an optional numeric code and an ordered,
// de-duplicated list of human-readable reasons.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Reasons []string
}

func (e *Error) Error() string {
	if len(e.Reasons) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Reasons, "; "))
}

// Is matches errors by kind, so errors.Is(err, ErrInvalidBid) holds for
// any invalid-bid error regardless of message or reasons.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// AddReason appends a context detail, preserving order and skipping
// duplicates.
func (e *Error) AddReason(reason string) {
	for _, r := range e.Reasons {
		if r == reason {
			return
		}
	}
	e.Reasons = append(e.Reasons, reason)
}

// Sentinel values for errors.Is matching.
var (
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrInvalidBid = &Error{Kind: KindInvalidBid, Message: "invalid bid"}
	ErrBidTooLow  = &Error{Kind: KindBidTooLow, Message: "bid amount too low"}
	ErrInternal   = &Error{Kind: KindInternal, Code: CodeUnexpectedError, Message: "internal error"}
)

// NotFound builds a not-found error with a formatted message.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidBid builds an invalid-bid error carrying the given reasons.
func InvalidBid(message string, reasons ...string) *Error {
	e := &Error{Kind: KindInvalidBid, Message: message}
	for _, r := range reasons {
		e.AddReason(r)
	}
	return e
}

// BidTooLow builds the monotonic-policy rejection error.
func BidTooLow(message string, reasons ...string) *Error {
	e := &Error{Kind: KindBidTooLow, Message: message}
	for _, r := range reasons {
		e.AddReason(r)
	}
	return e
}

// Internal wraps an unexpected failure with the unexpected-error code.
func Internal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Code: CodeUnexpectedError, Message: fmt.Sprintf(format, args...)}
}
