package diffbot

import (
	"errors"
	"fmt"
)

// Kind classifies failures returned by this package.
type Kind uint8

const (
	// KindInvalidInput means a caller-supplied parameter was malformed.
	// Detected before any network call, never worth retrying.
	KindInvalidInput Kind = iota + 1

	// KindNetwork means the transport could not complete the round trip.
	// The underlying cause is attached and reachable via errors.Unwrap.
	KindNetwork

	// KindParse means the response body was not valid JSON.
	KindParse

	// KindAPI means Diffbot explicitly reported a semantic failure.
	// The remote code and message are carried verbatim.
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindAPI:
		return "api"
	}
	return "unknown"
}

// Error is the error type returned by every failing call in this package.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Code is the API error code reported by Diffbot, set for KindAPI only.
	// Compare against the Code* constants.
	Code int

	// Message is a human-readable description. For KindAPI it is the
	// remote-provided message, untranslated.
	Message string

	// RawBody holds a bounded prefix of the response body, set for
	// KindParse so the offending payload can be inspected.
	RawBody []byte

	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAPI:
		return fmt.Sprintf("diffbot: API error %d: %s", e.Code, e.Message)
	case KindNetwork:
		return fmt.Sprintf("diffbot: %s: %v", e.Message, e.cause)
	case KindParse:
		if e.cause != nil {
			return fmt.Sprintf("diffbot: %s: %v", e.Message, e.cause)
		}
		return "diffbot: " + e.Message
	default:
		return "diffbot: " + e.Message
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the Kind of err if it is (or wraps) an *Error,
// and zero otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func invalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}
