package csr

import (
	"github.com/cockroachdb/errors"
)

// Kind classifies parsing failures into a closed set,
// so that callers can handle each kind exhaustively.
type Kind int

// Failure kinds. None of them is retryable:
// the input is either malformed or unsupported.
const (
	// KindInvalidFormat - the input lacks the BEGIN CERTIFICATE REQUEST marker
	KindInvalidFormat Kind = iota + 1
	// KindDecode - the PEM envelope or PKCS#10 structure was rejected
	KindDecode
	// KindExtraction - the SubjectAltName extension is structurally corrupt
	KindExtraction
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFormat:
		return "invalid format"
	case KindDecode:
		return "decode"
	case KindExtraction:
		return "extraction"
	}
	return "unknown"
}

// Error is a tagged parsing failure.
// Stage names the decoding step that failed: request, key, or extension.
type Error struct {
	Kind  Kind
	Stage string
	cause error
}

func newError(kind Kind, stage string, cause error) *Error {
	return &Error{
		Kind:  kind,
		Stage: stage,
		cause: cause,
	}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Stage != "" {
		msg += ": " + e.Stage
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying diagnostic
func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
