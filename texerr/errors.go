// Package texerr holds the error kinds returned by the texture decoders.
package texerr

import (
	"errors"
	"fmt"
)

// Kind classifies why a decode failed.
type Kind uint32

const (
	// CorruptStream means a GZIP/zlib wrapper could not be inflated.
	CorruptStream Kind = iota + 1

	// InvalidIdentifier means the KTX identifier did not contain "KTX".
	InvalidIdentifier

	// TruncatedData means a declared length ran past the available bytes.
	TruncatedData

	// UnknownFormat means a CIM/pixel format tag is not one of the known values.
	UnknownFormat

	// UnsupportedFormat means a glInternalFormat is recognised but not decoded,
	// or not recognised at all.
	UnsupportedFormat

	// InvalidDimensions means width/height are zero or not block aligned.
	InvalidDimensions
)

func (k Kind) String() string {
	switch k {
	case CorruptStream:
		return "corrupt stream"
	case InvalidIdentifier:
		return "invalid identifier"
	case TruncatedData:
		return "truncated data"
	case UnknownFormat:
		return "unknown format"
	case UnsupportedFormat:
		return "unsupported format"
	case InvalidDimensions:
		return "invalid dimensions"
	default:
		return fmt.Sprintf("kind(%d)", uint32(k))
	}
}

// Error carries a Kind, the offending numeric value where there is one, and
// an optional cause.
type Error struct {
	Kind  Kind
	Value uint32
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("gdxtex: %s: %v", msg, e.Err)
	}
	return "gdxtex: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match when target is a kind sentinel such as ErrUnknownFormat,
// or another *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// Sentinels for errors.Is.
var (
	ErrCorruptStream     = &Error{Kind: CorruptStream}
	ErrInvalidIdentifier = &Error{Kind: InvalidIdentifier}
	ErrTruncatedData     = &Error{Kind: TruncatedData}
	ErrUnknownFormat     = &Error{Kind: UnknownFormat}
	ErrUnsupported       = &Error{Kind: UnsupportedFormat}
	ErrInvalidDimensions = &Error{Kind: InvalidDimensions}
)

func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Format builds an UnknownFormat or UnsupportedFormat error carrying value.
func Format(kind Kind, value uint32, format string, args ...any) error {
	return &Error{Kind: kind, Value: value, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or 0 when err is nil or untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ValueOf returns the numeric value carried by err, if any.
func ValueOf(err error) (uint32, bool) {
	var e *Error
	if errors.As(err, &e) && (e.Kind == UnknownFormat || e.Kind == UnsupportedFormat) {
		return e.Value, true
	}
	return 0, false
}
