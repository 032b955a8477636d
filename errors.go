package decnum

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is wrapped by every error returned when text can not be
// read as a BigInt. Use errors.Is to check for it.
var ErrInvalidFormat = errors.New("decnum: invalid format")

// ParseErrKind identifies why a string was rejected.
type ParseErrKind uint8

const (
	ParseInvalid ParseErrKind = iota
	ParseEmpty
	ParseNoDigits
	ParseBadChar
)

func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseNoDigits:
		return "no digits"
	case ParseBadChar:
		return "bad character"
	default:
		return "invalid"
	}
}

// ParseError is returned by BigIntFromString and the text/JSON unmarshallers.
// Pos is the byte offset of the offending character for ParseBadChar and is
// otherwise zero.
type ParseError struct {
	Input string
	Kind  ParseErrKind
	Pos   int
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == ParseBadChar && e.Pos < len(e.Input) {
		return fmt.Sprintf("%v: %s %q at offset %d in %q", ErrInvalidFormat, e.Kind, e.Input[e.Pos], e.Pos, e.Input)
	}
	return fmt.Sprintf("%v: %s in %q", ErrInvalidFormat, e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error { return ErrInvalidFormat }
