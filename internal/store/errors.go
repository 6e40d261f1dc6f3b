package store

import "fmt"

// ErrorKind categorizes configuration mutation failures
type ErrorKind int

const (
	BadPosition ErrorKind = iota + 1
	KeyAlreadyExists
	UnknownKey
	DecodingError
	EncodingError
	InternalError
)

func (k ErrorKind) String() string {
	switch k {
	case BadPosition:
		return "bad position"
	case KeyAlreadyExists:
		return "key already exists"
	case UnknownKey:
		return "unknown key"
	case DecodingError:
		return "decoding error"
	case EncodingError:
		return "encoding error"
	case InternalError:
		return "internal error"
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by every Store mutation.
// Context holds the offending key path or a short description.
type Error struct {
	Kind    ErrorKind
	Context string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

// Is matches sentinels by kind, so errors.Is(err, ErrUnknownKey) works for any context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind && (t.Context == "" || t.Context == e.Context)
}

// Sentinels for errors.Is
var (
	ErrBadPosition      = &Error{Kind: BadPosition}
	ErrKeyAlreadyExists = &Error{Kind: KeyAlreadyExists}
	ErrUnknownKey       = &Error{Kind: UnknownKey}
	ErrDecoding         = &Error{Kind: DecodingError}
	ErrEncoding         = &Error{Kind: EncodingError}
	ErrInternal         = &Error{Kind: InternalError}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Context: fmt.Sprintf(format, args...)}
}
