package lexer

import "fmt"

type ErrorCode int

const (
	ErrUnterminatedString ErrorCode = iota
	ErrUnexpectedCharacter
)

type Error struct {
	Code    ErrorCode
	Message string
	Offset  int
}

func newError(code ErrorCode, offset int, near string) *Error {
	var msg string
	switch code {
	case ErrUnterminatedString:
		msg = "unterminated string, did you forget a quote?"
	case ErrUnexpectedCharacter:
		msg = fmt.Sprintf("unexpected character %q", near)
	}
	return &Error{Code: code, Message: msg, Offset: offset}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}

// Is reports a match on the error code, so callers can compare against
// the package sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	UnterminatedString  = &Error{Code: ErrUnterminatedString}
	UnexpectedCharacter = &Error{Code: ErrUnexpectedCharacter}
)
