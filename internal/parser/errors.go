package parser

import (
	"fmt"

	"FcnLang/internal/lexer"
)

type ErrorKind int

const (
	MissingToken ErrorKind = iota
	InvalidName
	UnresolvedType
	UnresolvedReturnType
	MissingBlockEnd
	InvalidValue
	InvalidArgument
)

var errorKindNames = [...]string{
	MissingToken:         "MissingToken",
	InvalidName:          "InvalidName",
	UnresolvedType:       "UnresolvedType",
	UnresolvedReturnType: "UnresolvedReturnType",
	MissingBlockEnd:      "MissingBlockEnd",
	InvalidValue:         "InvalidValue",
	InvalidArgument:      "InvalidArgument",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return "Unknown"
	}
	return errorKindNames[k]
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Error is a single parse diagnostic. Expected holds what the grammar wanted
// at this point, or the kind of name/value for InvalidName and InvalidValue.
type Error struct {
	Kind     ErrorKind  `json:"kind" yaml:"kind"`
	Expected string     `json:"expected,omitempty" yaml:"expected,omitempty"`
	Found    string     `json:"found" yaml:"found"`
	AtEnd    bool       `json:"at_end,omitempty" yaml:"at_end,omitempty"`
	Span     lexer.Span `json:"span" yaml:"span"`
}

func (e *Error) Error() string {
	found := fmt.Sprintf("%q", e.Found)
	if e.AtEnd {
		found = "end of input"
	}

	var msg string
	switch e.Kind {
	case MissingToken:
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, found)
	case InvalidName:
		msg = fmt.Sprintf("invalid %s name %s", e.Expected, found)
	case UnresolvedType:
		msg = fmt.Sprintf("invalid %s type %s", e.Expected, found)
	case UnresolvedReturnType:
		msg = fmt.Sprintf("invalid return type %s", found)
	case MissingBlockEnd:
		msg = fmt.Sprintf("could not find the end of the block, got %s", found)
	case InvalidValue:
		msg = fmt.Sprintf("invalid %s value %s", e.Expected, found)
	case InvalidArgument:
		msg = fmt.Sprintf("invalid function parameter %s", found)
	default:
		msg = fmt.Sprintf("parse error at %s", found)
	}

	return fmt.Sprintf("%s (at %s)", msg, e.Span)
}

// Is matches on Kind so errors.Is(err, &Error{Kind: MissingToken}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
