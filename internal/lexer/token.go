package lexer

import "fmt"

// TokenClass is the lexical category of a token.
type TokenClass int

const (
	// Identifier covers user names, reserved words and type spellings alike.
	// The parser decides which one a given token is.
	Identifier TokenClass = iota
	Number
	String
	Operator
	Symbol
	Separator
)

var classNames = map[TokenClass]string{
	Identifier: "Identifier",
	Number:     "Number",
	String:     "String",
	Operator:   "Operator",
	Symbol:     "Symbol",
	Separator:  "Separator",
}

func (c TokenClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("TokenClass(%d)", int(c))
}

// MarshalText encodes the class by name in JSON and YAML output.
func (c TokenClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Span is an inclusive byte range into the source.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is a classified slice of the source. Text is exactly the bytes
// covered by Span.
type Token struct {
	Class TokenClass `json:"class" yaml:"class"`
	Text  string     `json:"text" yaml:"text"`
	Span  Span       `json:"span" yaml:"span"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Class, t.Text, t.Span)
}

// Is reports whether the token's text is exactly text.
func (t Token) Is(text string) bool {
	return t.Text == text
}
