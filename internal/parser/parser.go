package parser

import (
	"FcnLang/internal/ast"
	"FcnLang/internal/lexer"
)

// Observer receives every diagnostic as soon as the parser emits it.
type Observer interface {
	Diagnose(err *Error)
}

type ObserverFunc func(err *Error)

func (f ObserverFunc) Diagnose(err *Error) {
	f(err)
}

type Option func(*Parser)

func WithObserver(o Observer) Option {
	return func(p *Parser) {
		p.observer = o
	}
}

// Parser walks a token sequence with a single cursor. A Parser is good for
// one token sequence and is not safe for concurrent use.
type Parser struct {
	tokens      []lexer.Token
	pos         int
	diagnostics []*Error
	observer    Observer
}

func NewParser(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:      tokens,
		diagnostics: []*Error{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFunctionDecl parses tokens as a single function declaration.
func ParseFunctionDecl(tokens []lexer.Token, opts ...Option) (*ast.FunctionDecl, error) {
	fn, err := NewParser(tokens, opts...).ParseFunctionDecl()
	if err != nil {
		return nil, err
	}
	return fn, nil
}

func (p *Parser) Diagnostics() []*Error {
	return p.diagnostics
}

// Position is the index of the token under the cursor.
func (p *Parser) Position() int {
	return p.pos
}

func (p *Parser) current() (lexer.Token, bool) {
	return p.peek(0)
}

func (p *Parser) peek(steps int) (lexer.Token, bool) {
	if p.pos+steps >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos+steps], true
}

// advance moves the cursor one token forward. It refuses, and returns
// false, when the cursor already sits on the last token.
func (p *Parser) advance() bool {
	if _, ok := p.peek(1); !ok {
		return false
	}
	p.pos++
	return true
}

func (p *Parser) mark() int {
	return p.pos
}

func (p *Parser) reset(pos int) {
	p.pos = pos
}

func (p *Parser) is(text string) bool {
	tok, ok := p.current()
	return ok && tok.Text == text
}

func (p *Parser) isClass(class lexer.TokenClass) bool {
	tok, ok := p.current()
	return ok && tok.Class == class
}

func (p *Parser) text() string {
	tok, _ := p.current()
	return tok.Text
}

// isName reports whether the current token may be used as a user-chosen
// name: an identifier that is neither a type nor a reserved word.
func (p *Parser) isName() bool {
	return p.isClass(lexer.Identifier) && !isForbiddenKeyword(p.text())
}

var reservedWords = map[string]bool{
	"var":    true,
	"if":     true,
	"else":   true,
	"return": true,
}

func isForbiddenKeyword(text string) bool {
	if _, ok := ast.LookupType(text); ok {
		return true
	}
	return reservedWords[text]
}

func (p *Parser) diag(err *Error) *Error {
	p.diagnostics = append(p.diagnostics, err)
	if p.observer != nil {
		p.observer.Diagnose(err)
	}
	return err
}

// errorAt describes a problem with the token under the cursor.
func (p *Parser) errorAt(kind ErrorKind, expected string) *Error {
	tok, ok := p.current()
	if !ok {
		return p.errorAtEnd(kind, expected)
	}
	return &Error{Kind: kind, Expected: expected, Found: tok.Text, Span: tok.Span}
}

// errorAtEnd describes running out of tokens while expecting more.
func (p *Parser) errorAtEnd(kind ErrorKind, expected string) *Error {
	err := &Error{Kind: kind, Expected: expected, AtEnd: true}
	if n := len(p.tokens); n > 0 {
		end := p.tokens[n-1].Span.End + 1
		err.Span = lexer.Span{Start: end, End: end}
	}
	return err
}
