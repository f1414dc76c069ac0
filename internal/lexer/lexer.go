package lexer

// Lexer scans source text byte by byte. It only understands ASCII; any
// other byte is skipped, or rejected in strict mode.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	strict       bool
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithStrict makes the lexer reject characters it has no rule for instead
// of skipping them.
func WithStrict() Option {
	return func(l *Lexer) {
		l.strict = true
	}
}

// NewLexer returns a lexer positioned on the first byte of input.
func NewLexer(input string, opts ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// Tokenize runs a fresh lexer over input and returns every token in order.
func Tokenize(input string, opts ...Option) ([]Token, error) {
	return NewLexer(input, opts...).Tokens()
}

// Tokens drains the lexer. On error no tokens are returned.
func (l *Lexer) Tokens() ([]Token, error) {
	tokens := []Token{}
	for {
		tok, ok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// NextToken returns the next token. ok is false once the input is exhausted.
func (l *Lexer) NextToken() (tok Token, ok bool, err error) {
	for l.position < len(l.input) {
		start := l.position

		switch {
		case isLetter(l.ch):
			return l.readRun(Identifier, isLetterOrDigit), true, nil
		case isDigit(l.ch):
			return l.readRun(Number, isDigit), true, nil
		case l.ch == '"':
			return l.readString()
		case l.isSymbol():
			l.readChar()
			l.readChar()
			return l.token(Symbol, start), true, nil
		case isOperator(l.ch):
			l.readChar()
			if l.ch == '=' {
				l.readChar()
			}
			return l.token(Operator, start), true, nil
		case isSeparator(l.ch):
			l.readChar()
			return l.token(Separator, start), true, nil
		}

		if l.strict && !isWhitespace(l.ch) {
			return Token{}, false, newError(ErrUnexpectedCharacter, start, l.input[start:start+1])
		}
		l.readChar()
	}

	return Token{}, false, nil
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) token(class TokenClass, start int) Token {
	return Token{
		Class: class,
		Text:  l.input[start:l.position],
		Span:  Span{Start: start, End: l.position - 1},
	}
}

func (l *Lexer) readRun(class TokenClass, accept func(byte) bool) Token {
	start := l.position
	for l.position < len(l.input) && accept(l.ch) {
		l.readChar()
	}
	return l.token(class, start)
}

func (l *Lexer) readString() (Token, bool, error) {
	start := l.position
	for {
		l.readChar()
		if l.position >= len(l.input) {
			return Token{}, false, newError(ErrUnterminatedString, start, l.input[start:])
		}
		if l.ch == '"' {
			break
		}
	}

	// Include the closing quote.
	l.readChar()
	return l.token(String, start), true, nil
}

func (l *Lexer) isSymbol() bool {
	next := l.peekChar()
	return (l.ch == ':' && next == ':') || (l.ch == '-' && next == '>')
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isLetterOrDigit continues an identifier once a letter started it, so
// sized type names such as Int32 stay one token.
func isLetterOrDigit(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isOperator(ch byte) bool {
	switch ch {
	case '=', '+', '-', '*', '/', '%', '>', '<':
		return true
	}
	return false
}

func isSeparator(ch byte) bool {
	switch ch {
	case '\n', ',', '(', ')', '{', '}':
		return true
	}
	return false
}
