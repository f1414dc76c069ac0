package repl

import (
	"errors"
	"fmt"
	"strings"

	"FcnLang/internal/ast"
	"FcnLang/internal/format"
	"FcnLang/internal/history"
	"FcnLang/internal/lexer"
	"FcnLang/internal/parser"
)

// Result is everything the front end learned about one unit of source.
type Result struct {
	Source      string
	Tokens      []lexer.Token
	Tree        *ast.FunctionDecl
	Diagnostics []*parser.Error
	// LexErr is set when tokenizing failed; nothing was parsed.
	LexErr error
	// ParseErr is the fatal error that aborted the function declaration.
	ParseErr error
}

func (r *Result) Err() error {
	if r.LexErr != nil {
		return r.LexErr
	}
	return r.ParseErr
}

func (r *Result) Outcome() history.Outcome {
	switch {
	case r.LexErr != nil:
		return history.LexFailed
	case r.ParseErr != nil:
		return history.ParseFailed
	}
	return history.Parsed
}

// Execute tokenizes source and parses it as one function declaration.
func Execute(source string, opts ...lexer.Option) *Result {
	result := &Result{Source: source}

	tokens, err := lexer.Tokenize(source, opts...)
	if err != nil {
		result.LexErr = err
		return result
	}
	result.Tokens = tokens

	p := parser.NewParser(tokens)
	fn, err := p.ParseFunctionDecl()

	// The fatal error is also reported as the last diagnostic.
	var fatal *parser.Error
	errors.As(err, &fatal)
	for _, d := range p.Diagnostics() {
		if d != fatal {
			result.Diagnostics = append(result.Diagnostics, d)
		}
	}

	if err != nil {
		result.ParseErr = err
		return result
	}
	result.Tree = fn
	return result
}

func FormatResult(r *Result) string {
	if r.LexErr != nil {
		return fmt.Sprintf("Error: %v\n", r.LexErr)
	}

	var sb strings.Builder
	sb.WriteString(format.FormatTokens(r.Tokens))

	for _, d := range r.Diagnostics {
		fmt.Fprintf(&sb, "diagnostic: %v\n", d)
	}

	if r.ParseErr != nil {
		fmt.Fprintf(&sb, "Error: parse failed: %v\n", r.ParseErr)
		return sb.String()
	}

	sb.WriteString(format.FormatTree(r.Tree))
	return sb.String()
}
