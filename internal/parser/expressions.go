package parser

import (
	"strconv"

	"FcnLang/internal/ast"
	"FcnLang/internal/lexer"
)

// parseExpression returns nil, with the cursor untouched, when no
// expression starts at the cursor.
func (p *Parser) parseExpression() ast.Node {
	if value := p.parseLiteral(); value != nil {
		return value
	}

	if call := p.parseFunctionCall(); call != nil {
		return call
	}

	if ref := p.parseVariableRef(); ref != nil {
		return ref
	}

	return nil
}

func (p *Parser) parseLiteral() ast.Node {
	tok, ok := p.current()
	if !ok {
		return nil
	}

	switch tok.Class {
	case lexer.Identifier:
		return p.parseBool()
	case lexer.Number:
		return p.parseNumber()
	case lexer.String:
		return p.parseString()
	}

	return nil
}

func (p *Parser) parseBool() ast.Node {
	switch p.text() {
	case "True":
		return &ast.BoolLiteral{Value: true}
	case "False":
		return &ast.BoolLiteral{Value: false}
	}
	return nil
}

func (p *Parser) parseNumber() ast.Node {
	value, err := strconv.ParseUint(p.text(), 10, 64)
	if err != nil {
		p.diag(p.errorAt(InvalidValue, "number"))
		return nil
	}
	return &ast.NumberLiteral{Value: value}
}

func (p *Parser) parseString() ast.Node {
	text := p.text()
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		p.diag(p.errorAt(InvalidValue, "string"))
		return nil
	}
	return &ast.StringLiteral{Value: text[1 : len(text)-1]}
}

// parseFunctionCall backtracks to where it started whenever the tokens turn
// out not to form a complete call, so callers can try another production.
func (p *Parser) parseFunctionCall() ast.Node {
	if !p.isName() {
		return nil
	}

	start := p.mark()
	call := &ast.FunctionCall{Name: p.text(), Args: []ast.Node{}}

	if !p.advance() || !p.is("(") {
		p.reset(start)
		return nil
	}

	unclosed := func() ast.Node {
		p.diag(p.errorAtEnd(MissingToken, ")"))
		p.reset(start)
		return nil
	}

	if !p.advance() {
		return unclosed()
	}

	for !p.is(")") {
		if arg := p.parseValue(InvalidArgument, "expression"); arg != nil {
			call.Args = append(call.Args, arg)
		}

		if !p.advance() {
			return unclosed()
		}
		if p.is(",") {
			if !p.advance() {
				return unclosed()
			}
		}
	}

	return call
}

// parseValue parses an expression, diagnosing its absence with kind unless
// the expression parser already reported the token itself.
func (p *Parser) parseValue(kind ErrorKind, expected string) ast.Node {
	before := len(p.diagnostics)
	value := p.parseExpression()
	if value == nil && len(p.diagnostics) == before {
		p.diag(p.errorAt(kind, expected))
	}
	return value
}

func (p *Parser) parseVariableRef() ast.Node {
	if !p.isName() {
		return nil
	}
	return &ast.VariableRef{Name: p.text()}
}
