package parser

import (
	"FcnLang/internal/ast"
	"FcnLang/internal/lexer"
)

// parseNode tries each statement form in a fixed order; the first match wins.
func (p *Parser) parseNode() ast.Node {
	if node := p.parseVariableDecl(); node != nil {
		return node
	}

	if node := p.parseFunctionCall(); node != nil {
		return node
	}

	if block, _ := p.parseBlock(); block != nil {
		return block
	}

	if node := p.parseControlStatement(); node != nil {
		return node
	}

	return nil
}

func (p *Parser) parseVariableDecl() ast.Node {
	if !p.is("var") {
		return nil
	}

	start := p.mark()
	reject := func(err *Error) ast.Node {
		p.diag(err)
		p.reset(start)
		return nil
	}

	if !p.advance() {
		return reject(p.errorAtEnd(MissingToken, "variable name"))
	}
	if !p.isName() {
		return reject(p.errorAt(InvalidName, "variable"))
	}
	decl := &ast.VariableDecl{Name: p.text()}

	if !p.advance() {
		return reject(p.errorAtEnd(MissingToken, "::"))
	}
	if !p.is("::") {
		return reject(p.errorAt(MissingToken, "::"))
	}

	if !p.advance() {
		return reject(p.errorAtEnd(MissingToken, "variable type"))
	}
	varType, ok := ast.LookupType(p.text())
	if !ok {
		return reject(p.errorAt(UnresolvedType, "variable"))
	}
	decl.Type = varType

	if !p.advance() {
		return reject(p.errorAtEnd(MissingToken, "="))
	}
	if !p.is("=") {
		return reject(p.errorAt(MissingToken, "="))
	}

	if !p.advance() {
		return reject(p.errorAtEnd(InvalidValue, "variable"))
	}
	value := p.parseValue(InvalidValue, "variable")
	if value == nil {
		p.reset(start)
		return nil
	}
	decl.Value = value

	return decl
}

func (p *Parser) parseControlStatement() ast.Node {
	if !p.isClass(lexer.Identifier) {
		return nil
	}

	kind, ok := ast.LookupStatement(p.text())
	if !ok {
		return nil
	}

	stmt := &ast.ControlStatement{Statement: kind}
	if kind != ast.Return {
		return stmt
	}

	start := p.mark()
	if !p.advance() {
		p.diag(p.errorAtEnd(InvalidValue, "return"))
		return nil
	}

	value := p.parseValue(InvalidValue, "return")
	if value == nil {
		p.reset(start)
		return nil
	}
	stmt.Value = value

	return stmt
}
