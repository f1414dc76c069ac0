package parser

import (
	"FcnLang/internal/ast"
)

// ParseFunctionDecl parses "fcn NAME ( ARGS ) -> TYPE BLOCK" starting at the
// cursor. There is nothing to fall back to at this level, so any violation
// aborts the parse and is returned as the error.
func (p *Parser) ParseFunctionDecl() (*ast.FunctionDecl, error) {
	fn := &ast.FunctionDecl{Args: []*ast.FunctionArg{}}

	if !p.is("fcn") {
		return nil, p.diag(p.errorAt(MissingToken, "fcn"))
	}

	if err := p.next("function name"); err != nil {
		return nil, err
	}
	if !p.isName() {
		return nil, p.diag(p.errorAt(InvalidName, "function"))
	}
	fn.Name = p.text()

	if err := p.next("("); err != nil {
		return nil, err
	}
	if !p.is("(") {
		return nil, p.diag(p.errorAt(MissingToken, "("))
	}

	if err := p.next(")"); err != nil {
		return nil, err
	}
	if !p.is(")") {
		for {
			arg, err := p.parseFunctionArg()
			if err != nil {
				return nil, err
			}
			fn.Args = append(fn.Args, arg)

			if err := p.next(")"); err != nil {
				return nil, err
			}
			if p.is(")") {
				break
			}
			if !p.is(",") {
				return nil, p.diag(p.errorAt(MissingToken, ", or )"))
			}
			if err := p.next("argument name"); err != nil {
				return nil, err
			}
		}
	}

	if err := p.next("->"); err != nil {
		return nil, err
	}
	if !p.is("->") {
		return nil, p.diag(p.errorAt(MissingToken, "->"))
	}

	if err := p.next("return type"); err != nil {
		return nil, err
	}
	returnType, ok := ast.LookupType(p.text())
	if !ok {
		return nil, p.diag(p.errorAt(UnresolvedReturnType, "return"))
	}
	fn.ReturnType = returnType

	if err := p.next("{"); err != nil {
		return nil, err
	}
	if !p.is("{") {
		return nil, p.diag(p.errorAt(MissingToken, "{"))
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = block

	return fn, nil
}

// next advances for a production that cannot backtrack, turning the
// end of the token sequence into a diagnosed error.
func (p *Parser) next(expected string) *Error {
	if !p.advance() {
		return p.diag(p.errorAtEnd(MissingToken, expected))
	}
	return nil
}

func (p *Parser) parseFunctionArg() (*ast.FunctionArg, *Error) {
	if !p.isName() {
		return nil, p.diag(p.errorAt(InvalidName, "argument"))
	}
	arg := &ast.FunctionArg{Name: p.text()}

	if err := p.next("::"); err != nil {
		return nil, err
	}
	if !p.is("::") {
		return nil, p.diag(p.errorAt(MissingToken, "::"))
	}

	if err := p.next("argument type"); err != nil {
		return nil, err
	}
	argType, ok := ast.LookupType(p.text())
	if !ok {
		return nil, p.diag(p.errorAt(UnresolvedType, "argument"))
	}
	arg.Type = argType

	return arg, nil
}

// parseBlock returns (nil, nil) when the cursor is not on "{". Once the
// brace matched, a failure is diagnosed, the cursor goes back to the brace
// and the error is returned so a caller without alternatives can report it.
func (p *Parser) parseBlock() (*ast.Block, *Error) {
	if !p.is("{") {
		return nil, nil
	}

	start := p.mark()
	block := &ast.Block{Nodes: []ast.Node{}}

	fail := func(atEnd bool) (*ast.Block, *Error) {
		var err *Error
		if atEnd {
			err = p.errorAtEnd(MissingBlockEnd, "}")
		} else {
			err = p.errorAt(MissingBlockEnd, "}")
		}
		p.reset(start)
		return nil, p.diag(err)
	}

	if !p.advance() {
		return fail(true)
	}

	for {
		for p.is("\n") {
			if !p.advance() {
				return fail(true)
			}
		}

		if p.is("}") {
			return block, nil
		}

		node := p.parseNode()
		if node == nil {
			return fail(false)
		}
		block.Nodes = append(block.Nodes, node)

		if !p.advance() {
			return fail(true)
		}
	}
}
