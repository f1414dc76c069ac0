package ast

type NodeKind int

const (
	FunctionDeclNode NodeKind = iota
	FunctionArgNode
	VariableDeclNode
	BlockNode
	FunctionCallNode
	VariableRefNode
	BoolLiteralNode
	NumberLiteralNode
	StringLiteralNode
	ControlStatementNode
)

var kindNames = [...]string{
	FunctionDeclNode:     "FunctionDecl",
	FunctionArgNode:      "FunctionArg",
	VariableDeclNode:     "VariableDecl",
	BlockNode:            "Block",
	FunctionCallNode:     "FunctionCall",
	VariableRefNode:      "VariableRef",
	BoolLiteralNode:      "BoolLiteral",
	NumberLiteralNode:    "NumberLiteral",
	StringLiteralNode:    "StringLiteral",
	ControlStatementNode: "ControlStatement",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Node is implemented only by the node types in this package. Consumers
// switch on the concrete type; the set is closed.
type Node interface {
	Kind() NodeKind
	node()
}

type FunctionDecl struct {
	Name       string
	Args       []*FunctionArg
	ReturnType PrimitiveType
	Body       *Block
}

type FunctionArg struct {
	Name string
	Type PrimitiveType
}

type VariableDecl struct {
	Name  string
	Type  PrimitiveType
	Value Node
}

type Block struct {
	Nodes []Node
}

type FunctionCall struct {
	Name string
	Args []Node
}

type VariableRef struct {
	Name string
}

type BoolLiteral struct {
	Value bool
}

type NumberLiteral struct {
	Value uint64
}

type StringLiteral struct {
	Value string
}

// ControlStatement is return, break or continue. Value is only ever set
// for return.
type ControlStatement struct {
	Statement StatementKind
	Value     Node
}

func (*FunctionDecl) Kind() NodeKind     { return FunctionDeclNode }
func (*FunctionArg) Kind() NodeKind      { return FunctionArgNode }
func (*VariableDecl) Kind() NodeKind     { return VariableDeclNode }
func (*Block) Kind() NodeKind            { return BlockNode }
func (*FunctionCall) Kind() NodeKind     { return FunctionCallNode }
func (*VariableRef) Kind() NodeKind      { return VariableRefNode }
func (*BoolLiteral) Kind() NodeKind      { return BoolLiteralNode }
func (*NumberLiteral) Kind() NodeKind    { return NumberLiteralNode }
func (*StringLiteral) Kind() NodeKind    { return StringLiteralNode }
func (*ControlStatement) Kind() NodeKind { return ControlStatementNode }

func (*FunctionDecl) node()     {}
func (*FunctionArg) node()      {}
func (*VariableDecl) node()     {}
func (*Block) node()            {}
func (*FunctionCall) node()     {}
func (*VariableRef) node()      {}
func (*BoolLiteral) node()      {}
func (*NumberLiteral) node()    {}
func (*StringLiteral) node()    {}
func (*ControlStatement) node() {}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *FunctionDecl:
		children := make([]Node, 0, len(n.Args)+1)
		for _, arg := range n.Args {
			children = append(children, arg)
		}
		if n.Body != nil {
			children = append(children, n.Body)
		}
		return children
	case *VariableDecl:
		if n.Value != nil {
			return []Node{n.Value}
		}
	case *Block:
		return n.Nodes
	case *FunctionCall:
		return n.Args
	case *ControlStatement:
		if n.Value != nil {
			return []Node{n.Value}
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, fn)
	}
}
