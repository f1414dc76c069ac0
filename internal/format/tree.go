package format

import (
	"fmt"
	"strconv"
	"strings"

	"FcnLang/internal/ast"
)

// FormatTree renders n as an indented outline, one node per line.
func FormatTree(n ast.Node) string {
	var sb strings.Builder
	writeNode(&sb, n, 0)
	return sb.String()
}

func writeNode(sb *strings.Builder, n ast.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(describe(n))
	sb.WriteString("\n")

	// Function arguments are already part of the signature line.
	if fn, ok := n.(*ast.FunctionDecl); ok {
		if fn.Body != nil {
			writeNode(sb, fn.Body, depth+1)
		}
		return
	}

	for _, child := range ast.Children(n) {
		writeNode(sb, child, depth+1)
	}
}

func describe(n ast.Node) string {
	switch n := n.(type) {
	case *ast.FunctionDecl:
		args := make([]string, len(n.Args))
		for i, arg := range n.Args {
			args[i] = fmt.Sprintf("%s :: %s", arg.Name, arg.Type)
		}
		return fmt.Sprintf("FunctionDecl %s(%s) -> %s", n.Name, strings.Join(args, ", "), n.ReturnType)
	case *ast.FunctionArg:
		return fmt.Sprintf("FunctionArg %s :: %s", n.Name, n.Type)
	case *ast.VariableDecl:
		return fmt.Sprintf("VariableDecl %s :: %s", n.Name, n.Type)
	case *ast.Block:
		return "Block"
	case *ast.FunctionCall:
		return fmt.Sprintf("FunctionCall %s", n.Name)
	case *ast.VariableRef:
		return fmt.Sprintf("VariableRef %s", n.Name)
	case *ast.BoolLiteral:
		if n.Value {
			return "BoolLiteral True"
		}
		return "BoolLiteral False"
	case *ast.NumberLiteral:
		return fmt.Sprintf("NumberLiteral %d", n.Value)
	case *ast.StringLiteral:
		return fmt.Sprintf("StringLiteral %s", strconv.Quote(n.Value))
	case *ast.ControlStatement:
		return fmt.Sprintf("ControlStatement %s", n.Statement)
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%T", n)
}

// TreeNode is the serialisable form of an ast.Node.
type TreeNode struct {
	Kind       string      `json:"kind" yaml:"kind"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Type       string      `json:"type,omitempty" yaml:"type,omitempty"`
	ReturnType string      `json:"return_type,omitempty" yaml:"return_type,omitempty"`
	Statement  string      `json:"statement,omitempty" yaml:"statement,omitempty"`
	Value      any         `json:"value,omitempty" yaml:"value,omitempty"`
	Args       []*TreeNode `json:"args,omitempty" yaml:"args,omitempty"`
	Body       *TreeNode   `json:"body,omitempty" yaml:"body,omitempty"`
	Nodes      []*TreeNode `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

func Encode(n ast.Node) *TreeNode {
	if n == nil {
		return nil
	}

	out := &TreeNode{Kind: n.Kind().String()}

	switch n := n.(type) {
	case *ast.FunctionDecl:
		out.Name = n.Name
		out.ReturnType = n.ReturnType.String()
		for _, arg := range n.Args {
			out.Args = append(out.Args, Encode(arg))
		}
		if n.Body != nil {
			out.Body = Encode(n.Body)
		}
	case *ast.FunctionArg:
		out.Name = n.Name
		out.Type = n.Type.String()
	case *ast.VariableDecl:
		out.Name = n.Name
		out.Type = n.Type.String()
		if n.Value != nil {
			out.Value = Encode(n.Value)
		}
	case *ast.Block:
		for _, child := range n.Nodes {
			out.Nodes = append(out.Nodes, Encode(child))
		}
	case *ast.FunctionCall:
		out.Name = n.Name
		for _, arg := range n.Args {
			out.Args = append(out.Args, Encode(arg))
		}
	case *ast.VariableRef:
		out.Name = n.Name
	case *ast.BoolLiteral:
		out.Value = n.Value
	case *ast.NumberLiteral:
		out.Value = n.Value
	case *ast.StringLiteral:
		out.Value = n.Value
	case *ast.ControlStatement:
		out.Statement = n.Statement.String()
		if n.Value != nil {
			out.Value = Encode(n.Value)
		}
	}

	return out
}
