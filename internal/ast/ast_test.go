package ast

import "testing"

func TestLookupType(t *testing.T) {
	for _, name := range []string{"Int8", "Int16", "Int32", "Int64", "Float32", "Float64", "Bool", "Char", "String"} {
		typ, ok := LookupType(name)
		if !ok {
			t.Errorf("Expected %s to resolve", name)
			continue
		}
		if typ.String() != name {
			t.Errorf("Expected %s to round trip, got %s", name, typ)
		}
	}

	for _, name := range []string{"int32", "Int", "INT8", "", "str"} {
		if _, ok := LookupType(name); ok {
			t.Errorf("Expected %q not to resolve", name)
		}
	}
}

func TestLookupStatement(t *testing.T) {
	tests := map[string]StatementKind{
		"return":   Return,
		"break":    Break,
		"continue": Continue,
	}
	for spelling, expected := range tests {
		kind, ok := LookupStatement(spelling)
		if !ok || kind != expected {
			t.Errorf("Expected %s to resolve to %v, got %v (ok=%v)", spelling, expected, kind, ok)
		}
	}

	for _, spelling := range []string{"Return", "var", "exit", ""} {
		if _, ok := LookupStatement(spelling); ok {
			t.Errorf("Expected %q not to resolve", spelling)
		}
	}
}

func TestWalk(t *testing.T) {
	fn := &FunctionDecl{
		Name:       "add",
		Args:       []*FunctionArg{{Name: "x", Type: Int32}},
		ReturnType: Int32,
		Body: &Block{Nodes: []Node{
			&VariableDecl{Name: "z", Type: Int32, Value: &FunctionCall{
				Name: "f",
				Args: []Node{&NumberLiteral{Value: 1}, &VariableRef{Name: "x"}},
			}},
			&ControlStatement{Statement: Return, Value: &VariableRef{Name: "z"}},
		}},
	}

	var kinds []NodeKind
	Walk(fn, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})

	expected := []NodeKind{
		FunctionDeclNode, FunctionArgNode, BlockNode, VariableDeclNode, FunctionCallNode,
		NumberLiteralNode, VariableRefNode, ControlStatementNode, VariableRefNode,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("Expected %d nodes, got %v", len(expected), kinds)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("node %d: expected %s, got %s", i, expected[i], kinds[i])
		}
	}

	count := 0
	Walk(fn, func(n Node) bool {
		count++
		return n.Kind() != BlockNode
	})
	if count != 3 {
		t.Errorf("Expected pruning at the block to visit 3 nodes, got %d", count)
	}
}
