package edifact_test

import (
	"reflect"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/coop-care/paid-edifact/pkg/edifact"
)

func TestToAST(t *testing.T) {
	ic, err := edifact.Tokenize("UNB+UNOC:3+1+2+3+4'UNH+1+X'AAA+b:c'UNT+3+1'UNZ+1+4'")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	node := edifact.ToAST(ic)
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("ToAST() = %T, want *ast.ObjectNode", node)
	}

	props := obj.Properties()
	for _, key := range []string{"header", "messages", "decimalNotation"} {
		if _, ok := props[key]; !ok {
			t.Errorf("ToAST() missing %q", key)
		}
	}

	messages, ok := props["messages"].(*ast.ArrayDataNode)
	if !ok || len(messages.Elements()) != 1 {
		t.Fatalf("messages = %#v", props["messages"])
	}
	msg := messages.Elements()[0].(*ast.ObjectNode)
	segments := msg.Properties()["segments"].(*ast.ArrayDataNode)
	seg := segments.Elements()[0].(*ast.ObjectNode)

	tag := seg.Properties()["tag"].(*ast.LiteralNode)
	if tag.Value() != "AAA" {
		t.Errorf("tag = %v, want AAA", tag.Value())
	}

	elements, err := edifact.NodeToElements(seg.Properties()["elements"])
	if err != nil {
		t.Fatalf("NodeToElements() error = %v", err)
	}
	want := []edifact.Element{{"b", "c"}}
	if !reflect.DeepEqual(elements, want) {
		t.Errorf("elements = %q, want %q", elements, want)
	}

	decimal := props["decimalNotation"].(*ast.LiteralNode)
	if decimal.Value() != "," {
		t.Errorf("decimalNotation = %v, want ','", decimal.Value())
	}
}

func TestElementsToNode_RoundTrip(t *testing.T) {
	elements := []edifact.Element{{"UNOC", "3"}, {""}, {"a", "", "b"}}

	got, err := edifact.NodeToElements(edifact.ElementsToNode(elements))
	if err != nil {
		t.Fatalf("NodeToElements() error = %v", err)
	}
	if !reflect.DeepEqual(got, elements) {
		t.Errorf("NodeToElements() = %q, want %q", got, elements)
	}
}

func TestNodeToElements_Errors(t *testing.T) {
	pos := ast.ZeroPosition()
	tests := []struct {
		name string
		node ast.SchemaNode
	}{
		{"literal", ast.NewLiteralNode("x", pos)},
		{"flat array", ast.NewArrayDataNode([]ast.SchemaNode{ast.NewLiteralNode("x", pos)}, pos)},
		{"non-string component", ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewArrayDataNode([]ast.SchemaNode{ast.NewLiteralNode(int64(1), pos)}, pos),
		}, pos)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := edifact.NodeToElements(tt.node); err == nil {
				t.Error("NodeToElements() expected error")
			}
		})
	}
}
