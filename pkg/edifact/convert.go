// Package edifact provides conversion between interchanges and Shape AST nodes.
package edifact

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ToAST converts an interchange to Shape's unified AST.
//
// The result is an *ast.ObjectNode:
//   - "header": *ast.ArrayDataNode of elements
//   - "messages": *ast.ArrayDataNode of *ast.ObjectNode with "header" and "segments"
//   - "decimalNotation": *ast.LiteralNode holding a one-character string
//
// Each segment is an *ast.ObjectNode with "tag" (*ast.LiteralNode) and
// "elements"; each element is an *ast.ArrayDataNode of *ast.LiteralNode components.
func ToAST(ic *Interchange) ast.SchemaNode {
	pos := ast.ZeroPosition()
	if ic == nil {
		return ast.NewObjectNode(map[string]ast.SchemaNode{}, pos)
	}

	messages := make([]ast.SchemaNode, len(ic.Messages))
	for i, m := range ic.Messages {
		segments := make([]ast.SchemaNode, len(m.Segments))
		for j, seg := range m.Segments {
			segments[j] = segmentToNode(seg)
		}
		messages[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"header":   ElementsToNode(m.Header),
			"segments": ast.NewArrayDataNode(segments, pos),
		}, pos)
	}

	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"header":          ElementsToNode(ic.Header),
		"messages":        ast.NewArrayDataNode(messages, pos),
		"decimalNotation": ast.NewLiteralNode(string(ic.DecimalNotation), pos),
	}, pos)
}

func segmentToNode(seg Segment) ast.SchemaNode {
	pos := ast.ZeroPosition()
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"tag":      ast.NewLiteralNode(seg.Tag, pos),
		"elements": ElementsToNode(seg.Elements),
	}, pos)
}

// ElementsToNode converts elements to an *ast.ArrayDataNode of element arrays.
//
// Example:
//
//	node := edifact.ElementsToNode(ic.Header)
//	// node is [["UNOC","3"],["1"],...] as AST
func ElementsToNode(elements []Element) *ast.ArrayDataNode {
	pos := ast.ZeroPosition()
	nodes := make([]ast.SchemaNode, len(elements))
	for i, element := range elements {
		components := make([]ast.SchemaNode, len(element))
		for j, component := range element {
			components[j] = ast.NewLiteralNode(component, pos)
		}
		nodes[i] = ast.NewArrayDataNode(components, pos)
	}
	return ast.NewArrayDataNode(nodes, pos)
}

// NodeToElements converts an *ast.ArrayDataNode produced by ElementsToNode
// back to elements.
func NodeToElements(node ast.SchemaNode) ([]Element, error) {
	array, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	elements := make([]Element, len(array.Elements()))
	for i, elemNode := range array.Elements() {
		elemArray, ok := elemNode.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("element %d: expected *ast.ArrayDataNode, got %T", i, elemNode)
		}
		element := make(Element, len(elemArray.Elements()))
		for j, compNode := range elemArray.Elements() {
			lit, ok := compNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("element %d, component %d: expected *ast.LiteralNode, got %T", i, j, compNode)
			}
			s, ok := lit.Value().(string)
			if !ok {
				return nil, fmt.Errorf("element %d, component %d: expected string value, got %T", i, j, lit.Value())
			}
			element[j] = s
		}
		elements[i] = element
	}
	return elements, nil
}
