// Package printer renders an AST as an indented outline, one node per line.
//
//	Program
//	  LetStatement x
//	    Identifier x
//	    InfixExpression +
//	      IntegerLiteral 1
//	      IntegerLiteral 2
package printer

import (
	"bufio"
	"io"
	"strings"

	"github.com/agenthands/nmonkey/pkg/compiler/ast"
)

// Printer writes node outlines. Indent defaults to two spaces.
type Printer struct {
	Indent string
}

// Fprint writes the outline of node to w using the default settings.
func Fprint(w io.Writer, node ast.Node) error {
	return (&Printer{}).Fprint(w, node)
}

// Sprint returns the outline of node.
func Sprint(node ast.Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}

func (p *Printer) Fprint(w io.Writer, node ast.Node) error {
	indent := p.Indent
	if indent == "" {
		indent = "  "
	}

	bw := bufio.NewWriter(w)
	p.print(bw, node, indent, 0)
	return bw.Flush()
}

func (p *Printer) print(w *bufio.Writer, node ast.Node, indent string, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString(indent)
	}
	w.WriteString(Label(node))
	w.WriteByte('\n')

	for _, child := range ast.Children(node) {
		p.print(w, child, indent, depth+1)
	}
}

// Label is the single-line description of node without its children.
func Label(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Program:
		return "Program"
	case *ast.LetStatement:
		return "LetStatement " + n.Name.Value
	case *ast.ReturnStatement:
		return "ReturnStatement"
	case *ast.ExpressionStatement:
		return "ExpressionStatement"
	case *ast.BlockStatement:
		return "BlockStatement"
	case *ast.Identifier:
		return "Identifier " + n.Value
	case *ast.IntegerLiteral:
		return "IntegerLiteral " + n.Token.Literal
	case *ast.Boolean:
		return "Boolean " + n.Token.Literal
	case *ast.PrefixExpression:
		return "PrefixExpression " + n.Operator
	case *ast.InfixExpression:
		return "InfixExpression " + n.Operator
	case *ast.IfExpression:
		if n.Alternative != nil {
			return "IfExpression else"
		}
		return "IfExpression"
	case *ast.FunctionLiteral:
		return "FunctionLiteral"
	case *ast.CallExpression:
		return "CallExpression"
	default:
		return "Unknown"
	}
}
