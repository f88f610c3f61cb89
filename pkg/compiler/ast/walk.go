package ast

// Children returns the direct sub-nodes of n in source order.
// Absent optional parts (a let without value, an if without else) are skipped.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}

	switch n := n.(type) {
	case *Program:
		for _, s := range n.Statements {
			add(s)
		}
	case *LetStatement:
		if n.Name != nil {
			add(n.Name)
		}
		add(n.Value)
	case *ReturnStatement:
		add(n.ReturnValue)
	case *ExpressionStatement:
		add(n.Expression)
	case *BlockStatement:
		for _, s := range n.Statements {
			add(s)
		}
	case *PrefixExpression:
		add(n.Right)
	case *InfixExpression:
		add(n.Left)
		add(n.Right)
	case *IfExpression:
		add(n.Condition)
		if n.Consequence != nil {
			add(n.Consequence)
		}
		if n.Alternative != nil {
			add(n.Alternative)
		}
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			add(p)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *CallExpression:
		add(n.Function)
		for _, a := range n.Arguments {
			add(a)
		}
	}
	return out
}

// Inspect traverses the tree rooted at n depth-first, calling fn for each
// node before its children. If fn returns false the children are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}
