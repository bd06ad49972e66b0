package ast

import (
	"fmt"
	"strings"
)

var kindNames = map[Kind]string{
	Int: "Int", Double: "Double", Bool: "Bool", Str: "Str", Name: "Name", Null: "Null",
	Add: "Add", Sub: "Sub", Mul: "Mul", Div: "Div", Equal: "Equal",
	LessThan: "LessThan", GreaterThan: "GreaterThan", LessOrEq: "LessOrEq",
	GreaterOrEq: "GreaterOrEq", LogAnd: "LogAnd", LogOr: "LogOr",
	BitAnd: "BitAnd", BitOr: "BitOr", BitXor: "BitXor",
	Not: "Not", Negate: "Negate", PreIncrement: "PreIncrement",
	PreDecrement: "PreDecrement", PostIncrement: "PostIncrement", PostDecrement: "PostDecrement",
	FunCall: "FunCall", MethodCall: "MethodCall",
	List: "List", ArgList: "ArgList", ParamList: "ParamList",
	FieldAccess: "FieldAccess", Index: "Index",
	FunDef: "FunDef", Constructor: "Constructor", TypedVar: "TypedVar",
	ThisFieldInit: "ThisFieldInit",
	Block:         "Block", Assign: "Assign", Conditional: "Conditional",
	If: "If", ElseIf: "ElseIf", Else: "Else", While: "While", DoWhile: "DoWhile",
	For: "For", Return: "Return",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// String renders the node and its subtree as an indented s-expression,
// the format the `parse` CLI action prints each top-level declaration in.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind.String())

	switch n.Kind {
	case Int:
		fmt.Fprintf(sb, "(%d)", n.IntVal)
	case Double:
		fmt.Fprintf(sb, "(%g)", n.DoubleVal)
	case Bool:
		fmt.Fprintf(sb, "(%v)", n.BoolVal)
	case Str:
		fmt.Fprintf(sb, "(%s)", strings.Join(n.Segments, "${...}"))
	case Name:
		fmt.Fprintf(sb, "(%s)", n.StrVal)
	case FieldAccess:
		fmt.Fprintf(sb, "(%s)", n.StrVal)
	case TypedVar:
		fmt.Fprintf(sb, "(%s %s)", n.DeclType, n.StrVal)
	case ThisFieldInit:
		fmt.Fprintf(sb, "(this.%s)", n.StrVal)
	case FunDef, Constructor:
		fmt.Fprintf(sb, "(%s @ %s)", n.StrVal, n.File)
	case MethodCall:
		fmt.Fprintf(sb, "(%s @ %s)", n.StrVal, n.File)
	case FunCall:
		fmt.Fprintf(sb, "(%s)", n.StrVal)
	}

	sb.WriteString("\n")
	if n.Owner != nil {
		n.Owner.write(sb, depth+1)
	}
	for _, c := range n.Children {
		c.write(sb, depth+1)
	}
}
