// Package ast defines dartlet's abstract syntax tree.
//
// Per spec.md's design note, every node shares one representation: a
// Kind discriminant plus an ordered, untyped Children slice. This keeps
// generic traversals (the AST printer, the evaluator) uniform instead of
// requiring a distinct Go type per syntactic form. Kind-specific payload
// that doesn't fit as a child node (a literal's value, a declared name,
// the file a declaration belongs to) lives in the payload fields below;
// unused fields are simply left zero for a given Kind.
package ast

import "github.com/dartlet-lang/dartlet/internal/token"

// Kind tags a Node with its syntactic form.
type Kind int

const (
	// Leaves
	Int Kind = iota
	Double
	Bool
	Str // Children are the interpolated sub-expressions, in order
	Name
	Null

	// Arithmetic / comparison / logical / bitwise — Children = [lhs, rhs]
	Add
	Sub
	Mul
	Div
	Equal
	LessThan
	GreaterThan
	LessOrEq
	GreaterOrEq
	LogAnd
	LogOr
	BitAnd
	BitOr
	BitXor

	// Unary
	Not
	Negate // prefix '-'
	PreIncrement
	PreDecrement
	PostIncrement
	PostDecrement

	// Calls
	FunCall    // one child: ArgList
	MethodCall // one child: ArgList; receiver lives in Owner, not Children

	// Collections
	List    // Children = entries
	ArgList // Children = argument expressions
	ParamList // Children = Name or ThisFieldInit

	// Access
	FieldAccess // Children = [owner]; Name field in payload
	Index       // Children = [collection, indexExpr]

	// Declarations
	FunDef      // Children = [ParamList, Block]
	Constructor // Children = [ParamList, Block]
	TypedVar    // declared type + name, both in payload
	ThisFieldInit

	// Control flow
	Block     // Children = statements
	Assign    // Children = [target, value]
	Conditional // Children = If, then zero or more ElseIf, then at most one Else
	If          // Children = [cond, Block]
	ElseIf      // Children = [cond, Block]
	Else        // Children = [Block]
	While       // Children = [cond, Block]
	DoWhile     // Children = [Block, cond]
	For         // Children = [initAssign, cond, step, Block]
	Return      // Children = [value]
)

// ParamDescriptor describes one formal parameter of a function,
// constructor, or method. DeclaredType is parsed but not enforced at
// runtime (spec.md: "types on declarations are parsed but only loosely
// enforced"). IsFieldInit marks the `this.x` constructor shorthand,
// which assigns the incoming argument straight into instance field X.
type ParamDescriptor struct {
	DeclaredType string
	Name         string
	IsFieldInit  bool
}

// Node is the single, uniform AST representation. Kind selects which
// payload fields are meaningful; Children holds the fixed-arity (per
// Kind) list of sub-nodes described in spec.md §3.
type Node struct {
	Kind     Kind
	Children []*Node
	Pos      token.Position

	// Leaf/declaration payload. Only the fields relevant to Kind are set.
	IntVal    int64
	DoubleVal float64
	BoolVal   bool
	StrVal    string // Name identifier, FieldAccess field name, FunCall/MethodCall callee name
	DeclType  string // TypedVar declared type
	File      string // defining file, for FunDef/Constructor/MethodCall dispatch
	Owner     *Node  // MethodCall's receiver expression; not a Children entry
	Params    []ParamDescriptor

	// Segments holds a Str node's literal text pieces; Children holds its
	// interpolated expressions. The rendered string is
	// Segments[0] + eval(Children[0]) + Segments[1] + ... + Segments[last].
	Segments []string
}

// New creates a childless Node of the given Kind at pos.
func New(kind Kind, pos token.Position) *Node {
	return &Node{Kind: kind, Pos: pos}
}

// Add appends children to the node and returns it, for compact
// construction in the parser.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}
