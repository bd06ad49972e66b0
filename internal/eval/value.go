package eval

import (
	"fmt"
	"strings"

	"github.com/dartlet-lang/dartlet/internal/ast"
)

// Kind tags a runtime Value, per spec.md §3's Value variant.
type Kind int

const (
	IntV Kind = iota
	DoubleV
	BoolV
	StrV
	ListV
	RefV   // an Object System instance id
	NullV  // the absence of a value
	FuncV  // a locally-declared (nested) function, not yet callable from a looktable
	ClassV // a bare reference to a class by name, e.g. evaluating its name without calling it
)

func (k Kind) String() string {
	switch k {
	case IntV:
		return "int"
	case DoubleV:
		return "double"
	case BoolV:
		return "bool"
	case StrV:
		return "string"
	case ListV:
		return "list"
	case RefV:
		return "object"
	case NullV:
		return "null"
	case FuncV:
		return "function"
	case ClassV:
		return "class"
	default:
		return "?"
	}
}

// List is the shared, mutable backing of a ListV value. Every Value
// holding the same *List aliases the same elements, giving lists
// reference semantics per spec.md §3 ("lists by shared handle").
type List struct {
	Items []Value
}

// Value is dartlet's runtime variant: exactly one of the fields below is
// meaningful, selected by Kind.
type Value struct {
	Kind      Kind
	IntVal    int64
	DoubleVal float64
	BoolVal   bool
	StrVal    string // Str payload, or a ClassV's name
	List      *List
	Ref       string    // RefV: instance id
	Func      *ast.Node // FuncV: the FunDef node
	FuncFile  string    // FuncV: the file it closed over
}

func intVal(n int64) Value       { return Value{Kind: IntV, IntVal: n} }
func doubleVal(f float64) Value  { return Value{Kind: DoubleV, DoubleVal: f} }
func boolVal(b bool) Value       { return Value{Kind: BoolV, BoolVal: b} }
func strVal(s string) Value      { return Value{Kind: StrV, StrVal: s} }
func nullVal() Value             { return Value{Kind: NullV} }
func refVal(id string) Value     { return Value{Kind: RefV, Ref: id} }
func listVal(items []Value) Value {
	return Value{Kind: ListV, List: &List{Items: items}}
}

func isNumeric(v Value) bool { return v.Kind == IntV || v.Kind == DoubleV }

func toFloat(v Value) float64 {
	if v.Kind == IntV {
		return float64(v.IntVal)
	}
	return v.DoubleVal
}

// String renders v the way the `print` builtin does.
func (v Value) String() string {
	switch v.Kind {
	case IntV:
		return fmt.Sprintf("%d", v.IntVal)
	case DoubleV:
		return fmt.Sprintf("%g", v.DoubleVal)
	case BoolV:
		if v.BoolVal {
			return "true"
		}
		return "false"
	case StrV:
		return v.StrVal
	case NullV:
		return "null"
	case RefV:
		return "#" + v.Ref
	case ClassV:
		return v.StrVal
	case FuncV:
		return "<function>"
	case ListV:
		parts := make([]string, len(v.List.Items))
		for i, item := range v.List.Items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "?"
	}
}

func valuesEqual(l, r Value) bool {
	if isNumeric(l) && isNumeric(r) {
		return toFloat(l) == toFloat(r)
	}
	if l.Kind != r.Kind {
		return false
	}
	switch l.Kind {
	case BoolV:
		return l.BoolVal == r.BoolVal
	case StrV:
		return l.StrVal == r.StrVal
	case RefV:
		return l.Ref == r.Ref
	case NullV:
		return true
	case ClassV:
		return l.StrVal == r.StrVal
	default:
		return false
	}
}
