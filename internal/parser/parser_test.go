package parser

import (
	"testing"

	"github.com/dartlet-lang/dartlet/internal/ast"
	"github.com/dartlet-lang/dartlet/internal/lexer"
	"github.com/dartlet-lang/dartlet/internal/object"
)

func parseExpr(t *testing.T, src string) *ast.Node {
	t.Helper()
	tokens, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q) error: %v", src, err)
	}
	var globals []*ast.Node
	p := New(tokens, "<test>", &globals, object.NewSystem())
	n, err := p.expression()
	if err != nil {
		t.Fatalf("expression(%q) error: %v", src, err)
	}
	return n
}

// TestSumLeftAssociative pins down spec.md §8's "a - b - c == (a - b) - c"
// property regardless of how the precedence ladder is implemented.
func TestSumLeftAssociative(t *testing.T) {
	n := parseExpr(t, "1 - 2 - 3")
	if n.Kind != ast.Sub {
		t.Fatalf("root kind = %v, want Sub", n.Kind)
	}
	left := n.Children[0]
	if left.Kind != ast.Sub {
		t.Fatalf("left child kind = %v, want Sub (left-associative)", left.Kind)
	}
	if left.Children[0].IntVal != 1 || left.Children[1].IntVal != 2 {
		t.Errorf("inner Sub operands = %d, %d; want 1, 2", left.Children[0].IntVal, left.Children[1].IntVal)
	}
	if n.Children[1].IntVal != 3 {
		t.Errorf("outer Sub right operand = %d, want 3", n.Children[1].IntVal)
	}
}

func TestProductLeftAssociative(t *testing.T) {
	n := parseExpr(t, "1 / 2 / 3")
	if n.Kind != ast.Div || n.Children[0].Kind != ast.Div {
		t.Fatalf("expected (1/2)/3 shape, got %s", n.String())
	}
}

// TestComparisonBindsAtMostOnce checks that a single "<" parses to one
// LessThan node whose two operands are the Int literals on either side.
func TestComparisonBindsAtMostOnce(t *testing.T) {
	n := parseExpr(t, "1 < 2")
	if n.Kind != ast.LessThan {
		t.Fatalf("kind = %v, want LessThan", n.Kind)
	}
	if n.Children[0].Kind != ast.Int || n.Children[1].Kind != ast.Int {
		t.Errorf("expected two Int operands, got %s", n.String())
	}
}

func TestPrecedenceArithmeticBeforeComparison(t *testing.T) {
	n := parseExpr(t, "1 + 2 * 3")
	if n.Kind != ast.Add {
		t.Fatalf("kind = %v, want Add", n.Kind)
	}
	mul := n.Children[1]
	if mul.Kind != ast.Mul {
		t.Fatalf("right operand kind = %v, want Mul", mul.Kind)
	}
}

func TestAccessChainBuildsFieldThenMethod(t *testing.T) {
	n := parseExpr(t, "a.b.c()")
	if n.Kind != ast.MethodCall {
		t.Fatalf("kind = %v, want MethodCall", n.Kind)
	}
	if n.StrVal != "c" {
		t.Errorf("StrVal = %q, want %q", n.StrVal, "c")
	}
	if n.Owner == nil || n.Owner.Kind != ast.FieldAccess || n.Owner.StrVal != "b" {
		t.Fatalf("Owner = %+v, want a FieldAccess(b)", n.Owner)
	}
	if len(n.Children) != 1 || n.Children[0].Kind != ast.ArgList {
		t.Errorf("Children = %+v, want exactly one ArgList", n.Children)
	}
}

func TestIndexExpression(t *testing.T) {
	n := parseExpr(t, "xs[0]")
	if n.Kind != ast.Index {
		t.Fatalf("kind = %v, want Index", n.Kind)
	}
	if n.Children[0].Kind != ast.Name || n.Children[1].Kind != ast.Int {
		t.Errorf("Children = %+v", n.Children)
	}
}

func TestStrLiteralNestedInterpolation(t *testing.T) {
	n := parseExpr(t, `"a${"b${1+1}c"}d"`)
	if n.Kind != ast.Str {
		t.Fatalf("kind = %v, want Str", n.Kind)
	}
	if len(n.Segments) != 2 || n.Segments[0] != "a" || n.Segments[1] != "d" {
		t.Fatalf("Segments = %#v, want [a d]", n.Segments)
	}
	if len(n.Children) != 1 {
		t.Fatalf("Children = %+v, want exactly one hole", n.Children)
	}
	inner := n.Children[0]
	if inner.Kind != ast.Str || len(inner.Segments) != 2 || inner.Segments[0] != "b" || inner.Segments[1] != "c" {
		t.Fatalf("inner hole = %s, want a nested Str(b${...}c)", inner.String())
	}
	if len(inner.Children) != 1 || inner.Children[0].Kind != ast.Add {
		t.Fatalf("inner hole's Children = %+v, want a single Add", inner.Children)
	}
}

func TestParseTopLevelFunctionAndImports(t *testing.T) {
	src := `import "b.dart";

void main() {
  int x = 1;
  print(x);
}
`
	tokens, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	var globals []*ast.Node
	p := New(tokens, "a.dart", &globals, object.NewSystem())
	imports, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(imports) != 1 || imports[0] != "b.dart" {
		t.Fatalf("imports = %v, want [b.dart]", imports)
	}
	if len(globals) != 1 || globals[0].Kind != ast.FunDef || globals[0].StrVal != "main" {
		t.Fatalf("globals = %v, want a single FunDef(main)", globals)
	}
	body := globals[0].Children[1]
	if len(body.Children) != 2 {
		t.Fatalf("main body has %d statements, want 2", len(body.Children))
	}
	if body.Children[0].Kind != ast.Assign {
		t.Errorf("first statement kind = %v, want Assign", body.Children[0].Kind)
	}
}

func TestClassWithThisFieldInitConstructor(t *testing.T) {
	src := `class P {
  int n;
  P(this.n);
  int get() {
    return n;
  }
}
`
	tokens, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	var globals []*ast.Node
	objsys := object.NewSystem()
	p := New(tokens, "p.dart", &globals, objsys)
	if _, err := p.Parse(); err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	cls, ok := objsys.Class("P")
	if !ok {
		t.Fatal("class P was not registered")
	}
	if len(cls.Fields) != 1 || cls.Fields[0].Name != "n" {
		t.Fatalf("Fields = %+v, want a single field n", cls.Fields)
	}
	if _, ok := cls.Methods["get"]; !ok {
		t.Fatal("method get was not registered")
	}

	if len(globals) != 1 || globals[0].Kind != ast.Constructor {
		t.Fatalf("globals = %v, want a single Constructor", globals)
	}
	params := globals[0].Children[0].Children
	if len(params) != 1 || params[0].Kind != ast.ThisFieldInit || params[0].StrVal != "n" {
		t.Fatalf("constructor params = %+v, want a single ThisFieldInit(n)", params)
	}
}

func TestClassWithoutConstructorGetsSyntheticOne(t *testing.T) {
	src := `class Empty {
  int n;
}
`
	tokens, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	var globals []*ast.Node
	p := New(tokens, "e.dart", &globals, object.NewSystem())
	if _, err := p.Parse(); err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(globals) != 1 || globals[0].Kind != ast.Constructor {
		t.Fatalf("globals = %v, want a single synthetic Constructor", globals)
	}
	if len(globals[0].Children[0].Children) != 0 {
		t.Errorf("synthetic constructor should take no parameters")
	}
}

func TestMemberAssignmentIsAcceptedExtension(t *testing.T) {
	src := `void main() {
  p.n = 1;
  xs[0] = 2;
}
`
	tokens, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	var globals []*ast.Node
	p := New(tokens, "m.dart", &globals, object.NewSystem())
	if _, err := p.Parse(); err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	body := globals[0].Children[1]
	if body.Children[0].Kind != ast.Assign || body.Children[0].Children[0].Kind != ast.FieldAccess {
		t.Errorf("first statement = %s, want Assign(FieldAccess, ...)", body.Children[0].String())
	}
	if body.Children[1].Kind != ast.Assign || body.Children[1].Children[0].Kind != ast.Index {
		t.Errorf("second statement = %s, want Assign(Index, ...)", body.Children[1].String())
	}
}
