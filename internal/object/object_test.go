package object

import (
	"testing"

	"github.com/dartlet-lang/dartlet/internal/ast"
	"github.com/dartlet-lang/dartlet/internal/token"
)

func TestNewInstanceGetsUniqueIDs(t *testing.T) {
	sys := NewSystem()
	cls := NewClass("P")
	sys.RegisterClass(cls)

	a := sys.NewInstance(cls)
	b := sys.NewInstance(cls)
	if a.ID == b.ID {
		t.Fatalf("two instances got the same id %q", a.ID)
	}
	if a.Fields == nil {
		t.Error("NewInstance should start with a non-nil Fields map")
	}
}

func TestInstanceLookupByID(t *testing.T) {
	sys := NewSystem()
	cls := NewClass("P")
	sys.RegisterClass(cls)
	inst := sys.NewInstance(cls)

	got, ok := sys.Instance(inst.ID)
	if !ok || got != inst {
		t.Fatalf("Instance(%q) = %v, %v; want %v, true", inst.ID, got, ok, inst)
	}

	if _, ok := sys.Instance("#does-not-exist"); ok {
		t.Error("Instance should report false for an unknown id")
	}
}

func TestRegisterClassOverwritesSameName(t *testing.T) {
	sys := NewSystem()
	first := NewClass("P")
	first.AddField("a", ast.New(ast.Null, token.Position{}))
	sys.RegisterClass(first)

	second := NewClass("P")
	sys.RegisterClass(second)

	got, ok := sys.Class("P")
	if !ok || got != second {
		t.Fatalf("Class(%q) = %v, %v; want the second registration", "P", got, ok)
	}
}

func TestAddMethodLastWins(t *testing.T) {
	cls := NewClass("P")
	cls.AddMethod("m", &FunctionObject{Name: "m", DefiningFile: "first.dart"})
	cls.AddMethod("m", &FunctionObject{Name: "m", DefiningFile: "second.dart"})

	got := cls.Methods["m"]
	if got.DefiningFile != "second.dart" {
		t.Errorf("DefiningFile = %q, want %q", got.DefiningFile, "second.dart")
	}
}

func TestAddFieldPreservesOrder(t *testing.T) {
	cls := NewClass("P")
	cls.AddField("a", ast.New(ast.Null, token.Position{}))
	cls.AddField("b", ast.New(ast.Null, token.Position{}))
	if len(cls.Fields) != 2 || cls.Fields[0].Name != "a" || cls.Fields[1].Name != "b" {
		t.Fatalf("Fields = %+v, want [a b] in order", cls.Fields)
	}
}
