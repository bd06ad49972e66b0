// Package object implements dartlet's class/object system: class
// definitions registered once during parsing, and a live instance
// registry keyed by a freshly generated string id. Outside code holds
// instances by id rather than by pointer — this is the repo's reference-
// semantics mechanism (spec.md §3, "Instance handles, not pointers"),
// adapted from the teacher's pointer-based ClassInfo/ObjectInstance pair
// (internal/interp/class.go) to the id-registry scheme spec.md requires.
package object

import (
	"fmt"
	"sync/atomic"

	"github.com/dartlet-lang/dartlet/internal/ast"
)

// FunctionObject is a function, method, or constructor body together
// with the file it was defined in (needed by the evaluator to resolve
// calls made from inside it against the right per-file lookup table)
// and its formal parameters.
type FunctionObject struct {
	Name          string
	DefiningFile  string
	Body          *ast.Node
	Params        []ast.ParamDescriptor
}

// Class holds a class's field defaults and method table. Classes are
// registered during parsing and are immutable afterward.
type Class struct {
	Name        string
	Fields      []FieldDecl // ordered, preserves declaration order
	Methods     map[string]*FunctionObject
}

// FieldDecl is one class field: its name and the AST expression that
// produces its default value (ast.Null if none was given).
type FieldDecl struct {
	Name    string
	Default *ast.Node
}

// NewClass creates an empty, named Class ready to accumulate fields and
// methods while the parser reads its body.
func NewClass(name string) *Class {
	return &Class{Name: name, Methods: make(map[string]*FunctionObject)}
}

// AddField appends a field declaration, preserving source order.
func (c *Class) AddField(name string, defaultExpr *ast.Node) {
	c.Fields = append(c.Fields, FieldDecl{Name: name, Default: defaultExpr})
}

// AddMethod registers a method under name, overwriting any earlier
// method of the same name (last declaration wins, matching the parser's
// single left-to-right pass over class members).
func (c *Class) AddMethod(name string, fn *FunctionObject) {
	c.Methods[name] = fn
}

// Instance is a live object: the class it was constructed from, its own
// id, and its field values (opaque to this package — the evaluator owns
// the Value type). Fields are stored as `any` here so this package has
// no dependency on the evaluator's Value type; the evaluator reads and
// writes the map directly.
type Instance struct {
	ClassName string
	ID        string
	Fields    map[string]any
}

// System is the registry of class definitions and live instances. One
// System exists per evaluator run; it owns both tables for the program's
// entire lifetime (instances are never reclaimed — spec.md §3 lifecycle).
type System struct {
	classes   map[string]*Class
	instances map[string]*Instance
	nextID    atomic.Uint64
}

// NewSystem creates an empty object system.
func NewSystem() *System {
	return &System{
		classes:   make(map[string]*Class),
		instances: make(map[string]*Instance),
	}
}

// RegisterClass adds cls to the registry under its name. A later
// registration with the same name overwrites the earlier one, matching
// the linker's "last-merged wins" rule for same-named declarations.
func (s *System) RegisterClass(cls *Class) {
	s.classes[cls.Name] = cls
}

// Class looks up a registered class by name. The second return value is
// false when no such class exists.
func (s *System) Class(name string) (*Class, bool) {
	c, ok := s.classes[name]
	return c, ok
}

// NewInstance allocates a fresh Instance of cls with a freshly generated
// unique id and an empty field map, registers it, and returns it. The
// caller (the evaluator) is responsible for populating Fields from the
// class's field defaults.
func (s *System) NewInstance(cls *Class) *Instance {
	id := fmt.Sprintf("#%d", s.nextID.Add(1))
	inst := &Instance{ClassName: cls.Name, ID: id, Fields: make(map[string]any)}
	s.instances[id] = inst
	return inst
}

// Instance resolves a Reference value's id to its live Instance. The
// second return value is false if the id is unknown (should not happen
// for ids produced by NewInstance, but callers check anyway).
func (s *System) Instance(id string) (*Instance, bool) {
	inst, ok := s.instances[id]
	return inst, ok
}
