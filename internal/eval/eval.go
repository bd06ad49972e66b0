// Package eval implements dartlet's tree-walking evaluator: it reduces
// an AST, already linked into a flat globals slice with one lookup
// table per source file, to runtime Values, against a Stack of
// activation frames and an object.System of live instances.
//
// Grounded on the teacher's internal/interp package (the Interpreter
// struct holding shared runtime state, one Eval-dispatch entry point
// fanning out to per-kind handlers split across statements.go/
// expressions.go/calls.go) and on spec.md §4.5's node-by-node semantics,
// which original_source/src/main.rs's evaluate()/eval() calls but whose
// body wasn't part of the retrieved source.
package eval

import (
	"fmt"
	"io"

	"github.com/dartlet-lang/dartlet/internal/ast"
	"github.com/dartlet-lang/dartlet/internal/diag"
	"github.com/dartlet-lang/dartlet/internal/linker"
	"github.com/dartlet-lang/dartlet/internal/object"
	"github.com/dartlet-lang/dartlet/internal/stack"
)

// Evaluator holds every piece of state spec.md §9 says is threaded
// explicitly rather than global: the flat declaration list, one lookup
// table per linked file, the object system, and the activation stack.
// curFile tracks which file's lookup table and diagnostics apply to the
// code currently executing — it changes across a call/constructor/
// method boundary and is restored on return.
type Evaluator struct {
	globals    []*ast.Node
	lookTables map[string]linker.LookTable
	objsys     *object.System
	stack      *stack.Stack
	out        io.Writer
	trace      bool
	curFile    string
}

// New creates an Evaluator over an already-linked program.
func New(globals []*ast.Node, lookTables map[string]linker.LookTable, objsys *object.System, out io.Writer, trace bool) *Evaluator {
	return &Evaluator{
		globals:    globals,
		lookTables: lookTables,
		objsys:     objsys,
		stack:      stack.New(),
		out:        out,
		trace:      trace,
	}
}

// Run locates 'main' in entryFile's lookup table and evaluates its
// body, per spec.md §4.5's entry rule. A missing 'main' is a
// diag.LinkError, which always aborts (spec.md §7).
func (e *Evaluator) Run(entryFile string) error {
	table, ok := e.lookTables[entryFile]
	if !ok {
		return &diag.LinkError{Msg: fmt.Sprintf("no lookup table for %q", entryFile)}
	}
	idx, ok := table["main"]
	if !ok {
		return &diag.LinkError{Msg: "Error: No 'main' method found."}
	}
	main := e.globals[idx]
	if main.Kind != ast.FunDef {
		return &diag.LinkError{Msg: "Error: 'main' does not resolve to a function."}
	}

	e.curFile = entryFile
	e.stack.PushCall()
	defer e.stack.PopCall()
	_, err := e.execBlock(main.Children[1])
	return err
}

// signal is what executing a statement or block propagates upward: an
// ordinary fall-through (the zero value), or a pending Return that
// unwinds every enclosing block up to (but not past) the current call
// frame, per spec.md §4.5/§7.
type signal struct {
	returning bool
	value     Value
}

// execBlock runs a Block node's statements in a fresh lexical frame,
// released on every exit path including a Return unwind (spec.md §5).
func (e *Evaluator) execBlock(block *ast.Node) (signal, error) {
	e.stack.PushBlock()
	defer e.stack.PopBlock()

	for _, stmt := range block.Children {
		s, err := e.execStmt(stmt)
		if err != nil {
			return signal{}, err
		}
		if s.returning {
			return s, nil
		}
	}
	return signal{}, nil
}

func (e *Evaluator) evalErr(format string, args ...any) error {
	return &diag.EvalError{File: e.curFile, Msg: fmt.Sprintf(format, args...)}
}

func (e *Evaluator) asBool(v Value) (bool, error) {
	if v.Kind != BoolV {
		return false, e.evalErr("expected a bool, got %s", v.Kind)
	}
	return v.BoolVal, nil
}

// paramNamesOf reads a ParamList node's plain Name children — used for
// FunDef and local function declarations, which take no `this.`
// shorthand (only Constructor's param list can contain ThisFieldInit,
// handled separately in calls.go).
func paramNamesOf(list *ast.Node) []string {
	names := make([]string, len(list.Children))
	for i, c := range list.Children {
		names[i] = c.StrVal
	}
	return names
}
