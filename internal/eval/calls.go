package eval

import "github.com/dartlet-lang/dartlet/internal/ast"

// evalArgs evaluates an ArgList node's children left to right, in the
// caller's current scope — spec.md §4.5 requires arguments to be
// evaluated before the callee's frame is pushed.
func (e *Evaluator) evalArgs(argList *ast.Node) ([]Value, error) {
	args := make([]Value, len(argList.Children))
	for i, c := range argList.Children {
		v, err := e.evalExpr(c)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalFunCall resolves a FunCall by name against, in order: a locally
// declared nested function still on the lexical stack, a built-in, and
// finally the current file's lookup table — where the target may be
// either a free function or a constructor (spec.md §4.5: "a FunCall
// whose name resolves to a Constructor allocates a new Instance").
func (e *Evaluator) evalFunCall(node *ast.Node) (Value, error) {
	name := node.StrVal

	if raw, ok := e.stack.Lookup(name); ok {
		if fnVal, ok := raw.(Value); ok && fnVal.Kind == FuncV {
			args, err := e.evalArgs(node.Children[0])
			if err != nil {
				return Value{}, err
			}
			return e.invoke(fnVal.FuncFile, paramNamesOf(fnVal.Func.Children[0]), fnVal.Func.Children[1], args, "", false)
		}
	}

	if b, ok := builtins[name]; ok {
		args, err := e.evalArgs(node.Children[0])
		if err != nil {
			return Value{}, err
		}
		return b(e, args)
	}

	table, ok := e.lookTables[e.curFile]
	if !ok {
		return Value{}, e.evalErr("no lookup table for file %q", e.curFile)
	}
	idx, ok := table[name]
	if !ok {
		return Value{}, e.evalErr("undefined function %q", name)
	}
	args, err := e.evalArgs(node.Children[0])
	if err != nil {
		return Value{}, err
	}

	decl := e.globals[idx]
	switch decl.Kind {
	case ast.FunDef:
		return e.invoke(decl.File, paramNamesOf(decl.Children[0]), decl.Children[1], args, "", false)
	case ast.Constructor:
		return e.construct(decl, args)
	default:
		return Value{}, e.evalErr("%q does not resolve to a callable declaration", name)
	}
}

// evalMethodCall dispatches a MethodCall against its receiver's class
// method table (spec.md §4.5).
func (e *Evaluator) evalMethodCall(node *ast.Node) (Value, error) {
	inst, err := e.resolveOwner(node.Owner)
	if err != nil {
		return Value{}, err
	}
	cls, ok := e.objsys.Class(inst.ClassName)
	if !ok {
		return Value{}, e.evalErr("unknown class %q", inst.ClassName)
	}
	method, ok := cls.Methods[node.StrVal]
	if !ok {
		return Value{}, e.evalErr("class %q has no method %q", inst.ClassName, node.StrVal)
	}
	args, err := e.evalArgs(node.Children[0])
	if err != nil {
		return Value{}, err
	}
	names := make([]string, len(method.Params))
	for i, p := range method.Params {
		names[i] = p.Name
	}
	return e.invoke(method.DefiningFile, names, method.Body, args, inst.ID, true)
}

// invoke pushes a call frame, optionally binds 'this', binds params to
// args, runs body, and pops the frame, restoring the caller's file
// context throughout (spec.md §4.5's FunCall/MethodCall rule).
func (e *Evaluator) invoke(file string, paramNames []string, body *ast.Node, args []Value, thisRef string, hasThis bool) (Value, error) {
	if len(paramNames) != len(args) {
		return Value{}, e.evalErr("expected %d arguments, got %d", len(paramNames), len(args))
	}
	prevFile := e.curFile
	e.curFile = file
	e.stack.PushCall()

	if hasThis {
		e.stack.Declare("this", refVal(thisRef))
	}
	for i, name := range paramNames {
		e.stack.Declare(name, args[i])
	}

	sig, err := e.execBlock(body)
	e.stack.PopCall()
	e.curFile = prevFile
	if err != nil {
		return Value{}, err
	}
	if sig.returning {
		return sig.value, nil
	}
	return nullVal(), nil
}

// construct allocates a new Instance, evaluates the class's field
// defaults with 'this' already bound, binds constructor params
// (writing ThisFieldInit params straight into the matching field,
// spec.md §3), runs the constructor body, and yields a Reference.
func (e *Evaluator) construct(ctor *ast.Node, args []Value) (Value, error) {
	cls, ok := e.objsys.Class(ctor.StrVal)
	if !ok {
		return Value{}, e.evalErr("unknown class %q", ctor.StrVal)
	}
	params := ctor.Children[0].Children
	if len(params) != len(args) {
		return Value{}, e.evalErr("constructor %q expects %d arguments, got %d", ctor.StrVal, len(params), len(args))
	}

	inst := e.objsys.NewInstance(cls)

	prevFile := e.curFile
	e.curFile = ctor.File
	e.stack.PushCall()
	e.stack.Declare("this", refVal(inst.ID))

	for _, field := range cls.Fields {
		v, err := e.evalExpr(field.Default)
		if err != nil {
			e.stack.PopCall()
			e.curFile = prevFile
			return Value{}, err
		}
		inst.Fields[field.Name] = v
	}

	for i, p := range params {
		if p.Kind == ast.ThisFieldInit {
			inst.Fields[p.StrVal] = args[i]
		} else {
			e.stack.Declare(p.StrVal, args[i])
		}
	}

	_, err := e.execBlock(ctor.Children[1])
	e.stack.PopCall()
	e.curFile = prevFile
	if err != nil {
		return Value{}, err
	}
	return refVal(inst.ID), nil
}
