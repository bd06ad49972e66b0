package eval

import "github.com/dartlet-lang/dartlet/internal/ast"

// execStmt runs one statement, per spec.md §4.5. Only a Return produces
// a non-zero signal: either the Return itself, or a conditional or loop
// passing on one from its body. Every other kind reports the zero
// signal and an error, if any.
func (e *Evaluator) execStmt(node *ast.Node) (signal, error) {
	switch node.Kind {
	case ast.Assign:
		return e.execAssign(node)
	case ast.FunDef:
		e.stack.Declare(node.StrVal, Value{Kind: FuncV, Func: node, FuncFile: e.curFile})
		return signal{}, nil
	case ast.Conditional:
		return e.execConditional(node)
	case ast.While:
		return e.execWhile(node)
	case ast.DoWhile:
		return e.execDoWhile(node)
	case ast.For:
		return e.execFor(node)
	case ast.Return:
		v, err := e.evalExpr(node.Children[0])
		if err != nil {
			return signal{}, err
		}
		return signal{returning: true, value: v}, nil
	default:
		_, err := e.evalExpr(node)
		return signal{}, err
	}
}

// execAssign implements spec.md §4.5's Assign rule: a TypedVar target
// always creates/overwrites in the current innermost frame; every other
// target (Name, FieldAccess, Index) is written through storeInto.
func (e *Evaluator) execAssign(node *ast.Node) (signal, error) {
	target := node.Children[0]
	value, err := e.evalExpr(node.Children[1])
	if err != nil {
		return signal{}, err
	}
	if target.Kind == ast.TypedVar {
		e.stack.Declare(target.StrVal, value)
		return signal{}, nil
	}
	if err := e.storeInto(target, value); err != nil {
		return signal{}, err
	}
	return signal{}, nil
}

// storeInto writes value into an assignable expression target: a bare
// Name (assign-in-innermost-that-has-it, else create), a FieldAccess
// (instance field write), or an Index (in-place list element write).
// The latter two are dartlet's supplemented assignment targets (§9).
func (e *Evaluator) storeInto(target *ast.Node, value Value) error {
	switch target.Kind {
	case ast.Name:
		e.stack.Assign(target.StrVal, value)
		return nil
	case ast.FieldAccess:
		inst, err := e.resolveOwner(target.Children[0])
		if err != nil {
			return err
		}
		inst.Fields[target.StrVal] = value
		return nil
	case ast.Index:
		items, idx, err := e.resolveIndex(target)
		if err != nil {
			return err
		}
		items[idx] = value
		return nil
	default:
		return e.evalErr("invalid assignment target")
	}
}

// execConditional walks an If/ElseIf*/Else? chain in order, running the
// first arm whose condition is true (or the trailing Else if none was),
// each in its own lexical frame via execBlock.
func (e *Evaluator) execConditional(node *ast.Node) (signal, error) {
	for _, clause := range node.Children {
		switch clause.Kind {
		case ast.If, ast.ElseIf:
			cond, err := e.evalExpr(clause.Children[0])
			if err != nil {
				return signal{}, err
			}
			taken, err := e.asBool(cond)
			if err != nil {
				return signal{}, err
			}
			if taken {
				return e.execBlock(clause.Children[1])
			}
		case ast.Else:
			return e.execBlock(clause.Children[0])
		}
	}
	return signal{}, nil
}

func (e *Evaluator) execWhile(node *ast.Node) (signal, error) {
	for {
		cond, err := e.evalExpr(node.Children[0])
		if err != nil {
			return signal{}, err
		}
		keepGoing, err := e.asBool(cond)
		if err != nil {
			return signal{}, err
		}
		if !keepGoing {
			return signal{}, nil
		}
		s, err := e.execBlock(node.Children[1])
		if err != nil {
			return signal{}, err
		}
		if s.returning {
			return s, nil
		}
	}
}

// execDoWhile: body first, then cond. Children are [body, cond].
func (e *Evaluator) execDoWhile(node *ast.Node) (signal, error) {
	for {
		s, err := e.execBlock(node.Children[0])
		if err != nil {
			return signal{}, err
		}
		if s.returning {
			return s, nil
		}
		cond, err := e.evalExpr(node.Children[1])
		if err != nil {
			return signal{}, err
		}
		keepGoing, err := e.asBool(cond)
		if err != nil {
			return signal{}, err
		}
		if !keepGoing {
			return signal{}, nil
		}
	}
}

// execFor: children are [initAssign, cond, step, body]. The init
// binding lives in a lexical frame that outlives every iteration's
// body frame, so step and cond see updates the body frame already
// released, per spec.md §4.5.
func (e *Evaluator) execFor(node *ast.Node) (signal, error) {
	e.stack.PushBlock()
	defer e.stack.PopBlock()

	if _, err := e.execStmt(node.Children[0]); err != nil {
		return signal{}, err
	}
	for {
		cond, err := e.evalExpr(node.Children[1])
		if err != nil {
			return signal{}, err
		}
		keepGoing, err := e.asBool(cond)
		if err != nil {
			return signal{}, err
		}
		if !keepGoing {
			return signal{}, nil
		}
		s, err := e.execBlock(node.Children[3])
		if err != nil {
			return signal{}, err
		}
		if s.returning {
			return s, nil
		}
		if _, err := e.execStmt(node.Children[2]); err != nil {
			return signal{}, err
		}
	}
}
