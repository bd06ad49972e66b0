package eval

import "github.com/dartlet-lang/dartlet/internal/ast"

// evalExpr reduces a single expression node to a Value, per the
// per-node semantics in spec.md §4.5.
func (e *Evaluator) evalExpr(node *ast.Node) (Value, error) {
	switch node.Kind {
	case ast.Int:
		return intVal(node.IntVal), nil
	case ast.Double:
		return doubleVal(node.DoubleVal), nil
	case ast.Bool:
		return boolVal(node.BoolVal), nil
	case ast.Null:
		return nullVal(), nil
	case ast.Str:
		return e.evalStr(node)
	case ast.Name:
		return e.evalName(node)
	case ast.List:
		return e.evalList(node)

	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.BitAnd, ast.BitOr, ast.BitXor:
		return e.evalArith(node)
	case ast.Equal:
		l, err := e.evalExpr(node.Children[0])
		if err != nil {
			return Value{}, err
		}
		r, err := e.evalExpr(node.Children[1])
		if err != nil {
			return Value{}, err
		}
		return boolVal(valuesEqual(l, r)), nil
	case ast.LessThan, ast.GreaterThan, ast.LessOrEq, ast.GreaterOrEq:
		return e.evalComparison(node)
	case ast.LogAnd:
		return e.evalLogAnd(node)
	case ast.LogOr:
		return e.evalLogOr(node)
	case ast.Not:
		return e.evalNot(node)
	case ast.Negate:
		return e.evalNegate(node)

	case ast.PreIncrement:
		return e.evalIncDec(node, 1, false)
	case ast.PreDecrement:
		return e.evalIncDec(node, -1, false)
	case ast.PostIncrement:
		return e.evalIncDec(node, 1, true)
	case ast.PostDecrement:
		return e.evalIncDec(node, -1, true)

	case ast.FunCall:
		return e.evalFunCall(node)
	case ast.MethodCall:
		return e.evalMethodCall(node)

	case ast.FieldAccess:
		inst, err := e.resolveOwner(node.Children[0])
		if err != nil {
			return Value{}, err
		}
		v, ok := fieldValue(inst, node.StrVal)
		if !ok {
			return Value{}, e.evalErr("class %q has no field %q", inst.ClassName, node.StrVal)
		}
		return v, nil
	case ast.Index:
		items, idx, err := e.resolveIndex(node)
		if err != nil {
			return Value{}, err
		}
		return items[idx], nil

	default:
		return Value{}, e.evalErr("cannot evaluate node of kind %v as an expression", node.Kind)
	}
}

// evalStr interleaves a Str node's literal Segments with its
// Children's evaluated interpolation holes, per spec.md §2/§8's nested-
// interpolation boundary test.
func (e *Evaluator) evalStr(node *ast.Node) (Value, error) {
	out := node.Segments[0]
	for i, hole := range node.Children {
		v, err := e.evalExpr(hole)
		if err != nil {
			return Value{}, err
		}
		out += v.String()
		out += node.Segments[i+1]
	}
	return strVal(out), nil
}

// evalName looks up a name in the current call's lexical frames,
// innermost outward; failing that, inside a method or constructor it
// may name a field of 'this'; failing that, it may name a class,
// yielding a class handle (spec.md §4.5).
func (e *Evaluator) evalName(node *ast.Node) (Value, error) {
	if raw, ok := e.stack.Lookup(node.StrVal); ok {
		return raw.(Value), nil
	}
	if raw, ok := e.stack.Lookup("this"); ok {
		if this, ok := raw.(Value); ok && this.Kind == RefV {
			if inst, ok := e.objsys.Instance(this.Ref); ok {
				if v, ok := fieldValue(inst, node.StrVal); ok {
					return v, nil
				}
			}
		}
	}
	if cls, ok := e.objsys.Class(node.StrVal); ok {
		return Value{Kind: ClassV, StrVal: cls.Name}, nil
	}
	return Value{}, e.evalErr("undefined name %q", node.StrVal)
}

func (e *Evaluator) evalList(node *ast.Node) (Value, error) {
	items := make([]Value, len(node.Children))
	for i, c := range node.Children {
		v, err := e.evalExpr(c)
		if err != nil {
			return Value{}, err
		}
		items[i] = v
	}
	return listVal(items), nil
}

func (e *Evaluator) evalLogAnd(node *ast.Node) (Value, error) {
	l, err := e.evalExpr(node.Children[0])
	if err != nil {
		return Value{}, err
	}
	lb, err := e.asBool(l)
	if err != nil {
		return Value{}, err
	}
	if !lb {
		return boolVal(false), nil
	}
	r, err := e.evalExpr(node.Children[1])
	if err != nil {
		return Value{}, err
	}
	rb, err := e.asBool(r)
	if err != nil {
		return Value{}, err
	}
	return boolVal(rb), nil
}

func (e *Evaluator) evalLogOr(node *ast.Node) (Value, error) {
	l, err := e.evalExpr(node.Children[0])
	if err != nil {
		return Value{}, err
	}
	lb, err := e.asBool(l)
	if err != nil {
		return Value{}, err
	}
	if lb {
		return boolVal(true), nil
	}
	r, err := e.evalExpr(node.Children[1])
	if err != nil {
		return Value{}, err
	}
	rb, err := e.asBool(r)
	if err != nil {
		return Value{}, err
	}
	return boolVal(rb), nil
}

func (e *Evaluator) evalNot(node *ast.Node) (Value, error) {
	v, err := e.evalExpr(node.Children[0])
	if err != nil {
		return Value{}, err
	}
	b, err := e.asBool(v)
	if err != nil {
		return Value{}, err
	}
	return boolVal(!b), nil
}

func (e *Evaluator) evalNegate(node *ast.Node) (Value, error) {
	v, err := e.evalExpr(node.Children[0])
	if err != nil {
		return Value{}, err
	}
	switch v.Kind {
	case IntV:
		return intVal(-v.IntVal), nil
	case DoubleV:
		return doubleVal(-v.DoubleVal), nil
	default:
		return Value{}, e.evalErr("unary '-' requires a numeric operand, got %s", v.Kind)
	}
}

// evalIncDec implements pre/post ++/-- on a Name or FieldAccess target
// (spec.md §4.5): post-forms yield the prior value, pre-forms yield the
// updated one, and both mutate the binding in place.
func (e *Evaluator) evalIncDec(node *ast.Node, delta int64, post bool) (Value, error) {
	target := node.Children[0]
	old, err := e.evalExpr(target)
	if err != nil {
		return Value{}, err
	}
	var updated Value
	switch old.Kind {
	case IntV:
		updated = intVal(old.IntVal + delta)
	case DoubleV:
		updated = doubleVal(old.DoubleVal + float64(delta))
	default:
		return Value{}, e.evalErr("'++'/'--' requires a numeric target, got %s", old.Kind)
	}
	if err := e.storeInto(target, updated); err != nil {
		return Value{}, err
	}
	if post {
		return old, nil
	}
	return updated, nil
}

func (e *Evaluator) evalComparison(node *ast.Node) (Value, error) {
	l, err := e.evalExpr(node.Children[0])
	if err != nil {
		return Value{}, err
	}
	r, err := e.evalExpr(node.Children[1])
	if err != nil {
		return Value{}, err
	}
	if !isNumeric(l) || !isNumeric(r) {
		return Value{}, e.evalErr("comparison requires numeric operands, got %s and %s", l.Kind, r.Kind)
	}
	lf, rf := toFloat(l), toFloat(r)
	switch node.Kind {
	case ast.LessThan:
		return boolVal(lf < rf), nil
	case ast.GreaterThan:
		return boolVal(lf > rf), nil
	case ast.LessOrEq:
		return boolVal(lf <= rf), nil
	default: // ast.GreaterOrEq
		return boolVal(lf >= rf), nil
	}
}

// evalArith dispatches the arithmetic/bitwise binary operators: numeric
// promotion for +-*/, Str/List concatenation for +, integer-only for
// the bitwise trio, per spec.md §4.5.
func (e *Evaluator) evalArith(node *ast.Node) (Value, error) {
	l, err := e.evalExpr(node.Children[0])
	if err != nil {
		return Value{}, err
	}
	r, err := e.evalExpr(node.Children[1])
	if err != nil {
		return Value{}, err
	}

	switch node.Kind {
	case ast.Add:
		return e.evalAdd(l, r)
	case ast.Div:
		return e.evalDiv(l, r)
	case ast.BitAnd, ast.BitOr, ast.BitXor:
		if l.Kind != IntV || r.Kind != IntV {
			return Value{}, e.evalErr("bitwise operators require int operands, got %s and %s", l.Kind, r.Kind)
		}
		switch node.Kind {
		case ast.BitAnd:
			return intVal(l.IntVal & r.IntVal), nil
		case ast.BitOr:
			return intVal(l.IntVal | r.IntVal), nil
		default:
			return intVal(l.IntVal ^ r.IntVal), nil
		}
	default: // Sub, Mul
		if !isNumeric(l) || !isNumeric(r) {
			return Value{}, e.evalErr("arithmetic operator requires numeric operands, got %s and %s", l.Kind, r.Kind)
		}
		if l.Kind == IntV && r.Kind == IntV {
			if node.Kind == ast.Sub {
				return intVal(l.IntVal - r.IntVal), nil
			}
			return intVal(l.IntVal * r.IntVal), nil
		}
		if node.Kind == ast.Sub {
			return doubleVal(toFloat(l) - toFloat(r)), nil
		}
		return doubleVal(toFloat(l) * toFloat(r)), nil
	}
}

func (e *Evaluator) evalAdd(l, r Value) (Value, error) {
	if l.Kind == StrV || r.Kind == StrV {
		if l.Kind != StrV || r.Kind != StrV {
			return Value{}, e.evalErr("cannot add %s and %s", l.Kind, r.Kind)
		}
		return strVal(l.StrVal + r.StrVal), nil
	}
	if l.Kind == ListV && r.Kind == ListV {
		items := make([]Value, 0, len(l.List.Items)+len(r.List.Items))
		items = append(items, l.List.Items...)
		items = append(items, r.List.Items...)
		return listVal(items), nil
	}
	if !isNumeric(l) || !isNumeric(r) {
		return Value{}, e.evalErr("cannot add %s and %s", l.Kind, r.Kind)
	}
	if l.Kind == IntV && r.Kind == IntV {
		return intVal(l.IntVal + r.IntVal), nil
	}
	return doubleVal(toFloat(l) + toFloat(r)), nil
}

// evalDiv performs truncating integer division on two Ints and regular
// floating division otherwise; either case is a runtime error when the
// divisor is zero (spec.md §4.5/§7).
func (e *Evaluator) evalDiv(l, r Value) (Value, error) {
	if l.Kind == IntV && r.Kind == IntV {
		if r.IntVal == 0 {
			return Value{}, e.evalErr("integer division by zero")
		}
		return intVal(l.IntVal / r.IntVal), nil
	}
	if !isNumeric(l) || !isNumeric(r) {
		return Value{}, e.evalErr("cannot divide %s by %s", l.Kind, r.Kind)
	}
	rf := toFloat(r)
	if rf == 0 {
		return Value{}, e.evalErr("division by zero")
	}
	return doubleVal(toFloat(l) / rf), nil
}
