package eval

import (
	"github.com/dartlet-lang/dartlet/internal/ast"
	"github.com/dartlet-lang/dartlet/internal/object"
)

// resolveOwner evaluates an owner expression (the receiver of a
// FieldAccess or MethodCall) and resolves it to its live Instance.
func (e *Evaluator) resolveOwner(ownerExpr *ast.Node) (*object.Instance, error) {
	owner, err := e.evalExpr(ownerExpr)
	if err != nil {
		return nil, err
	}
	if owner.Kind != RefV {
		return nil, e.evalErr("cannot access a field or method on a %s value", owner.Kind)
	}
	inst, ok := e.objsys.Instance(owner.Ref)
	if !ok {
		return nil, e.evalErr("stale or unknown instance reference %q", owner.Ref)
	}
	return inst, nil
}

// fieldValue reads a field already stored as an eval.Value inside an
// Instance's untyped Fields map (object.Instance is shared with no
// dependency on this package's Value type).
func fieldValue(inst *object.Instance, name string) (Value, bool) {
	raw, ok := inst.Fields[name]
	if !ok {
		return Value{}, false
	}
	v, ok := raw.(Value)
	return v, ok
}

// resolveIndex evaluates an Index node's collection and index
// sub-expressions and bounds-checks the result, returning the backing
// slice and the validated index so callers can both read and write
// through it.
func (e *Evaluator) resolveIndex(node *ast.Node) ([]Value, int, error) {
	coll, err := e.evalExpr(node.Children[0])
	if err != nil {
		return nil, 0, err
	}
	if coll.Kind != ListV {
		return nil, 0, e.evalErr("cannot index a %s value", coll.Kind)
	}
	idxVal, err := e.evalExpr(node.Children[1])
	if err != nil {
		return nil, 0, err
	}
	if idxVal.Kind != IntV {
		return nil, 0, e.evalErr("list index must be an int, got %s", idxVal.Kind)
	}
	idx := int(idxVal.IntVal)
	if idx < 0 || idx >= len(coll.List.Items) {
		return nil, 0, e.evalErr("list index %d out of range (length %d)", idx, len(coll.List.Items))
	}
	return coll.List.Items, idx, nil
}
