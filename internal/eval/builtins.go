package eval

import "strings"

// builtins are the handful of free functions not declared by any
// dartlet program itself — resolved before a file's lookup table, the
// same way original_source treated `print` as always in scope.
var builtins = map[string]func(*Evaluator, []Value) (Value, error){
	"print": builtinPrint,
}

func builtinPrint(e *Evaluator, args []Value) (Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	if _, err := e.out.Write([]byte(strings.Join(parts, " ") + "\n")); err != nil {
		return Value{}, e.evalErr("print: %s", err)
	}
	return nullVal(), nil
}
