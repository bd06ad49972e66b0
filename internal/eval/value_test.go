package eval

import "testing"

func TestValueStringFormatsEachKind(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"int", intVal(7), "7"},
		{"double", doubleVal(1.5), "1.5"},
		{"boolTrue", boolVal(true), "true"},
		{"boolFalse", boolVal(false), "false"},
		{"str", strVal("hi"), "hi"},
		{"null", nullVal(), "null"},
		{"ref", refVal("#1"), "##1"},
		{"list", listVal([]Value{intVal(1), intVal(2)}), "[1, 2]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.String(); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestValuesEqualNumericCrossesIntAndDouble(t *testing.T) {
	if !valuesEqual(intVal(2), doubleVal(2.0)) {
		t.Error("2 (int) should equal 2.0 (double)")
	}
	if valuesEqual(intVal(2), doubleVal(2.5)) {
		t.Error("2 should not equal 2.5")
	}
}

func TestValuesEqualDifferentKindsAreUnequal(t *testing.T) {
	if valuesEqual(strVal("1"), intVal(1)) {
		t.Error("a string and an int should never be equal, even with matching text")
	}
}

func TestValuesEqualRefComparesByID(t *testing.T) {
	if !valuesEqual(refVal("#1"), refVal("#1")) {
		t.Error("two refs with the same id should be equal")
	}
	if valuesEqual(refVal("#1"), refVal("#2")) {
		t.Error("two refs with different ids should not be equal")
	}
}

func TestIsNumericAndToFloat(t *testing.T) {
	if !isNumeric(intVal(1)) || !isNumeric(doubleVal(1)) {
		t.Error("int and double should both be numeric")
	}
	if isNumeric(strVal("1")) {
		t.Error("a string should not be numeric")
	}
	if toFloat(intVal(3)) != 3.0 {
		t.Errorf("toFloat(intVal(3)) = %v, want 3.0", toFloat(intVal(3)))
	}
	if toFloat(doubleVal(3.5)) != 3.5 {
		t.Errorf("toFloat(doubleVal(3.5)) = %v, want 3.5", toFloat(doubleVal(3.5)))
	}
}
