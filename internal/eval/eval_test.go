package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dartlet-lang/dartlet/internal/linker"
	"github.com/dartlet-lang/dartlet/internal/object"
)

// run links and evaluates src as the entry file of a freshly created
// directory, returning everything print wrote.
func run(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.dart"), []byte(src), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	objsys := object.NewSystem()
	lk := linker.New(dir, objsys)
	if err := lk.Link("main.dart"); err != nil {
		t.Fatalf("Link error: %v", err)
	}

	var out bytes.Buffer
	e := New(lk.Globals(), lk.LookTables(), objsys, &out, false)
	if err := e.Run("main.dart"); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return out.String()
}

// runErr is like run but expects Run to fail, returning the error.
func runErr(t *testing.T, src string) error {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.dart"), []byte(src), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	objsys := object.NewSystem()
	lk := linker.New(dir, objsys)
	if err := lk.Link("main.dart"); err != nil {
		t.Fatalf("Link error: %v", err)
	}

	var out bytes.Buffer
	e := New(lk.Globals(), lk.LookTables(), objsys, &out, false)
	return e.Run("main.dart")
}

func TestArithmeticPrecedence(t *testing.T) {
	got := run(t, `void main() { print(1 + 2 * 3); }`)
	if strings.TrimSpace(got) != "7" {
		t.Errorf("output = %q, want 7", got)
	}
}

func TestIntegerDivisionTruncates(t *testing.T) {
	got := run(t, `void main() { print(7 / 2); }`)
	if strings.TrimSpace(got) != "3" {
		t.Errorf("output = %q, want 3", got)
	}
}

func TestDivisionByZeroIsAnError(t *testing.T) {
	if err := runErr(t, `void main() { print(1 / 0); }`); err == nil {
		t.Error("expected an error for integer division by zero")
	}
	if err := runErr(t, `void main() { print(1.0 / 0.0); }`); err == nil {
		t.Error("expected an error for floating division by zero")
	}
}

func TestLogAndShortCircuits(t *testing.T) {
	// if && evaluated its right side eagerly, calling f() would print
	// "called" even though the left side is false.
	got := run(t, `
bool f() {
  print("called");
  return true;
}
void main() {
  print(false && f());
}
`)
	if got != "false\n" {
		t.Errorf("output = %q, want %q (f must not be called)", got, "false\n")
	}
}

func TestLogOrShortCircuits(t *testing.T) {
	got := run(t, `
bool f() {
  print("called");
  return true;
}
void main() {
  print(true || f());
}
`)
	if got != "true\n" {
		t.Errorf("output = %q, want %q (f must not be called)", got, "true\n")
	}
}

func TestWhileLoopCountsDown(t *testing.T) {
	got := run(t, `
void main() {
  int x = 3;
  while (x > 0) {
    print(x);
    x = x - 1;
  }
}
`)
	if got != "3\n2\n1\n" {
		t.Errorf("output = %q, want 3,2,1", got)
	}
}

func TestForLoopSumsRange(t *testing.T) {
	got := run(t, `
void main() {
  int sum = 0;
  for (int i = 0; i < 5; i = i + 1) {
    sum = sum + i;
  }
  print(sum);
}
`)
	if strings.TrimSpace(got) != "10" {
		t.Errorf("output = %q, want 10", got)
	}
}

func TestFunctionCallAndReturn(t *testing.T) {
	got := run(t, `
int add(int a, int b) {
  return a + b;
}
void main() {
  print(add(2, 3));
}
`)
	if strings.TrimSpace(got) != "5" {
		t.Errorf("output = %q, want 5", got)
	}
}

func TestClassConstructionFieldAndMethod(t *testing.T) {
	got := run(t, `
class P {
  int n;
  P(this.n);
  int get() {
    return n;
  }
}
void main() {
  P p = P(42);
  print(p.get());
}
`)
	if strings.TrimSpace(got) != "42" {
		t.Errorf("output = %q, want 42", got)
	}
}

func TestFieldAssignmentMutatesInstance(t *testing.T) {
	got := run(t, `
class P {
  int n;
  P(this.n);
}
void main() {
  P p = P(1);
  p.n = 9;
  print(p.n);
}
`)
	if strings.TrimSpace(got) != "9" {
		t.Errorf("output = %q, want 9", got)
	}
}

func TestListIndexReadAndWrite(t *testing.T) {
	got := run(t, `
void main() {
  List xs = [1, 2, 3];
  xs[1] = 99;
  print(xs[0]);
  print(xs[1]);
}
`)
	if got != "1\n99\n" {
		t.Errorf("output = %q, want 1,99", got)
	}
}

func TestListIndexOutOfRangeIsAnError(t *testing.T) {
	if err := runErr(t, `
void main() {
  List xs = [1];
  print(xs[5]);
}
`); err == nil {
		t.Error("expected an out-of-range error")
	}
}

func TestStringInterpolationNested(t *testing.T) {
	got := run(t, `
void main() {
  int a = 1;
  print("a${"b${a+1}c"}d");
}
`)
	if strings.TrimSpace(got) != "ab2cd" {
		t.Errorf("output = %q, want ab2cd", got)
	}
}

func TestUndefinedNameIsAnError(t *testing.T) {
	if err := runErr(t, `void main() { print(doesNotExist); }`); err == nil {
		t.Error("expected an undefined-name error")
	}
}

func TestMissingMainIsALinkError(t *testing.T) {
	if err := runErr(t, `int f() { return 1; }`); err == nil {
		t.Error("expected a missing-main error")
	}
}
