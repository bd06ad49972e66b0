// Package diag implements dartlet's uniform diagnostic reporting: one
// formatter for parse-time failures, one for eval-time failures, and a
// Reporter that decides whether a failure panics (so a Go backtrace
// surfaces) or prints to stderr and exits 1. Grounded on
// internal/errors/errors.go of the teacher and on
// dart_parseerror/dart_evalerror in original_source/src/utils.rs.
package diag

import (
	"errors"
	"fmt"
	"os"

	"github.com/dartlet-lang/dartlet/internal/token"
)

// ParseError is a parse-time failure anchored at a source position.
type ParseError struct {
	File string
	Pos  token.Position
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: Error: %s", e.File, e.Pos.Line, e.Pos.Column, e.Msg)
}

// EvalError is a runtime failure, reported against the file active when
// it occurred (not necessarily the program's entry file).
type EvalError struct {
	File string
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: Error: %s", e.File, e.Msg)
}

// LinkError is raised when the import graph resolves but a structural
// invariant of the program as a whole is violated: the entry file has
// no lookup table, or its 'main' is missing or is not a function. Per
// spec.md §7 it always aborts with a panic,
// regardless of the Reporter's Debug setting.
type LinkError struct {
	Msg string
}

func (e *LinkError) Error() string { return e.Msg }

// Reporter decides how a terminal diagnostic surfaces to the user: a Go
// panic under Debug (developer-facing backtrace), or a formatted
// message on stderr followed by os.Exit(1) otherwise. A LinkError
// always panics, independent of Debug.
type Reporter struct {
	Debug bool
}

// NewReporter creates a Reporter with the given --debug setting.
func NewReporter(debug bool) *Reporter {
	return &Reporter{Debug: debug}
}

// Report renders err and either panics or exits the process. It does
// not return.
func (r *Reporter) Report(err error) {
	var link *LinkError
	if errors.As(err, &link) || r.Debug {
		panic(err)
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
