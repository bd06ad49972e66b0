package diag

import (
	"testing"

	"github.com/dartlet-lang/dartlet/internal/token"
)

func TestParseErrorFormatsFileAndPosition(t *testing.T) {
	err := &ParseError{File: "a.dart", Pos: token.Position{Line: 3, Column: 7}, Msg: "unexpected token"}
	want := "a.dart:3:7: Error: unexpected token"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestEvalErrorFormatsFileWithoutPosition(t *testing.T) {
	err := &EvalError{File: "b.dart", Msg: "undefined name \"x\""}
	want := "b.dart: Error: undefined name \"x\""
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLinkErrorRendersMsgVerbatim(t *testing.T) {
	err := &LinkError{Msg: "Error: No 'main' method found."}
	if got := err.Error(); got != "Error: No 'main' method found." {
		t.Errorf("Error() = %q", got)
	}
}
