package lexer

import (
	"testing"

	"github.com/dartlet-lang/dartlet/internal/token"
)

func TestLexBasicTokens(t *testing.T) {
	input := `void main() { int x = 10; }`

	tests := []struct {
		kind token.Kind
		lit  string
	}{
		{token.Name, "void"},
		{token.Name, "main"},
		{token.Paren1, "("},
		{token.Paren2, ")"},
		{token.Block1, "{"},
		{token.Name, "int"},
		{token.Name, "x"},
		{token.Assign, "="},
		{token.Int, "10"},
		{token.EndSt, ";"},
		{token.Block2, "}"},
		{token.End, "<eof>"},
	}

	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tests), tokens)
	}
	for i, tt := range tests {
		if tokens[i].Kind != tt.kind {
			t.Errorf("token[%d].Kind = %v, want %v", i, tokens[i].Kind, tt.kind)
		}
		if tokens[i].Literal() != tt.lit {
			t.Errorf("token[%d].Literal() = %q, want %q", i, tokens[i].Literal(), tt.lit)
		}
	}
}

func TestLexMultiCharOperators(t *testing.T) {
	tokens, err := Lex("== <= >= && || ++ --")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	want := []token.Kind{
		token.Equal, token.LessOrEq, token.GreaterOrEq, token.LogAnd,
		token.LogOr, token.Increment, token.Decrement, token.End,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token[%d].Kind = %v, want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestLexStringNoInterpolation(t *testing.T) {
	tokens, err := Lex(`"hello\nworld"`)
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	if tokens[0].Kind != token.Str {
		t.Fatalf("tokens[0].Kind = %v, want Str", tokens[0].Kind)
	}
	if len(tokens[0].Segments) != 1 || tokens[0].Segments[0] != "hello\nworld" {
		t.Errorf("Segments = %#v, want [\"hello\\nworld\"]", tokens[0].Segments)
	}
	if len(tokens[0].Interpolations) != 0 {
		t.Errorf("Interpolations = %#v, want none", tokens[0].Interpolations)
	}
}

func TestLexStringInterpolation(t *testing.T) {
	tokens, err := Lex(`"a${1+1}b"`)
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	str := tokens[0]
	if str.Kind != token.Str {
		t.Fatalf("tokens[0].Kind = %v, want Str", str.Kind)
	}
	if want := []string{"a", "b"}; len(str.Segments) != 2 || str.Segments[0] != want[0] || str.Segments[1] != want[1] {
		t.Errorf("Segments = %#v, want %#v", str.Segments, want)
	}
	if len(str.Interpolations) != 1 {
		t.Fatalf("Interpolations = %#v, want exactly one hole", str.Interpolations)
	}
	hole := str.Interpolations[0]
	if len(hole) != 4 { // Int, Add, Int, End
		t.Errorf("hole has %d tokens, want 4: %v", len(hole), hole)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := Lex(`"unterminated`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string literal")
	}
}

func TestLexUnknownCharacter(t *testing.T) {
	_, err := Lex("@")
	if err == nil {
		t.Fatal("expected an error for an unknown character")
	}
}

func TestLexSkipsComments(t *testing.T) {
	tokens, err := Lex("1 // a comment\n+ /* block */ 2")
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	want := []token.Kind{token.Int, token.Add, token.Int, token.End}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
}
