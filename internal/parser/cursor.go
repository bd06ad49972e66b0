// Package parser implements the recursive-descent parser: the token
// Reader (cursor), the expression precedence ladder, and the top-level
// declaration/class/statement grammar from spec.md §4.3, grounded on
// internal/parser/cursor.go and internal/parser/expressions.go of the
// teacher and on parser.rs/expression.rs/reader.rs of the Rust original
// this spec was distilled from.
package parser

import (
	"fmt"

	"github.com/dartlet-lang/dartlet/internal/token"
)

// Reader is a stateful cursor over a token sequence, per spec.md §4.2.
type Reader struct {
	tokens []token.Token
	pos    int
}

// NewReader wraps tokens (which must end in a token.End sentinel).
func NewReader(tokens []token.Token) *Reader {
	return &Reader{tokens: tokens}
}

// Sym returns the token currently under the cursor.
func (r *Reader) Sym() token.Token {
	if r.pos >= len(r.tokens) {
		return token.Token{Kind: token.End}
	}
	return r.tokens[r.pos]
}

// Next advances the cursor and returns the new current token.
func (r *Reader) Next() token.Token {
	r.pos++
	return r.Sym()
}

// Peek returns the token one past the current one, without advancing.
func (r *Reader) Peek() token.Token {
	if r.pos+1 >= len(r.tokens) {
		return token.Token{Kind: token.End}
	}
	return r.tokens[r.pos+1]
}

// Pos returns the cursor's current index.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of tokens in the underlying sequence.
func (r *Reader) Len() int { return len(r.tokens) }

// More reports whether there is at least one token after the current one.
func (r *Reader) More() bool { return r.pos+1 < len(r.tokens) }

// Skip asserts that the current token's printed form equals literal and
// advances past it; otherwise it returns an error describing the
// mismatch, leaving the cursor in place.
func (r *Reader) Skip(literal string) error {
	cur := r.Sym()
	if cur.Literal() != literal {
		return fmt.Errorf("expected %q, got %q", literal, cur.Literal())
	}
	r.Next()
	return nil
}
