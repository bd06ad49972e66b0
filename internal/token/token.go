// Package token defines the lexical token model shared by the lexer and
// parser. A Token is a tagged variant: its Kind selects which payload
// field is meaningful, and every Token (except End) carries the source
// position it was scanned from.
package token

import (
	"fmt"
	"strings"
)

// Kind identifies which lexical category a Token belongs to.
type Kind int

const (
	// Literals
	Int    Kind = iota // integer literal, payload in IntVal
	Double             // double literal, payload in DoubleVal
	Bool               // boolean literal, payload in BoolVal
	Str                // string literal, payload in Segments/Interpolations

	// Identifiers and keywords
	Name  // identifier, payload in StrVal
	Class
	If
	Else
	While
	Do
	For
	Return
	Import
	This

	// Operators
	Add
	Sub
	Mul
	Div
	Equal
	LessThan
	GreaterThan
	LessOrEq
	GreaterOrEq
	LogAnd
	LogOr
	Not
	BitAnd
	BitOr
	BitXor
	Increment
	Decrement
	Assign
	Access // '.'

	// Punctuation
	Paren1 // (
	Paren2 // )
	Brack1 // [
	Brack2 // ]
	Block1 // {
	Block2 // }
	Comma
	EndSt // ;

	// Sentinel
	End
)

var kindNames = map[Kind]string{
	Int: "Int", Double: "Double", Bool: "Bool", Str: "Str", Name: "Name",
	Class: "class", If: "if", Else: "else", While: "while", Do: "do",
	For: "for", Return: "return", Import: "import", This: "this",
	Add: "+", Sub: "-", Mul: "*", Div: "/", Equal: "==", LessThan: "<",
	GreaterThan: ">", LessOrEq: "<=", GreaterOrEq: ">=", LogAnd: "&&",
	LogOr: "||", Not: "!", BitAnd: "&", BitOr: "|", BitXor: "^",
	Increment: "++", Decrement: "--", Assign: "=", Access: ".",
	Paren1: "(", Paren2: ")", Brack1: "[", Brack2: "]", Block1: "{",
	Block2: "}", Comma: ",", EndSt: ";", End: "<eof>",
}

// String renders the Kind's canonical lexeme, used for Reader.Skip's
// literal comparisons and diagnostic messages.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position is a 1-based (line, column) pair stamped on every Token.
type Position struct {
	Line   int
	Column int
}

// Token is the tagged variant produced by the lexer. Only the fields
// relevant to Kind are populated; the rest are zero.
type Token struct {
	Kind   Kind
	Pos    Position
	IntVal    int64
	DoubleVal float64
	BoolVal   bool
	StrVal    string // Name text

	// Segments and Interpolations together describe a Str token's
	// content: Segments[0] + hole(Interpolations[0]) + Segments[1] + ...
	// + Segments[len(Segments)-1]. A non-interpolated string has
	// len(Segments)==1 and no Interpolations. Interpolations holds one
	// pre-lexed token sub-sequence per ${...} hole, in source order.
	Segments       []string
	Interpolations [][]Token
}

// Literal renders the token the way the source text would: the text of
// an identifier/literal, or the operator/punctuation's lexeme. Used by
// Reader.Skip to compare against an expected symbol and by the `lex`
// CLI action to print the token stream.
func (t Token) Literal() string {
	switch t.Kind {
	case Int:
		return fmt.Sprintf("%d", t.IntVal)
	case Double:
		return fmt.Sprintf("%g", t.DoubleVal)
	case Bool:
		if t.BoolVal {
			return "true"
		}
		return "false"
	case Str:
		return strings.Join(t.Segments, "${...}")
	case Name:
		return t.StrVal
	default:
		return t.Kind.String()
	}
}

// String renders the token the way the `lex` CLI action prints it:
// the literal text only, space-separated by the caller.
func (t Token) String() string {
	return t.Literal()
}

var keywords = map[string]Kind{
	"class":  Class,
	"if":     If,
	"else":   Else,
	"while":  While,
	"do":     Do,
	"for":    For,
	"return": Return,
	"import": Import,
	"this":   This,
	"true":   Bool,
	"false":  Bool,
}

// LookupIdent classifies an identifier lexeme as a keyword Kind (with
// BoolVal set for true/false) or as a plain Name.
func LookupIdent(ident string) (kind Kind, boolVal bool) {
	if k, ok := keywords[ident]; ok {
		if k == Bool {
			return Bool, ident == "true"
		}
		return k, false
	}
	return Name, false
}
