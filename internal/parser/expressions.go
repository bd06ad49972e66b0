package parser

import (
	"github.com/dartlet-lang/dartlet/internal/ast"
	"github.com/dartlet-lang/dartlet/internal/token"
)

// expression is the entry point into the precedence ladder from
// spec.md §4.5: expression -> disjunction -> conjunction -> equality ->
// comparison -> bit_or -> bit_xor -> bit_and -> sum -> product ->
// unary -> access -> term. Grounded on original_source/src/expression.rs, with
// sum/product rewritten as plain iterative left-associative loops
// rather than ported verbatim (spec.md §9: the technique is free, only
// the observable left-associativity is pinned down).
func (p *Parser) expression() (*ast.Node, error) {
	return p.disjunction()
}

func (p *Parser) disjunction() (*ast.Node, error) {
	left, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	if p.r.Sym().Kind != token.LogOr {
		return left, nil
	}
	pos := p.r.Sym().Pos
	p.r.Next()
	right, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.LogOr, pos)
	n.Add(left, right)
	return n, nil
}

func (p *Parser) conjunction() (*ast.Node, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.r.Sym().Kind != token.LogAnd {
		return left, nil
	}
	pos := p.r.Sym().Pos
	p.r.Next()
	right, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.LogAnd, pos)
	n.Add(left, right)
	return n, nil
}

// equality binds at most one "==": a chain like "a == b == c" is not
// reachable through this grammar, matching original_source's
// expression.rs (equality's right operand is comparison, not equality).
func (p *Parser) equality() (*ast.Node, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	if p.r.Sym().Kind != token.Equal {
		return left, nil
	}
	pos := p.r.Sym().Pos
	p.r.Next()
	right, err := p.comparison()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.Equal, pos)
	n.Add(left, right)
	return n, nil
}

// comparison binds at most one of <, >, <=, >=.
func (p *Parser) comparison() (*ast.Node, error) {
	left, err := p.bitOr()
	if err != nil {
		return nil, err
	}
	var kind ast.Kind
	switch p.r.Sym().Kind {
	case token.LessThan:
		kind = ast.LessThan
	case token.GreaterThan:
		kind = ast.GreaterThan
	case token.LessOrEq:
		kind = ast.LessOrEq
	case token.GreaterOrEq:
		kind = ast.GreaterOrEq
	default:
		return left, nil
	}
	pos := p.r.Sym().Pos
	p.r.Next()
	right, err := p.bitOr()
	if err != nil {
		return nil, err
	}
	n := ast.New(kind, pos)
	n.Add(left, right)
	return n, nil
}

func (p *Parser) bitOr() (*ast.Node, error) {
	left, err := p.bitXor()
	if err != nil {
		return nil, err
	}
	if p.r.Sym().Kind != token.BitOr {
		return left, nil
	}
	pos := p.r.Sym().Pos
	p.r.Next()
	right, err := p.bitOr()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.BitOr, pos)
	n.Add(left, right)
	return n, nil
}

func (p *Parser) bitXor() (*ast.Node, error) {
	left, err := p.bitAnd()
	if err != nil {
		return nil, err
	}
	if p.r.Sym().Kind != token.BitXor {
		return left, nil
	}
	pos := p.r.Sym().Pos
	p.r.Next()
	right, err := p.bitXor()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.BitXor, pos)
	n.Add(left, right)
	return n, nil
}

func (p *Parser) bitAnd() (*ast.Node, error) {
	left, err := p.sum()
	if err != nil {
		return nil, err
	}
	if p.r.Sym().Kind != token.BitAnd {
		return left, nil
	}
	pos := p.r.Sym().Pos
	p.r.Next()
	right, err := p.bitAnd()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.BitAnd, pos)
	n.Add(left, right)
	return n, nil
}

func (p *Parser) sum() (*ast.Node, error) {
	left, err := p.product()
	if err != nil {
		return nil, err
	}
	for {
		var kind ast.Kind
		switch p.r.Sym().Kind {
		case token.Add:
			kind = ast.Add
		case token.Sub:
			kind = ast.Sub
		default:
			return left, nil
		}
		pos := p.r.Sym().Pos
		p.r.Next()
		right, err := p.product()
		if err != nil {
			return nil, err
		}
		n := ast.New(kind, pos)
		n.Add(left, right)
		left = n
	}
}

func (p *Parser) product() (*ast.Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		var kind ast.Kind
		switch p.r.Sym().Kind {
		case token.Mul:
			kind = ast.Mul
		case token.Div:
			kind = ast.Div
		default:
			return left, nil
		}
		pos := p.r.Sym().Pos
		p.r.Next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		n := ast.New(kind, pos)
		n.Add(left, right)
		left = n
	}
}

// unary parses the prefix operators "!", "-", "++", "--", falling
// through to access/term when none apply.
func (p *Parser) unary() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	switch p.r.Sym().Kind {
	case token.Not:
		p.r.Next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.Not, pos)
		n.Add(operand)
		return n, nil
	case token.Sub:
		p.r.Next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.Negate, pos)
		n.Add(operand)
		return n, nil
	case token.Increment:
		p.r.Next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.PreIncrement, pos)
		n.Add(operand)
		return n, nil
	case token.Decrement:
		p.r.Next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		n := ast.New(ast.PreDecrement, pos)
		n.Add(operand)
		return n, nil
	default:
		return p.access()
	}
}

// access parses a term followed by zero or more ".name", ".name(args)",
// ".name++", ".name--", or "[expr]" suffixes, left to right. The dotted
// forms are spec.md's field/method access; the bracket form is
// dartlet's supplemented list-indexing extension (spec.md §9).
func (p *Parser) access() (*ast.Node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch p.r.Sym().Kind {
		case token.Access:
			pos := p.r.Sym().Pos
			p.r.Next()
			nameTok := p.r.Sym()
			if nameTok.Kind != token.Name {
				return nil, p.errf("expected a field or method name after '.'")
			}
			name := nameTok.StrVal
			p.r.Next()
			switch p.r.Sym().Kind {
			case token.Paren1:
				args, err := p.argList()
				if err != nil {
					return nil, err
				}
				call := ast.New(ast.MethodCall, pos)
				call.StrVal = name
				call.File = p.file
				call.Owner = n
				call.Add(args)
				n = call
			case token.Increment:
				p.r.Next()
				field := ast.New(ast.FieldAccess, pos)
				field.StrVal = name
				field.Add(n)
				inc := ast.New(ast.PostIncrement, pos)
				inc.Add(field)
				n = inc
			case token.Decrement:
				p.r.Next()
				field := ast.New(ast.FieldAccess, pos)
				field.StrVal = name
				field.Add(n)
				dec := ast.New(ast.PostDecrement, pos)
				dec.Add(field)
				n = dec
			default:
				field := ast.New(ast.FieldAccess, pos)
				field.StrVal = name
				field.Add(n)
				n = field
			}
		case token.Brack1:
			pos := p.r.Sym().Pos
			p.r.Next()
			idx, err := p.expression()
			if err != nil {
				return nil, err
			}
			if err := p.r.Skip("]"); err != nil {
				return nil, p.wrap(err)
			}
			node := ast.New(ast.Index, pos)
			node.Add(n, idx)
			n = node
		default:
			return n, nil
		}
	}
}

// term parses one literal, name, parenthesized expression, or list
// literal — the base of the precedence ladder.
func (p *Parser) term() (*ast.Node, error) {
	tok := p.r.Sym()
	switch tok.Kind {
	case token.Int:
		p.r.Next()
		n := ast.New(ast.Int, tok.Pos)
		n.IntVal = tok.IntVal
		return n, nil
	case token.Double:
		p.r.Next()
		n := ast.New(ast.Double, tok.Pos)
		n.DoubleVal = tok.DoubleVal
		return n, nil
	case token.Bool:
		p.r.Next()
		n := ast.New(ast.Bool, tok.Pos)
		n.BoolVal = tok.BoolVal
		return n, nil
	case token.Str:
		p.r.Next()
		return p.strLiteral(tok)
	case token.This:
		p.r.Next()
		n := ast.New(ast.Name, tok.Pos)
		n.StrVal = "this"
		return n, nil
	case token.Name:
		if tok.StrVal == "null" {
			p.r.Next()
			return ast.New(ast.Null, tok.Pos), nil
		}
		p.r.Next()
		if p.r.Sym().Kind == token.Paren1 {
			args, err := p.argList()
			if err != nil {
				return nil, err
			}
			call := ast.New(ast.FunCall, tok.Pos)
			call.StrVal = tok.StrVal
			call.File = p.file
			call.Add(args)
			return call, nil
		}
		n := ast.New(ast.Name, tok.Pos)
		n.StrVal = tok.StrVal
		return n, nil
	case token.Paren1:
		p.r.Next()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.r.Skip(")"); err != nil {
			return nil, p.wrap(err)
		}
		return inner, nil
	case token.Brack1:
		return p.listLiteral()
	default:
		return nil, p.errf("unexpected token %q in expression", tok.Literal())
	}
}

// listLiteral parses "[" (expression ("," expression)*)? "]".
func (p *Parser) listLiteral() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	p.r.Next() // "["
	list := ast.New(ast.List, pos)
	for p.r.Sym().Kind != token.Brack2 {
		if len(list.Children) > 0 {
			if err := p.r.Skip(","); err != nil {
				return nil, p.wrap(err)
			}
		}
		elem, err := p.expression()
		if err != nil {
			return nil, err
		}
		list.Add(elem)
	}
	p.r.Next() // "]"
	return list, nil
}

// strLiteral turns a Str token into a Str node whose children are the
// parsed expressions of its ${...} interpolation holes, in order, each
// built by recursively parsing the hole's pre-lexed token sub-sequence
// (token.Token.Interpolations), per spec.md §2's interpolation model.
func (p *Parser) strLiteral(tok token.Token) (*ast.Node, error) {
	n := ast.New(ast.Str, tok.Pos)
	n.Segments = tok.Segments
	for _, holeTokens := range tok.Interpolations {
		sub := New(holeTokens, p.file, p.globals, p.objsys)
		expr, err := sub.expression()
		if err != nil {
			return nil, err
		}
		n.Add(expr)
	}
	return n, nil
}
