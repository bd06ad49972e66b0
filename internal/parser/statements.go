package parser

import (
	"github.com/dartlet-lang/dartlet/internal/ast"
	"github.com/dartlet-lang/dartlet/internal/token"
)

// block parses a brace-delimited statement sequence. Statements may be
// separated by ';' or simply run together with nothing between them,
// mirroring original_source/src/parser.rs's block(): each iteration
// checks for the closing brace or a stray ';' before falling through to
// parse another statement. The opening "{" has already been consumed
// by the caller.
func (p *Parser) block() (*ast.Node, error) {
	node := ast.New(ast.Block, p.r.Sym().Pos)
	for {
		switch p.r.Sym().Kind {
		case token.Block2:
			p.r.Next()
			return node, nil
		case token.End:
			return node, p.errf("unexpected end of file inside block")
		case token.EndSt:
			p.r.Next()
		default:
			stmt, err := p.statement()
			if err != nil {
				return node, err
			}
			node.Add(stmt)
		}
	}
}

// statement parses one statement: a variable declaration, assignment,
// nested function declaration, conditional, loop, return, or bare
// expression, per spec.md §4.4.
func (p *Parser) statement() (*ast.Node, error) {
	switch p.r.Sym().Kind {
	case token.If:
		return p.conditionalChain()
	case token.While:
		return p.whileLoop()
	case token.Do:
		return p.doWhileLoop()
	case token.For:
		return p.forLoop()
	case token.Return:
		return p.returnStatement()
	case token.Name:
		if p.r.Peek().Kind == token.Name {
			return p.typedDeclOrNestedFunc()
		}
		return p.expressionStatement()
	default:
		return p.expressionStatement()
	}
}

// typedDeclOrNestedFunc handles the two statement forms that start with
// two consecutive Names: a typed declaration ("Type name", optionally
// "= expr"), or a nested function declaration ("Type name(params) {
// block }").
func (p *Parser) typedDeclOrNestedFunc() (*ast.Node, error) {
	first := p.r.Sym()
	second := p.r.Peek()
	typePos := first.Pos
	p.r.Next() // declared type
	p.r.Next() // name

	switch p.r.Sym().Kind {
	case token.Assign:
		p.r.Next()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		target := ast.New(ast.TypedVar, typePos)
		target.DeclType = first.StrVal
		target.StrVal = second.StrVal
		assign := ast.New(ast.Assign, typePos)
		assign.Add(target, value)
		return assign, nil
	case token.Paren1:
		params, err := p.paramList()
		if err != nil {
			return nil, err
		}
		if err := p.r.Skip("{"); err != nil {
			return nil, p.wrap(err)
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		fn := ast.New(ast.FunDef, typePos)
		fn.StrVal = second.StrVal
		fn.File = p.file
		fn.Add(params, body)
		return fn, nil
	default:
		target := ast.New(ast.TypedVar, typePos)
		target.DeclType = first.StrVal
		target.StrVal = second.StrVal
		assign := ast.New(ast.Assign, typePos)
		assign.Add(target, ast.New(ast.Null, typePos))
		return assign, nil
	}
}

// expressionStatement parses a bare expression, then checks for a
// trailing "= expr" turning it into an assignment. Valid assignment
// targets are a Name, a FieldAccess ("obj.field = v"), or an Index
// ("xs[i] = v") — spec.md §9's resolution of the member-assignment
// open question.
func (p *Parser) expressionStatement() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.r.Sym().Kind != token.Assign {
		return expr, nil
	}
	switch expr.Kind {
	case ast.Name, ast.FieldAccess, ast.Index:
	default:
		return nil, p.errAt(pos, "invalid assignment target")
	}
	p.r.Next()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	assign := ast.New(ast.Assign, pos)
	assign.Add(expr, value)
	return assign, nil
}

// conditionalChain parses "if (cond) {block}" followed by zero or more
// "else if (cond) {block}" and at most one trailing "else {block}",
// all wrapped in a single Conditional node.
func (p *Parser) conditionalChain() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	chain := ast.New(ast.Conditional, pos)

	head, err := p.ifClause(ast.If)
	if err != nil {
		return nil, err
	}
	chain.Add(head)

	for p.r.Sym().Kind == token.Else {
		p.r.Next()
		if p.r.Sym().Kind == token.If {
			clause, err := p.ifClause(ast.ElseIf)
			if err != nil {
				return nil, err
			}
			chain.Add(clause)
			continue
		}
		elsePos := p.r.Sym().Pos
		if err := p.r.Skip("{"); err != nil {
			return nil, p.wrap(err)
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		elseNode := ast.New(ast.Else, elsePos)
		elseNode.Add(body)
		chain.Add(elseNode)
		break
	}
	return chain, nil
}

// ifClause parses "if (cond) { block }" into a node of the given kind
// (ast.If for the head, ast.ElseIf for a chained "else if").
func (p *Parser) ifClause(kind ast.Kind) (*ast.Node, error) {
	pos := p.r.Sym().Pos
	p.r.Next() // "if"
	if err := p.r.Skip("("); err != nil {
		return nil, p.wrap(err)
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.r.Skip(")"); err != nil {
		return nil, p.wrap(err)
	}
	if err := p.r.Skip("{"); err != nil {
		return nil, p.wrap(err)
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	n := ast.New(kind, pos)
	n.Add(cond, body)
	return n, nil
}

func (p *Parser) whileLoop() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	p.r.Next() // "while"
	if err := p.r.Skip("("); err != nil {
		return nil, p.wrap(err)
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.r.Skip(")"); err != nil {
		return nil, p.wrap(err)
	}
	if err := p.r.Skip("{"); err != nil {
		return nil, p.wrap(err)
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.While, pos)
	n.Add(cond, body)
	return n, nil
}

func (p *Parser) doWhileLoop() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	p.r.Next() // "do"
	if err := p.r.Skip("{"); err != nil {
		return nil, p.wrap(err)
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	if err := p.r.Skip("while"); err != nil {
		return nil, p.wrap(err)
	}
	if err := p.r.Skip("("); err != nil {
		return nil, p.wrap(err)
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.r.Skip(")"); err != nil {
		return nil, p.wrap(err)
	}
	if err := p.r.Skip(";"); err != nil {
		return nil, p.wrap(err)
	}
	n := ast.New(ast.DoWhile, pos)
	n.Add(body, cond)
	return n, nil
}

// forLoop parses "for (init; cond; step) { block }". init is either a
// typed declaration ("Type name = expr") or a plain assignment ("name =
// expr"), per spec.md §9's resolution of the untyped-for-init question.
func (p *Parser) forLoop() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	p.r.Next() // "for"
	if err := p.r.Skip("("); err != nil {
		return nil, p.wrap(err)
	}
	var init *ast.Node
	var err error
	if p.r.Sym().Kind == token.Name && p.r.Peek().Kind == token.Name {
		init, err = p.typedDeclOrNestedFunc()
	} else {
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}
	if err := p.r.Skip(";"); err != nil {
		return nil, p.wrap(err)
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.r.Skip(";"); err != nil {
		return nil, p.wrap(err)
	}
	step, err := p.statement()
	if err != nil {
		return nil, err
	}
	if err := p.r.Skip(")"); err != nil {
		return nil, p.wrap(err)
	}
	if err := p.r.Skip("{"); err != nil {
		return nil, p.wrap(err)
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.For, pos)
	n.Add(init, cond, step, body)
	return n, nil
}

func (p *Parser) returnStatement() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	p.r.Next() // "return"
	if p.r.Sym().Kind == token.EndSt || p.r.Sym().Kind == token.Block2 {
		n := ast.New(ast.Return, pos)
		n.Add(ast.New(ast.Null, pos))
		return n, nil
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.Return, pos)
	n.Add(value)
	return n, nil
}
