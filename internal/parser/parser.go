package parser

import (
	"strings"

	"github.com/dartlet-lang/dartlet/internal/ast"
	"github.com/dartlet-lang/dartlet/internal/object"
	"github.com/dartlet-lang/dartlet/internal/token"
)

// Parser turns one file's token stream into top-level declarations,
// appended to a globals slice shared across every file the linker
// pulls in, and class registrations, shared through one object.System
// across the whole program. Grounded on original_source/src/parser.rs's
// top-level decl()/class()/block()/statement() functions and the
// teacher's internal/parser package split (declarations.go, classes.go,
// control_flow.go, expressions.go).
type Parser struct {
	r       *Reader
	file    string
	globals *[]*ast.Node
	objsys  *object.System
}

// New creates a Parser over tokens (which must end in a token.End
// sentinel, as Lex produces). globals accumulates this file's and every
// other linked file's FunDef/Constructor nodes; objsys accumulates every
// linked file's class registrations. Both are shared across the whole
// program, owned by the linker.
func New(tokens []token.Token, file string, globals *[]*ast.Node, objsys *object.System) *Parser {
	return &Parser{r: NewReader(tokens), file: file, globals: globals, objsys: objsys}
}

// Parse consumes the leading import directives, then every top-level
// declaration (function or class) in the file, registering each as it
// goes. It returns the list of imported file paths, in source order,
// for the linker to resolve.
func (p *Parser) Parse() ([]string, error) {
	imports, err := p.directives()
	if err != nil {
		return imports, err
	}
	for p.r.Sym().Kind != token.End {
		if err := p.decl(); err != nil {
			return imports, err
		}
	}
	return imports, nil
}

func (p *Parser) directives() ([]string, error) {
	var imports []string
	for p.r.Sym().Kind == token.Import {
		p.r.Next()
		str := p.r.Sym()
		if str.Kind != token.Str {
			return imports, p.errf("expected a string after 'import'")
		}
		p.r.Next()
		if err := p.r.Skip(";"); err != nil {
			return imports, p.wrap(err)
		}
		imports = append(imports, strings.Join(str.Segments, ""))
	}
	return imports, nil
}

// decl parses one top-level declaration: a free function ("ReturnType
// name(params) { ... }") or a class.
func (p *Parser) decl() error {
	switch p.r.Sym().Kind {
	case token.Class:
		return p.classDecl()
	case token.Name:
		pos := p.r.Sym().Pos
		p.r.Next() // consume the declared return type, unenforced at runtime
		nameTok := p.r.Sym()
		if nameTok.Kind != token.Name {
			return p.errAt(pos, "expected a function name after its return type")
		}
		name := nameTok.StrVal
		p.r.Next()
		params, err := p.paramList()
		if err != nil {
			return err
		}
		if err := p.r.Skip("{"); err != nil {
			return p.wrap(err)
		}
		body, err := p.block()
		if err != nil {
			return err
		}
		fn := ast.New(ast.FunDef, pos)
		fn.StrVal = name
		fn.File = p.file
		fn.Add(params, body)
		*p.globals = append(*p.globals, fn)
		return nil
	default:
		return p.errf("expected a function or class declaration, got %q", p.r.Sym().Literal())
	}
}

// paramList parses "(" (Type Name ("," Type Name)*)? ")" into a ParamList node
// whose children are plain Name nodes. Used for free functions and
// methods, which take no `this.` shorthand.
func (p *Parser) paramList() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	if err := p.r.Skip("("); err != nil {
		return nil, p.wrap(err)
	}
	list := ast.New(ast.ParamList, pos)
	for p.r.Sym().Kind != token.Paren2 {
		if len(list.Children) > 0 {
			if err := p.r.Skip(","); err != nil {
				return nil, p.wrap(err)
			}
		}
		typeTok := p.r.Sym()
		if typeTok.Kind != token.Name {
			return nil, p.errf("expected a parameter type")
		}
		p.r.Next()
		nameTok := p.r.Sym()
		if nameTok.Kind != token.Name {
			return nil, p.errf("expected a parameter name")
		}
		p.r.Next()
		n := ast.New(ast.Name, nameTok.Pos)
		n.StrVal = nameTok.StrVal
		n.DeclType = typeTok.StrVal
		list.Add(n)
	}
	p.r.Next() // ")"
	return list, nil
}

// constructorParamList is paramList plus the `this.field` shorthand: a
// parameter written as "this.field" (optionally preceded by a type, as
// in "Type this.field") binds the incoming argument
// directly into the instance field of the same name, with no further
// assignment needed in the constructor body.
func (p *Parser) constructorParamList() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	if err := p.r.Skip("("); err != nil {
		return nil, p.wrap(err)
	}
	list := ast.New(ast.ParamList, pos)
	for p.r.Sym().Kind != token.Paren2 {
		if len(list.Children) > 0 {
			if err := p.r.Skip(","); err != nil {
				return nil, p.wrap(err)
			}
		}
		typeTok := p.r.Sym()
		if typeTok.Kind == token.Name {
			p.r.Next()
		} else if typeTok.Kind != token.This {
			return nil, p.errf("expected a parameter type")
		}
		if p.r.Sym().Kind == token.This {
			thisPos := p.r.Sym().Pos
			p.r.Next()
			if err := p.r.Skip("."); err != nil {
				return nil, p.wrap(err)
			}
			fieldTok := p.r.Sym()
			if fieldTok.Kind != token.Name {
				return nil, p.errf("expected a field name after 'this.'")
			}
			p.r.Next()
			n := ast.New(ast.ThisFieldInit, thisPos)
			n.StrVal = fieldTok.StrVal
			n.DeclType = typeTok.StrVal
			list.Add(n)
			continue
		}
		nameTok := p.r.Sym()
		if nameTok.Kind != token.Name {
			return nil, p.errf("expected a parameter name")
		}
		p.r.Next()
		n := ast.New(ast.Name, nameTok.Pos)
		n.StrVal = nameTok.StrVal
		n.DeclType = typeTok.StrVal
		list.Add(n)
	}
	p.r.Next() // ")"
	return list, nil
}

// argList parses "(" (expression ("," expression)*)? ")".
func (p *Parser) argList() (*ast.Node, error) {
	pos := p.r.Sym().Pos
	if err := p.r.Skip("("); err != nil {
		return nil, p.wrap(err)
	}
	list := ast.New(ast.ArgList, pos)
	for p.r.Sym().Kind != token.Paren2 {
		if len(list.Children) > 0 {
			if err := p.r.Skip(","); err != nil {
				return nil, p.wrap(err)
			}
		}
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		list.Add(arg)
	}
	p.r.Next() // ")"
	return list, nil
}

// classDecl parses "class Name { members }", registering the class and
// every FunDef-equivalent (method, constructor) it produces.
func (p *Parser) classDecl() error {
	p.r.Next() // "class"
	nameTok := p.r.Sym()
	if nameTok.Kind != token.Name {
		return p.errf("expected a class name after 'class'")
	}
	name := nameTok.StrVal
	p.r.Next()
	if err := p.r.Skip("{"); err != nil {
		return p.wrap(err)
	}

	cls := object.NewClass(name)
	sawConstructor := false

	for p.r.Sym().Kind != token.Block2 {
		pos := p.r.Sym().Pos

		if p.r.Sym().Kind == token.Name && p.r.Sym().StrVal == name && p.r.Peek().Kind == token.Paren1 {
			p.r.Next() // class name
			params, err := p.constructorParamList()
			if err != nil {
				return err
			}
			var body *ast.Node
			if p.r.Sym().Kind == token.EndSt {
				// "Name(params);" declares a constructor with an empty body.
				body = ast.New(ast.Block, p.r.Sym().Pos)
				p.r.Next()
			} else {
				if err := p.r.Skip("{"); err != nil {
					return p.wrap(err)
				}
				body, err = p.block()
				if err != nil {
					return err
				}
			}
			ctor := ast.New(ast.Constructor, pos)
			ctor.StrVal = name
			ctor.File = p.file
			ctor.Add(params, body)
			*p.globals = append(*p.globals, ctor)
			sawConstructor = true
			continue
		}

		typeTok := p.r.Sym()
		if typeTok.Kind != token.Name {
			return p.errf("expected a field or method declaration inside class %q", name)
		}
		p.r.Next()
		memberTok := p.r.Sym()
		if memberTok.Kind != token.Name {
			return p.errf("expected a field or method name")
		}
		memberName := memberTok.StrVal
		p.r.Next()

		switch p.r.Sym().Kind {
		case token.Paren1:
			params, err := p.paramList()
			if err != nil {
				return err
			}
			if err := p.r.Skip("{"); err != nil {
				return p.wrap(err)
			}
			body, err := p.block()
			if err != nil {
				return err
			}
			fn := object.FunctionObject{Name: memberName, DefiningFile: p.file, Body: body, Params: paramDescriptors(params)}
			cls.AddMethod(memberName, &fn)
		case token.EndSt:
			p.r.Next()
			cls.AddField(memberName, ast.New(ast.Null, pos))
		case token.Assign:
			p.r.Next()
			defaultExpr, err := p.expression()
			if err != nil {
				return err
			}
			if err := p.r.Skip(";"); err != nil {
				return p.wrap(err)
			}
			cls.AddField(memberName, defaultExpr)
		default:
			return p.errf("expected '(', '=', or ';' after field or method name %q", memberName)
		}
	}
	p.r.Next() // "}"

	if !sawConstructor {
		ctor := ast.New(ast.Constructor, nameTok.Pos)
		ctor.StrVal = name
		ctor.File = p.file
		ctor.Add(ast.New(ast.ParamList, nameTok.Pos), ast.New(ast.Block, nameTok.Pos))
		*p.globals = append(*p.globals, ctor)
	}

	p.objsys.RegisterClass(cls)
	return nil
}

// paramDescriptors converts a parsed ParamList node's children into the
// ParamDescriptor form object.FunctionObject stores, used for methods
// (built directly here, unlike free functions and constructors, whose
// FunDef/Constructor globals carry the raw ParamList node and are
// converted by the evaluator at call-binding time).
func paramDescriptors(list *ast.Node) []ast.ParamDescriptor {
	out := make([]ast.ParamDescriptor, 0, len(list.Children))
	for _, c := range list.Children {
		out = append(out, ast.ParamDescriptor{
			DeclaredType: c.DeclType,
			Name:         c.StrVal,
			IsFieldInit:  c.Kind == ast.ThisFieldInit,
		})
	}
	return out
}
