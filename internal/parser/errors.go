package parser

import (
	"fmt"

	"github.com/dartlet-lang/dartlet/internal/diag"
	"github.com/dartlet-lang/dartlet/internal/token"
)

func (p *Parser) errf(format string, args ...any) error {
	return &diag.ParseError{File: p.file, Pos: p.r.Sym().Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) errAt(pos token.Position, format string, args ...any) error {
	return &diag.ParseError{File: p.file, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// wrap turns a Reader.Skip mismatch (a plain error with no position) into
// a positioned *diag.ParseError anchored at the cursor's current token.
func (p *Parser) wrap(err error) error {
	if err == nil {
		return nil
	}
	return p.errf("%s", err.Error())
}
