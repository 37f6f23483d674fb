// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser implements a recursive-descent parser for the grammar in
// spec.md §6.1, grounded on the structure of cuelang.org/go/cue/parser: a
// parser struct carrying a lookahead token, one method per production, and
// errors reported as the first hard failure (no multi-error recovery,
// matching original_source/src/parse.rs -- see SPEC_FULL.md).
package parser

import (
	"strconv"

	"github.com/inet-lang/inet/internal/errors"
	"github.com/inet-lang/inet/internal/token"
	"github.com/inet-lang/inet/syntax/ast"
	"github.com/inet-lang/inet/syntax/scanner"
)

type parser struct {
	sc *scanner.Scanner

	pos token.Position
	tok scanner.Token
	lit string

	firstErr error
}

// ParseFile parses src (named filename for diagnostics) as a single Term.
func ParseFile(filename string, src []byte) (ast.Term, error) {
	p := &parser{sc: &scanner.Scanner{}}
	p.sc.Init(filename, src, func(pos token.Position, msg string) {
		if p.firstErr == nil {
			p.firstErr = &errors.ParseError{Pos: pos, Expected: msg}
		}
	})
	p.next()

	t := p.parseTerm()
	if p.firstErr != nil {
		return nil, p.firstErr
	}
	p.expect(scannerEOF)
	if p.firstErr != nil {
		return nil, p.firstErr
	}
	return t, nil
}

const scannerEOF = scanner.EOF

func (p *parser) next() {
	p.pos, p.tok, p.lit = p.sc.Scan()
}

func (p *parser) errorf(pos token.Position, expected string) {
	if p.firstErr == nil {
		p.firstErr = &errors.ParseError{Pos: pos, Expected: expected}
	}
}

func (p *parser) expect(tok scanner.Token) token.Position {
	pos := p.pos
	if p.tok != tok {
		p.errorf(pos, tok.String())
		return pos
	}
	p.next()
	return pos
}

// parseTerm dispatches on the lookahead token, matching the grammar's
// `term := let | dup | lam | app | sup | var` alternation.
func (p *parser) parseTerm() ast.Term {
	if p.firstErr != nil {
		return nil
	}
	switch p.tok {
	case scanner.LET:
		return p.parseLet()
	case scanner.DUP:
		return p.parseDup()
	case scanner.LAMBDA:
		return p.parseLam()
	case scanner.LPAREN:
		return p.parseApp()
	case scanner.HASH:
		return p.parseSup()
	case scanner.IDENT:
		return p.parseVar()
	default:
		p.errorf(p.pos, "term")
		return nil
	}
}

func (p *parser) parseVar() ast.Term {
	pos, name := p.pos, p.lit
	p.expect(scanner.IDENT)
	return &ast.Var{NamePos: pos, Name: name}
}

func (p *parser) parseName() (token.Position, string) {
	pos, name := p.pos, p.lit
	p.expect(scanner.IDENT)
	return pos, name
}

func (p *parser) parseLam() ast.Term {
	pos := p.pos
	p.expect(scanner.LAMBDA)
	_, x := p.parseName()
	body := p.parseTerm()
	return &ast.Lam{LamPos: pos, X: x, Body: body}
}

// parseApp parses `"(" term term+ ")"`, folding the argument list into
// left-associative nested App nodes:
// `(a b c) = ((a b) c)`.
//
// A parenthesized group holding exactly one term — the shape the printer
// itself emits around a Lam, Dup or Let, e.g. "(λx x)" — parses as that
// term unchanged rather than failing on the missing second term the App
// production would otherwise require. This mirrors
// original_source/src/parse.rs's parse_app, which folds its argument list
// with reduce and so likewise returns a lone argument as-is, and it is what
// makes parse ∘ pretty = id (spec.md §8.2) hold for terms printed with a
// Lam/Dup/Let in function or argument position.
func (p *parser) parseApp() ast.Term {
	pos := p.pos
	p.expect(scanner.LPAREN)
	fun := p.parseTerm()
	if p.firstErr != nil {
		return nil
	}
	if p.tok == scanner.RPAREN {
		p.next()
		return fun
	}
	arg := p.parseTerm()
	app := ast.Term(&ast.App{AppPos: pos, Fun: fun, Arg: arg})
	for p.tok != scanner.RPAREN && p.firstErr == nil {
		next := p.parseTerm()
		app = &ast.App{AppPos: pos, Fun: app, Arg: next}
	}
	p.expect(scanner.RPAREN)
	return app
}

func (p *parser) parseSup() ast.Term {
	pos := p.pos
	label := p.parseLabel()
	p.expect(scanner.LBRACE)
	a := p.parseTerm()
	b := p.parseTerm()
	p.expect(scanner.RBRACE)
	return &ast.Sup{SupPos: pos, Label: label, A: a, B: b}
}

func (p *parser) parseLabel() uint64 {
	p.expect(scanner.HASH)
	lit := p.lit
	litPos := p.pos
	p.expect(scanner.NUMBER)
	n, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		p.errorf(litPos, "u64 label")
		return 0
	}
	return n
}

func (p *parser) parseDup() ast.Term {
	pos := p.pos
	p.expect(scanner.DUP)
	label := p.parseLabel()
	p.expect(scanner.LBRACE)
	_, a := p.parseName()
	_, b := p.parseName()
	p.expect(scanner.RBRACE)
	p.expect(scanner.ASSIGN)
	expr := p.parseTerm()
	p.expect(scanner.SEMI)
	body := p.parseTerm()
	return &ast.Dup{DupPos: pos, Label: label, A: a, B: b, Expr: expr, Body: body}
}

func (p *parser) parseLet() ast.Term {
	pos := p.pos
	p.expect(scanner.LET)
	_, x := p.parseName()
	p.expect(scanner.ASSIGN)
	expr := p.parseTerm()
	p.expect(scanner.SEMI)
	body := p.parseTerm()
	return &ast.Let{LetPos: pos, X: x, Expr: expr, Body: body}
}
