// Copyright 2020 CUE Authors
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

// Package compile builds an interaction-net graph from a Term, implementing
// spec.md §4.1. It is grounded on cuelang.org/go's
// internal/core/compile.compiler, which threads a stack of lexical scopes
// through a single recursive descent over an AST; here the "resolution"
// each scope entry carries is a live FieldRef back-pointer rather than a
// CUE Vertex reference.
package compile

import (
	inerrors "github.com/inet-lang/inet/internal/errors"
	"github.com/inet-lang/inet/internal/intern"
	"github.com/inet-lang/inet/internal/core/net"
	"github.com/inet-lang/inet/syntax/ast"
)

// bindSite is one active binder: the node and slot that Var lookups for
// this name should resolve to.
type bindSite struct {
	name  string
	node  bindNode
	slot  net.Slot
}

// bindNode is *net.Lam or *net.Dup: anything that owns a FieldRef-typed
// binder slot. It is declared instead of importing net's unexported
// anyNode because this package only ever stores these two concrete types.
type bindNode interface{}

type compiler struct {
	g       *net.Graph
	scopes  []bindSite // innermost last; linear scan, as affine terms bind few names
	interns *intern.Table
	firstErr error
}

// Build compiles t into a fresh Graph, rooted at t. Let is desugared to
// App(Lam(x, body), e1) before construction (spec.md §3.1, §4.1).
func Build(t ast.Term) (*net.Graph, error) {
	c := &compiler{g: net.NewGraph(), interns: intern.Global}
	t = desugarLet(t)
	c.compile(t, &c.g.Root)
	if c.firstErr != nil {
		return nil, c.firstErr
	}
	return c.g, nil
}

// desugarLet rewrites every Let node in t into App(Lam(x, body), expr),
// recursively, matching spec.md §3.1: "Let(x, e1, body) — sugar for
// (Lam(x, body)) expr".
func desugarLet(t ast.Term) ast.Term {
	switch x := t.(type) {
	case *ast.Let:
		return &ast.App{
			AppPos: x.LetPos,
			Fun: &ast.Lam{
				LamPos: x.LetPos,
				X:      x.X,
				Body:   desugarLet(x.Body),
			},
			Arg: desugarLet(x.Expr),
		}
	case *ast.Lam:
		return &ast.Lam{LamPos: x.LamPos, X: x.X, Body: desugarLet(x.Body)}
	case *ast.App:
		return &ast.App{AppPos: x.AppPos, Fun: desugarLet(x.Fun), Arg: desugarLet(x.Arg)}
	case *ast.Sup:
		return &ast.Sup{SupPos: x.SupPos, Label: x.Label, A: desugarLet(x.A), B: desugarLet(x.B)}
	case *ast.Dup:
		return &ast.Dup{
			DupPos: x.DupPos, Label: x.Label, A: x.A, B: x.B,
			Expr: desugarLet(x.Expr), Body: desugarLet(x.Body),
		}
	default:
		return t
	}
}

func (c *compiler) fail(err error) {
	if c.firstErr == nil {
		c.firstErr = err
	}
}

// lookup returns the innermost active bindSite for name, if any.
func (c *compiler) lookup(name string) (bindSite, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if c.scopes[i].name == name {
			return c.scopes[i], true
		}
	}
	return bindSite{}, false
}

func (c *compiler) push(name string, node bindNode, slot net.Slot) {
	c.scopes = append(c.scopes, bindSite{name: name, node: node, slot: slot})
}

func (c *compiler) pop() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// compile writes the NodeRef for t into dst, the destination field
// established by the caller (spec.md §4.1: "the destination field into
// which the subterm's NodeRef must be written").
func (c *compiler) compile(t ast.Term, dst *net.NodeRef) {
	if c.firstErr != nil {
		return
	}
	switch x := t.(type) {
	case *ast.Var:
		c.compileVar(x, dst)
	case *ast.Lam:
		c.compileLam(x, dst)
	case *ast.App:
		c.compileApp(x, dst)
	case *ast.Sup:
		c.compileSup(x, dst)
	case *ast.Dup:
		c.compileDup(x, dst)
	default:
		panic("compile: unreachable term kind (Let should have been desugared)")
	}
}

// compileVar resolves a Var occurrence: free if no binder is active for its
// name, otherwise it must be the binder's first (and only, since the
// source is affine) occurrence. WriteField sets both halves of the
// back-pointer contract in one call: *dst becomes the marker, and because
// the marker is a bound-variable marker, WriteField also retargets the
// binder's own slot to &dst (spec.md §3.4, §4.1).
func (c *compiler) compileVar(x *ast.Var, dst *net.NodeRef) {
	site, ok := c.lookup(x.Name)
	if !ok {
		*dst = net.UnboundVarMarker(c.interns.Intern(x.Name))
		return
	}
	switch n := site.node.(type) {
	case *net.Lam:
		if net.BinderField(n, site.slot) != nil {
			c.fail(&inerrors.NonAffineUse{Pos: x.NamePos, Name: x.Name})
			return
		}
		net.WriteField(dst, net.BoundVarMarker(n, site.slot))
	case *net.Dup:
		if net.BinderField(n, site.slot) != nil {
			c.fail(&inerrors.NonAffineUse{Pos: x.NamePos, Name: x.Name})
			return
		}
		net.WriteField(dst, net.BoundVarMarker(n, site.slot))
	default:
		panic("compile: bindSite holds neither *net.Lam nor *net.Dup")
	}
}

func (c *compiler) compileLam(x *ast.Lam, dst *net.NodeRef) {
	lam := c.g.NewLam(x)
	c.push(x.X, lam, net.SlotLamX)
	c.compile(x.Body, &lam.E)
	c.pop()
	// An unused x (BinderField == nil) is fine for Lam, unlike Dup: spec.md
	// has no "unused Lam binder is an error" rule.
	net.WriteField(dst, net.NewNodeRef(lam))
}

func (c *compiler) compileApp(x *ast.App, dst *net.NodeRef) {
	app := c.g.NewApp(x)
	c.compile(x.Fun, &app.E1)
	c.compile(x.Arg, &app.E2)
	net.WriteField(dst, net.NewNodeRef(app))
}

func (c *compiler) compileSup(x *ast.Sup, dst *net.NodeRef) {
	sup := c.g.NewSup(x)
	sup.L = net.Label(x.Label)
	c.compile(x.A, &sup.E1)
	c.compile(x.B, &sup.E2)
	net.WriteField(dst, net.NewNodeRef(sup))
}

func (c *compiler) compileDup(x *ast.Dup, dst *net.NodeRef) {
	if x.A == x.B {
		c.fail(&inerrors.DupSameName{Pos: x.DupPos, Name: x.A})
		return
	}
	dup := c.g.NewDup(x)
	dup.L = net.Label(x.Label)
	c.compile(x.Expr, &dup.E)
	if c.firstErr != nil {
		return
	}
	c.push(x.A, dup, net.SlotDupA)
	c.push(x.B, dup, net.SlotDupB)
	c.compile(x.Body, dst)
	c.pop()
	c.pop()
	if c.firstErr != nil {
		return
	}
	if net.BinderField(dup, net.SlotDupA) == nil && net.BinderField(dup, net.SlotDupB) == nil {
		c.fail(&inerrors.DupBothDead{Pos: x.DupPos})
	}
}
