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

// Package ast declares the syntax tree for the surface language: variables,
// lambdas, applications, superpositions, duplications and let-bindings.
package ast

import "github.com/inet-lang/inet/internal/token"

// A Term is any node of the term AST.
type Term interface {
	// Pos returns the position of the first token belonging to the node.
	Pos() token.Position
	term() // enforce internal (sealed interface)
}

// Var is a variable occurrence.
type Var struct {
	NamePos token.Position
	Name    string
}

func (x *Var) Pos() token.Position { return x.NamePos }
func (*Var) term()                 {}

// Lam is `(λ x e)` or `(@ x e)`: binds x in Body.
type Lam struct {
	LamPos token.Position
	X      string
	Body   Term
}

func (x *Lam) Pos() token.Position { return x.LamPos }
func (*Lam) term()                 {}

// App is function application `(fun arg)`. Multi-argument application,
// `(f a b c)`, is parsed as nested left-associative Apps: ((f a) b) c.
type App struct {
	AppPos token.Position
	Fun    Term
	Arg    Term
}

func (x *App) Pos() token.Position { return x.AppPos }
func (*App) term()                 {}

// Sup is a labelled superposition `#l{a b}`.
type Sup struct {
	SupPos token.Position
	Label  uint64
	A, B   Term
}

func (x *Sup) Pos() token.Position { return x.SupPos }
func (*Sup) term()                 {}

// Dup is `dup #l{a b} = Expr; Body`: binds A and B (which must be distinct
// names) in Body, destructuring Expr at Label.
type Dup struct {
	DupPos token.Position
	Label  uint64
	A, B   string
	Expr   Term
	Body   Term
}

func (x *Dup) Pos() token.Position { return x.DupPos }
func (*Dup) term()                 {}

// Let is sugar for `(λ X Body) Expr`; the builder desugars it before
// constructing the graph (see internal/core/compile).
type Let struct {
	LetPos token.Position
	X      string
	Expr   Term
	Body   Term
}

func (x *Let) Pos() token.Position { return x.LetPos }
func (*Let) term()                 {}
