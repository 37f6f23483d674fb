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

// Package net is the interaction-net node and reference representation:
// the four node kinds of spec.md §3.2, the NodeRef/FieldRef tagged
// references of §3.3, and the back-pointer contract of §3.4.
//
// A Dup is never stored behind a subterm-pointer field: the builder writes
// a Dup's body, not the Dup itself, into the destination field, so a live
// Dup is reachable only through the bound-variable markers of its a and b
// occurrences.
//
// It is grounded on internal/core/adt/composite.go's style of one exported
// struct per node kind with a Source() accessor, generalized from CUE's
// value graph to this spec's term graph.
package net

import "github.com/inet-lang/inet/syntax/ast"

// Label is a Sup/Dup pairing tag. Only equality is ever meaningful on it
// (spec.md §3.1).
type Label uint64

// Slot names a binder position on a Lam or a Dup node.
type Slot uint8

const (
	SlotLamX Slot = iota
	SlotDupA
	SlotDupB
)

func (s Slot) String() string {
	switch s {
	case SlotLamX:
		return "x"
	case SlotDupA:
		return "a"
	case SlotDupB:
		return "b"
	default:
		return "?"
	}
}

// Kind discriminates the four node types.
type Kind uint8

const (
	KindLam Kind = iota
	KindApp
	KindSup
	KindDup
)

func (k Kind) String() string {
	switch k {
	case KindLam:
		return "Lam"
	case KindApp:
		return "App"
	case KindSup:
		return "Sup"
	case KindDup:
		return "Dup"
	default:
		return "?"
	}
}

// anyNode is implemented by *Lam, *App, *Sup, *Dup. It is unexported: the
// only legal node types are the four declared in this file (spec.md §3.2).
type anyNode interface {
	isNode()
	Kind() Kind
	source() ast.Term
}

// Lam is `(λ bind_x . body_e)`.
type Lam struct {
	X   FieldRef // occurrence field for x, or nil if unused
	E   NodeRef
	Src ast.Term
}

func (*Lam) isNode()          {}
func (*Lam) Kind() Kind       { return KindLam }
func (n *Lam) source() ast.Term { return n.Src }

// App is function E1 applied to argument E2.
type App struct {
	E1, E2 NodeRef
	Src    ast.Term
}

func (*App) isNode()          {}
func (*App) Kind() Kind       { return KindApp }
func (n *App) source() ast.Term { return n.Src }

// Sup is `#l{e1 e2}`.
type Sup struct {
	L      Label
	E1, E2 NodeRef
	Src    ast.Term
}

func (*Sup) isNode()          {}
func (*Sup) Kind() Kind       { return KindSup }
func (n *Sup) source() ast.Term { return n.Src }

// Dup is `dup #l{a b} = e; ...` (the continuation lives outside the node:
// see §4.1 — the builder writes the body, not a Dup pointer, into the
// destination field that used to hold the whole `Dup(...)` term, so only
// the destructured half is represented here).
type Dup struct {
	L   Label
	A, B FieldRef // occurrence fields for a, b; nil if unused
	E   NodeRef
	Src ast.Term
}

func (*Dup) isNode()          {}
func (*Dup) Kind() Kind       { return KindDup }
func (n *Dup) source() ast.Term { return n.Src }
