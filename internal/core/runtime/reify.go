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

package runtime

import (
	"fmt"

	"github.com/inet-lang/inet/internal/core/net"
	"github.com/inet-lang/inet/internal/intern"
	"github.com/inet-lang/inet/internal/token"
	"github.com/inet-lang/inet/syntax/ast"
)

// occSite names one binder slot: either a *net.Lam's sole slot or one side
// of a *net.Dup's pair. Used as a map key; net.anyNode is unexported so the
// field is typed as any, but every value stored into it always comes from
// a net.NodeRef.Binder() call.
type occSite struct {
	binder any
	slot   net.Slot
}

// reifier rebuilds surface syntax from a graph (spec.md §6: "ToTerm
// reconstructs a term from the final graph"). A live *net.Dup is never
// reachable as an ordinary subterm (see internal/core/net's package doc),
// so it cannot be printed at the single point that "used to hold" it the
// way compile.Build wrote it there — there no longer is one, once rewrites
// have moved its occurrences apart. Instead every Dup reachable from the
// root is hoisted into a declaration chain wrapped around the whole
// printed term, ordered so that an outer Dup's bound names are already in
// scope wherever an inner Dup's Expr refers to them.
type reifier struct {
	names    map[occSite]string
	lamNames map[any]string
	fresh    int
}

// ToTerm reconstructs a Term equivalent to r's current graph state,
// suitable for printing or re-feeding through compile.Build.
func (r *Graph) ToTerm() ast.Term {
	rf := &reifier{
		names:    map[occSite]string{},
		lamNames: map[any]string{},
	}

	var dups []*net.Dup
	net.Walk(r.g, func(*net.NodeRef) {}, func(d *net.Dup) {
		dups = append(dups, d)
		rf.names[occSite{d, net.SlotDupA}] = rf.freshName("a")
		rf.names[occSite{d, net.SlotDupB}] = rf.freshName("b")
	})

	// A dup's two occurrences need not sit in the same branch of the term
	// (one might be under App.Fun, the other under App.Arg), so there is no
	// single dominating point to print "dup ... = ...;" at short of the
	// root. Every live dup is hoisted to a flat declaration chain wrapping
	// the whole term instead, ordered by a topological sort over "dup B's
	// Expr mentions dup A's bound name" edges so that A's declaration
	// always precedes B's.
	order := topoSortDups(dups)

	term := rf.term(r.g.Root)
	for i := len(order) - 1; i >= 0; i-- {
		d := order[i]
		term = &ast.Dup{
			DupPos: srcPos(d.Src),
			Label:  uint64(d.L),
			A:      rf.names[occSite{d, net.SlotDupA}],
			B:      rf.names[occSite{d, net.SlotDupB}],
			Expr:   rf.term(d.E),
			Body:   term,
		}
	}
	return term
}

// topoSortDups orders dups so that if some dup's Expr mentions another
// dup's bound name, the mentioned dup comes first.
func topoSortDups(dups []*net.Dup) []*net.Dup {
	state := map[*net.Dup]int{} // 0 unvisited, 1 in progress, 2 done
	var order []*net.Dup
	var visit func(d *net.Dup)
	visit = func(d *net.Dup) {
		if state[d] == 2 {
			return
		}
		state[d] = 1
		deps := map[*net.Dup]bool{}
		scanDupRefs(d.E, deps)
		for dep := range deps {
			visit(dep)
		}
		state[d] = 2
		order = append(order, d)
	}
	for _, d := range dups {
		visit(d)
	}
	return order
}

// scanDupRefs collects the Dups directly named by a bound-variable marker
// reachable from ref, without descending into any such Dup's own Expr —
// that Dup's transitive references are its own concern when topoSortDups
// visits it in turn.
func scanDupRefs(ref net.NodeRef, found map[*net.Dup]bool) {
	switch {
	case ref.IsBoundVar():
		b, _ := ref.Binder()
		if d, ok := b.(*net.Dup); ok {
			found[d] = true
		}
	case ref.IsNode():
		switch n := ref.Node().(type) {
		case *net.Lam:
			scanDupRefs(n.E, found)
		case *net.App:
			scanDupRefs(n.E1, found)
			scanDupRefs(n.E2, found)
		case *net.Sup:
			scanDupRefs(n.E1, found)
			scanDupRefs(n.E2, found)
		}
	}
}

func (r *reifier) freshName(prefix string) string {
	r.fresh++
	return fmt.Sprintf("%s%d", prefix, r.fresh)
}

func (r *reifier) term(ref net.NodeRef) ast.Term {
	switch {
	case ref.IsUnboundVar():
		name := intern.Global.String(ref.UnboundName())
		return &ast.Var{Name: name}
	case ref.IsBoundVar():
		b, slot := ref.Binder()
		if lb, ok := b.(*net.Lam); ok {
			// A Lam reached only through this marker (never as the target
			// of a plain subterm pointer — e.g. one side of a DupLam
			// expansion whose Dup binder went unused while the Lam's own
			// variable is still live) never runs the *net.Lam case below,
			// so its name is assigned here on first sight instead.
			name, seen := r.lamNames[lb]
			if !seen {
				name = r.freshName("x")
				r.lamNames[lb] = name
			}
			return &ast.Var{NamePos: token.NoPos, Name: name}
		}
		return &ast.Var{NamePos: token.NoPos, Name: r.names[occSite{b, slot}]}
	case ref.IsNode():
		switch n := ref.Node().(type) {
		case *net.Lam:
			name := r.freshName("x")
			r.lamNames[n] = name
			return &ast.Lam{LamPos: srcPos(n.Src), X: name, Body: r.term(n.E)}
		case *net.App:
			return &ast.App{AppPos: srcPos(n.Src), Fun: r.term(n.E1), Arg: r.term(n.E2)}
		case *net.Sup:
			return &ast.Sup{SupPos: srcPos(n.Src), Label: uint64(n.L), A: r.term(n.E1), B: r.term(n.E2)}
		default:
			panic("runtime: unreachable node kind")
		}
	default:
		panic("runtime: reachable field holds the zero NodeRef")
	}
}

func srcPos(src ast.Term) token.Position {
	if src == nil {
		return token.NoPos
	}
	return src.Pos()
}
