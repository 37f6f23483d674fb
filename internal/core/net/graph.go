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

package net

import "github.com/inet-lang/inet/syntax/ast"

// Graph is the single owner of a root cell and every node reachable from
// it (spec.md §3.5, §4.6). Nodes are allocated and freed through its
// per-kind free lists, following original_source/src/vm.rs's arena-with-
// free-list allocator rather than leaving reuse entirely to the Go garbage
// collector: a reducer that runs for many steps should not need to
// allocate on every redex once the working set has stabilized.
type Graph struct {
	Root NodeRef

	freeLam []*Lam
	freeApp []*App
	freeSup []*Sup
	freeDup []*Dup
}

// NewGraph returns an empty graph. Callers normally obtain a populated
// Graph from internal/core/compile.Build instead of constructing one
// directly.
func NewGraph() *Graph { return &Graph{} }

// NewLam allocates a Lam, reusing a freed node when one is available.
func (g *Graph) NewLam(src ast.Term) *Lam {
	if n := g.popLam(); n != nil {
		*n = Lam{Src: src}
		return n
	}
	return &Lam{Src: src}
}

// NewApp allocates an App, reusing a freed node when one is available.
func (g *Graph) NewApp(src ast.Term) *App {
	if n := g.popApp(); n != nil {
		*n = App{Src: src}
		return n
	}
	return &App{Src: src}
}

// NewSup allocates a Sup, reusing a freed node when one is available.
func (g *Graph) NewSup(src ast.Term) *Sup {
	if n := g.popSup(); n != nil {
		*n = Sup{Src: src}
		return n
	}
	return &Sup{Src: src}
}

// NewDup allocates a Dup, reusing a freed node when one is available.
func (g *Graph) NewDup(src ast.Term) *Dup {
	if n := g.popDup(); n != nil {
		*n = Dup{Src: src}
		return n
	}
	return &Dup{Src: src}
}

func (g *Graph) popLam() *Lam {
	if n := len(g.freeLam); n > 0 {
		x := g.freeLam[n-1]
		g.freeLam = g.freeLam[:n-1]
		return x
	}
	return nil
}

func (g *Graph) popApp() *App {
	if n := len(g.freeApp); n > 0 {
		x := g.freeApp[n-1]
		g.freeApp = g.freeApp[:n-1]
		return x
	}
	return nil
}

func (g *Graph) popSup() *Sup {
	if n := len(g.freeSup); n > 0 {
		x := g.freeSup[n-1]
		g.freeSup = g.freeSup[:n-1]
		return x
	}
	return nil
}

func (g *Graph) popDup() *Dup {
	if n := len(g.freeDup); n > 0 {
		x := g.freeDup[n-1]
		g.freeDup = g.freeDup[:n-1]
		return x
	}
	return nil
}

// FreeLam returns n to the arena. n must not be referenced by the graph.
func (g *Graph) FreeLam(n *Lam) { *n = Lam{}; g.freeLam = append(g.freeLam, n) }

// FreeApp returns n to the arena. n must not be referenced by the graph.
func (g *Graph) FreeApp(n *App) { *n = App{}; g.freeApp = append(g.freeApp, n) }

// FreeSup returns n to the arena. n must not be referenced by the graph.
func (g *Graph) FreeSup(n *Sup) { *n = Sup{}; g.freeSup = append(g.freeSup, n) }

// FreeDup returns n to the arena. n must not be referenced by the graph.
func (g *Graph) FreeDup(n *Dup) { *n = Dup{}; g.freeDup = append(g.freeDup, n) }

// Walk calls onField once for every NodeRef field reachable from the
// graph's root, and onDup once for every live Dup node, discovered via the
// binder markers of spec.md §3.4 (a Dup is never itself stored behind a
// subterm-pointer field — see internal/core/net's package doc). Either
// callback may be nil. Each field and each Dup node is visited at most
// once (spec.md §4.4: "a node is visited at most once per scan").
func Walk(g *Graph, onField func(field *NodeRef), onDup func(d *Dup)) {
	visitedNode := map[anyNode]bool{}
	visitedField := map[*NodeRef]bool{}

	var walk func(field *NodeRef)
	walk = func(field *NodeRef) {
		if field == nil || visitedField[field] {
			return
		}
		visitedField[field] = true
		if onField != nil {
			onField(field)
		}
		r := *field
		switch {
		case r.IsNode():
			n := r.Node()
			if visitedNode[n] {
				return
			}
			visitedNode[n] = true
			switch x := n.(type) {
			case *Lam:
				walk(&x.E)
			case *App:
				walk(&x.E1)
				walk(&x.E2)
			case *Sup:
				walk(&x.E1)
				walk(&x.E2)
			case *Dup:
				// Unreached in a well-formed graph: see package doc.
				walk(&x.E)
			}
		case r.IsBoundVar():
			// Only a Dup is entered through its marker. A Lam is left for
			// its subterm-pointer field, so that its body is still walked
			// when that field is reached after the marker.
			b, _ := r.Binder()
			d, ok := b.(*Dup)
			if !ok || visitedNode[d] {
				return
			}
			visitedNode[d] = true
			if onDup != nil {
				onDup(d)
			}
			walk(&d.E)
		}
	}
	walk(&g.Root)
}

// Close deallocates every node reachable from the root, then clears the
// root cell (spec.md §4.6). The Graph may be reused afterward as if newly
// constructed.
func (g *Graph) Close() {
	var nodes []anyNode
	Walk(g, func(field *NodeRef) {
		if field.IsNode() {
			nodes = append(nodes, field.Node())
		}
	}, func(d *Dup) {
		nodes = append(nodes, d)
	})
	for _, n := range nodes {
		switch x := n.(type) {
		case *Lam:
			g.FreeLam(x)
		case *App:
			g.FreeApp(x)
		case *Sup:
			g.FreeSup(x)
		case *Dup:
			g.FreeDup(x)
		}
	}
	g.Root = NodeRef{}
}
