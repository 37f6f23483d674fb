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

// Discard implements spec.md §4.3: v has just lost its only reader. If v
// names a binder, that binder's slot is marked unused, cascading into a
// Dup deallocation if the Dup's other side is also now unused. If v is a
// subterm pointer, the subterm is recursively torn down. Unbound variables
// have no reciprocal link and are ignored.
func Discard(g *Graph, v NodeRef) {
	switch {
	case v.IsBoundVar():
		b, s := v.Binder()
		setBinderField(b, s, nil)
		if d, ok := b.(*Dup); ok {
			if binderField(d, otherDupSlot(s)) == nil {
				discardDup(g, d)
			}
		}
	case v.IsUnboundVar():
		// no reciprocal link; nothing to do.
	case v.IsNode():
		discardNode(g, v.Node())
	}
}

func discardNode(g *Graph, n anyNode) {
	switch x := n.(type) {
	case *Lam:
		Discard(g, x.E)
		g.FreeLam(x)
	case *App:
		Discard(g, x.E1)
		Discard(g, x.E2)
		g.FreeApp(x)
	case *Sup:
		Discard(g, x.E1)
		Discard(g, x.E2)
		g.FreeSup(x)
	case *Dup:
		discardDup(g, x)
	}
}

// discardDup tears down a Dup whose last live binder just went unused: its
// destructured expression has no consumer left either.
func discardDup(g *Graph, d *Dup) {
	Discard(g, d.E)
	g.FreeDup(d)
}
