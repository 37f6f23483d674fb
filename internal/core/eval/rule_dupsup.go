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

package eval

import "github.com/inet-lang/inet/internal/core/net"

// applyDupSup implements spec.md §4.2 DupSup. The rule has two cases,
// distinguished by whether the Dup and Sup carry the same label:
//
//	same label (l):   dup #l{a b} = #l{c d};  =>  a <- c; b <- d
//
//	different labels: dup #l{a b} = #m{c d};  =>  a <- #m{c1 d1}; b <- #m{c2 d2};
//	                                               dup #l{c1 c2} = c; dup #l{d1 d2} = d
//
// The same-label case allocates nothing: it is two direct substitutions, so
// the both-binders-dead case resolved in spec.md §9 never needs a node of
// its own — there is no node to conditionally allocate in the first place.
func applyDupSup(g *net.Graph, d *net.Dup) {
	sup := d.E.Node().(*net.Sup)

	if d.L == sup.L {
		net.Subst(g, d, net.SlotDupA, sup.E1)
		net.Subst(g, d, net.SlotDupB, sup.E2)
		g.FreeDup(d)
		g.FreeSup(sup)
		return
	}

	l := d.L
	m := sup.L
	c := sup.E1
	e := sup.E2

	d1 := g.NewDup(d.Src) // splits c between a's and b's shares
	d2 := g.NewDup(d.Src) // splits e between a's and b's shares
	s1 := g.NewSup(sup.Src)
	s2 := g.NewSup(sup.Src)

	d1.L = l
	d1.A = &s1.E1
	d1.B = &s2.E1
	net.WriteField(&d1.E, c)

	d2.L = l
	d2.A = &s1.E2
	d2.B = &s2.E2
	net.WriteField(&d2.E, e)

	s1.L = m
	s1.E1 = net.BoundVarMarker(d1, net.SlotDupA)
	s1.E2 = net.BoundVarMarker(d2, net.SlotDupA)

	s2.L = m
	s2.E1 = net.BoundVarMarker(d1, net.SlotDupB)
	s2.E2 = net.BoundVarMarker(d2, net.SlotDupB)

	net.Subst(g, d, net.SlotDupA, net.NewNodeRef(s1))
	net.Subst(g, d, net.SlotDupB, net.NewNodeRef(s2))

	g.FreeDup(d)
	g.FreeSup(sup)
}
