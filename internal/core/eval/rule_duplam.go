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

// applyDupLam implements spec.md §4.2 DupLam:
//
//	dup #l{a b} = (λx e);  =>  a <- (λx1 c); b <- (λx2 d);
//	                           x <- #l{x1 x2}; dup #l{c d} = e
//
// L1/L2/S are allocated conditionally on which of a, b, and the original
// lambda's x are actually used, per spec.md §4.2's "omit allocating L1, S
// accordingly" and §8.3's "correct nodes are allocated only for live
// outputs" — not as an optimization but because the unconditional-allocate
// alternative is unsound here: when x is used but a (say) is not, L1 is
// simultaneously "the discarded value of a" and "the live binder of x1",
// since S.E1 names L1 regardless of whether a ever reads it. net.Subst's
// generic discard path (§4.3) only unwinds a node's own outgoing subterm
// pointer, not a sibling node's back-reference to it, so running it on L1
// here would free a node that S's marker still points at. Building L1 only
// when it has a genuine reader (a, or x via S) and never routing it through
// Subst/Discard when only S references it sidesteps that dangling-pointer
// case; the cost is that an L1 referenced solely via S (a dead, x live)
// stays allocated rather than being reclaimed, since net.Walk — unlike for
// Dup — has no marker-based discovery path for a Lam to free it by.
func applyDupLam(g *net.Graph, d *net.Dup) {
	l := d.L
	lam := d.E.Node().(*net.Lam)

	aUsed := net.BinderField(d, net.SlotDupA) != nil
	bUsed := net.BinderField(d, net.SlotDupB) != nil
	xUsed := net.BinderField(lam, net.SlotLamX) != nil

	d2 := g.NewDup(d.Src)
	d2.L = l

	var l1, l2 *net.Lam
	if aUsed || xUsed {
		l1 = g.NewLam(lam.Src)
		l1.E = net.BoundVarMarker(d2, net.SlotDupA)
		d2.A = &l1.E
	}
	if bUsed || xUsed {
		l2 = g.NewLam(lam.Src)
		l2.E = net.BoundVarMarker(d2, net.SlotDupB)
		d2.B = &l2.E
	}

	if xUsed {
		s := g.NewSup(lam.Src)
		s.L = l
		s.E1 = net.BoundVarMarker(l1, net.SlotLamX)
		l1.X = &s.E1
		s.E2 = net.BoundVarMarker(l2, net.SlotLamX)
		l2.X = &s.E2
		net.Subst(g, lam, net.SlotLamX, net.NewNodeRef(s))
	}

	if aUsed {
		net.Subst(g, d, net.SlotDupA, net.NewNodeRef(l1))
	}
	if bUsed {
		net.Subst(g, d, net.SlotDupB, net.NewNodeRef(l2))
	}

	net.WriteField(&d2.E, lam.E)

	g.FreeDup(d)
	g.FreeLam(lam)
}
