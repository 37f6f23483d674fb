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

import "github.com/inet-lang/inet/internal/intern"

// refTag discriminates the three NodeRef roles of spec.md §3.3. Go gives no
// portable way to steal the low bits of a pointer the way a tagged-pointer
// representation would, so (per the design notes in spec.md §9) this is the
// documented struct{tag, pointer} fallback rather than unsafe pointer
// tagging.
type refTag uint8

const (
	refInvalid refTag = iota
	refNode
	refBoundVar
	refUnboundVar
)

// NodeRef is either a tagged pointer to a subterm node, a bound-variable
// marker naming a specific binder slot, or an unbound-variable sentinel
// (spec.md §3.3). The zero NodeRef is refInvalid and must never persist in
// a built graph.
type NodeRef struct {
	tag  refTag
	node anyNode     // refNode: the subterm. refBoundVar: the binder node.
	slot Slot         // refBoundVar only.
	name intern.Name // refUnboundVar only.
}

// NewNodeRef wraps n (a *Lam, *App, *Sup or *Dup) as a subterm pointer.
func NewNodeRef(n anyNode) NodeRef { return NodeRef{tag: refNode, node: n} }

// BoundVarMarker names the occurrence of binder b's slot.
func BoundVarMarker(b anyNode, slot Slot) NodeRef {
	return NodeRef{tag: refBoundVar, node: b, slot: slot}
}

// UnboundVarMarker names a free variable occurrence.
func UnboundVarMarker(name intern.Name) NodeRef {
	return NodeRef{tag: refUnboundVar, name: name}
}

// IsZero reports whether r is the uninitialized zero value.
func (r NodeRef) IsZero() bool { return r.tag == refInvalid }

// IsNode reports whether r stores a subterm pointer.
func (r NodeRef) IsNode() bool { return r.tag == refNode }

// IsBoundVar reports whether r is a bound-variable marker.
func (r NodeRef) IsBoundVar() bool { return r.tag == refBoundVar }

// IsUnboundVar reports whether r is an unbound-variable sentinel.
func (r NodeRef) IsUnboundVar() bool { return r.tag == refUnboundVar }

// Node returns the subterm pointer. Only valid when IsNode is true. The
// concrete dynamic type is always one of *Lam, *App, *Sup, *Dup; callers
// outside this package recover it with a type switch.
func (r NodeRef) Node() anyNode { return r.node }

// Kind returns the node kind and true when IsNode is true.
func (r NodeRef) Kind() (Kind, bool) {
	if !r.IsNode() {
		return 0, false
	}
	return r.node.Kind(), true
}

// Binder returns the binder node and slot named by a bound-variable marker.
// Only valid when IsBoundVar is true.
func (r NodeRef) Binder() (anyNode, Slot) { return r.node, r.slot }

// UnboundName returns the free-variable name. Only valid when IsUnboundVar.
func (r NodeRef) UnboundName() intern.Name { return r.name }

// FieldRef is a binder slot: either the address of the NodeRef field that
// holds the binder's single occurrence, or nil for an unused binder
// (spec.md §3.3, the UnusedBinder sentinel).
type FieldRef = *NodeRef

// binderField reads the FieldRef stored in binder b's slot.
func binderField(b anyNode, slot Slot) FieldRef {
	switch n := b.(type) {
	case *Lam:
		return n.X
	case *Dup:
		if slot == SlotDupA {
			return n.A
		}
		return n.B
	default:
		panic("net: not a binder node")
	}
}

// setBinderField overwrites binder b's slot to f (nil for UnusedBinder).
func setBinderField(b anyNode, slot Slot, f FieldRef) {
	switch n := b.(type) {
	case *Lam:
		n.X = f
	case *Dup:
		if slot == SlotDupA {
			n.A = f
		} else {
			n.B = f
		}
	default:
		panic("net: not a binder node")
	}
}

func otherDupSlot(s Slot) Slot {
	if s == SlotDupA {
		return SlotDupB
	}
	return SlotDupA
}

// WriteField writes v into *dst and, if v is a bound-variable marker,
// retargets its binder's slot to dst. This is the "write v into the
// destination, and if v is itself a bound-variable marker, rewrite its
// binder's slot to target the destination" step that recurs throughout
// spec.md §4.1 and §4.2.
func WriteField(dst *NodeRef, v NodeRef) {
	*dst = v
	if v.IsBoundVar() {
		b, s := v.Binder()
		setBinderField(b, s, dst)
	}
}

// Subst performs "binder.slot <- v" (spec.md §4.2): let F be the binder's
// current FieldRef. If F is UnusedBinder, v is garbage and is discarded
// (§4.3). Otherwise F is overwritten with v, retargeting v's own binder if
// v is itself a marker.
func Subst(g *Graph, binder anyNode, slot Slot, v NodeRef) {
	f := binderField(binder, slot)
	if f == nil {
		Discard(g, v)
		return
	}
	WriteField(f, v)
}

// BinderField exposes binderField to the eval package, which needs to read
// (but never blindly overwrite) a binder's occurrence field, e.g. to tell
// whether a Lam's or Dup's side is used before deciding whether to
// allocate replacement nodes for it.
func BinderField(b anyNode, slot Slot) FieldRef { return binderField(b, slot) }
