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

import "fmt"

// CheckInvariants verifies the back-pointer symmetry and affinity
// invariants of spec.md §8.1 over every node reachable from g's root. It
// is meant for tests, which call it after Build and after every rewrite.
func CheckInvariants(g *Graph) error {
	var err error
	report := func(f string, args ...interface{}) {
		if err == nil {
			err = fmt.Errorf(f, args...)
		}
	}

	checkBinder := func(b anyNode, slot Slot) {
		f := binderField(b, slot)
		if f == nil {
			return // UnusedBinder: nothing to check.
		}
		if !f.IsBoundVar() {
			report("binder slot %v.%v targets a field that is not a bound-variable marker", b, slot)
			return
		}
		tb, ts := f.Binder()
		if tb != b || ts != slot {
			report("binder slot %v.%v targets a marker naming a different binder", b, slot)
		}
	}

	Walk(g, func(field *NodeRef) {
		r := *field
		if r.IsZero() {
			report("reachable field holds the zero NodeRef")
			return
		}
		if r.IsBoundVar() {
			b, s := r.Binder()
			if binderField(b, s) != field {
				report("bound-variable marker at a field not targeted by its binder's slot")
			}
		}
		if r.IsNode() {
			switch x := r.Node().(type) {
			case *Lam:
				checkBinder(x, SlotLamX)
			case *Dup:
				checkBinder(x, SlotDupA)
				checkBinder(x, SlotDupB)
			}
		}
	}, func(d *Dup) {
		checkBinder(d, SlotDupA)
		checkBinder(d, SlotDupB)
	})

	return err
}
