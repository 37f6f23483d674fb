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

// Package intern deduplicates variable names into small comparable handles.
//
// It is grounded on cuelang.org/go's internal/core/runtime.Index, which maps
// label strings to int64 indices for its evaluator, and on the
// canonicalization idea behind internal/anyunique.Store. Unlike Index (which
// is only ever driven from a single compilation goroutine and so gets away
// with an unsynchronized map), this interner is documented in spec.md as a
// process-wide, concurrently-accessed component, so every access here takes
// a mutex rather than relying on single-writer discipline.
package intern

import "sync"

// Name is a handle to an interned identifier. The zero Name is never
// returned by Table.Intern; it is reserved so that a zero-valued Name field
// is recognizably "no name" in debug output.
type Name uint32

// Table is a process-wide, append-only string interner. The zero Table is
// ready to use.
type Table struct {
	mu      sync.Mutex
	byName  map[string]Name
	byIndex []string
}

// Global is the process-wide table used by the parser and compiler unless a
// caller supplies its own, mirroring runtime.SharedIndex.
var Global = New()

// New returns a ready-to-use Table.
func New() *Table {
	return &Table{
		byName:  make(map[string]Name),
		byIndex: []string{""}, // index 0 reserved, see Name doc.
	}
}

// Intern returns the handle for s, allocating a new one if s has not been
// seen before. Safe for concurrent use.
func (t *Table) Intern(s string) Name {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.byName == nil {
		t.byName = make(map[string]Name)
		t.byIndex = []string{""} // index 0 reserved, see Name doc.
	}
	if n, ok := t.byName[s]; ok {
		return n
	}
	n := Name(len(t.byIndex))
	t.byIndex = append(t.byIndex, s)
	t.byName[s] = n
	return n
}

// String returns the string that n was interned from. It panics if n was
// not produced by this table.
func (t *Table) String(n Name) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(n) <= 0 || int(n) >= len(t.byIndex) {
		panic("intern: Name not produced by this Table")
	}
	return t.byIndex[n]
}
