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

// Package runtime is the public facade over compile, eval and net: build a
// graph from a Term, step or run it to normal form under a Policy, and read
// it back out as a Term. It plays the role cuelang.org/go's
// internal/core/adt.OpContext plays for evaluation there: the single type
// application code drives instead of reaching into the lower packages
// directly.
package runtime

import (
	"github.com/google/uuid"

	"github.com/inet-lang/inet/internal/core/compile"
	"github.com/inet-lang/inet/internal/core/eval"
	"github.com/inet-lang/inet/internal/core/net"
	"github.com/inet-lang/inet/syntax/ast"
	"github.com/inet-lang/inet/syntax/printer"
)

// Graph owns one interaction net and the step count it took to reach its
// current state. ID identifies this one reduction run in `inet steps` output, so
// that logs from concurrent `inet` invocations (or concurrently reduced
// graphs embedding this package) are never mistaken for one another.
type Graph struct {
	g     *net.Graph
	ID    uuid.UUID
	Steps int
}

// Build compiles t into a fresh Graph (spec.md §4.1).
func Build(t ast.Term) (*Graph, error) {
	g, err := compile.Build(t)
	if err != nil {
		return nil, err
	}
	return &Graph{g: g, ID: uuid.New()}, nil
}

// Step performs a single rewrite chosen by p and reports whether one was
// available. It is the "Step" operation of spec.md §5.
func (r *Graph) Step(p Policy) bool {
	sites := eval.Scan(r.g)
	if len(sites) == 0 {
		return false
	}
	eval.Apply(r.g, p.Pick(sites))
	r.Steps++
	return true
}

// StepTraced is Step, but also reports which rule fired, for `inet steps`
// --trace-style output that names the rewrite as well as showing its
// result.
func (r *Graph) StepTraced(p Policy) (rule eval.RuleKind, ok bool) {
	sites := eval.Scan(r.g)
	if len(sites) == 0 {
		return 0, false
	}
	site := p.Pick(sites)
	eval.Apply(r.g, site)
	r.Steps++
	return site.Rule, true
}

// Reduce steps r under p until no redex remains or maxSteps steps have run
// (maxSteps <= 0 means unbounded), and returns the number of steps taken.
func (r *Graph) Reduce(p Policy, maxSteps int) int {
	n := 0
	for (maxSteps <= 0 || n < maxSteps) && r.Step(p) {
		n++
	}
	return n
}

// ReduceDet reduces with FirstPolicy, the deterministic policy used by
// tests and by `inet reduce --policy=first`.
func (r *Graph) ReduceDet(maxSteps int) int {
	return r.Reduce(FirstPolicy{}, maxSteps)
}

// CheckInvariants verifies the back-pointer and affinity invariants of
// spec.md §8.1 over r's current state.
func (r *Graph) CheckInvariants() error {
	return net.CheckInvariants(r.g)
}

// Close deallocates r's graph (spec.md §4.6). r must not be used afterward.
func (r *Graph) Close() {
	r.g.Close()
}

// HasRedex reports whether r still has at least one redex, that is, whether
// it is not yet in normal form.
func (r *Graph) HasRedex() bool {
	return len(eval.Scan(r.g)) > 0
}

// String renders r's current state using the surface printer, for debug
// output and test failure messages (fmt.Stringer, the way adt.Vertex
// implements it for %v in CUE's own diagnostics).
func (r *Graph) String() string {
	return printer.Print(r.ToTerm())
}
