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

// Package eval implements the four rewrite rules of spec.md §4.2 and the
// redex scanner of §4.4; the discard-on-substitution garbage collector of
// §4.3 that the rules rely on is net.Discard. It is grounded on the one-function-per-case
// shape of cuelang.org/go's internal/core/eval evaluator (there: one
// function per unification/disjunction case; here: one per interaction
// rule), generalized from a fixpoint over partial values to a fixpoint
// over the redex set.
package eval

import "github.com/inet-lang/inet/internal/core/net"

// RuleKind names which of the four interaction rules a RedexSite matches.
type RuleKind uint8

const (
	AppLam RuleKind = iota
	AppSup
	DupLam
	DupSup
)

func (k RuleKind) String() string {
	switch k {
	case AppLam:
		return "AppLam"
	case AppSup:
		return "AppSup"
	case DupLam:
		return "DupLam"
	case DupSup:
		return "DupSup"
	default:
		return "?"
	}
}

// RedexSite is one entry of the redex set spec.md §4.4 defines. For the
// App-headed rules, Host is the field holding the App's subterm pointer
// (the "host field P" of §4.2, overwritten in place by the rule). For the
// Dup-headed rules there is no such field — a live Dup is never itself
// behind a subterm-pointer field, only reachable through its two binder
// markers (see internal/core/net's package doc) — so Dup identifies the
// redex directly.
type RedexSite struct {
	Rule RuleKind
	Host *net.NodeRef // AppLam, AppSup
	Dup  *net.Dup     // DupLam, DupSup
}

// Scan performs the whole-graph traversal of spec.md §4.4 and returns every
// redex site, in the deterministic order net.Walk discovers them (which is
// itself deterministic: preorder from the root, deduplicated by node/field
// address).
func Scan(g *net.Graph) []RedexSite {
	var sites []RedexSite
	net.Walk(g,
		func(field *net.NodeRef) {
			if !field.IsNode() {
				return
			}
			app, ok := field.Node().(*net.App)
			if !ok {
				return
			}
			switch {
			case isKind(app.E1, net.KindLam):
				sites = append(sites, RedexSite{Rule: AppLam, Host: field})
			case isKind(app.E1, net.KindSup):
				sites = append(sites, RedexSite{Rule: AppSup, Host: field})
			}
		},
		func(d *net.Dup) {
			switch {
			case isKind(d.E, net.KindLam):
				sites = append(sites, RedexSite{Rule: DupLam, Dup: d})
			case isKind(d.E, net.KindSup):
				sites = append(sites, RedexSite{Rule: DupSup, Dup: d})
			}
		},
	)
	return sites
}

func isKind(r net.NodeRef, k net.Kind) bool {
	got, ok := r.Kind()
	return ok && got == k
}
