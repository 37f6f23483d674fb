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

package eval_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/inet-lang/inet/internal/core/eval"
	"github.com/inet-lang/inet/internal/core/runtime"
	"github.com/inet-lang/inet/syntax/parser"
	"github.com/inet-lang/inet/syntax/printer"
)

// step parses and compiles src, fires exactly one redex through the
// runtime facade (so the rule-dispatch wiring in eval.Apply and the
// compile/reify round trip are all exercised together), and returns which
// rule fired plus the resulting graph printed back out. Most cases below
// write a Lam/Dup/Sup nested as one operand of an App without parens of
// its own, since it is one of 2+ terms in that App's group; syntax/parser
// also accepts (and TestSpecScenario1 below exercises) the fully
// parenthesized form spec.md itself uses, e.g. "((λx x) y)".
func step(t *testing.T, src string) (eval.RuleKind, string) {
	t.Helper()
	term, err := parser.ParseFile(src, []byte(src))
	qt.Assert(t, qt.IsNil(err))

	g, err := runtime.Build(term)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(g.HasRedex()))

	rule, ok := g.StepTraced(runtime.FirstPolicy{})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsNil(g.CheckInvariants()))

	return rule, printer.Print(g.ToTerm())
}

// TestSpecScenario1 is spec.md §8.4 scenario 1, `((λx x) y)` -> `y`, written
// exactly as the spec's table gives it (fully parenthesized, rather than
// dropping the inner Lam's parens as the other tests here do) to exercise
// parser.parseApp's single-term paren-group fallback end to end.
func TestSpecScenario1(t *testing.T) {
	rule, got := step(t, "((λx x) y)")
	qt.Assert(t, qt.Equals(rule, eval.AppLam))
	qt.Assert(t, qt.Equals(got, "y"))
}

func TestAppLam(t *testing.T) {
	// (λx x) y, written without the identity lambda's own parens since it
	// is the Fun operand of a 2-term App.
	rule, got := step(t, "(λx x y)")
	qt.Assert(t, qt.Equals(rule, eval.AppLam))
	qt.Assert(t, qt.Equals(got, "y"))
}

func TestAppLamSubstitutesIntoBody(t *testing.T) {
	// (λx (x x2)) y
	rule, got := step(t, "(λx (x x2) y)")
	qt.Assert(t, qt.Equals(rule, eval.AppLam))
	qt.Assert(t, qt.Equals(got, "(y x2)"))
}

func TestAppSup(t *testing.T) {
	rule, got := step(t, "(#0{f1 f2} a)")
	qt.Assert(t, qt.Equals(rule, eval.AppSup))
	qt.Assert(t, qt.Equals(got, "(dup #0{a1 b2} = a; #0{(f1 a1) (f2 b2)})"))
}

func TestDupLamSameLabel(t *testing.T) {
	rule, got := step(t, "dup #0{a b} = λx x; (a b)")
	qt.Assert(t, qt.Equals(rule, eval.DupLam))
	qt.Assert(t, qt.Equals(got, "(dup #0{a1 b2} = #0{x3 x4}; ((λx3 a1) (λx4 b2)))"))
}

func TestDupLamOneSideUnused(t *testing.T) {
	// b is never read by the dup's body (just "a"), but the lambda's own x
	// is live (used in the App). This is the case applyDupLam must build
	// L2/S without ever routing L2 through net.Subst's discard path: L2 has
	// no reader via b, but S's marker still names it.
	rule, got := step(t, "dup #0{a b} = λx (x y); a")
	qt.Assert(t, qt.Equals(rule, eval.DupLam))
	qt.Assert(t, qt.Equals(got, "(dup #0{a1 b2} = (#0{x3 x4} y); (λx3 a1))"))
}

func TestDupSupSameLabel(t *testing.T) {
	rule, got := step(t, "dup #0{a b} = #0{c d}; (a b)")
	qt.Assert(t, qt.Equals(rule, eval.DupSup))
	qt.Assert(t, qt.Equals(got, "(c d)"))
}

func TestDupSupDifferentLabel(t *testing.T) {
	rule, got := step(t, "dup #0{a b} = #1{c d}; (a b)")
	qt.Assert(t, qt.Equals(rule, eval.DupSup))
	qt.Assert(t, qt.Equals(got, "(dup #0{a1 b2} = c; (dup #0{a3 b4} = d; (#1{a1 a3} #1{b2 b4})))"))
}

func TestScanFindsNoRedexInNormalForm(t *testing.T) {
	term, err := parser.ParseFile("nf", []byte("λx x"))
	qt.Assert(t, qt.IsNil(err))
	g, err := runtime.Build(term)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(g.HasRedex()))
}
