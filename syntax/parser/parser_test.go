// Copyright 2018 The CUE Authors
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

package parser_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/inet-lang/inet/syntax/ast"
	"github.com/inet-lang/inet/syntax/parser"
	"github.com/inet-lang/inet/syntax/printer"
)

func TestParseFile(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want string // expected output of re-printing the parsed term
	}{
		{"var", "x", "x"},
		{"lambda glyph", "λx x", "(λx x)"},
		{"lambda ascii", "@x x", "(λx x)"},
		{"app two args", "(f a)", "(f a)"},
		{
			"app folds multiple args left-associatively",
			"(f a b c)",
			"(((f a) b) c)",
		},
		{"sup", "#0{a b}", "#0{a b}"},
		{"dup", "dup #1{a b} = e; (a b)", "(dup #1{a b} = e; (a b))"},
		{"let", "let x = e; x", "(let x = e; x)"},
		{"comment skipped", "x // trailing comment\n", "x"},
		{
			// Inside a 2+ term group a Lam takes no parens of its own,
			// so the Dup's Expr "(λx y y)" is App(Lam(x, y), y); the
			// printer adds its own canonical parens back on the way out.
			"spec example 5 round-trips",
			"λy dup #0{a b} = (λx y y); #0{a b}",
			"(λy (dup #0{a b} = ((λx y) y); #0{a b}))",
		},
		{
			// spec.md §8.4 scenario 1, written exactly as the spec table
			// gives it: a Lam standing alone in parens as an App's Fun.
			// parseApp must treat that single-term group as the Lam itself
			// rather than require a missing second term.
			"single-term group around Lam as App.Fun",
			"((λx x) y)",
			"((λx x) y)",
		},
		{
			"single-term group around Dup as App.Fun",
			"((dup #0{a b} = e; a) y)",
			"((dup #0{a b} = e; a) y)",
		},
		{
			"single-term group around Let as App.Fun",
			"((let x = e; x) y)",
			"((let x = e; x) y)",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			term, err := parser.ParseFile(tc.name, []byte(tc.src))
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(printer.Print(term), tc.want))
		})
	}
}

func TestParseFileErrors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"unterminated app", "(f a"},
		{"bare hash with no label", "#"},
		{"empty input", ""},
		{"trailing garbage", "x x"},
		{"illegal character", "x %"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.ParseFile(tc.name, []byte(tc.src))
			qt.Assert(t, qt.IsNotNil(err))
		})
	}
}

func TestParseLetDesugarsLikeAST(t *testing.T) {
	term, err := parser.ParseFile("let.inet", []byte("let x = a; x"))
	qt.Assert(t, qt.IsNil(err))

	let, ok := term.(*ast.Let)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(let.X, "x"))
}
