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

// Package debugfmt formats reducer state for `inet steps` output, using
// github.com/kr/pretty the way a Go-native structural dumper would rather
// than rolling a custom AST printer for debug purposes.
package debugfmt

import (
	"fmt"
	"io"

	"github.com/kr/pretty"

	"github.com/inet-lang/inet/internal/core/eval"
	"github.com/inet-lang/inet/syntax/ast"
	"github.com/inet-lang/inet/syntax/printer"
)

// Term renders t both as surface syntax and as a structural dump, for
// `inet steps` output where seeing the shape of the AST (sharing, nesting) is
// as useful as seeing the printed program.
func Term(t ast.Term) string {
	return fmt.Sprintf("%s\n%s", printer.Print(t), pretty.Sprint(t))
}

// Step writes one `inet steps` entry: the step number, the rule that fired, and
// the resulting term.
func Step(w io.Writer, n int, rule eval.RuleKind, t ast.Term) {
	fmt.Fprintf(w, "step %d: %s\n%s\n", n, rule, printer.Print(t))
}
