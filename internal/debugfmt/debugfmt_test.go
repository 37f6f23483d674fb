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

package debugfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/inet-lang/inet/internal/core/eval"
	"github.com/inet-lang/inet/internal/debugfmt"
	"github.com/inet-lang/inet/syntax/parser"
)

func TestTermIncludesPrintedAndStructuralForm(t *testing.T) {
	term, err := parser.ParseFile(t.Name(), []byte("λx x"))
	qt.Assert(t, qt.IsNil(err))

	got := debugfmt.Term(term)
	lines := strings.SplitN(got, "\n", 2)
	qt.Assert(t, qt.Equals(lines[0], "(λx x)"))
	// The structural dump is kr/pretty's rendering of the *ast.Lam value;
	// it need not match byte for byte, but it must name the concrete type.
	qt.Assert(t, qt.IsTrue(strings.Contains(lines[1], "ast.Lam")))
}

func TestStepWritesNumberRuleAndTerm(t *testing.T) {
	term, err := parser.ParseFile(t.Name(), []byte("x"))
	qt.Assert(t, qt.IsNil(err))

	var buf bytes.Buffer
	debugfmt.Step(&buf, 3, eval.AppSup, term)

	got := buf.String()
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(got, "step 3: AppSup\n")))
	qt.Assert(t, qt.IsTrue(strings.Contains(got, "x")))
}
