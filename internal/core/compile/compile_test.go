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

package compile_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/inet-lang/inet/internal/core/compile"
	"github.com/inet-lang/inet/internal/core/net"
	inerrors "github.com/inet-lang/inet/internal/errors"
	"github.com/inet-lang/inet/syntax/parser"
)

func build(t *testing.T, src string) (*net.Graph, error) {
	t.Helper()
	term, err := parser.ParseFile(t.Name(), []byte(src))
	qt.Assert(t, qt.IsNil(err))
	return compile.Build(term)
}

func TestBuildWellFormedGraph(t *testing.T) {
	g, err := build(t, "λx x")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(net.CheckInvariants(g)))
}

func TestBuildDesugarsLet(t *testing.T) {
	g, err := build(t, "let x = a; x")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(net.CheckInvariants(g)))

	// desugarLet turns this into (λx x) a, an immediate AppLam redex.
	app, ok := g.Root.Node().(*net.App)
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = app.E1.Node().(*net.Lam)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestBuildRejectsNonAffineUse(t *testing.T) {
	_, err := build(t, "λx (x x)")
	qt.Assert(t, qt.IsNotNil(err))
	var target *inerrors.NonAffineUse
	qt.Assert(t, qt.ErrorAs(err, &target))
}

func TestBuildRejectsDupSameName(t *testing.T) {
	_, err := build(t, "dup #0{a a} = e; a")
	qt.Assert(t, qt.IsNotNil(err))
	var target *inerrors.DupSameName
	qt.Assert(t, qt.ErrorAs(err, &target))
}

func TestBuildRejectsDupBothDead(t *testing.T) {
	_, err := build(t, "dup #0{a b} = e; f")
	qt.Assert(t, qt.IsNotNil(err))
	var target *inerrors.DupBothDead
	qt.Assert(t, qt.ErrorAs(err, &target))
}

func TestBuildAllowsDupWithOneLiveBinder(t *testing.T) {
	g, err := build(t, "dup #0{a b} = e; a")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(net.CheckInvariants(g)))
}
