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

// Package printer renders a Term as the surface syntax of spec.md §6.2. It
// is the inverse of syntax/parser modulo whitespace, grounded on the
// node-kind switch structure of cuelang.org/go/cue/ast's print.go.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inet-lang/inet/syntax/ast"
)

// Print renders t as a single-line term string, per spec.md §6.2:
//
//	Var v         -> v
//	Lam x e       -> (λx e)
//	App f a       -> (f a)
//	Sup l a b     -> #l{a b}
//	Dup l x y e k -> (dup #l{x y} = e; k)
//	Let x e k     -> (let x = e; k)
func Print(t ast.Term) string {
	var b strings.Builder
	write(&b, t)
	return b.String()
}

func write(b *strings.Builder, t ast.Term) {
	switch x := t.(type) {
	case *ast.Var:
		b.WriteString(x.Name)
	case *ast.Lam:
		b.WriteByte('(')
		b.WriteString("λ")
		b.WriteString(x.X)
		b.WriteByte(' ')
		write(b, x.Body)
		b.WriteByte(')')
	case *ast.App:
		b.WriteByte('(')
		write(b, x.Fun)
		b.WriteByte(' ')
		write(b, x.Arg)
		b.WriteByte(')')
	case *ast.Sup:
		b.WriteByte('#')
		b.WriteString(strconv.FormatUint(x.Label, 10))
		b.WriteByte('{')
		write(b, x.A)
		b.WriteByte(' ')
		write(b, x.B)
		b.WriteByte('}')
	case *ast.Dup:
		b.WriteString("(dup #")
		b.WriteString(strconv.FormatUint(x.Label, 10))
		b.WriteByte('{')
		b.WriteString(x.A)
		b.WriteByte(' ')
		b.WriteString(x.B)
		b.WriteString("} = ")
		write(b, x.Expr)
		b.WriteString("; ")
		write(b, x.Body)
		b.WriteByte(')')
	case *ast.Let:
		b.WriteString("(let ")
		b.WriteString(x.X)
		b.WriteString(" = ")
		write(b, x.Expr)
		b.WriteString("; ")
		write(b, x.Body)
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("printer: unhandled term %T", t))
	}
}
