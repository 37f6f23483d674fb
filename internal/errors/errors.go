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

// Package errors defines the error types produced by the parser and the
// graph builder, and a Print helper that renders them with source position.
package errors

import (
	"fmt"
	"io"

	"github.com/inet-lang/inet/internal/token"
)

// Error is the interface satisfied by every error this module produces that
// carries a source position. Error() returns just the message; Print (or a
// caller's own formatting) is expected to add the position.
type Error interface {
	error
	Position() token.Position
}

// ParseError reports a lexical or syntactic error at a source position.
type ParseError struct {
	Pos      token.Position
	Expected string
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return "parse error"
	}
	return fmt.Sprintf("expected %s", e.Expected)
}

func (e *ParseError) Position() token.Position { return e.Pos }

// NonAffineUse reports that a variable occurred more than once under its
// binder.
type NonAffineUse struct {
	Pos  token.Position
	Name string
}

func (e *NonAffineUse) Error() string {
	return fmt.Sprintf("variable %q used more than once", e.Name)
}

func (e *NonAffineUse) Position() token.Position { return e.Pos }

// DupBothDead reports a dup whose both binders are unused.
type DupBothDead struct {
	Pos token.Position
}

func (e *DupBothDead) Error() string {
	return "dup has no live binder on either side"
}

func (e *DupBothDead) Position() token.Position { return e.Pos }

// DupSameName reports a dup that binds the same name on both sides.
type DupSameName struct {
	Pos  token.Position
	Name string
}

func (e *DupSameName) Error() string {
	return fmt.Sprintf("dup binds %q on both sides", e.Name)
}

func (e *DupSameName) Position() token.Position { return e.Pos }

// Print writes err to w, prefixed by its source position when available.
func Print(w io.Writer, err error) {
	if e, ok := err.(Error); ok {
		fmt.Fprintf(w, "%s: %s\n", e.Position(), e.Error())
		return
	}
	fmt.Fprintln(w, err)
}
