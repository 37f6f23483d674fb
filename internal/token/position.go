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

// Package token holds source positions for the scanner, parser and
// diagnostics. It is a single-file program, so unlike go/token there is no
// multi-file FileSet: a Position already carries its own offsets.
package token

import "fmt"

// Position describes an arbitrary source position, including the file name
// (if any), offset, line and column.
//
// A Position is valid if Line > 0.
type Position struct {
	Filename string
	Offset   int // byte offset, starting at 0
	Line     int // line number, starting at 1
	Column   int // column number in bytes, starting at 1
}

// NoPos is the zero value for Position; it is invalid and has no location
// information. NoPos.IsValid() is false.
var NoPos = Position{}

// IsValid reports whether the position is valid.
func (pos Position) IsValid() bool { return pos.Line > 0 }

// String returns a string of the form "file:line:column", omitting pieces
// that are missing.
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}
