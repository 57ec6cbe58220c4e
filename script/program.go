// This file is part of llama - https://github.com/Renelvon/llama
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package script

import (
	"strings"
	"text/scanner"

	"github.com/Renelvon/llama/lang/llama"
)

// Error is a parse error.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrList is the error returned by Parse. It holds up to 10 errors.
type ErrList []*Error

func (l ErrList) Error() string {
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Var is a script variable. Buffers have type llama.String.
type Var struct {
	Name string
	Type llama.Type
	Cap  int
	Pos  scanner.Position
	idx  int
}

// slot holds the value of a variable or literal.
type slot struct {
	i   int32
	f   float64
	b   bool
	c   byte
	buf []byte
}

type operand struct {
	v   *Var
	lit slot
}

type stmt struct {
	pos  scanner.Position
	sym  *llama.Symbol // nil for declarations
	dst  *Var
	args []operand
	init *operand
}

// Program is a parsed script.
type Program struct {
	Name  string
	vars  []*Var
	stmts []stmt
}

// Vars returns the variables declared by p, in declaration order.
func (p *Program) Vars() []*Var {
	return p.vars
}
