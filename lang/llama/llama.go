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

// Package llama describes the calling convention between compiled Llama
// programs and the runtime library: the builtin types and the signature of
// every exported primitive.
package llama

import "strings"

// Type is a Llama type that can cross the runtime boundary.
type Type int

// Builtin types. String is an array of char held in a caller buffer, IntRef
// an int ref cell owned by the caller.
const (
	Unit Type = iota
	Int
	Bool
	Char
	Float
	String
	IntRef
)

var typeNames = [...]struct{ llama, c string }{
	Unit:   {"unit", "unit"},
	Int:    {"int", "int"},
	Bool:   {"bool", "bool"},
	Char:   {"char", "char"},
	Float:  {"float", "double"},
	String: {"array of char", "char *"},
	IntRef: {"int ref", "int *"},
}

// String returns the Llama name of t.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<invalid type>"
	}
	return typeNames[t].llama
}

// CType returns the C type used for t in the library header.
func (t Type) CType() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<invalid type>"
	}
	return typeNames[t].c
}

// Param is a primitive parameter. Const parameters are only read by the
// primitive.
type Param struct {
	Name  string
	Type  Type
	Const bool
}

// Symbol describes an exported primitive.
type Symbol struct {
	Name   string
	Params []Param
	Result Type
	Group  string
}

// CName returns the symbol name compiled programs link against.
func (s *Symbol) CName() string { return "llama_" + s.Name }

// Signature returns the Llama type of s, e.g. "int -> unit". Primitives
// without parameters take unit.
func (s *Symbol) Signature() string {
	var b strings.Builder
	if len(s.Params) == 0 {
		b.WriteString("unit -> ")
	}
	for _, p := range s.Params {
		b.WriteString(p.Type.String())
		b.WriteString(" -> ")
	}
	b.WriteString(s.Result.String())
	return b.String()
}

// Header groups, in header order.
const (
	GroupPrint  = "PRINTING TO STDOUT"
	GroupRead   = "READING FROM STDIN"
	GroupMath   = "BASIC MATH"
	GroupRef    = "REFERENCE HANDLING"
	GroupCast   = "TYPE CASTS"
	GroupString = "STRING MANIPULATION"
)

func p(name string, t Type) Param { return Param{Name: name, Type: t} }
func cp(name string, t Type) Param { return Param{Name: name, Type: t, Const: true} }
func ps(params ...Param) []Param { return params }
func fn(name string, params []Param, result Type, group string) *Symbol {
	return &Symbol{Name: name, Params: params, Result: result, Group: group}
}

// Builtins lists the primitives exported by the runtime, in header order.
var Builtins = []*Symbol{
	fn("print_int", ps(p("n", Int)), Unit, GroupPrint),
	fn("print_bool", ps(p("b", Bool)), Unit, GroupPrint),
	fn("print_char", ps(p("c", Char)), Unit, GroupPrint),
	fn("print_float", ps(p("d", Float)), Unit, GroupPrint),
	fn("print_string", ps(cp("s", String)), Unit, GroupPrint),

	fn("read_int", nil, Int, GroupRead),
	fn("read_bool", nil, Bool, GroupRead),
	fn("read_char", nil, Char, GroupRead),
	fn("read_float", nil, Float, GroupRead),
	fn("read_string", ps(p("s", String), p("n", Int)), Unit, GroupRead),

	fn("abs", ps(p("n", Int)), Int, GroupMath),
	fn("fabs", ps(p("n", Float)), Float, GroupMath),
	fn("sqrt", ps(p("n", Float)), Float, GroupMath),
	fn("sin", ps(p("n", Float)), Float, GroupMath),
	fn("cos", ps(p("n", Float)), Float, GroupMath),
	fn("tan", ps(p("n", Float)), Float, GroupMath),
	fn("atan", ps(p("n", Float)), Float, GroupMath),
	fn("exp", ps(p("n", Float)), Float, GroupMath),
	fn("ln", ps(p("n", Float)), Float, GroupMath),
	fn("pi", nil, Float, GroupMath),

	fn("incr", ps(p("n", IntRef)), Unit, GroupRef),
	fn("decr", ps(p("n", IntRef)), Unit, GroupRef),

	fn("float_of_int", ps(p("n", Int)), Float, GroupCast),
	fn("int_of_float", ps(p("d", Float)), Int, GroupCast),
	fn("round", ps(p("n", Float)), Int, GroupCast),
	fn("int_of_char", ps(p("c", Char)), Int, GroupCast),
	fn("char_of_int", ps(p("n", Int)), Char, GroupCast),

	fn("strlen", ps(cp("s", String)), Int, GroupString),
	fn("strcmp", ps(cp("s1", String), cp("s2", String)), Int, GroupString),
	fn("strcpy", ps(p("s1", String), cp("s2", String)), Unit, GroupString),
	fn("strcat", ps(p("s1", String), cp("s2", String)), Unit, GroupString),
}

var index = make(map[string]*Symbol, len(Builtins))

func init() {
	for _, s := range Builtins {
		index[s.Name] = s
	}
}

// Lookup returns the primitive with the given Llama name.
func Lookup(name string) (*Symbol, bool) {
	s, ok := index[name]
	return s, ok
}
