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

// Package script implements a small call-script language driving the Llama
// runtime primitives from text.
//
// A script is a sequence of statements, one per line. Comments use the Go
// syntax (// and /* */).
//
// Declarations introduce variables, zero valued unless initialized:
//
//	int n = -1
//	float f
//	bool b = true
//	char c = 'x'
//	buf s 16 = "hello"	// buffer of capacity 16
//
// Any other statement is a call to a primitive, by its Llama name (see
// package lang/llama), with literal or variable arguments, optionally
// binding the result to a variable of the result type:
//
//	incr n
//	read_string s 16
//	sqrt 16.0 -> f
//	print_float f
//
// Arity and argument types are checked when parsing: int ref parameters need
// an int variable, array of char parameters need a buffer (or a string literal
// for parameters the primitive only reads). Int literals are accepted for
// float parameters.
package script
