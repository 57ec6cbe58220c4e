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

// Package rt implements the runtime support library of the Llama language.
//
// Compiled Llama programs link against a fixed set of primitives: console
// I/O, elementary math, numeric and character casts, increment/decrement of
// int references and bounded string manipulation. The primitives doing I/O
// are methods of a Runtime, which owns exactly one input and one output
// stream. Pure primitives are plain functions.
//
// Every I/O primitive passes its result through a single error gate. On
// failure the gate wraps the cause with the C symbol of the primitive (e.g.
// "llama_read_int: EOF"), hands it to the handler installed with OnError and
// returns it. The handler installed by Std, Fatal, prints the diagnostic on
// stderr and exits the process with status 1, so that a compiled program never
// continues after an I/O failure.
//
// Input policies:
//
//	- int and float readers skip leading white space and fail if no literal
//	  can be matched (the cause is ErrSyntax) or if the stream ends first
//	  (the cause is io.EOF). Ints are 32 bits wide, out of range literals are
//	  malformed.
//	- bool reads the textual tokens "true" or "false".
//	- char reads exactly one byte and returns CharEOF at end of stream.
//	- ReadString stops at newline (discarded), end of stream or when the
//	  buffer is full, and always terminates the buffer with a NUL byte. The
//	  remainder of an overlong line is left in the stream unless DrainLines
//	  is set.
//
// Math primitives never go through the gate: domain errors yield NaN or
// infinities as per IEEE 754.
package rt
