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

package rt

import (
	"math"
	"strconv"
)

// PrintInt writes n in decimal, with a leading minus sign if negative.
func (r *Runtime) PrintInt(n int32) error {
	var b [12]byte
	_, err := r.out.Write(strconv.AppendInt(b[:0], int64(n), 10))
	return r.check(err, "llama_print_int")
}

// PrintBool writes "true" or "false".
func (r *Runtime) PrintBool(b bool) error {
	s := "false"
	if b {
		s = "true"
	}
	_, err := r.out.WriteString(s)
	return r.check(err, "llama_print_bool")
}

// PrintChar writes the raw byte c.
func (r *Runtime) PrintChar(c byte) error {
	return r.check(r.out.WriteByte(c), "llama_print_char")
}

// PrintFloat writes d in fixed notation with six decimals, like C's "%f".
func (r *Runtime) PrintFloat(d float64) error {
	var b [32]byte
	_, err := r.out.Write(appendFloat(b[:0], d))
	return r.check(err, "llama_print_float")
}

// PrintString writes the bytes of s up to, but not including, the first NUL
// byte, or all of s if it is not terminated.
func (r *Runtime) PrintString(s []byte) error {
	s = s[:Strlen(s)]
	if len(s) == 0 {
		return nil
	}
	_, err := r.out.Write(s)
	return r.check(err, "llama_print_string")
}

func appendFloat(b []byte, d float64) []byte {
	switch {
	case math.IsNaN(d):
		if math.Signbit(d) {
			return append(b, "-nan"...)
		}
		return append(b, "nan"...)
	case math.IsInf(d, 1):
		return append(b, "inf"...)
	case math.IsInf(d, -1):
		return append(b, "-inf"...)
	}
	return strconv.AppendFloat(b, d, 'f', 6, 64)
}
