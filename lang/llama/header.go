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

package llama

import (
	"io"

	"github.com/Renelvon/llama/internal/stream"
)

const headerProlog = `/**
 * libllama.h
 *
 * Llama standard library headers. Generated by llamart header.
 */

#ifndef _LIB_LLAMA_H
#define _LIB_LLAMA_H

#include <math.h>
#include <stdbool.h>
#include <stdio.h>
#include <stdlib.h>
#include <string.h>

typedef void unit;
`

// WriteHeader writes the C header declaring all the primitives in Builtins
// to w and returns any write error.
func WriteHeader(w io.Writer) error {
	ew := stream.NewWriter(w)
	ew.WriteString(headerProlog)
	group := ""
	for _, s := range Builtins {
		if s.Group != group {
			group = s.Group
			ew.WriteString("\n// " + group + "\n")
		}
		ew.WriteString(s.Result.CType() + " " + s.CName() + "(")
		for i, p := range s.Params {
			if i > 0 {
				ew.WriteString(", ")
			}
			if p.Const {
				ew.WriteString("const ")
			}
			ew.WriteString(declare(p.Type.CType(), p.Name))
		}
		ew.WriteString(");\n")
	}
	ew.WriteString("\n#endif /* _LIB_LLAMA_H */\n")
	return ew.Err
}

// declare binds pointer stars to the name: "char *s", "int n".
func declare(ctype, name string) string {
	if n := len(ctype); n > 0 && ctype[n-1] == '*' {
		return ctype + name
	}
	return ctype + " " + name
}
