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

package llama_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Renelvon/llama/lang/llama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	s, ok := llama.Lookup("read_string")
	require.True(t, ok)
	assert.Equal(t, "llama_read_string", s.CName())
	assert.Equal(t, "array of char -> int -> unit", s.Signature())

	s, ok = llama.Lookup("pi")
	require.True(t, ok)
	assert.Equal(t, "unit -> float", s.Signature())

	s, ok = llama.Lookup("incr")
	require.True(t, ok)
	assert.Equal(t, "int ref -> unit", s.Signature())

	_, ok = llama.Lookup("printf")
	assert.False(t, ok)
}

func TestBuiltins_unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range llama.Builtins {
		assert.False(t, seen[s.Name], "duplicate %s", s.Name)
		seen[s.Name] = true
	}
	assert.Len(t, seen, 31)
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "float", llama.Float.String())
	assert.Equal(t, "double", llama.Float.CType())
	assert.Equal(t, "<invalid type>", llama.Type(42).String())
}

func TestWriteHeader(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, llama.WriteHeader(&b))
	h := b.String()
	for _, decl := range []string{
		"unit llama_print_int(int n);\n",
		"unit llama_print_string(const char *s);\n",
		"int llama_read_int();\n",
		"unit llama_read_string(char *s, int n);\n",
		"double llama_pi();\n",
		"unit llama_incr(int *n);\n",
		"int llama_strcmp(const char *s1, const char *s2);\n",
		"unit llama_strcpy(char *s1, const char *s2);\n",
		"\n// TYPE CASTS\n",
	} {
		assert.Contains(t, h, decl)
	}
	assert.True(t, strings.HasSuffix(h, "#endif /* _LIB_LLAMA_H */\n"))
	assert.Equal(t, len(llama.Builtins), strings.Count(h, " llama_"))
}
