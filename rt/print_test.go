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

package rt_test

import (
	"bufio"
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/Renelvon/llama/rt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPipe = errors.New("broken pipe")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errPipe }

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestPrint(t *testing.T) {
	var b bytes.Buffer
	r, err := rt.New(rt.Output(&b))
	require.NoError(t, err)

	require.NoError(t, r.PrintInt(-42))
	require.NoError(t, r.PrintChar(' '))
	require.NoError(t, r.PrintInt(math.MinInt32))
	require.NoError(t, r.PrintChar('|'))
	require.NoError(t, r.PrintBool(true))
	require.NoError(t, r.PrintBool(false))
	require.NoError(t, r.PrintChar('|'))
	require.NoError(t, r.PrintFloat(3.5))
	require.NoError(t, r.PrintChar(' '))
	require.NoError(t, r.PrintFloat(-0.0000004))
	require.NoError(t, r.PrintChar(' '))
	require.NoError(t, r.PrintFloat(1e20))
	require.NoError(t, r.PrintChar('|'))
	require.NoError(t, r.PrintString([]byte("abc\x00def")))
	require.NoError(t, r.PrintString([]byte("xyz")))
	require.NoError(t, r.PrintString([]byte{0}))
	require.NoError(t, r.PrintChar(0xff))

	assert.Equal(t, "-42 -2147483648|truefalse|3.500000 -0.000000 100000000000000000000.000000|abcxyz\xff", b.String())
}

func TestPrintFloat_special(t *testing.T) {
	var b bytes.Buffer
	r, err := rt.New(rt.Output(&b))
	require.NoError(t, err)
	for _, d := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), math.Copysign(math.NaN(), -1)} {
		require.NoError(t, r.PrintFloat(d))
		require.NoError(t, r.PrintChar(' '))
	}
	assert.Equal(t, "inf -inf nan -nan ", b.String())
}

func TestPrint_flush(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	r, err := rt.New(rt.Output(w))
	require.NoError(t, err)
	require.NoError(t, r.PrintInt(7))
	assert.Equal(t, "7", b.String())
}

func TestPrint_errors(t *testing.T) {
	var reported []string
	r, err := rt.New(rt.Output(failWriter{}), rt.OnError(func(err error) {
		reported = append(reported, rt.Op(err))
	}))
	require.NoError(t, err)

	err = r.PrintInt(1)
	require.Error(t, err)
	assert.Equal(t, errPipe, errors.Cause(err))
	assert.Equal(t, "llama_print_int: broken pipe", err.Error())

	assert.Error(t, r.PrintBool(true))
	assert.Error(t, r.PrintChar('c'))
	assert.Error(t, r.PrintFloat(1))
	assert.Error(t, r.PrintString([]byte("s\x00")))
	assert.Equal(t, []string{
		"llama_print_int",
		"llama_print_bool",
		"llama_print_char",
		"llama_print_float",
		"llama_print_string",
	}, reported)

	r, err = rt.New(rt.Output(shortWriter{}), rt.OnError(func(error) {}))
	require.NoError(t, err)
	err = r.PrintString([]byte("abcd"))
	assert.Equal(t, "llama_print_string: short write", err.Error())
}

func TestFatal(t *testing.T) {
	var diag strings.Builder
	code := -1
	r, err := rt.New(
		rt.Input(strings.NewReader("twelve")),
		rt.OnError(rt.Fatal(&diag, func(c int) { code = c }, false)))
	require.NoError(t, err)

	_, err = r.ReadInt()
	require.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, "llama_read_int: malformed input\n", diag.String())

	diag.Reset()
	r, err = rt.New(rt.OnError(rt.Fatal(&diag, func(int) {}, true)))
	require.NoError(t, err)
	_, err = r.ReadFloat()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(diag.String(), "llama_read_float: EOF\n"))
	assert.Contains(t, diag.String(), "(*Runtime).check")
}

func TestOptions(t *testing.T) {
	_, err := rt.New(rt.OnError(nil))
	assert.Error(t, err)

	// no input: empty stream, no output: discard
	r, err := rt.New()
	require.NoError(t, err)
	require.NoError(t, r.PrintString([]byte("lost")))
	c, err := r.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, rt.CharEOF, c)
	assert.Equal(t, "", rt.Op(errPipe))

	// later options override the standard bindings
	var buf bytes.Buffer
	r, err = rt.Std(rt.Output(&buf))
	require.NoError(t, err)
	require.NoError(t, r.PrintInt(-7))
	assert.Equal(t, "-7", buf.String())
}
