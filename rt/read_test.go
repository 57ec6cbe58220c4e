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
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/Renelvon/llama/rt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInt(t *testing.T) {
	r := newRuntime(t, "  42\n-17\t+8 2147483647 -2147483648 12abc")
	for _, want := range []int32{42, -17, 8, math.MaxInt32, math.MinInt32, 12} {
		n, err := r.ReadInt()
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	c, err := r.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)
}

func TestReadInt_errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cause error
	}{
		{"empty", "", io.EOF},
		{"blank", "  \n\t", io.EOF},
		{"letters", "abc", rt.ErrSyntax},
		{"sign only", "- 1", rt.ErrSyntax},
		{"overflow", "2147483648", rt.ErrSyntax},
		{"underflow", "-2147483649", rt.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			r := newRuntime(t, tt.input, rt.OnError(func(error) { calls++ }))
			_, err := r.ReadInt()
			require.Error(t, err)
			assert.Equal(t, tt.cause, errors.Cause(err))
			assert.Equal(t, "llama_read_int", rt.Op(err))
			assert.Equal(t, 1, calls)
		})
	}
}

func TestReadFloat(t *testing.T) {
	r := newRuntime(t, "3.5 -2.5e+3x .25 7. 1e 1E2 +0.125")
	for _, want := range []float64{3.5, -2500} {
		d, err := r.ReadFloat()
		require.NoError(t, err)
		assert.Equal(t, want, d)
	}
	c, _ := r.ReadChar()
	assert.Equal(t, byte('x'), c)
	for _, want := range []float64{0.25, 7, 1} {
		d, err := r.ReadFloat()
		require.NoError(t, err)
		assert.Equal(t, want, d)
	}
	// an exponent without digits is not part of the literal
	c, _ = r.ReadChar()
	assert.Equal(t, byte('e'), c)
	for _, want := range []float64{100, 0.125} {
		d, err := r.ReadFloat()
		require.NoError(t, err)
		assert.Equal(t, want, d)
	}
}

func TestReadFloat_special(t *testing.T) {
	r := newRuntime(t, "inf -Infinity NaN -nan 1e999")
	d, err := r.ReadFloat()
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
	d, err = r.ReadFloat()
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, -1))
	d, err = r.ReadFloat()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d))
	d, err = r.ReadFloat()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d) && math.Signbit(d))
	d, err = r.ReadFloat()
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

func TestReadFloat_errors(t *testing.T) {
	for _, in := range []string{".", "-", "x1", "infx", "+.e1"} {
		r := newRuntime(t, in, rt.OnError(func(error) {}))
		_, err := r.ReadFloat()
		assert.Equal(t, rt.ErrSyntax, errors.Cause(err), "input %q", in)
		assert.Equal(t, "llama_read_float", rt.Op(err), "input %q", in)
	}
	r := newRuntime(t, " ", rt.OnError(func(error) {}))
	_, err := r.ReadFloat()
	assert.Equal(t, io.EOF, errors.Cause(err))
}

func TestReadBool(t *testing.T) {
	r := newRuntime(t, "true\n  false true")
	for _, want := range []bool{true, false, true} {
		b, err := r.ReadBool()
		require.NoError(t, err)
		assert.Equal(t, want, b)
	}
	for _, in := range []string{"1", "0", "True", "truex", "fals"} {
		r := newRuntime(t, in, rt.OnError(func(error) {}))
		_, err := r.ReadBool()
		assert.Equal(t, rt.ErrSyntax, errors.Cause(err), "input %q", in)
		assert.Equal(t, "llama_read_bool", rt.Op(err))
	}
}

func TestReadChar(t *testing.T) {
	r := newRuntime(t, " a\n")
	var got []byte
	for i := 0; i < 4; i++ {
		c, err := r.ReadChar()
		require.NoError(t, err)
		got = append(got, c)
	}
	assert.Equal(t, []byte{' ', 'a', '\n', rt.CharEOF}, got)
}

func TestRoundTrip_int(t *testing.T) {
	values := []int32{0, 1, -1, 42, -1000, 65536, math.MaxInt32, math.MinInt32}
	var buf bytes.Buffer
	w, err := rt.New(rt.Output(&buf))
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, w.PrintInt(v))
		require.NoError(t, w.PrintChar('\n'))
	}
	r, err := rt.New(rt.Input(&buf))
	require.NoError(t, err)
	for _, v := range values {
		n, err := r.ReadInt()
		require.NoError(t, err)
		assert.Equal(t, v, n)
	}
}

func TestRoundTrip_float(t *testing.T) {
	// values are only preserved up to the six decimals of the output format
	values := []float64{0, 1.5, -2.25, math.Pi, 12345.678901, 1e-7}
	var buf bytes.Buffer
	w, err := rt.New(rt.Output(&buf))
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, w.PrintFloat(v))
		require.NoError(t, w.PrintChar(' '))
	}
	r, err := rt.New(rt.Input(&buf))
	require.NoError(t, err)
	for _, v := range values {
		d, err := r.ReadFloat()
		require.NoError(t, err)
		assert.InDelta(t, v, d, 5e-7)
	}
}

func TestRoundTrip_bool(t *testing.T) {
	var buf bytes.Buffer
	w, err := rt.New(rt.Output(&buf))
	require.NoError(t, err)
	require.NoError(t, w.PrintBool(true))
	require.NoError(t, w.PrintChar(' '))
	require.NoError(t, w.PrintBool(false))
	r, err := rt.New(rt.Input(&buf))
	require.NoError(t, err)
	b, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = r.ReadBool()
	require.NoError(t, err)
	assert.False(t, b)
}
