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
	"bufio"
	"io"
	"math"
	"strconv"
)

// CharEOF is the value returned by ReadChar at end of stream: C's EOF
// converted to a char.
const CharEOF byte = 0xff

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlnum(c byte) bool { return isDigit(c) || 'a' <= c|0x20 && c|0x20 <= 'z' }

// lexer collects a scalar token from the input stream. Bytes are only
// consumed once they are known to belong to the token.
type lexer struct {
	in  *bufio.Reader
	tok []byte
	err error
}

// newLexer skips leading white space. It returns io.EOF if the stream ends
// before any other byte.
func (r *Runtime) newLexer(scratch []byte) (*lexer, error) {
	for {
		c, err := r.in.ReadByte()
		if err != nil {
			return nil, err
		}
		if !isSpace(c) {
			if err = r.in.UnreadByte(); err != nil {
				return nil, err
			}
			return &lexer{in: r.in, tok: scratch[:0]}, nil
		}
	}
}

// peek returns the k-th byte ahead without consuming it.
func (l *lexer) peek(k int) (byte, bool) {
	b, err := l.in.Peek(k + 1)
	if len(b) > k {
		return b[k], true
	}
	if err != nil && err != io.EOF && l.err == nil {
		l.err = err
	}
	return 0, false
}

// next consumes a byte already seen with peek.
func (l *lexer) next() {
	c, _ := l.in.ReadByte()
	l.tok = append(l.tok, c)
}

func (l *lexer) sign() bool {
	if c, ok := l.peek(0); ok && (c == '+' || c == '-') {
		l.next()
		return c == '-'
	}
	return false
}

func (l *lexer) digits() int {
	n := 0
	for c, ok := l.peek(0); ok && isDigit(c); c, ok = l.peek(0) {
		l.next()
		n++
	}
	return n
}

// word consumes w, ignoring case, if it is next in the stream and not
// immediately followed by a letter or digit.
func (l *lexer) word(w string, fold bool) bool {
	for i := 0; i < len(w); i++ {
		c, ok := l.peek(i)
		if fold {
			c |= 0x20
		}
		if !ok || c != w[i] {
			return false
		}
	}
	if c, ok := l.peek(len(w)); ok && isAlnum(c) {
		return false
	}
	for range w {
		l.next()
	}
	return true
}

// fail returns the read error that stopped the lexer, if any, or ErrSyntax.
func (l *lexer) fail() error {
	if l.err != nil {
		return l.err
	}
	return ErrSyntax
}

func (r *Runtime) scanInt() (int32, error) {
	var scratch [16]byte
	l, err := r.newLexer(scratch[:])
	if err != nil {
		return 0, err
	}
	l.sign()
	if l.digits() == 0 {
		return 0, l.fail()
	}
	n, err := strconv.ParseInt(string(l.tok), 10, 32)
	if err != nil {
		return 0, ErrSyntax
	}
	return int32(n), nil
}

func (r *Runtime) scanFloat() (float64, error) {
	var scratch [32]byte
	l, err := r.newLexer(scratch[:])
	if err != nil {
		return 0, err
	}
	neg := l.sign()
	switch {
	case l.word("infinity", true), l.word("inf", true):
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case l.word("nan", true):
		if neg {
			return math.Copysign(math.NaN(), -1), nil
		}
		return math.NaN(), nil
	}
	n := l.digits()
	if c, ok := l.peek(0); ok && c == '.' {
		l.next()
		n += l.digits()
	}
	if n == 0 {
		return 0, l.fail()
	}
	// the exponent is only part of the literal if it has digits
	if c, ok := l.peek(0); ok && c|0x20 == 'e' {
		k := 1
		if s, ok := l.peek(1); ok && (s == '+' || s == '-') {
			k = 2
		}
		if d, ok := l.peek(k); ok && isDigit(d) {
			for ; k > 0; k-- {
				l.next()
			}
			l.digits()
		}
	}
	if l.err != nil {
		return 0, l.err
	}
	d, err := strconv.ParseFloat(string(l.tok), 64)
	if err != nil {
		// out of range literals saturate to ±Inf like strtod
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return d, nil
		}
		return 0, ErrSyntax
	}
	return d, nil
}

// ReadInt reads a decimal integer literal with an optional sign, skipping
// leading white space.
func (r *Runtime) ReadInt() (int32, error) {
	n, err := r.scanInt()
	return n, r.check(err, "llama_read_int")
}

// ReadBool reads one of the tokens "true" or "false", skipping leading white
// space.
func (r *Runtime) ReadBool() (bool, error) {
	var scratch [8]byte
	l, err := r.newLexer(scratch[:])
	if err == nil {
		switch {
		case l.word("true", false):
			return true, nil
		case l.word("false", false):
			return false, nil
		}
		err = l.fail()
	}
	return false, r.check(err, "llama_read_bool")
}

// ReadChar reads exactly one byte. White space is not skipped. At end of
// stream it returns CharEOF and no error.
func (r *Runtime) ReadChar() (byte, error) {
	c, err := r.in.ReadByte()
	if err == io.EOF {
		return CharEOF, nil
	}
	return c, r.check(err, "llama_read_char")
}

// ReadFloat reads a floating point literal, skipping leading white space.
// Decimal literals with an optional exponent are accepted, as well as inf,
// infinity and nan, regardless of case.
func (r *Runtime) ReadFloat() (float64, error) {
	d, err := r.scanFloat()
	return d, r.check(err, "llama_read_float")
}
