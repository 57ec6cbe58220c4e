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

// Package stream holds the stream adapters shared by the llama runtime.
package stream

import (
	"bufio"
	"io"
)

type flusher interface {
	Flush() error
}

// Writer is a simple wrapper to track io errors. Write will keep returning
// the first error over and over. If the wrapped writer has a Flush method, it
// is called after every successful write so that the stream behaves as if it
// were unbuffered.
type Writer struct {
	w   io.Writer
	Err error
}

// NewWriter returns a new Writer. A nil io.Writer discards everything.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		w = io.Discard
	}
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err == nil {
		if f, ok := w.w.(flusher); ok {
			err = f.Flush()
		}
	}
	w.Err = err
	return n, err
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(c byte) error {
	b := [1]byte{c}
	_, err := w.Write(b[:])
	return err
}

// WriteString writes the contents of s.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// NewReader returns r if it already is a *bufio.Reader or wraps it up into
// one. A nil io.Reader behaves as an empty stream.
func NewReader(r io.Reader) *bufio.Reader {
	switch rr := r.(type) {
	case nil:
		return bufio.NewReaderSize(eofReader{}, 16)
	case *bufio.Reader:
		return rr
	default:
		return bufio.NewReader(r)
	}
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
