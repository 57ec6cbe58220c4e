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
	"os"

	"github.com/Renelvon/llama/internal/stream"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Runtime binds the Llama I/O primitives to one input and one output stream.
//
// A Runtime is not safe for concurrent use. Compiled programs are single
// threaded and the streams have no internal locking.
type Runtime struct {
	in    *bufio.Reader
	out   *stream.Writer
	fail  func(error)
	drain bool
	log   zerolog.Logger
}

// Option interface
type Option func(*Runtime) error

// Input sets the input stream. If r is not a *bufio.Reader, it will be
// wrapped into one, so the Runtime must be the only consumer of r.
func Input(r io.Reader) Option {
	return func(rt *Runtime) error {
		rt.in = stream.NewReader(r)
		return nil
	}
}

// Output sets the output stream. If w has a Flush() error method, it is
// called after every write.
func Output(w io.Writer) Option {
	return func(rt *Runtime) error {
		rt.out = stream.NewWriter(w)
		return nil
	}
}

// OnError installs the handler called by the error gate for every failed
// I/O primitive. Use Fatal to get the fail-fast behavior expected by compiled
// programs.
func OnError(h func(err error)) Option {
	return func(rt *Runtime) error {
		if h == nil {
			return errors.New("nil error handler")
		}
		rt.fail = h
		return nil
	}
}

// DrainLines sets whether ReadString consumes and discards the remainder of
// lines that do not fit in the caller buffer. The default is false: the
// remainder stays in the input stream and the next read continues mid-line.
func DrainLines(drain bool) Option {
	return func(rt *Runtime) error { rt.drain = drain; return nil }
}

// Logger sets the logger used for diagnostics. The default discards
// everything.
func Logger(l zerolog.Logger) Option {
	return func(rt *Runtime) error { rt.log = l; return nil }
}

// SetOptions sets the provided options.
func (r *Runtime) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Runtime. Without Input, the input stream is empty.
// Without Output, everything written is discarded.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{log: zerolog.Nop()}
	if err := r.SetOptions(opts...); err != nil {
		return nil, err
	}
	if r.in == nil {
		r.in = stream.NewReader(nil)
	}
	if r.out == nil {
		r.out = stream.NewWriter(nil)
	}
	return r, nil
}

// Std creates a Runtime bound to the process standard streams, with the
// Fatal error handler reporting to stderr. Additional options are applied
// after the defaults.
func Std(opts ...Option) (*Runtime, error) {
	base := []Option{
		Input(os.Stdin),
		Output(os.Stdout),
		OnError(Fatal(os.Stderr, os.Exit, false)),
	}
	return New(append(base, opts...)...)
}
