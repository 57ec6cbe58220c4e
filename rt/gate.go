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
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ErrSyntax is the cause reported when a scalar reader cannot match a
// literal of the expected type.
var ErrSyntax = errors.New("malformed input")

// Error is reported by the error gate. Op is the C symbol of the failed
// primitive.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }

// Cause returns the underlying error, for errors.Cause.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

// Op returns the C symbol of the primitive that reported err, or an empty
// string if err was not reported by the error gate.
func Op(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// check is the error gate.
func (r *Runtime) check(err error, op string) error {
	if err == nil {
		return nil
	}
	err = errors.WithStack(&Error{Op: op, Err: err})
	r.log.Debug().Str("op", op).Err(errors.Cause(err)).Msg("primitive failed")
	if r.fail != nil {
		r.fail(err)
	}
	return err
}

// Fatal returns an error handler that writes the error to w on a single line,
// followed by its stack trace if debug is true, then calls exit(1).
//
// Use Fatal(os.Stderr, os.Exit, false) for the behavior expected by compiled
// programs.
func Fatal(w io.Writer, exit func(code int), debug bool) func(error) {
	return func(err error) {
		if debug {
			fmt.Fprintf(w, "%+v\n", err)
		} else {
			fmt.Fprintf(w, "%v\n", err)
		}
		exit(1)
	}
}
