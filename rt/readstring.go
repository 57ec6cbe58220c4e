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

import "io"

// ReadString reads a line from the input stream into the caller buffer s,
// whose capacity is len(s).
//
// Bytes are stored until a newline is read, the stream ends, or len(s)-1
// bytes have been stored. The newline is consumed but not stored. A NUL byte
// is then written right after the last stored byte, so s always holds a
// terminated string of at most len(s)-1 bytes. End of stream is not an error.
//
// When a line does not fit, the rest of it is left in the stream, unless the
// Runtime was created with DrainLines(true), in which case it is read and
// discarded up to and including the newline.
//
// If len(s) is 0, nothing is read nor written.
func (r *Runtime) ReadString(s []byte) error {
	if len(s) == 0 {
		return nil
	}
	i := 0
	for ; i < len(s)-1; i++ {
		c, err := r.in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			s[i] = 0
			return r.check(err, "llama_read_string")
		}
		if c == '\n' {
			break
		}
		s[i] = c
	}
	s[i] = 0
	if i == len(s)-1 && r.drain {
		return r.check(r.drainLine(), "llama_read_string")
	}
	return nil
}

// drainLine discards input up to and including the next newline.
func (r *Runtime) drainLine() error {
	n := 0
	defer func() {
		if n > 0 {
			r.log.Debug().Int("bytes", n).Msg("drained overlong line")
		}
	}()
	for {
		c, err := r.in.ReadByte()
		if err == io.EOF || c == '\n' {
			return nil
		}
		if err != nil {
			return err
		}
		n++
	}
}
