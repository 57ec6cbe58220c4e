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

// Llama strings are NUL terminated byte arrays. The capacity of a string
// buffer is the length of the slice holding it. None of the functions below
// read or write outside of their slice arguments.

// Strlen returns the number of bytes before the first NUL byte in s, or
// len(s) if s is not terminated.
func Strlen(s []byte) int32 {
	for i, c := range s {
		if c == 0 {
			return int32(i)
		}
	}
	return int32(len(s))
}

// Strcmp compares the strings a and b. It returns the difference between
// the first pair of bytes that differ, compared as unsigned values, or 0 if
// the strings are equal.
func Strcmp(a, b []byte) int32 {
	a, b = a[:Strlen(a)], b[:Strlen(b)]
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return int32(a[i]) - int32(b[i])
		}
	}
	switch {
	case len(a) < len(b):
		return -int32(b[len(a)])
	case len(a) > len(b):
		return int32(a[len(b)])
	}
	return 0
}

// Strcpy copies the string src into dst. At most len(dst)-1 bytes are
// copied and dst is always terminated, unless it is empty.
func Strcpy(dst, src []byte) {
	if len(dst) == 0 {
		return
	}
	n := copy(dst[:len(dst)-1], src[:Strlen(src)])
	dst[n] = 0
}

// Strcat appends the string src to the string in dst, truncating it to fit
// in dst. It does nothing if dst holds no NUL byte.
func Strcat(dst, src []byte) {
	n := Strlen(dst)
	if int(n) == len(dst) {
		return
	}
	Strcpy(dst[n:], src)
}
