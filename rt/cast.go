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

import "math"

// FloatOfInt converts n to a float.
func FloatOfInt(n int32) float64 { return float64(n) }

// IntOfFloat truncates d toward zero. NaN converts to 0 and values out of
// the int range saturate.
func IntOfFloat(d float64) int32 { return saturate(math.Trunc(d)) }

// Round rounds d to the nearest integer, halfway cases away from zero. NaN
// converts to 0 and values out of the int range saturate.
func Round(d float64) int32 { return saturate(math.Round(d)) }

// IntOfChar returns the byte value of c, in the range 0-255.
func IntOfChar(c byte) int32 { return int32(c) }

// CharOfInt returns the low 8 bits of n.
func CharOfInt(n int32) byte { return byte(n) }

func saturate(d float64) int32 {
	switch {
	case math.IsNaN(d):
		return 0
	case d >= math.MaxInt32:
		return math.MaxInt32
	case d <= math.MinInt32:
		return math.MinInt32
	}
	return int32(d)
}
