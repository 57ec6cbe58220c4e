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

// Abs returns the absolute value of n. Abs(math.MinInt32) is math.MinInt32.
func Abs(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// Fabs returns the absolute value of d.
func Fabs(d float64) float64 { return math.Abs(d) }

// Sqrt returns the square root of d. Sqrt of a negative number is NaN.
func Sqrt(d float64) float64 { return math.Sqrt(d) }

// Sin returns the sine of d radians.
func Sin(d float64) float64 { return math.Sin(d) }

// Cos returns the cosine of d radians.
func Cos(d float64) float64 { return math.Cos(d) }

// Tan returns the tangent of d radians.
func Tan(d float64) float64 { return math.Tan(d) }

// Atan returns the arctangent of d, in radians.
func Atan(d float64) float64 { return math.Atan(d) }

// Exp returns e**d.
func Exp(d float64) float64 { return math.Exp(d) }

// Ln returns the natural logarithm of d. Ln(0) is -Inf, Ln of a negative
// number is NaN.
func Ln(d float64) float64 { return math.Log(d) }

// Pi returns π.
func Pi() float64 { return math.Pi }

// Incr adds one to the cell pointed to by n. It wraps around on overflow.
func Incr(n *int32) { *n++ }

// Decr subtracts one from the cell pointed to by n. It wraps around on
// overflow.
func Decr(n *int32) { *n-- }
