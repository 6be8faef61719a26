// Copyright 2025 go-numerics Authors
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

package vec

import "github.com/ajroetker/go-numerics/real"

// apply1 applies op to every lane of v. When the CPU has wide SIMD the main
// loop runs four lanes per iteration to give the compiler independent
// chains to schedule; the per-lane results are identical either way.
func apply1[T real.Real[T]](v Vec[T], op func(T) T) Vec[T] {
	in := v.data
	out := make([]T, len(in))
	i := 0
	if laneBlock >= 4 {
		for ; i+4 <= len(in); i += 4 {
			out[i] = op(in[i])
			out[i+1] = op(in[i+1])
			out[i+2] = op(in[i+2])
			out[i+3] = op(in[i+3])
		}
	}
	for ; i < len(in); i++ {
		out[i] = op(in[i])
	}
	return Vec[T]{data: out}
}

// apply2 applies op to lane pairs of x and y at the same index, over the
// common prefix when the lane counts differ.
func apply2[T real.Real[T]](x, y Vec[T], op func(a, b T) T) Vec[T] {
	n := min(len(x.data), len(y.data))
	out := make([]T, n)
	i := 0
	if laneBlock >= 4 {
		for ; i+4 <= n; i += 4 {
			out[i] = op(x.data[i], y.data[i])
			out[i+1] = op(x.data[i+1], y.data[i+1])
			out[i+2] = op(x.data[i+2], y.data[i+2])
			out[i+3] = op(x.data[i+3], y.data[i+3])
		}
	}
	for ; i < n; i++ {
		out[i] = op(x.data[i], y.data[i])
	}
	return Vec[T]{data: out}
}
