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

// Package vec mirrors the real package's free functions over fixed-size
// vectors of conforming scalars.
//
// A Vec is a fixed-size aggregate of lanes of one scalar width. Every
// function applies the corresponding scalar operation to each lane
// independently and completely, so for any one-argument function f and every
// lane i, f(v).At(i) == f(v.At(i)); two-argument functions pair both inputs
// at the same lane index. There is no cross-lane coupling and no early exit
// on special values, which keeps vector results identical lane-for-lane with
// the scalar path.
package vec

import "github.com/ajroetker/go-numerics/real"

// Vec is a fixed-size vector of lanes. The lane count is fixed when the
// vector is constructed.
//
// Vec values should not be created directly; use Load, Set, or Zero.
type Vec[T real.Real[T]] struct {
	data []T
}

// Load creates a vector whose lanes are a copy of src.
func Load[T real.Real[T]](src []T) Vec[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}
}

// Set creates a vector with every lane set to value.
func Set[T real.Real[T]](value T, lanes int) Vec[T] {
	data := make([]T, lanes)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with every lane set to zero.
func Zero[T real.Real[T]](lanes int) Vec[T] {
	return Vec[T]{data: make([]T, lanes)}
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// At returns lane i.
func (v Vec[T]) At(i int) T {
	return v.data[i]
}

// Data returns the underlying slice representation of the vector.
// Mutating it mutates the vector.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst, clamped to the shorter length.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Store writes a vector's lanes to a slice. This is the function form of
// the Store method.
func Store[T real.Real[T]](v Vec[T], dst []T) {
	v.Store(dst)
}
