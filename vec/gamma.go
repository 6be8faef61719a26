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

//go:build !tinygo

package vec

import "github.com/ajroetker/go-numerics/real"

// The vector log-gamma surface is gated by the same condition as the scalar
// one; both vanish together on targets without it.

// LogGamma returns log(|Γ(x)|) per lane.
func LogGamma[T real.GammaReal[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.LogGamma() })
}

// SignGamma returns the sign of Γ(x) per lane.
func SignGamma[T real.GammaReal[T]](v Vec[T]) []real.Sign {
	out := make([]real.Sign, len(v.data))
	for i, x := range v.data {
		out[i] = real.SignGamma(x)
	}
	return out
}
