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

package real

import "math"

// Log-gamma support is compiled out on TinyGo targets, whose math library
// does not carry Lgamma everywhere. The whole surface disappears with it:
// the GammaReal capability, the per-width bindings, and both free functions.
// SignGamma goes too, since without LogGamma it has no use. Generic code
// that requires GammaReal fails to build on such targets rather than
// failing at run time.

// GammaReal is the capability of a real type with log-gamma support.
type GammaReal[T any] interface {
	Real[T]

	// LogGamma returns log(|Γ(x)|), computed without the overflow a naive
	// log of Gamma would suffer. The sign of Γ(x) is discarded; recover it
	// with SignGamma.
	LogGamma() T
}

func (x Float64) LogGamma() Float64 {
	r, _ := math.Lgamma(float64(x))
	return Float64(r)
}

func (x Float32) LogGamma() Float32 {
	r, _ := math.Lgamma(float64(x))
	return Float32(r)
}

func (x Float16) LogGamma() Float16 {
	r, _ := math.Lgamma(x.Float64())
	return f16FromFloat64(r)
}

func (x BFloat16) LogGamma() BFloat16 {
	r, _ := math.Lgamma(x.Float64())
	return bf16FromFloat64(r)
}

// LogGamma returns log(|Γ(x)|).
func LogGamma[T GammaReal[T]](x T) T { return x.LogGamma() }

// SignGamma returns the sign of Γ(x). It is defined once for every
// conforming type, purely in terms of the Real operations; no width needs
// its own version.
//
// Γ is positive for all x >= 0 and alternates sign between consecutive
// non-positive integers: negative on (-2k-1, -2k) for integer k >= 0. At the
// poles (the non-positive integers) and at infinity the sign is
// indeterminate; SignPlus is returned there as a fixed convention.
func SignGamma[T GammaReal[T]](x T) Sign {
	var zero T
	if zero.Less(x) || x.Eq(zero) {
		return SignPlus
	}
	t := x.Trunc()
	if x.Eq(t) {
		// Non-positive integer: a pole of Γ.
		return SignPlus
	}
	// x lies strictly between two negative integers; the sign depends on
	// the parity of trunc(x). Ldexp halves exactly, so t is even exactly
	// when t/2 is integral.
	half := t.Ldexp(-1)
	if half.Eq(half.Trunc()) {
		return SignMinus
	}
	return SignPlus
}
