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

package real

import "math"

// Sign is the sign of a (nonzero) floating-point quantity.
// It is the result type of SignGamma.
type Sign int

const (
	// SignPlus indicates a positive value. It is also the fixed convention
	// for the poles of the gamma function and for NaN inputs.
	SignPlus Sign = iota

	// SignMinus indicates a negative value.
	SignMinus
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s == SignMinus {
		return "-"
	}
	return "+"
}

// FloatingPoint is the primitive floating-point capability. It captures the
// arithmetic, rounding, comparison and classification operations every
// conforming width provides, independent of the transcendental catalog.
//
// The constraint is self-referential: a conforming type T implements
// FloatingPoint[T].
type FloatingPoint[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Abs() T

	Trunc() T
	Floor() T
	Ceil() T
	Round() T

	Remainder(T) T
	CopySign(T) T
	// Ldexp returns the value scaled by 2**k. Scaling is exact, which makes
	// it the right primitive for exact halving.
	Ldexp(k int) T

	Eq(T) bool
	Less(T) bool

	IsNaN() bool
	IsInf() bool
	Signbit() bool

	// Float64 widens to the largest native width. Widening is exact for
	// every supported format.
	Float64() float64
}

// ElementaryFunctions is the elementary-function capability: the fixed
// catalog of one-argument transcendental functions plus the power and root
// operations. Conforming types include the complex widths in principle; only
// the real widths are implemented in this module.
type ElementaryFunctions[T any] interface {
	Exp() T
	ExpM1() T
	Log() T
	Log1p() T
	Log2() T
	Log10() T
	Sqrt() T

	Sin() T
	Cos() T
	Tan() T
	Asin() T
	Acos() T
	Atan() T

	Sinh() T
	Cosh() T
	Tanh() T
	Asinh() T
	Acosh() T
	Atanh() T

	// Pow returns x**y with exp(y*log(x)) semantics. A negative base yields
	// NaN regardless of whether y is integral; a complex conforming type
	// would instead place a branch cut along the negative real axis.
	Pow(y T) T

	// PowN returns x**n for an integer exponent. The exponent is converted
	// to the receiver's width before the native call, so exponents too large
	// for that width to represent exactly lose precision. This is a
	// documented trade against re-deriving the result at full precision.
	PowN(n int) T

	// Root returns the real n-th root. A negative value with even n yields
	// NaN; otherwise the magnitude is pow(|x|, 1/n) with the sign copied
	// from the receiver.
	Root(n int) T
}

// Real is the capability of a real (totally ordered, signed) floating-point
// type: the elementary catalog, the primitive operations, and the functions
// whose definitions are specific to real numbers.
type Real[T any] interface {
	ElementaryFunctions[T]
	FloatingPoint[T]

	// Atan2 returns the angle of the vector (x, y) from the positive real
	// axis, in [-π, π]. The receiver is y. All signed-zero and infinity
	// cases follow the native two-argument arctangent.
	Atan2(x T) T

	Exp2() T
	Exp10() T
	Erf() T
	Erfc() T
	Hypot(T) T
	Gamma() T
}

// powKernel applies the real-exponent power domain policy shared by every
// width. The guard is written as !(x >= 0) so that a NaN base fails it too.
func powKernel(x, y float64) float64 {
	if !(x >= 0) {
		return math.NaN()
	}
	return math.Pow(x, y)
}

// rootKernel computes the real n-th root shared by every width. The exponent
// uses float division so n == 0 produces an infinite exponent and the native
// pow semantics take over.
func rootKernel(x float64, n int) float64 {
	if x < 0 && n%2 == 0 {
		return math.NaN()
	}
	return math.Copysign(math.Pow(math.Abs(x), 1/float64(n)), x)
}

// exp10 is the base-10 exponential; the Go math library has no direct
// routine for it.
func exp10(x float64) float64 {
	return math.Pow(10, x)
}
