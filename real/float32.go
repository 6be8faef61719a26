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

// Float32 is the IEEE 754 binary32 binding. Following the usual Go
// convention for float32 math, each catalog entry computes through the
// binary64 routine and truncates, which is the width-matched result for
// every function in the catalog.
type Float32 float32

// Elementary catalog.

func (x Float32) Exp() Float32   { return Float32(math.Exp(float64(x))) }
func (x Float32) ExpM1() Float32 { return Float32(math.Expm1(float64(x))) }
func (x Float32) Log() Float32   { return Float32(math.Log(float64(x))) }
func (x Float32) Log1p() Float32 { return Float32(math.Log1p(float64(x))) }
func (x Float32) Log2() Float32  { return Float32(math.Log2(float64(x))) }
func (x Float32) Log10() Float32 { return Float32(math.Log10(float64(x))) }
func (x Float32) Sqrt() Float32  { return Float32(math.Sqrt(float64(x))) }

func (x Float32) Sin() Float32  { return Float32(math.Sin(float64(x))) }
func (x Float32) Cos() Float32  { return Float32(math.Cos(float64(x))) }
func (x Float32) Tan() Float32  { return Float32(math.Tan(float64(x))) }
func (x Float32) Asin() Float32 { return Float32(math.Asin(float64(x))) }
func (x Float32) Acos() Float32 { return Float32(math.Acos(float64(x))) }
func (x Float32) Atan() Float32 { return Float32(math.Atan(float64(x))) }

func (x Float32) Sinh() Float32  { return Float32(math.Sinh(float64(x))) }
func (x Float32) Cosh() Float32  { return Float32(math.Cosh(float64(x))) }
func (x Float32) Tanh() Float32  { return Float32(math.Tanh(float64(x))) }
func (x Float32) Asinh() Float32 { return Float32(math.Asinh(float64(x))) }
func (x Float32) Acosh() Float32 { return Float32(math.Acosh(float64(x))) }
func (x Float32) Atanh() Float32 { return Float32(math.Atanh(float64(x))) }

// Pow returns x**y, NaN for any negative base.
func (x Float32) Pow(y Float32) Float32 {
	return Float32(powKernel(float64(x), float64(y)))
}

// PowN returns x**n. The exponent is converted to binary32 first, so
// exponents beyond 2**24 round before the native call.
func (x Float32) PowN(n int) Float32 {
	return Float32(math.Pow(float64(x), float64(float32(n))))
}

// Root returns the real n-th root of x.
func (x Float32) Root(n int) Float32 {
	return Float32(rootKernel(float64(x), n))
}

// Real-specific functions.

func (y Float32) Atan2(x Float32) Float32 {
	return Float32(math.Atan2(float64(y), float64(x)))
}

func (x Float32) Exp2() Float32  { return Float32(math.Exp2(float64(x))) }
func (x Float32) Exp10() Float32 { return Float32(exp10(float64(x))) }
func (x Float32) Erf() Float32   { return Float32(math.Erf(float64(x))) }
func (x Float32) Erfc() Float32  { return Float32(math.Erfc(float64(x))) }
func (x Float32) Gamma() Float32 { return Float32(math.Gamma(float64(x))) }

func (x Float32) Hypot(y Float32) Float32 {
	return Float32(math.Hypot(float64(x), float64(y)))
}

// Primitive floating-point operations.

func (x Float32) Add(y Float32) Float32 { return x + y }
func (x Float32) Sub(y Float32) Float32 { return x - y }
func (x Float32) Mul(y Float32) Float32 { return x * y }
func (x Float32) Div(y Float32) Float32 { return x / y }
func (x Float32) Neg() Float32          { return -x }
func (x Float32) Abs() Float32          { return Float32(math.Abs(float64(x))) }

func (x Float32) Trunc() Float32 { return Float32(math.Trunc(float64(x))) }
func (x Float32) Floor() Float32 { return Float32(math.Floor(float64(x))) }
func (x Float32) Ceil() Float32  { return Float32(math.Ceil(float64(x))) }
func (x Float32) Round() Float32 { return Float32(math.Round(float64(x))) }

func (x Float32) Remainder(y Float32) Float32 {
	return Float32(math.Remainder(float64(x), float64(y)))
}

func (x Float32) CopySign(y Float32) Float32 {
	return Float32(math.Copysign(float64(x), float64(y)))
}

func (x Float32) Ldexp(k int) Float32 {
	return Float32(math.Ldexp(float64(x), k))
}

func (x Float32) Eq(y Float32) bool   { return x == y }
func (x Float32) Less(y Float32) bool { return x < y }

func (x Float32) IsNaN() bool   { return x != x }
func (x Float32) IsInf() bool   { return math.IsInf(float64(x), 0) }
func (x Float32) Signbit() bool { return math.Signbit(float64(x)) }

func (x Float32) Float64() float64 { return float64(x) }
