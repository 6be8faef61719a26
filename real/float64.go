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

// Float64 is the IEEE 754 binary64 binding. Every catalog entry is a direct
// call into the Go math library at full width.
type Float64 float64

// Elementary catalog.

func (x Float64) Exp() Float64   { return Float64(math.Exp(float64(x))) }
func (x Float64) ExpM1() Float64 { return Float64(math.Expm1(float64(x))) }
func (x Float64) Log() Float64   { return Float64(math.Log(float64(x))) }
func (x Float64) Log1p() Float64 { return Float64(math.Log1p(float64(x))) }
func (x Float64) Log2() Float64  { return Float64(math.Log2(float64(x))) }
func (x Float64) Log10() Float64 { return Float64(math.Log10(float64(x))) }
func (x Float64) Sqrt() Float64  { return Float64(math.Sqrt(float64(x))) }

func (x Float64) Sin() Float64  { return Float64(math.Sin(float64(x))) }
func (x Float64) Cos() Float64  { return Float64(math.Cos(float64(x))) }
func (x Float64) Tan() Float64  { return Float64(math.Tan(float64(x))) }
func (x Float64) Asin() Float64 { return Float64(math.Asin(float64(x))) }
func (x Float64) Acos() Float64 { return Float64(math.Acos(float64(x))) }
func (x Float64) Atan() Float64 { return Float64(math.Atan(float64(x))) }

func (x Float64) Sinh() Float64  { return Float64(math.Sinh(float64(x))) }
func (x Float64) Cosh() Float64  { return Float64(math.Cosh(float64(x))) }
func (x Float64) Tanh() Float64  { return Float64(math.Tanh(float64(x))) }
func (x Float64) Asinh() Float64 { return Float64(math.Asinh(float64(x))) }
func (x Float64) Acosh() Float64 { return Float64(math.Acosh(float64(x))) }
func (x Float64) Atanh() Float64 { return Float64(math.Atanh(float64(x))) }

// Pow returns x**y, NaN for any negative base.
func (x Float64) Pow(y Float64) Float64 {
	return Float64(powKernel(float64(x), float64(y)))
}

// PowN returns x**n. The exponent is exact in binary64 up to 2**53.
func (x Float64) PowN(n int) Float64 {
	return Float64(math.Pow(float64(x), float64(n)))
}

// Root returns the real n-th root of x.
func (x Float64) Root(n int) Float64 {
	return Float64(rootKernel(float64(x), n))
}

// Real-specific functions.

func (y Float64) Atan2(x Float64) Float64 {
	return Float64(math.Atan2(float64(y), float64(x)))
}

func (x Float64) Exp2() Float64  { return Float64(math.Exp2(float64(x))) }
func (x Float64) Exp10() Float64 { return Float64(exp10(float64(x))) }
func (x Float64) Erf() Float64   { return Float64(math.Erf(float64(x))) }
func (x Float64) Erfc() Float64  { return Float64(math.Erfc(float64(x))) }
func (x Float64) Gamma() Float64 { return Float64(math.Gamma(float64(x))) }

func (x Float64) Hypot(y Float64) Float64 {
	return Float64(math.Hypot(float64(x), float64(y)))
}

// Primitive floating-point operations.

func (x Float64) Add(y Float64) Float64 { return x + y }
func (x Float64) Sub(y Float64) Float64 { return x - y }
func (x Float64) Mul(y Float64) Float64 { return x * y }
func (x Float64) Div(y Float64) Float64 { return x / y }
func (x Float64) Neg() Float64          { return -x }
func (x Float64) Abs() Float64          { return Float64(math.Abs(float64(x))) }

func (x Float64) Trunc() Float64 { return Float64(math.Trunc(float64(x))) }
func (x Float64) Floor() Float64 { return Float64(math.Floor(float64(x))) }
func (x Float64) Ceil() Float64  { return Float64(math.Ceil(float64(x))) }
func (x Float64) Round() Float64 { return Float64(math.Round(float64(x))) }

func (x Float64) Remainder(y Float64) Float64 {
	return Float64(math.Remainder(float64(x), float64(y)))
}

func (x Float64) CopySign(y Float64) Float64 {
	return Float64(math.Copysign(float64(x), float64(y)))
}

func (x Float64) Ldexp(k int) Float64 {
	return Float64(math.Ldexp(float64(x), k))
}

func (x Float64) Eq(y Float64) bool   { return x == y }
func (x Float64) Less(y Float64) bool { return x < y }

func (x Float64) IsNaN() bool   { return math.IsNaN(float64(x)) }
func (x Float64) IsInf() bool   { return math.IsInf(float64(x), 0) }
func (x Float64) Signbit() bool { return math.Signbit(float64(x)) }

func (x Float64) Float64() float64 { return float64(x) }
