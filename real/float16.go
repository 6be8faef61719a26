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

// Float16 is the IEEE 754 binary16 binding, stored as raw bits.
//
// Layout: 1 sign bit, 5 exponent bits (bias 15), 10 mantissa bits.
// Largest finite value 65504, smallest positive normal 2^-14.
//
// There is no hardware binary16 arithmetic in Go, so every operation
// promotes to binary64 (exact), computes there, and demotes with a single
// round-to-nearest-even. Promotion being exact, catalog results match what
// a native binary16 libm computing through binary64 would produce.
type Float16 uint16

const (
	f16SignMask = 0x8000
	f16ExpMask  = 0x7C00
	f16MantMask = 0x03FF

	f16Inf Float16 = 0x7C00
	f16NaN Float16 = 0x7E00 // canonical quiet NaN
)

// NewFloat16 converts a float32 to the nearest Float16, ties to even.
func NewFloat16(f float32) Float16 {
	return f16FromFloat64(float64(f))
}

// Float16FromBits reinterprets raw binary16 bits.
func Float16FromBits(bits uint16) Float16 { return Float16(bits) }

// Bits returns the raw binary16 representation.
func (x Float16) Bits() uint16 { return uint16(x) }

// Float32 widens to float32. Widening is exact.
func (x Float16) Float32() float32 {
	sign := uint32(x&f16SignMask) << 16
	exp := uint32(x>>10) & 0x1F
	mant := uint32(x & f16MantMask)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign) // ±0
		}
		// Subnormal: the value is ±mant * 2^-24, exact in float32.
		v := float32(mant) * 0x1p-24
		if sign != 0 {
			v = -v
		}
		return v
	case 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		return math.Float32frombits(sign | 0x7FC00000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	}
}

// Float64 widens to float64. Widening is exact.
func (x Float16) Float64() float64 { return float64(x.Float32()) }

// f16FromFloat64 demotes a float64 to Float16 with a single
// round-to-nearest-even, directly from the binary64 representation so no
// intermediate rounding can occur.
func f16FromFloat64(f float64) Float16 {
	bits := math.Float64bits(f)
	sign := Float16(bits>>48) & f16SignMask
	abs := bits &^ (1 << 63)

	switch {
	case abs > 0x7FF0000000000000:
		return sign | f16NaN
	case abs == 0x7FF0000000000000:
		return sign | f16Inf
	}

	e := int(abs>>52) - 1008 // rebias 1023 -> 15
	if e <= 0 {
		// Subnormal result: quantize to the subnormal step 2^-24. The
		// product is an exact scaling, so the value rounds exactly once.
		q := math.RoundToEven(math.Abs(f) * 0x1p24)
		return sign | Float16(uint16(q))
	}

	mant := abs & (1<<52 - 1)
	mant += 1<<41 - 1 + (mant>>42)&1 // ties to even on the dropped 42 bits
	if mant&(1<<52) != 0 {
		mant = 0
		e++
	}
	if e >= 31 {
		return sign | f16Inf
	}
	return sign | Float16(e)<<10 | Float16(mant>>42)
}

// f16 applies a binary64 routine at half precision.
func f16(op func(float64) float64, x Float16) Float16 {
	return f16FromFloat64(op(x.Float64()))
}

// f16x2 applies a two-argument binary64 routine at half precision.
func f16x2(op func(_, _ float64) float64, x, y Float16) Float16 {
	return f16FromFloat64(op(x.Float64(), y.Float64()))
}

// Elementary catalog.

func (x Float16) Exp() Float16   { return f16(math.Exp, x) }
func (x Float16) ExpM1() Float16 { return f16(math.Expm1, x) }
func (x Float16) Log() Float16   { return f16(math.Log, x) }
func (x Float16) Log1p() Float16 { return f16(math.Log1p, x) }
func (x Float16) Log2() Float16  { return f16(math.Log2, x) }
func (x Float16) Log10() Float16 { return f16(math.Log10, x) }
func (x Float16) Sqrt() Float16  { return f16(math.Sqrt, x) }

func (x Float16) Sin() Float16  { return f16(math.Sin, x) }
func (x Float16) Cos() Float16  { return f16(math.Cos, x) }
func (x Float16) Tan() Float16  { return f16(math.Tan, x) }
func (x Float16) Asin() Float16 { return f16(math.Asin, x) }
func (x Float16) Acos() Float16 { return f16(math.Acos, x) }
func (x Float16) Atan() Float16 { return f16(math.Atan, x) }

func (x Float16) Sinh() Float16  { return f16(math.Sinh, x) }
func (x Float16) Cosh() Float16  { return f16(math.Cosh, x) }
func (x Float16) Tanh() Float16  { return f16(math.Tanh, x) }
func (x Float16) Asinh() Float16 { return f16(math.Asinh, x) }
func (x Float16) Acosh() Float16 { return f16(math.Acosh, x) }
func (x Float16) Atanh() Float16 { return f16(math.Atanh, x) }

// Pow returns x**y, NaN for any negative base.
func (x Float16) Pow(y Float16) Float16 { return f16x2(powKernel, x, y) }

// PowN returns x**n, computed at the promoted width.
func (x Float16) PowN(n int) Float16 {
	return f16FromFloat64(math.Pow(x.Float64(), float64(n)))
}

// Root returns the real n-th root of x.
func (x Float16) Root(n int) Float16 {
	return f16FromFloat64(rootKernel(x.Float64(), n))
}

// Real-specific functions.

func (y Float16) Atan2(x Float16) Float16 { return f16x2(math.Atan2, y, x) }

func (x Float16) Exp2() Float16  { return f16(math.Exp2, x) }
func (x Float16) Exp10() Float16 { return f16(exp10, x) }
func (x Float16) Erf() Float16   { return f16(math.Erf, x) }
func (x Float16) Erfc() Float16  { return f16(math.Erfc, x) }
func (x Float16) Gamma() Float16 { return f16(math.Gamma, x) }

func (x Float16) Hypot(y Float16) Float16 { return f16x2(math.Hypot, x, y) }

// Primitive floating-point operations. Sums and products of two binary16
// values are exact in binary64, so the single demotion rounding makes
// Add and Mul correctly rounded.

func (x Float16) Add(y Float16) Float16 { return f16FromFloat64(x.Float64() + y.Float64()) }
func (x Float16) Sub(y Float16) Float16 { return f16FromFloat64(x.Float64() - y.Float64()) }
func (x Float16) Mul(y Float16) Float16 { return f16FromFloat64(x.Float64() * y.Float64()) }
func (x Float16) Div(y Float16) Float16 { return f16FromFloat64(x.Float64() / y.Float64()) }

func (x Float16) Neg() Float16 { return x ^ f16SignMask }
func (x Float16) Abs() Float16 { return x &^ f16SignMask }

func (x Float16) Trunc() Float16 { return f16(math.Trunc, x) }
func (x Float16) Floor() Float16 { return f16(math.Floor, x) }
func (x Float16) Ceil() Float16  { return f16(math.Ceil, x) }
func (x Float16) Round() Float16 { return f16(math.Round, x) }

func (x Float16) Remainder(y Float16) Float16 { return f16x2(math.Remainder, x, y) }
func (x Float16) CopySign(y Float16) Float16 {
	return x&^f16SignMask | y&f16SignMask
}

func (x Float16) Ldexp(k int) Float16 {
	return f16FromFloat64(math.Ldexp(x.Float64(), k))
}

func (x Float16) Eq(y Float16) bool   { return x.Float64() == y.Float64() }
func (x Float16) Less(y Float16) bool { return x.Float64() < y.Float64() }

func (x Float16) IsNaN() bool {
	return x&f16ExpMask == f16ExpMask && x&f16MantMask != 0
}

func (x Float16) IsInf() bool { return x&^f16SignMask == f16Inf }

func (x Float16) Signbit() bool { return x&f16SignMask != 0 }
