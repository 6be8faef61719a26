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

// BFloat16 is the bfloat16 binding, stored as raw bits: the upper sixteen
// bits of a float32 (1 sign bit, 8 exponent bits with bias 127, 7 mantissa
// bits). It trades mantissa precision for the full float32 exponent range.
//
// Like Float16, arithmetic promotes to binary64 and demotes with a single
// round-to-nearest-even.
type BFloat16 uint16

const (
	bf16SignMask = 0x8000
	bf16ExpMask  = 0x7F80
	bf16MantMask = 0x007F

	bf16Inf BFloat16 = 0x7F80
	bf16NaN BFloat16 = 0x7FC0 // canonical quiet NaN
)

// NewBFloat16 converts a float32 to the nearest BFloat16, ties to even.
func NewBFloat16(f float32) BFloat16 {
	return bf16FromFloat64(float64(f))
}

// BFloat16FromBits reinterprets raw bfloat16 bits.
func BFloat16FromBits(bits uint16) BFloat16 { return BFloat16(bits) }

// Bits returns the raw bfloat16 representation.
func (x BFloat16) Bits() uint16 { return uint16(x) }

// Float32 widens to float32 by restoring the truncated low half. Exact.
func (x BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(x) << 16)
}

// Float64 widens to float64. Widening is exact.
func (x BFloat16) Float64() float64 { return float64(x.Float32()) }

// bf16FromFloat64 demotes a float64 to BFloat16 with a single
// round-to-nearest-even, directly from the binary64 representation.
func bf16FromFloat64(f float64) BFloat16 {
	bits := math.Float64bits(f)
	sign := BFloat16(bits>>48) & bf16SignMask
	abs := bits &^ (1 << 63)

	switch {
	case abs > 0x7FF0000000000000:
		return sign | bf16NaN
	case abs == 0x7FF0000000000000:
		return sign | bf16Inf
	}

	e := int(abs>>52) - 896 // rebias 1023 -> 127
	if e <= 0 {
		// Subnormal result: quantize to the subnormal step 2^-133.
		q := math.RoundToEven(math.Abs(f) * 0x1p133)
		return sign | BFloat16(uint16(q))
	}

	mant := abs & (1<<52 - 1)
	mant += 1<<44 - 1 + (mant>>45)&1 // ties to even on the dropped 45 bits
	if mant&(1<<52) != 0 {
		mant = 0
		e++
	}
	if e >= 255 {
		return sign | bf16Inf
	}
	return sign | BFloat16(e)<<7 | BFloat16(mant>>45)
}

func bf16(op func(float64) float64, x BFloat16) BFloat16 {
	return bf16FromFloat64(op(x.Float64()))
}

func bf16x2(op func(_, _ float64) float64, x, y BFloat16) BFloat16 {
	return bf16FromFloat64(op(x.Float64(), y.Float64()))
}

// Elementary catalog.

func (x BFloat16) Exp() BFloat16   { return bf16(math.Exp, x) }
func (x BFloat16) ExpM1() BFloat16 { return bf16(math.Expm1, x) }
func (x BFloat16) Log() BFloat16   { return bf16(math.Log, x) }
func (x BFloat16) Log1p() BFloat16 { return bf16(math.Log1p, x) }
func (x BFloat16) Log2() BFloat16  { return bf16(math.Log2, x) }
func (x BFloat16) Log10() BFloat16 { return bf16(math.Log10, x) }
func (x BFloat16) Sqrt() BFloat16  { return bf16(math.Sqrt, x) }

func (x BFloat16) Sin() BFloat16  { return bf16(math.Sin, x) }
func (x BFloat16) Cos() BFloat16  { return bf16(math.Cos, x) }
func (x BFloat16) Tan() BFloat16  { return bf16(math.Tan, x) }
func (x BFloat16) Asin() BFloat16 { return bf16(math.Asin, x) }
func (x BFloat16) Acos() BFloat16 { return bf16(math.Acos, x) }
func (x BFloat16) Atan() BFloat16 { return bf16(math.Atan, x) }

func (x BFloat16) Sinh() BFloat16  { return bf16(math.Sinh, x) }
func (x BFloat16) Cosh() BFloat16  { return bf16(math.Cosh, x) }
func (x BFloat16) Tanh() BFloat16  { return bf16(math.Tanh, x) }
func (x BFloat16) Asinh() BFloat16 { return bf16(math.Asinh, x) }
func (x BFloat16) Acosh() BFloat16 { return bf16(math.Acosh, x) }
func (x BFloat16) Atanh() BFloat16 { return bf16(math.Atanh, x) }

// Pow returns x**y, NaN for any negative base.
func (x BFloat16) Pow(y BFloat16) BFloat16 { return bf16x2(powKernel, x, y) }

// PowN returns x**n, computed at the promoted width.
func (x BFloat16) PowN(n int) BFloat16 {
	return bf16FromFloat64(math.Pow(x.Float64(), float64(n)))
}

// Root returns the real n-th root of x.
func (x BFloat16) Root(n int) BFloat16 {
	return bf16FromFloat64(rootKernel(x.Float64(), n))
}

// Real-specific functions.

func (y BFloat16) Atan2(x BFloat16) BFloat16 { return bf16x2(math.Atan2, y, x) }

func (x BFloat16) Exp2() BFloat16  { return bf16(math.Exp2, x) }
func (x BFloat16) Exp10() BFloat16 { return bf16(exp10, x) }
func (x BFloat16) Erf() BFloat16   { return bf16(math.Erf, x) }
func (x BFloat16) Erfc() BFloat16  { return bf16(math.Erfc, x) }
func (x BFloat16) Gamma() BFloat16 { return bf16(math.Gamma, x) }

func (x BFloat16) Hypot(y BFloat16) BFloat16 { return bf16x2(math.Hypot, x, y) }

// Primitive floating-point operations.

func (x BFloat16) Add(y BFloat16) BFloat16 { return bf16FromFloat64(x.Float64() + y.Float64()) }
func (x BFloat16) Sub(y BFloat16) BFloat16 { return bf16FromFloat64(x.Float64() - y.Float64()) }
func (x BFloat16) Mul(y BFloat16) BFloat16 { return bf16FromFloat64(x.Float64() * y.Float64()) }
func (x BFloat16) Div(y BFloat16) BFloat16 { return bf16FromFloat64(x.Float64() / y.Float64()) }

func (x BFloat16) Neg() BFloat16 { return x ^ bf16SignMask }
func (x BFloat16) Abs() BFloat16 { return x &^ bf16SignMask }

func (x BFloat16) Trunc() BFloat16 { return bf16(math.Trunc, x) }
func (x BFloat16) Floor() BFloat16 { return bf16(math.Floor, x) }
func (x BFloat16) Ceil() BFloat16  { return bf16(math.Ceil, x) }
func (x BFloat16) Round() BFloat16 { return bf16(math.Round, x) }

func (x BFloat16) Remainder(y BFloat16) BFloat16 { return bf16x2(math.Remainder, x, y) }
func (x BFloat16) CopySign(y BFloat16) BFloat16 {
	return x&^bf16SignMask | y&bf16SignMask
}

func (x BFloat16) Ldexp(k int) BFloat16 {
	return bf16FromFloat64(math.Ldexp(x.Float64(), k))
}

func (x BFloat16) Eq(y BFloat16) bool   { return x.Float64() == y.Float64() }
func (x BFloat16) Less(y BFloat16) bool { return x.Float64() < y.Float64() }

func (x BFloat16) IsNaN() bool {
	return x&bf16ExpMask == bf16ExpMask && x&bf16MantMask != 0
}

func (x BFloat16) IsInf() bool { return x&^bf16SignMask == bf16Inf }

func (x BFloat16) Signbit() bool { return x&bf16SignMask != 0 }
