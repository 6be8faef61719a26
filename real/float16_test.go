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

import (
	"math"
	"testing"
)

func TestFloat16KnownBits(t *testing.T) {
	tests := []struct {
		name string
		f    float32
		bits uint16
	}{
		{"Zero", 0, 0x0000},
		{"NegZero", float32(math.Copysign(0, -1)), 0x8000},
		{"One", 1, 0x3C00},
		{"NegOne", -1, 0xBC00},
		{"Two", 2, 0x4000},
		{"Half", 0.5, 0x3800},
		{"MaxFinite", 65504, 0x7BFF},
		{"MinNormal", 0x1p-14, 0x0400},
		{"MinSubnormal", 0x1p-24, 0x0001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewFloat16(tt.f).Bits(); got != tt.bits {
				t.Errorf("NewFloat16(%v) = %#04x, want %#04x", tt.f, got, tt.bits)
			}
			if back := Float16FromBits(tt.bits).Float32(); back != tt.f {
				t.Errorf("Float16FromBits(%#04x) = %v, want %v", tt.bits, back, tt.f)
			}
		})
	}
}

// TestFloat16RoundTripAllBits promotes every binary16 bit pattern and
// demotes it again. Everything except NaN payloads (which canonicalize)
// must survive exactly.
func TestFloat16RoundTripAllBits(t *testing.T) {
	for b := 0; b <= 0xFFFF; b++ {
		x := Float16FromBits(uint16(b))
		back := f16FromFloat64(x.Float64())
		if x.IsNaN() {
			if !back.IsNaN() || back.Signbit() != x.Signbit() {
				t.Fatalf("NaN pattern %#04x lost: got %#04x", b, back.Bits())
			}
			continue
		}
		if back != x {
			t.Fatalf("round trip %#04x -> %v -> %#04x", b, x.Float64(), back.Bits())
		}
	}
}

func TestFloat16Rounding(t *testing.T) {
	// 1 + 2^-11 is exactly halfway between 1 and the next binary16 value;
	// ties go to the even mantissa, which is 1.
	if got := NewFloat16(1 + 0x1p-11); got.Bits() != 0x3C00 {
		t.Errorf("tie should round to even: got %#04x", got.Bits())
	}
	// Just above the tie rounds up.
	if got := NewFloat16(1 + 0x1p-11 + 0x1p-20); got.Bits() != 0x3C01 {
		t.Errorf("above tie should round up: got %#04x", got.Bits())
	}
	// 65520 is halfway between 65504 and the (unrepresentable) 65536 and
	// rounds up, overflowing to infinity; just below stays finite.
	if got := NewFloat16(65520); !got.IsInf() || got.Signbit() {
		t.Errorf("65520 should overflow to +Inf: got %#04x", got.Bits())
	}
	if got := NewFloat16(65519.9); got.Bits() != 0x7BFF {
		t.Errorf("65519.9 should round to max finite: got %#04x", got.Bits())
	}
	// Deep underflow flushes to signed zero.
	if got := NewFloat16(-0x1p-26); got.Bits() != 0x8000 {
		t.Errorf("tiny negative should be -0: got %#04x", got.Bits())
	}
}

func TestFloat16Specials(t *testing.T) {
	if !NewFloat16(float32(math.Inf(1))).IsInf() {
		t.Error("+Inf should convert to +Inf")
	}
	if got := NewFloat16(float32(math.Inf(-1))); !got.IsInf() || !got.Signbit() {
		t.Error("-Inf should convert to -Inf")
	}
	if !NewFloat16(float32(math.NaN())).IsNaN() {
		t.Error("NaN should convert to NaN")
	}
	if f16Inf.IsNaN() || !f16NaN.IsNaN() {
		t.Error("classification mismatch on canonical constants")
	}
}

func TestFloat16Primitives(t *testing.T) {
	a, b := NewFloat16(1.5), NewFloat16(2.25)
	if got := a.Add(b); got.Float64() != 3.75 {
		t.Errorf("1.5 + 2.25 = %v", got.Float64())
	}
	if got := b.Sub(a); got.Float64() != 0.75 {
		t.Errorf("2.25 - 1.5 = %v", got.Float64())
	}
	if got := a.Mul(b); got.Float64() != 3.375 {
		t.Errorf("1.5 * 2.25 = %v", got.Float64())
	}
	if got := NewFloat16(7).Div(NewFloat16(2)); got.Float64() != 3.5 {
		t.Errorf("7 / 2 = %v", got.Float64())
	}
	if got := a.Neg(); got.Float64() != -1.5 || !got.Signbit() {
		t.Errorf("Neg(1.5) = %v", got.Float64())
	}
	if got := NewFloat16(-2.5).Abs(); got.Float64() != 2.5 {
		t.Errorf("Abs(-2.5) = %v", got.Float64())
	}
	if got := NewFloat16(-2.5).Trunc(); got.Float64() != -2 {
		t.Errorf("Trunc(-2.5) = %v", got.Float64())
	}
	if got := NewFloat16(3).CopySign(NewFloat16(-1)); got.Float64() != -3 {
		t.Errorf("CopySign(3, -1) = %v", got.Float64())
	}
	if got := NewFloat16(3).Ldexp(-1); got.Float64() != 1.5 {
		t.Errorf("Ldexp(3, -1) = %v", got.Float64())
	}

	// -0 equals +0; NaN equals nothing, itself included.
	if !Float16FromBits(0x8000).Eq(Float16FromBits(0x0000)) {
		t.Error("-0 should equal +0")
	}
	if f16NaN.Eq(f16NaN) || f16NaN.Less(f16NaN) {
		t.Error("NaN must not compare")
	}
	if !NewFloat16(1).Less(NewFloat16(2)) {
		t.Error("1 < 2")
	}
}

func TestBFloat16KnownBits(t *testing.T) {
	tests := []struct {
		name string
		f    float32
		bits uint16
	}{
		{"Zero", 0, 0x0000},
		{"NegZero", float32(math.Copysign(0, -1)), 0x8000},
		{"One", 1, 0x3F80},
		{"NegOne", -1, 0xBF80},
		{"Two", 2, 0x4000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBFloat16(tt.f).Bits(); got != tt.bits {
				t.Errorf("NewBFloat16(%v) = %#04x, want %#04x", tt.f, got, tt.bits)
			}
			if back := BFloat16FromBits(tt.bits).Float32(); back != tt.f {
				t.Errorf("BFloat16FromBits(%#04x) = %v, want %v", tt.bits, back, tt.f)
			}
		})
	}
}

func TestBFloat16RoundTripAllBits(t *testing.T) {
	for b := 0; b <= 0xFFFF; b++ {
		x := BFloat16FromBits(uint16(b))
		back := bf16FromFloat64(x.Float64())
		if x.IsNaN() {
			if !back.IsNaN() || back.Signbit() != x.Signbit() {
				t.Fatalf("NaN pattern %#04x lost: got %#04x", b, back.Bits())
			}
			continue
		}
		if back != x {
			t.Fatalf("round trip %#04x -> %v -> %#04x", b, x.Float64(), back.Bits())
		}
	}
}

func TestBFloat16Rounding(t *testing.T) {
	// 1 + 2^-8 is the tie between 1 and the next bfloat16 value; the even
	// mantissa wins.
	if got := NewBFloat16(1 + 0x1p-8); got.Bits() != 0x3F80 {
		t.Errorf("tie should round to even: got %#04x", got.Bits())
	}
	if got := NewBFloat16(1 + 0x1p-8 + 0x1p-16); got.Bits() != 0x3F81 {
		t.Errorf("above tie should round up: got %#04x", got.Bits())
	}
	// bfloat16 keeps the float32 exponent range, but MaxFloat32 sits above
	// the last representable midpoint and rounds to infinity; values below
	// the midpoint round to the max finite bfloat16.
	if got := NewBFloat16(math.MaxFloat32); !got.IsInf() {
		t.Errorf("MaxFloat32 should round to +Inf: got %#04x", got.Bits())
	}
	if got := NewBFloat16(3.39e38); got.Bits() != 0x7F7F {
		t.Errorf("3.39e38 should round to max finite: got %#04x", got.Bits())
	}
}
