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

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestPowNegativeBaseIsNaN(t *testing.T) {
	// A negative base yields NaN no matter what the exponent is, even when
	// the power is mathematically well-defined.
	exponents := []float64{2, 3, 0.5, -1, 0, math.Inf(1), math.NaN()}
	for _, y := range exponents {
		if !Pow(Float64(-1), Float64(y)).IsNaN() {
			t.Errorf("Pow(-1, %v) should be NaN", y)
		}
		if !Pow(Float32(-2.5), Float32(y)).IsNaN() {
			t.Errorf("float32 Pow(-2.5, %v) should be NaN", y)
		}
		if !Pow(NewFloat16(-2), f16FromFloat64(y)).IsNaN() {
			t.Errorf("Float16 Pow(-2, %v) should be NaN", y)
		}
		if !Pow(NewBFloat16(-2), bf16FromFloat64(y)).IsNaN() {
			t.Errorf("BFloat16 Pow(-2, %v) should be NaN", y)
		}
	}

	// The guard is written so a NaN base fails it too, including for a zero
	// exponent where the native routine would answer 1.
	if !Pow(Float64(math.NaN()), Float64(0)).IsNaN() {
		t.Error("Pow(NaN, 0) should be NaN")
	}
}

func TestPowMatchesNativeForNonNegativeBase(t *testing.T) {
	bases := []float64{0, math.Copysign(0, -1), 0.5, 1, 2, 10, 1e30, math.Inf(1)}
	exponents := []float64{0, 1, -1, 0.5, 3, -2.5, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, x := range bases {
		for _, y := range exponents {
			got := float64(Pow(Float64(x), Float64(y)))
			want := math.Pow(x, y)
			if math.Float64bits(got) != math.Float64bits(want) {
				t.Errorf("Pow(%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPowN(t *testing.T) {
	require.Equal(t, Float64(1024), PowN(Float64(2), 10))
	require.Equal(t, Float64(0.25), PowN(Float64(2), -2))
	require.Equal(t, Float64(1), PowN(Float64(7), 0))

	// Integer exponents keep negative bases well-defined, unlike Pow.
	require.Equal(t, Float64(4), PowN(Float64(-2), 2))
	require.Equal(t, Float64(-8), PowN(Float64(-2), 3))
	require.Equal(t, Float32(4), PowN(Float32(-2), 2))

	// The exponent converts to the receiver's width first. At binary32 the
	// conversion is exact only up to 2**24; beyond that the rounded
	// exponent is what gets used. Kept as documented behavior.
	n := 1<<24 + 1
	require.Equal(t, float32(math.Pow(1, float64(float32(n)))), float32(PowN(Float32(1), n)))
}

func TestRoot(t *testing.T) {
	// Negative radicand with an even degree has no real root.
	if !Root(Float64(-8), 2).IsNaN() {
		t.Error("Root(-8, 2) should be NaN")
	}
	if !Root(Float32(-16), 4).IsNaN() {
		t.Error("float32 Root(-16, 4) should be NaN")
	}
	if !Root(NewFloat16(-4), 2).IsNaN() {
		t.Error("Float16 Root(-4, 2) should be NaN")
	}

	// Odd degrees carry the sign through.
	require.InDelta(t, -2, float64(Root(Float64(-8), 3)), 1e-15)
	require.InDelta(t, 2, float64(Root(Float64(8), 3)), 1e-15)
	require.InDelta(t, 2, float64(Root(Float64(16), 4)), 1e-15)
	require.InDelta(t, -2, float64(Root(Float32(-8), 3)), 1e-6)

	// Negative degrees invert: x**(1/n) with n < 0.
	require.InDelta(t, 2, float64(Root(Float64(0.25), -2)), 1e-15)
	require.InDelta(t, -2, float64(Root(Float64(-0.125), -3)), 1e-15)

	// Degree zero hands the native routine an infinite exponent.
	require.Equal(t, Float64(0), Root(Float64(0.5), 0))
	require.True(t, Root(Float64(2), 0).IsInf())
}

func TestRootPowRoundTrip(t *testing.T) {
	xs := []float64{0.5, 1, 1.5, 2, math.E, 10, 123.456}
	ns := []int{1, 2, 3, 5, 7}
	for _, x := range xs {
		for _, n := range ns {
			got := float64(Root(PowN(Float64(x), n), n))
			if !scalar.EqualWithinAbsOrRel(got, x, 1e-12, 1e-12) {
				t.Errorf("Root(PowN(%v, %d), %d) = %v", x, n, n, got)
			}
			got32 := float64(Root(PowN(Float32(x), n), n))
			if !scalar.EqualWithinAbsOrRel(got32, float64(float32(x)), 1e-4, 1e-4) {
				t.Errorf("float32 Root(PowN(%v, %d), %d) = %v", x, n, n, got32)
			}
		}
	}
}
