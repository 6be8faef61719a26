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

package vec

import "github.com/ajroetker/go-numerics/real"

// Vector resolution of the free-function surface. Names and argument order
// match the real package exactly.

// Exp returns e**x per lane.
func Exp[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Exp() })
}

// ExpM1 returns e**x - 1 per lane.
func ExpM1[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.ExpM1() })
}

// Log returns the natural logarithm per lane.
func Log[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Log() })
}

// Log1p returns log(1 + x) per lane.
func Log1p[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Log1p() })
}

// Log2 returns the base-2 logarithm per lane.
func Log2[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Log2() })
}

// Log10 returns the base-10 logarithm per lane.
func Log10[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Log10() })
}

// Sqrt returns the square root per lane.
func Sqrt[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Sqrt() })
}

// Sin returns the sine per lane.
func Sin[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Sin() })
}

// Cos returns the cosine per lane.
func Cos[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Cos() })
}

// Tan returns the tangent per lane.
func Tan[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Tan() })
}

// Asin returns the arcsine per lane.
func Asin[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Asin() })
}

// Acos returns the arccosine per lane.
func Acos[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Acos() })
}

// Atan returns the arctangent per lane.
func Atan[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Atan() })
}

// Sinh returns the hyperbolic sine per lane.
func Sinh[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Sinh() })
}

// Cosh returns the hyperbolic cosine per lane.
func Cosh[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Cosh() })
}

// Tanh returns the hyperbolic tangent per lane.
func Tanh[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Tanh() })
}

// Asinh returns the inverse hyperbolic sine per lane.
func Asinh[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Asinh() })
}

// Acosh returns the inverse hyperbolic cosine per lane.
func Acosh[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Acosh() })
}

// Atanh returns the inverse hyperbolic tangent per lane.
func Atanh[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Atanh() })
}

// Exp2 returns 2**x per lane.
func Exp2[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Exp2() })
}

// Exp10 returns 10**x per lane.
func Exp10[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Exp10() })
}

// Erf returns the error function per lane.
func Erf[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Erf() })
}

// Erfc returns the complementary error function per lane.
func Erfc[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Erfc() })
}

// Gamma returns the gamma function per lane.
func Gamma[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Gamma() })
}

// Pow returns x**y for lane pairs at the same index. Negative bases yield
// NaN in their lanes.
func Pow[T real.Real[T]](x, y Vec[T]) Vec[T] {
	return apply2(x, y, func(a, b T) T { return a.Pow(b) })
}

// PowN returns x**n per lane, one integer exponent for every lane.
func PowN[T real.Real[T]](v Vec[T], n int) Vec[T] {
	return apply1(v, func(x T) T { return x.PowN(n) })
}

// Root returns the real n-th root per lane.
func Root[T real.Real[T]](v Vec[T], n int) Vec[T] {
	return apply1(v, func(x T) T { return x.Root(n) })
}

// Atan2 returns the angle of (x, y) for lane pairs at the same index.
func Atan2[T real.Real[T]](y, x Vec[T]) Vec[T] {
	return apply2(y, x, func(a, b T) T { return a.Atan2(b) })
}

// Hypot returns sqrt(x*x + y*y) for lane pairs at the same index.
func Hypot[T real.Real[T]](x, y Vec[T]) Vec[T] {
	return apply2(x, y, func(a, b T) T { return a.Hypot(b) })
}

// Remainder returns the IEEE 754 remainder for lane pairs at the same index.
func Remainder[T real.Real[T]](x, y Vec[T]) Vec[T] {
	return apply2(x, y, func(a, b T) T { return a.Remainder(b) })
}

// CopySign returns magnitudes of x with signs of y, lane by lane.
func CopySign[T real.Real[T]](x, y Vec[T]) Vec[T] {
	return apply2(x, y, func(a, b T) T { return a.CopySign(b) })
}

// Elementwise arithmetic, so the package is usable on its own.

// Add returns x + y per lane.
func Add[T real.Real[T]](x, y Vec[T]) Vec[T] {
	return apply2(x, y, func(a, b T) T { return a.Add(b) })
}

// Sub returns x - y per lane.
func Sub[T real.Real[T]](x, y Vec[T]) Vec[T] {
	return apply2(x, y, func(a, b T) T { return a.Sub(b) })
}

// Mul returns x * y per lane.
func Mul[T real.Real[T]](x, y Vec[T]) Vec[T] {
	return apply2(x, y, func(a, b T) T { return a.Mul(b) })
}

// Div returns x / y per lane.
func Div[T real.Real[T]](x, y Vec[T]) Vec[T] {
	return apply2(x, y, func(a, b T) T { return a.Div(b) })
}

// Neg returns -x per lane.
func Neg[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Neg() })
}

// Abs returns |x| per lane.
func Abs[T real.Real[T]](v Vec[T]) Vec[T] {
	return apply1(v, func(x T) T { return x.Abs() })
}
