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

// Free-function mirror of the capability surface, scalar resolution. Each
// function is generic over the weakest capability that provides the
// operation and forwards directly to it; the vec package mirrors the same
// names for fixed-size vectors. The compiler resolves everything statically,
// there is no runtime dispatch.

// Exp returns e**x.
func Exp[T ElementaryFunctions[T]](x T) T { return x.Exp() }

// ExpM1 returns e**x - 1, accurate near zero.
func ExpM1[T ElementaryFunctions[T]](x T) T { return x.ExpM1() }

// Log returns the natural logarithm of x.
func Log[T ElementaryFunctions[T]](x T) T { return x.Log() }

// Log1p returns log(1 + x), accurate near zero.
func Log1p[T ElementaryFunctions[T]](x T) T { return x.Log1p() }

// Log2 returns the base-2 logarithm of x.
func Log2[T ElementaryFunctions[T]](x T) T { return x.Log2() }

// Log10 returns the base-10 logarithm of x.
func Log10[T ElementaryFunctions[T]](x T) T { return x.Log10() }

// Sqrt returns the square root of x.
func Sqrt[T ElementaryFunctions[T]](x T) T { return x.Sqrt() }

// Sin returns the sine of x (radians).
func Sin[T ElementaryFunctions[T]](x T) T { return x.Sin() }

// Cos returns the cosine of x (radians).
func Cos[T ElementaryFunctions[T]](x T) T { return x.Cos() }

// Tan returns the tangent of x (radians).
func Tan[T ElementaryFunctions[T]](x T) T { return x.Tan() }

// Asin returns the arcsine of x.
func Asin[T ElementaryFunctions[T]](x T) T { return x.Asin() }

// Acos returns the arccosine of x.
func Acos[T ElementaryFunctions[T]](x T) T { return x.Acos() }

// Atan returns the arctangent of x.
func Atan[T ElementaryFunctions[T]](x T) T { return x.Atan() }

// Sinh returns the hyperbolic sine of x.
func Sinh[T ElementaryFunctions[T]](x T) T { return x.Sinh() }

// Cosh returns the hyperbolic cosine of x.
func Cosh[T ElementaryFunctions[T]](x T) T { return x.Cosh() }

// Tanh returns the hyperbolic tangent of x.
func Tanh[T ElementaryFunctions[T]](x T) T { return x.Tanh() }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[T ElementaryFunctions[T]](x T) T { return x.Asinh() }

// Acosh returns the inverse hyperbolic cosine of x.
func Acosh[T ElementaryFunctions[T]](x T) T { return x.Acosh() }

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh[T ElementaryFunctions[T]](x T) T { return x.Atanh() }

// Pow returns x**y. Any negative base yields NaN, even for integral y; use
// PowN when the exponent is a known integer.
func Pow[T ElementaryFunctions[T]](x, y T) T { return x.Pow(y) }

// PowN returns x**n for an integer exponent, with the documented precision
// trade for exponents the width cannot represent exactly.
func PowN[T ElementaryFunctions[T]](x T, n int) T { return x.PowN(n) }

// Root returns the real n-th root of x: NaN when x is negative and n even,
// otherwise pow(|x|, 1/n) with the sign of x.
func Root[T ElementaryFunctions[T]](x T, n int) T { return x.Root(n) }

// Atan2 returns the angle of the vector (x, y) in [-π, π].
func Atan2[T Real[T]](y, x T) T { return y.Atan2(x) }

// Exp2 returns 2**x.
func Exp2[T Real[T]](x T) T { return x.Exp2() }

// Exp10 returns 10**x.
func Exp10[T Real[T]](x T) T { return x.Exp10() }

// Erf returns the error function of x.
func Erf[T Real[T]](x T) T { return x.Erf() }

// Erfc returns the complementary error function of x.
func Erfc[T Real[T]](x T) T { return x.Erfc() }

// Gamma returns the gamma function of x.
func Gamma[T Real[T]](x T) T { return x.Gamma() }

// Hypot returns sqrt(x*x + y*y), avoiding intermediate overflow.
func Hypot[T Real[T]](x, y T) T { return x.Hypot(y) }

// Remainder returns the IEEE 754 remainder of x/y.
func Remainder[T FloatingPoint[T]](x, y T) T { return x.Remainder(y) }

// CopySign returns a value with the magnitude of x and the sign of y.
func CopySign[T FloatingPoint[T]](x, y T) T { return x.CopySign(y) }
