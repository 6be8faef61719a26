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

// Package real provides the elementary transcendental functions generically
// over every floating-point width the module supports.
//
// The package is organized as a two-level capability hierarchy expressed as
// constraint interfaces:
//
//   - ElementaryFunctions[T] lists the elementary function catalog (exp, log,
//     trig, hyperbolic and their inverses) together with Pow, PowN and Root.
//   - Real[T] refines it with the primitive floating-point operations and the
//     operations that only make sense for real numbers, such as Atan2.
//   - GammaReal[T] conditionally refines Real with LogGamma; it is absent on
//     platforms without a usable log-gamma routine (see gamma.go).
//
// Four concrete widths conform: Float64, Float32, and the software formats
// Float16 and BFloat16. Every catalog entry delegates to the width-matched
// routine of the Go math library, so results are bit-for-bit identical to
// calling the standard library directly at that width.
//
// Each capability operation is mirrored as a package-level generic function,
// so generic numeric code can write
//
//	y := real.Sin(x)
//	z := real.Pow(x, y)
//
// for any conforming scalar type. The vec package mirrors the same names for
// fixed-size vectors of conforming scalars, applied independently per lane.
//
// There are no error returns anywhere: domain violations produce NaN, the
// conventional floating-point failure channel. All operations are pure
// functions and safe for unsynchronized concurrent use.
package real
