// Copyright 2026 The open-eaggr-go Authors
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

// Package mathutil collects the small, allocation-free numeric helpers the
// rest of the DGGS core shares: angle units, angle wrapping, point-in-triangle
// tests and the accuracy<->resolution conversions used by both grids.
package mathutil

import "math"

const (
	// Pi is math.Pi, kept locally so callers don't need a second import for
	// the handful of call sites that want the unadorned constant.
	Pi = math.Pi

	// TwoPi is 2*Pi.
	TwoPi = 2.0 * math.Pi

	// PiOver180 converts degrees to radians when multiplied.
	PiOver180 = math.Pi / 180.0

	// Pi180 converts radians to degrees when multiplied.
	Pi180 = 180.0 / math.Pi

	// Epsilon is a general-purpose threshold for near-zero floating point
	// comparisons in the projection and grid math.
	Epsilon = 1e-15
)

// Degrees is an angle measured in decimal degrees. It exists as a distinct
// type from Radians so a latitude in degrees can't be passed where radians
// are expected without an explicit conversion.
type Degrees float64

// Radians is an angle measured in radians.
type Radians float64

// ToRadians converts an angle in degrees to radians.
func (d Degrees) ToRadians() Radians {
	return Radians(float64(d) * PiOver180)
}

// ToDegrees converts an angle in radians to degrees.
func (r Radians) ToDegrees() Degrees {
	return Degrees(float64(r) * Pi180)
}

// DegsToRads converts from decimal degrees to radians.
func DegsToRads(degrees float64) float64 {
	return degrees * PiOver180
}

// RadsToDegs converts from radians to decimal degrees.
func RadsToDegs(radians float64) float64 {
	return radians * Pi180
}

// PosAngleRads normalizes radians to a value between 0.0 and 2*Pi.
func PosAngleRads(rads float64) float64 {
	r := rads
	if r < 0.0 {
		r += TwoPi
	}
	if r >= TwoPi {
		r -= TwoPi
	}
	return r
}

// WrapLongitudeDegs constrains a longitude in decimal degrees to
// (-180, 180], the canonical form required by the data model: a point
// projected at exactly -180 degrees comes back out at +180.
func WrapLongitudeDegs(lonDegs float64) float64 {
	lon := lonDegs
	for lon <= -180.0 {
		lon += 360.0
	}
	for lon > 180.0 {
		lon -= 360.0
	}
	return lon
}

// WrapAzimuthToSector reduces az modulo sectorWidth so the result lies in
// [0, sectorWidth), returning the reduced angle and the number of whole
// sectors that were removed. The Snyder projection does not call it; it
// folds azimuths with its own foldToEdgeAzimuth.
func WrapAzimuthToSector(az, sectorWidth float64) (reduced float64, sectors int) {
	a := PosAngleRads(az)
	for a >= sectorWidth {
		a -= sectorWidth
		sectors++
	}
	return a, sectors
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// IPow raises base to a non-negative integer power using exponentiation by
// squaring.
func IPow(base, exp int) int {
	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}
