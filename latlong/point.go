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

// Package latlong holds the WGS84 and authalic-sphere point types (spec.md
// section 3) and the coordinate converter between them (section 4.1).
package latlong

import (
	"github.com/riskaware-ltd/open-eaggr-go/dggserr"
)

// Wgs84Point is a latitude/longitude/accuracy triple on the WGS84
// ellipsoid, as supplied by or returned to a caller of the DGGS facade.
// Accuracy is an area in square metres describing the uncertainty region
// around the point.
type Wgs84Point struct {
	LatDegs  float64
	LongDegs float64
	Accuracy float64 // m^2
}

// NewWgs84Point validates and constructs a WGS84 point. Latitude must lie
// in [-90,90], longitude in [-180,180], and accuracy must be non-negative.
func NewWgs84Point(latDegs, longDegs, accuracy float64) (Wgs84Point, error) {
	if latDegs < -90.0 || latDegs > 90.0 {
		return Wgs84Point{}, dggserr.New(dggserr.InvalidCoordinate,
			"latitude %g is outside the range [-90, 90]", latDegs)
	}
	if longDegs < -180.0 || longDegs > 180.0 {
		return Wgs84Point{}, dggserr.New(dggserr.InvalidCoordinate,
			"longitude %g is outside the range [-180, 180]", longDegs)
	}
	if accuracy < 0.0 {
		return Wgs84Point{}, dggserr.New(dggserr.InvalidCoordinate,
			"accuracy %g cannot be negative", accuracy)
	}
	return Wgs84Point{LatDegs: latDegs, LongDegs: longDegs, Accuracy: accuracy}, nil
}

// SphericalPoint is a latitude/longitude/accuracy triple on the authalic
// sphere - the surface the Snyder projection actually operates on.
// Accuracy is still an area in square metres; the projection is what turns
// it into a face-relative area (spec.md section 4.3).
type SphericalPoint struct {
	LatDegs  float64
	LongDegs float64
	Accuracy float64 // m^2
}

// NewSphericalPoint applies the same range/accuracy validation as
// NewWgs84Point, since the authalic sphere shares the same lat/long domain.
func NewSphericalPoint(latDegs, longDegs, accuracy float64) (SphericalPoint, error) {
	if latDegs < -90.0 || latDegs > 90.0 {
		return SphericalPoint{}, dggserr.New(dggserr.InvalidCoordinate,
			"latitude %g is outside the range [-90, 90]", latDegs)
	}
	if longDegs < -180.0 || longDegs > 180.0 {
		return SphericalPoint{}, dggserr.New(dggserr.InvalidCoordinate,
			"longitude %g is outside the range [-180, 180]", longDegs)
	}
	if accuracy < 0.0 {
		return SphericalPoint{}, dggserr.New(dggserr.InvalidCoordinate,
			"accuracy %g cannot be negative", accuracy)
	}
	return SphericalPoint{LatDegs: latDegs, LongDegs: longDegs, Accuracy: accuracy}, nil
}
