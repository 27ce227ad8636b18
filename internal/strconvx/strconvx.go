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

// Package strconvx provides the strict base-10 integer parsing the cell
// identifier grammar (spec.md section 6) needs: no leading/trailing
// whitespace, no locale-aware formatting, and a distinct result for
// "not a number" versus "out of range" so callers can raise
// InvalidIdentifier or RangeOverflow accordingly.
//
// It plays the same role as the original library's
// StringToBase10UnsignedShort/StringToBase10Short helpers.
package strconvx

import "strconv"

// Result reports whether a parse succeeded, and if not, why.
type Result int

const (
	// ConversionSuccessful: the string parsed cleanly into range.
	ConversionSuccessful Result = iota
	// ConversionOutOfRange: the string is a valid integer but does not fit
	// the requested width.
	ConversionOutOfRange
	// ConversionInconvertible: the string is not a base-10 integer at all.
	ConversionInconvertible
)

// ToUint16 parses s as a non-negative base-10 integer fitting in a uint16.
func ToUint16(s string) (uint16, Result) {
	if len(s) == 0 {
		return 0, ConversionInconvertible
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, ConversionOutOfRange
		}
		return 0, ConversionInconvertible
	}
	if v > 0xFFFF {
		return 0, ConversionOutOfRange
	}
	return uint16(v), ConversionSuccessful
}

// ToInt64 parses s as a signed base-10 integer fitting in an int64. Unlike
// ToUint16, a leading '-' is accepted since offset rows/columns are signed.
func ToInt64(s string) (int64, Result) {
	if len(s) == 0 {
		return 0, ConversionInconvertible
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, ConversionOutOfRange
		}
		return 0, ConversionInconvertible
	}
	return v, ConversionSuccessful
}
