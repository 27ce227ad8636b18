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

// Package dggserr defines the error kinds shared across the DGGS core
// (spec.md section 7) and a typed error that renders the "<kind>: <detail>"
// strings the external boundary (section 6) promises to existing clients.
package dggserr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind tags the reason an operation failed, mirroring the five kinds in
// spec.md section 7.
type Kind int

const (
	// InvalidCoordinate: lat/long outside [-90,90]/[-180,180] or negative
	// accuracy.
	InvalidCoordinate Kind = iota
	// InvalidIdentifier: identifier fails grammar, face > max, digit > max
	// for the grid, resolution > 40, or offset coords unparseable.
	InvalidIdentifier
	// CellKind: operation received a cell whose variety the indexer cannot
	// handle.
	CellKind
	// RangeOverflow: numeric conversion from text to integer out of range.
	RangeOverflow
	// BadInput: any other domain violation.
	BadInput
)

func (k Kind) String() string {
	switch k {
	case InvalidCoordinate:
		return "InvalidCoordinate"
	case InvalidIdentifier:
		return "InvalidIdentifier"
	case CellKind:
		return "CellKind"
	case RangeOverflow:
		return "RangeOverflow"
	case BadInput:
		return "BadInput"
	default:
		return "Unknown"
	}
}

// Error is the error type returned at every public call site in the core.
// It renders as "<kind>: <detail>" (spec.md section 6), and wraps an
// optional underlying cause so callers using errors.Is/errors.As/
// errors.Cause can still reach it.
type Error struct {
	kind   Kind
	detail string
	cause  error
}

// New builds an *Error with the given kind and a fmt.Sprintf-style detail
// message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, detail: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that also carries an underlying cause, attached via
// github.com/pkg/errors so the original stack trace survives.
func Wrap(cause error, kind Kind, format string, args ...any) *Error {
	return &Error{
		kind:   kind,
		detail: fmt.Sprintf(format, args...),
		cause:  errors.Wrap(cause, fmt.Sprintf(format, args...)),
	}
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind { return e.kind }

// Detail returns the error's detail string, without the "<kind>: " prefix.
func (e *Error) Detail() string { return e.detail }

// Error renders "<kind>: <detail>", the compatibility string format
// promised at the external boundary (spec.md section 6).
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.detail)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Cause exposes the wrapped cause, if any, to github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.cause }

// Is reports whether target is a *dggserr.Error with the same kind,
// supporting errors.Is(err, dggserr.New(dggserr.CellKind, "")) style checks
// against just the kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind
}
