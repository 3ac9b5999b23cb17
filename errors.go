// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"errors"
	"fmt"
)

// ErrRange is returned (wrapped in a *RangeError) when a calendar or clock
// field passed to a constructor is outside its permitted range.
var ErrRange = errors.New("value out of range")

// A RangeError records a field that was outside [Min, Max].
type RangeError struct {
	Op    string // function that rejected the value, like "Of"
	Field string // "month", "day", "hour", "minute" or "second"
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("civil.%s: %s %d out of range [%d, %d]", e.Op, e.Field, e.Value, e.Min, e.Max)
}

// Unwrap returns ErrRange.
func (e *RangeError) Unwrap() error {
	return ErrRange
}

// checkRange returns a *RangeError if v is outside [lo, hi].
func checkRange(op, field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &RangeError{Op: op, Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
