// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import "encoding/binary"

// A Duration is the signed number of microseconds between two Dates, as
// returned by Date.Sub.
//
// All conversions truncate towards zero, and the Sub* remainders have the
// sign of the Duration, so that
//
//	d.Seconds()*MicrosPerSecond + d.SubSeconds() == d.Micros()
//	d.Days()*MicrosPerDay + d.SubDayMicros() == d.Micros()
//
// The zero value is an empty Duration.
type Duration struct {
	v int64
}

// DurationOf returns a Duration of n microseconds.
func DurationOf(n int64) Duration {
	return Duration{n}
}

// Micros returns d as a number of microseconds.
func (d Duration) Micros() int64 { return d.v }

// Millis returns d as a number of whole milliseconds.
func (d Duration) Millis() int64 { return d.v / MicrosPerMilli }

// Seconds returns d as a number of whole seconds.
func (d Duration) Seconds() int64 { return d.v / MicrosPerSecond }

// SubSeconds returns the microseconds left over by Seconds.
func (d Duration) SubSeconds() int64 { return d.v % MicrosPerSecond }

// Minutes returns d as a number of whole minutes.
func (d Duration) Minutes() int64 { return d.v / MicrosPerMinute }

// Hours returns d as a number of whole hours.
func (d Duration) Hours() int64 { return d.v / MicrosPerHour }

// Days returns d as a number of whole days.
func (d Duration) Days() int64 { return d.v / MicrosPerDay }

// SubDayMicros returns the microseconds left over by Days.
func (d Duration) SubDayMicros() int64 { return d.v % MicrosPerDay }

// Abs returns the absolute value of d. The absolute value of the most
// negative Duration is itself.
func (d Duration) Abs() Duration {
	if d.v < 0 {
		return Duration{-d.v}
	}
	return d
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// duration is represented as a [binary.Varint] of its microseconds.
func (d Duration) MarshalBinary() ([]byte, error) {
	return binary.AppendVarint(nil, d.v), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Duration) UnmarshalBinary(b []byte) error {
	v, err := readVarint(b, "duration")
	if err != nil {
		return err
	}
	d.v = v
	return nil
}
