// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civil contains a timezone-naive Gregorian date and time type with
// microsecond resolution.
//
// A Date is a signed number of microseconds since 1970-01-01T00:00:00 together
// with its calendar breakdown: year, month, day of month, day of year,
// weekday, hour, minute, second and microsecond. The breakdown is computed once,
// when the Date is created, so the accessors are free.
//
// Compared to time.Time:
//
//   - There is no location. A Date is what a wall clock in some unspecified
//     timezone shows, and every day has exactly 24 hours.
//   - The year range is not limited to four digits. Years before 1 and after
//     9999 are handled like any other, using the proleptic Gregorian calendar.
//   - All arithmetic returns a new Date. There is no way to change a field of
//     an existing Date.
//
// The difference of two Dates is a Duration, which only offers conversions
// into coarser units. There is no arithmetic on Durations.
package civil

import (
	"encoding/binary"
	"errors"
	"strconv"
	"time"

	"gonih.org/civil/internal/calendar"
)

// A Weekday specifies a day of the week. Weeks start on Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Std returns the time.Weekday for d.
func (d Weekday) Std() time.Weekday {
	return time.Weekday((d + 1) % 7)
}

// String returns the English name of the day ("Monday", "Tuesday", ...).
func (d Weekday) String() string {
	if Monday <= d && d <= Sunday {
		return d.Std().String()
	}
	return "%!Weekday(" + strconv.Itoa(int(d)) + ")"
}

// A Date is an instant on the civil calendar with microsecond resolution.
//
// The zero value is 1970-01-01T00:00:00. Dates are immutable and can be
// compared with ==, which agrees with Equal.
type Date struct {
	abs int64

	// All fields are stored relative to the zero value, so that Date{}
	// decomposes the epoch.
	year  int   // years since 1970
	yday  int16 // 0-based
	month int8  // 0-based
	mday  int8  // 0-based
	wday  int8  // days since the last Thursday
	hour  int8
	min   int8
	sec   int8
	usec  int32
}

// FromMicros returns the Date that lies n microseconds after
// 1970-01-01T00:00:00. n may be negative.
func FromMicros(n int64) Date {
	days, rem := calendar.FloorDiv(n, MicrosPerDay)
	year, yday := calendar.CountYear(days)
	month, mday := calendar.YDayToMDay(yday, calendar.IsLeap(year))
	_, wday := calendar.FloorDiv(days, 7)

	return Date{
		abs:   n,
		year:  year - 1970,
		yday:  int16(yday),
		month: int8(month - 1),
		mday:  int8(mday - 1),
		wday:  int8(wday),
		hour:  int8(rem / MicrosPerHour),
		min:   int8(rem / MicrosPerMinute % 60),
		sec:   int8(rem / MicrosPerSecond % 60),
		usec:  int32(rem % MicrosPerSecond),
	}
}

// FromTime returns the Date showing the same wall clock reading as t does in
// UTC.
func FromTime(t time.Time) Date {
	return FromMicros(t.UnixMicro())
}

// Of returns midnight at the start of the given date.
//
// month must be in [1, 12] and day in [1, 31]. The day is not checked against
// the length of the month: days past its end continue into the next month, so
// April 31 is May 1 and February 29 of a common year is March 1.
func Of(year int, month time.Month, day int) (Date, error) {
	if err := checkRange("Of", "month", int(month), 1, 12); err != nil {
		return Date{}, err
	}
	if err := checkRange("Of", "day", day, 1, 31); err != nil {
		return Date{}, err
	}
	return FromMicros(dayStart(year, month, day)), nil
}

// MustOf is like Of but panics if month or day is out of range. It is
// intended for fixed dates in tests and variable initialization.
func MustOf(year int, month time.Month, day int) Date {
	d, err := Of(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// dayStart returns the absolute value of midnight at the start of the given
// date.
func dayStart(year int, month time.Month, day int) int64 {
	days := calendar.CountYearRev(year) + int64(calendar.DayOfYear(int(month), day, calendar.IsLeap(year)))
	return days * MicrosPerDay
}

// IsLeap reports whether year is a leap year.
func IsLeap(year int) bool {
	return calendar.IsLeap(year)
}

// Micros returns the number of microseconds since 1970-01-01T00:00:00.
func (d Date) Micros() int64 {
	return d.abs
}

// Time returns d as a time.Time in UTC.
func (d Date) Time() time.Time {
	return time.UnixMicro(d.abs).UTC()
}

// AddHours returns d+n hours.
func (d Date) AddHours(n int64) Date {
	return FromMicros(d.abs + n*MicrosPerHour)
}

// AddDays returns d+n days.
func (d Date) AddDays(n int64) Date {
	return FromMicros(d.abs + n*MicrosPerDay)
}

// AddWeeks returns d+n weeks.
func (d Date) AddWeeks(n int64) Date {
	return FromMicros(d.abs + n*MicrosPerWeek)
}

// AddClock returns d plus the given number of hours, minutes and seconds. The
// arguments may be negative and are not limited to their usual ranges.
func (d Date) AddClock(hour, min, sec int) Date {
	return FromMicros(d.abs + clockMicros(hour, min, sec))
}

// SetClock returns the given time of day on the day of d. It returns an error
// unless hour is in [0, 23] and min and sec are in [0, 59].
func (d Date) SetClock(hour, min, sec int) (Date, error) {
	if err := checkRange("SetClock", "hour", hour, 0, 23); err != nil {
		return Date{}, err
	}
	if err := checkRange("SetClock", "minute", min, 0, 59); err != nil {
		return Date{}, err
	}
	if err := checkRange("SetClock", "second", sec, 0, 59); err != nil {
		return Date{}, err
	}
	return FromMicros(dayStart(d.Date()) + clockMicros(hour, min, sec)), nil
}

// ResetClock returns midnight at the start of the day of d.
func (d Date) ResetClock() Date {
	return FromMicros(dayStart(d.Date()))
}

// Sub returns the duration d-u.
func (d Date) Sub(u Date) Duration {
	return DurationOf(d.abs - u.abs)
}

// Compare returns -1 if d is before u, +1 if d is after u and 0 if they are
// the same instant.
func (d Date) Compare(u Date) int {
	switch {
	case d.abs < u.abs:
		return -1
	case d.abs > u.abs:
		return +1
	}
	return 0
}

// Before reports whether d is before u.
func (d Date) Before(u Date) bool {
	return d.abs < u.abs
}

// After reports whether d is after u.
func (d Date) After(u Date) bool {
	return d.abs > u.abs
}

// Equal reports whether d and u are the same instant.
func (d Date) Equal(u Date) bool {
	return d.abs == u.abs
}

// IsZero reports whether d is 1970-01-01T00:00:00.
func (d Date) IsZero() bool {
	return d.abs == 0
}

// Date returns the year, month and day of d.
func (d Date) Date() (year int, month time.Month, day int) {
	return d.Year(), d.Month(), d.Day()
}

// Clock returns the hour, minute and second of d.
func (d Date) Clock() (hour, min, sec int) {
	return d.Hour(), d.Minute(), d.Second()
}

// Year returns the year of d.
func (d Date) Year() int {
	return d.year + 1970
}

// Month returns the month of d.
func (d Date) Month() time.Month {
	return time.Month(d.month + 1)
}

// Day returns the day of the month of d, starting at 1.
func (d Date) Day() int {
	return int(d.mday) + 1
}

// YearDay returns the day of the year of d, in the range [1,365] for common
// years, and [1,366] in leap years.
func (d Date) YearDay() int {
	return int(d.yday) + 1
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	return (Thursday + Weekday(d.wday)) % 7 // 1970-01-01 was a Thursday
}

// Hour returns the hour of d, in [0, 23].
func (d Date) Hour() int {
	return int(d.hour)
}

// Minute returns the minute of d, in [0, 59].
func (d Date) Minute() int {
	return int(d.min)
}

// Second returns the second of d, in [0, 59].
func (d Date) Second() int {
	return int(d.sec)
}

// Microsecond returns the microsecond offset within the second of d, in
// [0, 999999].
func (d Date) Microsecond() int {
	return int(d.usec)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as a [binary.Varint] of the number of microseconds since
// 1970-01-01T00:00:00.
func (d Date) MarshalBinary() ([]byte, error) {
	return binary.AppendVarint(nil, d.abs), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Date) UnmarshalBinary(b []byte) error {
	v, err := readVarint(b, "date")
	if err != nil {
		return err
	}
	*d = FromMicros(v)
	return nil
}

func readVarint(b []byte, what string) (int64, error) {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return 0, errors.New("encoded " + what + " truncated")
	case i < 0:
		return 0, errors.New("encoded " + what + " overflows int64")
	case i != len(b):
		return 0, errors.New("extra data after " + what)
	}
	return v, nil
}
