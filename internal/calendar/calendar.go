// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar contains the proleptic Gregorian lookup tables and the
// conversions between day ordinals, years, days of year and days of month.
//
// Day ordinals count days relative to 1970-01-01, which is day 0. Days of year
// are 0-based. Months and days of month are 1-based.
package calendar

import "golang.org/x/exp/constraints"

// The year cycle cutting is the one the standard library uses for time.Time.
// See this comment for explanations:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353
const (
	// Days in a given period of years.
	DaysPer400Years = 146097
	DaysPer100Years = 36524
	DaysPer4Years   = 1461

	// EpochDays is the number of days from 0001-01-01 to 1970-01-01. Year 1
	// is 1 mod 400, so it starts a full 400 year cycle.
	EpochDays = 719162
)

// NormalYearDays[m-1] is the day of year on which month m starts in a common
// year. The entry for m=13 is the length of the year.
var NormalYearDays = [13]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// LeapYearDays is NormalYearDays for leap years.
var LeapYearDays = [13]int{
	0,
	31,
	31 + 29,
	31 + 29 + 31,
	31 + 29 + 31 + 30,
	31 + 29 + 31 + 30 + 31,
	31 + 29 + 31 + 30 + 31 + 30,
	31 + 29 + 31 + 30 + 31 + 30 + 31,
	31 + 29 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 29 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 29 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 29 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 29 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// NormalYearDaysRev[m][d] is the day of year of month m, day d in a common
// year. Row and column 0 are unused. Days past the end of a month are not
// rejected, they continue into the next month: [4][31] is May 1.
var NormalYearDaysRev = reverse(&NormalYearDays)

// LeapYearDaysRev is NormalYearDaysRev for leap years.
var LeapYearDaysRev = reverse(&LeapYearDays)

func reverse(days *[13]int) (rev [13][32]int) {
	for m := 1; m <= 12; m++ {
		for d := 1; d <= 31; d++ {
			rev[m][d] = days[m-1] + d - 1
		}
	}
	return rev
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// FloorDiv returns q and r such that a == q*b + r, rounding q towards
// negative infinity. For positive b, 0 <= r < b.
func FloorDiv[T constraints.Signed](a, b T) (q, r T) {
	q, r = a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}

// CountYear returns the year containing the given day ordinal and the day of
// year of it within that year.
func CountYear(days int64) (year, yday int) {
	// Account for 400 year cycles, counted from 0001-01-01.
	n, d := FloorDiv(days+EpochDays, DaysPer400Years)
	y := 400 * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / DaysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / DaysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= DaysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / DaysPer4Years
	y += 4 * n
	d -= DaysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	return int(y + 1), int(d)
}

// CountYearRev returns the day ordinal of January 1 of year.
func CountYearRev(year int) int64 {
	n, y := FloorDiv(int64(year)-1, 400)
	d := DaysPer400Years * n

	d += DaysPer100Years * (y / 100)
	y %= 100

	d += DaysPer4Years * (y / 4)
	y %= 4

	d += 365 * y

	return d - EpochDays
}

// YDayToMDay returns the month and day of month of the given day of year.
func YDayToMDay(yday int, leap bool) (month, mday int) {
	days := &NormalYearDays
	if leap {
		days = &LeapYearDays
	}
	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	m := yday / 31
	if yday >= days[m+1] {
		m++
	}
	return m + 1, yday - days[m] + 1
}

// DayOfYear returns the day of year of the given month and day of month. The
// day is not checked against the length of the month, see NormalYearDaysRev.
func DayOfYear(month, mday int, leap bool) int {
	if leap {
		return LeapYearDaysRev[month][mday]
	}
	return NormalYearDaysRev[month][mday]
}
