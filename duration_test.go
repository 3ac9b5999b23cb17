// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// units is every view of a Duration, for comparison with cmp.
type units struct {
	Micros, Millis, Seconds, SubSeconds, Minutes, Hours, Days, SubDayMicros int64
}

func unitsOf(d Duration) units {
	return units{
		Micros:       d.Micros(),
		Millis:       d.Millis(),
		Seconds:      d.Seconds(),
		SubSeconds:   d.SubSeconds(),
		Minutes:      d.Minutes(),
		Hours:        d.Hours(),
		Days:         d.Days(),
		SubDayMicros: d.SubDayMicros(),
	}
}

func TestDuration(t *testing.T) {
	tcs := []struct {
		v    int64
		want units
	}{
		{0, units{}},
		{1, units{1, 0, 0, 1, 0, 0, 0, 1}},
		{-1, units{-1, 0, 0, -1, 0, 0, 0, -1}},
		{1999, units{1999, 1, 0, 1999, 0, 0, 0, 1999}},
		{90 * MicrosPerSecond, units{90000000, 90000, 90, 0, 1, 0, 0, 90000000}},
		{-90*MicrosPerSecond - 5, units{-90000005, -90000, -90, -5, -1, 0, 0, -90000005}},
		{MicrosPerDay + 3*MicrosPerHour + 7, units{97200000007, 97200000, 97200, 7, 1620, 27, 1, 3*MicrosPerHour + 7}},
		{-2*MicrosPerDay - MicrosPerHour, units{-176400000000, -176400000, -176400, 0, -2940, -49, -2, -MicrosPerHour}},
		{59 * MicrosPerMinute, units{3540000000, 3540000, 3540, 0, 59, 0, 0, 3540000000}},
	}
	for _, tc := range tcs {
		t.Run(strconv.FormatInt(tc.v, 10), func(t *testing.T) {
			if diff := cmp.Diff(tc.want, unitsOf(DurationOf(tc.v))); diff != "" {
				t.Errorf("DurationOf(%d) mismatch (-want +got):\n%s", tc.v, diff)
			}
		})
	}
}

func TestDurationConsistency(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	vs := []int64{0, 1, -1, math.MaxInt64, math.MinInt64 + 1, MicrosPerDay, -MicrosPerDay}
	for i := 0; i < 1000; i++ {
		vs = append(vs, rnd.Int63()-rnd.Int63(), rnd.Int63n(10*MicrosPerDay)-5*MicrosPerDay)
	}
	for _, v := range vs {
		d := DurationOf(v)
		if got := d.Seconds()*MicrosPerSecond + d.SubSeconds(); got != v {
			t.Errorf("DurationOf(%d): Seconds()*1e6 + SubSeconds() = %d", v, got)
		}
		if got := d.Days()*MicrosPerDay + d.SubDayMicros(); got != v {
			t.Errorf("DurationOf(%d): Days()*MicrosPerDay + SubDayMicros() = %d", v, got)
		}
		if s := d.SubSeconds(); s != 0 && (s < 0) != (v < 0) {
			t.Errorf("DurationOf(%d).SubSeconds() = %d, want sign of %d", v, s, v)
		}
		if a := d.Abs(); a.Micros() < 0 || (a.Micros() != v && a.Micros() != -v) {
			t.Errorf("DurationOf(%d).Abs() = %d", v, a.Micros())
		}
	}
}

func TestDurationAbs(t *testing.T) {
	tcs := []struct {
		v, want int64
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{math.MaxInt64, math.MaxInt64},
		{-math.MaxInt64, math.MaxInt64},
		{math.MinInt64, math.MinInt64},
	}
	for _, tc := range tcs {
		if got := DurationOf(tc.v).Abs().Micros(); got != tc.want {
			t.Errorf("DurationOf(%d).Abs() = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestDurationMarshalBinary(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 1 << 40, math.MinInt64, math.MaxInt64} {
		want := DurationOf(v)
		b, err := want.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		var got Duration
		if err := got.UnmarshalBinary(b); err != nil || got != want {
			t.Errorf("UnmarshalBinary(%q) = %d, %v, want %d, <nil>", b, got.Micros(), err, v)
		}
	}
	var d Duration
	if err := d.UnmarshalBinary([]byte{0x80, 0x80}); err == nil {
		t.Errorf("UnmarshalBinary(truncated) = <nil>, want error")
	}
}
