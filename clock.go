// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import "time"

// A Clock reports the current wall-clock time as microseconds since
// 1970-01-01T00:00:00.
type Clock interface {
	UnixMicro() int64
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() int64

// UnixMicro returns f().
func (f ClockFunc) UnixMicro() int64 {
	return f()
}

type systemClock struct{}

func (systemClock) UnixMicro() int64 {
	return time.Now().UnixMicro()
}

// SystemClock is the Clock used by Now. It reads the system time in UTC.
var SystemClock Clock = systemClock{}

// Now returns the current date and time according to SystemClock.
func Now() Date {
	return NowFrom(SystemClock)
}

// NowFrom returns the current date and time according to c.
func NowFrom(c Clock) Date {
	return FromMicros(c.UnixMicro())
}
