// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// Lengths of fixed time units, in microseconds. A day is always 24 hours;
// there are no leap seconds and no daylight saving time.
const (
	MicrosPerMilli  int64 = 1000
	MicrosPerSecond int64 = 1000 * MicrosPerMilli
	MicrosPerMinute int64 = 60 * MicrosPerSecond
	MicrosPerHour   int64 = 60 * MicrosPerMinute
	MicrosPerDay    int64 = 24 * MicrosPerHour
	MicrosPerWeek   int64 = 7 * MicrosPerDay
)

// clockMicros returns the length of the given clock offset. The arguments are
// not range checked.
func clockMicros(hour, min, sec int) int64 {
	return int64(hour)*MicrosPerHour + int64(min)*MicrosPerMinute + int64(sec)*MicrosPerSecond
}
