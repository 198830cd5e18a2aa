// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fastcsv

import (
	"math"
)

// Valid domain for days-since-epoch date values: [0000-03-01, 9999-12-31].
const (
	minDateDays = -719468
	maxDateDays = 2932896
)

// floorDiv and floorMod implement floored (not truncated) integer
// division, so that day/time splits of negative timestamps keep the
// time-of-day component non-negative.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// civilFromDays converts days since 1970-01-01 (already known to lie in
// [minDateDays, maxDateDays]) to a (year, month, day) triple using the
// Hinnant days-from-civil algorithm rebased to 0000-03-01, via the
// monthday lookup table. The rebase sidesteps any leap-year test.
func civilFromDays(days int64) (year, month, day int) {
	xx := days + 719468
	y := (xx - xx/1461 + xx/36525 - xx/146097) / 365
	z := xx - y*365 - y/4 + y/100 - y/400 + 1
	idx := (z + 365) % 366 // (z-1) mod 366, kept non-negative for z == 0 (Feb 29)
	md := int(monthday[idx])
	month, day = md/100, md%100
	if z != 0 && month < 3 {
		y++
	}
	return int(y), month, day
}

func writeYear4(buf []byte, pos int, y int) int {
	buf[pos] = byte('0' + y/1000%10)
	buf[pos+1] = byte('0' + y/100%10)
	buf[pos+2] = byte('0' + y/10%10)
	buf[pos+3] = byte('0' + y%10)
	return pos + 4
}

func writeTwoDigit(buf []byte, pos, v int) int {
	buf[pos] = byte('0' + v/10)
	buf[pos+1] = byte('0' + v%10)
	return pos + 2
}

// writeDateYMD appends a calendar date, "YYYY-MM-DD" or "YYYYMMDD" when
// squashed.
func writeDateYMD(buf []byte, pos, y, m, d int, squash bool) int {
	pos = writeYear4(buf, pos, y)
	if !squash {
		buf[pos] = '-'
		pos++
	}
	pos = writeTwoDigit(buf, pos, m)
	if !squash {
		buf[pos] = '-'
		pos++
	}
	return writeTwoDigit(buf, pos, d)
}

// writeClockHMS appends seconds-of-day as "HH:MM:SS" or "HHMMSS" when
// squashed.
func writeClockHMS(buf []byte, pos int, secOfDay int, squash bool) int {
	h, rem := secOfDay/3600, secOfDay%3600
	m, s := rem/60, rem%60
	pos = writeTwoDigit(buf, pos, h)
	if !squash {
		buf[pos] = ':'
		pos++
	}
	pos = writeTwoDigit(buf, pos, m)
	if !squash {
		buf[pos] = ':'
		pos++
	}
	return writeTwoDigit(buf, pos, s)
}

// writeDateInt32 appends a DateInt32 cell: days since 1970-01-01, with
// INT32_MIN or any value outside [minDateDays, maxDateDays] writing NA.
func writeDateInt32(buf []byte, pos int, v int32, p *fmtParams) int {
	if int64(v) < minDateDays || int64(v) > maxDateDays {
		return p.writeNA(buf, pos)
	}
	y, m, d := civilFromDays(int64(v))
	return writeDateYMD(buf, pos, y, m, d, p.squash)
}

// writeDateFloat64 appends a DateFloat64 cell: whole days since
// 1970-01-01 stored as a double. NaN or out-of-domain writes NA.
func writeDateFloat64(buf []byte, pos int, v float64, p *fmtParams) int {
	if math.IsNaN(v) {
		return p.writeNA(buf, pos)
	}
	days := int64(math.Floor(v + 0.5))
	if days < minDateDays || days > maxDateDays {
		return p.writeNA(buf, pos)
	}
	y, m, d := civilFromDays(days)
	return writeDateYMD(buf, pos, y, m, d, p.squash)
}

// writeITime appends an ITime cell: integer seconds-of-day in [0,86399];
// any negative value writes NA.
func writeITime(buf []byte, pos int, v int32, p *fmtParams) int {
	if v < 0 || v > 86399 {
		return p.writeNA(buf, pos)
	}
	return writeClockHMS(buf, pos, int(v), p.squash)
}

// writePOSIXct appends a POSIXct cell: seconds since epoch as a double.
// Non-finite values write NA.
func writePOSIXct(buf []byte, pos int, x float64, p *fmtParams) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return p.writeNA(buf, pos)
	}
	xi := int64(math.Floor(x))
	frac := x - math.Floor(x)

	m := int64(frac * 1e7)
	m += m % 10
	m /= 10
	if m >= 1000000 {
		m -= 1000000
		xi++
	}

	d := floorDiv(xi, 86400)
	t := int(floorMod(xi, 86400))

	y, mo, da := civilFromDays(d)
	pos = writeDateYMD(buf, pos, y, mo, da, p.squash)
	if !p.squash {
		buf[pos] = 'T'
		pos++
	}
	pos = writeClockHMS(buf, pos, t, p.squash)

	switch {
	case p.squash:
		pos = writePaddedInt(buf[pos:], int(m/1000), 3) + pos
	case m != 0 && m%1000 == 0:
		buf[pos] = '.'
		pos++
		pos = writePaddedInt(buf[pos:], int(m/1000), 3) + pos
	case m != 0:
		buf[pos] = '.'
		pos++
		pos = writePaddedInt(buf[pos:], int(m), 6) + pos
	}
	if !p.squash {
		buf[pos] = 'Z'
		pos++
	}
	return pos
}

// writeNanotime appends a Nanotime cell: 64-bit nanoseconds since epoch,
// always rendered with 9 fractional digits. math.MinInt64 writes NA.
func writeNanotime(buf []byte, pos int, ns int64, p *fmtParams) int {
	if ns == math.MinInt64 {
		return p.writeNA(buf, pos)
	}
	secs := floorDiv(ns, 1000000000)
	nanos := int(floorMod(ns, 1000000000))

	d := floorDiv(secs, 86400)
	t := int(floorMod(secs, 86400))

	y, mo, da := civilFromDays(d)
	pos = writeDateYMD(buf, pos, y, mo, da, p.squash)
	if !p.squash {
		buf[pos] = 'T'
		pos++
	}
	pos = writeClockHMS(buf, pos, t, p.squash)
	if !p.squash {
		buf[pos] = '.'
		pos++
	}
	pos = writePaddedInt(buf[pos:], nanos, 9) + pos
	if !p.squash {
		buf[pos] = 'Z'
		pos++
	}
	return pos
}
