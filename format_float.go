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

import "math"

// maxScipen clamps scipen's contribution to the line-budget estimator in
// linebudget.go only; an unclamped scipen there would let a pathological
// job configuration explode the buffer-size estimate. The decimal-vs-
// scientific choice below uses the raw, unclamped p.scipen, matching
// fwrite.c's own comparison against the unclamped global.
const maxScipen = 350

// writeFloat64 appends a Float64 cell to buf at pos using the
// shortest-round-trip algorithm: 15 significant figures reconstructed
// from the sigparts/expsig/exppow tables, with no call to math.Log10,
// math.Pow, or strconv's own float formatting.
func writeFloat64(buf []byte, pos int, x float64, p *fmtParams) int {
	if math.IsNaN(x) {
		return p.writeNA(buf, pos)
	}
	if x == 0 {
		buf[pos] = '0'
		return pos + 1
	}
	if math.IsInf(x, 0) {
		if x < 0 {
			buf[pos] = '-'
			pos++
		}
		return pos + copy(buf[pos:], "Inf")
	}
	if x < 0 {
		buf[pos] = '-'
		pos++
		x = -x
	}

	bits := math.Float64bits(x)
	e := int((bits >> 52) & 0x7ff)
	frac := bits & ((1 << 52) - 1)

	var acc float64
	for i := 1; i <= 52; i++ {
		bitPos := uint(52 - i)
		if frac&(uint64(1)<<bitPos) != 0 {
			acc += sigparts[i]
		}
	}

	y := (1 + acc) * expsig[e]
	exp := int(exppow[e])
	if y >= 9.99999999999999 {
		y /= 10
		exp++
	}

	const pow15 = 1000000000000000 // 10^15
	lRaw := uint64(y * 1e15)
	if lRaw%10 >= 5 {
		lRaw += 10
	}
	l := lRaw / 10
	if l == pow15 {
		l = pow15 / 10
		exp++
	}

	sf := 15
	for sf > 1 && l%10 == 0 {
		l /= 10
		sf--
	}

	expDigits := 2
	if absInt(exp) > 99 {
		expDigits = 3
	}
	sciWidth := sf + boolToInt(sf > 1) + 2 + expDigits + p.scipen

	var widthDecimal int
	switch {
	case exp >= 0 && exp+1 >= sf:
		widthDecimal = exp + 1
	case exp >= 0:
		widthDecimal = sf + 1
	default:
		widthDecimal = sf + (-exp) + 1
	}

	var digits [15]byte
	digitsOf(l, sf, digits[:sf])

	if widthDecimal <= sciWidth {
		return writeFloatDecimal(buf, pos, digits[:sf], exp, sf, p.dec)
	}
	return writeFloatScientific(buf, pos, digits[:sf], exp, sf, p.dec, expDigits)
}

// digitsOf writes the sf decimal digits of l (most significant first)
// into dst, which must have length sf.
func digitsOf(l uint64, sf int, dst []byte) {
	for i := sf - 1; i >= 0; i-- {
		dst[i] = byte('0' + l%10)
		l /= 10
	}
}

func writeFloatDecimal(buf []byte, pos int, digits []byte, exp, sf int, dec byte) int {
	if exp >= 0 {
		intDigits := exp + 1
		if intDigits >= sf {
			pos += copy(buf[pos:], digits)
			for i := 0; i < intDigits-sf; i++ {
				buf[pos] = '0'
				pos++
			}
			return pos
		}
		pos += copy(buf[pos:], digits[:intDigits])
		buf[pos] = dec
		pos++
		pos += copy(buf[pos:], digits[intDigits:])
		return pos
	}
	buf[pos] = '0'
	pos++
	buf[pos] = dec
	pos++
	for i := 0; i < -exp-1; i++ {
		buf[pos] = '0'
		pos++
	}
	pos += copy(buf[pos:], digits)
	return pos
}

func writeFloatScientific(buf []byte, pos int, digits []byte, exp, sf int, dec byte, expDigits int) int {
	buf[pos] = digits[0]
	pos++
	if sf > 1 {
		buf[pos] = dec
		pos++
		pos += copy(buf[pos:], digits[1:])
	}
	buf[pos] = 'e'
	pos++
	if exp < 0 {
		buf[pos] = '-'
	} else {
		buf[pos] = '+'
	}
	pos++
	return pos + writePaddedInt(buf[pos:], absInt(exp), expDigits)
}

// writePaddedInt writes v as a zero-padded decimal of exactly width
// digits (callers pass widths from 2 to 9, and v always fits) and returns
// the number of bytes written.
func writePaddedInt(buf []byte, v, width int) int {
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return width
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
