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

// writeInt32 appends an Int32 cell to buf at pos, writing the NA token for
// math.MinInt32, and returns the new pos.
func writeInt32(buf []byte, pos int, v int32, p *fmtParams) int {
	if v == math.MinInt32 {
		return p.writeNA(buf, pos)
	}
	return writeIntDigits(buf, pos, int64(v))
}

// writeInt64 appends an Int64 cell to buf at pos, writing the NA token for
// math.MinInt64, and returns the new pos.
func writeInt64(buf []byte, pos int, v int64, p *fmtParams) int {
	if v == math.MinInt64 {
		return p.writeNA(buf, pos)
	}
	return writeIntDigits(buf, pos, v)
}

// writeIntDigits writes the sign (if negative) followed by decimal digits
// generated by repeated mod-10 into a fixed local window and reversed in
// place, mirroring the allocation-free approach of the C formatters this
// package is modeled on.
func writeIntDigits(buf []byte, pos int, v int64) int {
	if v < 0 {
		buf[pos] = '-'
		pos++
		v = -v
	}
	if v == 0 {
		buf[pos] = '0'
		return pos + 1
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return pos + copy(buf[pos:], tmp[i:])
}
