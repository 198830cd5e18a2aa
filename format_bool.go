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

// writeBool8 appends a Bool8 cell (0, 1, or NA=INT8_MIN) to buf starting at
// pos and returns the new pos. No allocation, no bounds check: the caller
// has already sized buf from the line-budget estimate.
func writeBool8(buf []byte, pos int, v int8, p *fmtParams) int {
	if v == int8(-128) {
		return p.writeNA(buf, pos)
	}
	buf[pos] = '0' + byte(v)
	return pos + 1
}

// writeBool32 appends a Bool32 cell (0, 1, or NA) as a numeric digit.
func writeBool32(buf []byte, pos int, v int32, p *fmtParams) int {
	if v == int32(-1)<<31 {
		return p.writeNA(buf, pos)
	}
	buf[pos] = '0' + byte(v)
	return pos + 1
}

// writeBool32AsString appends a Bool32 cell as TRUE/FALSE.
func writeBool32AsString(buf []byte, pos int, v int32, p *fmtParams) int {
	switch v {
	case int32(-1) << 31:
		return p.writeNA(buf, pos)
	case 0:
		return pos + copy(buf[pos:], "FALSE")
	default:
		return pos + copy(buf[pos:], "TRUE")
	}
}
