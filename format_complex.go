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

// writeComplex appends a Complex cell as the Float64-formatted real part,
// a sign, the Float64-formatted imaginary part, and a trailing "i". A NaN
// imaginary part suppresses the sign and imaginary digits entirely,
// leaving only the real part (matching the real-only NA convention used
// when only one half of the pair is missing).
func writeComplex(buf []byte, pos int, v complex128, p *fmtParams) int {
	pos = writeFloat64(buf, pos, real(v), p)
	im := imag(v)
	if math.IsNaN(im) {
		return pos
	}
	if im >= 0 {
		buf[pos] = '+'
		pos++
	}
	pos = writeFloat64(buf, pos, im, p)
	buf[pos] = 'i'
	return pos + 1
}
