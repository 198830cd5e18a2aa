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

import "hash/crc32"

// crc32IEEE returns the CRC-32 (IEEE polynomial) of b. Each worker calls
// this once per batch on its own formatted bytes; the result is folded
// into the job-wide running CRC with crc32Combine during the ordered
// commit, so the hashing itself stays parallel even though the fold does
// not.
func crc32IEEE(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

// crc32Combine returns CRC-32(A||B) given CRC-32(A), CRC-32(B), and the
// byte length of B, without ever re-reading either slice. It is the
// standard GF(2) polynomial-combination algorithm (the same one zlib's
// crc32_combine ships): shifting a CRC forward by n bytes is linear over
// GF(2), so it can be expressed as repeated squaring of a 32x32 bit
// matrix, giving an O(log n) combine instead of replaying B's bytes
// through the checksum.
//
// This lets the committing goroutine fold each batch's worker-computed
// CRC-32 into the job-wide running CRC during the ordered commit step
// without rehashing the batch's uncompressed bytes.
func crc32Combine(crc1, crc2 uint32, len2 int64) uint32 {
	if len2 <= 0 {
		return crc1
	}

	const gf2Dim = 32
	var even, odd [gf2Dim]uint32

	// odd holds the matrix for a single zero bit shifted in, i.e.
	// multiplication by x modulo the CRC-32 polynomial.
	odd[0] = 0xedb88320 // CRC-32 (IEEE 802.3) reversed polynomial.
	row := uint32(1)
	for n := 1; n < gf2Dim; n++ {
		odd[n] = row
		row <<= 1
	}

	gf2MatrixSquare(&even, &odd) // even = odd^2 = shift by 2 zero bits
	gf2MatrixSquare(&odd, &even) // odd = even^2 = shift by 4 zero bits

	n := len2
	for {
		gf2MatrixSquare(&even, &odd)
		if n&1 != 0 {
			crc1 = gf2MatrixTimes(&even, crc1)
		}
		n >>= 1
		if n == 0 {
			break
		}
		gf2MatrixSquare(&odd, &even)
		if n&1 != 0 {
			crc1 = gf2MatrixTimes(&odd, crc1)
		}
		n >>= 1
		if n == 0 {
			break
		}
	}

	return crc1 ^ crc2
}

func gf2MatrixTimes(mat *[32]uint32, vec uint32) uint32 {
	var sum uint32
	for i := 0; vec != 0; i++ {
		if vec&1 != 0 {
			sum ^= mat[i]
		}
		vec >>= 1
	}
	return sum
}

func gf2MatrixSquare(square, mat *[32]uint32) {
	for n := 0; n < 32; n++ {
		square[n] = gf2MatrixTimes(mat, mat[n])
	}
}
