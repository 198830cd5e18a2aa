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
	"bytes"
	"testing"
)

// crc32Combine(CRC(A), CRC(B), len(B)) must equal CRC(A||B) for any split.
func TestCRC32CombineMatchesConcatenation(t *testing.T) {
	whole := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 500)

	for _, split := range []int{0, 1, 17, len(whole) / 2, len(whole) - 1, len(whole)} {
		a, b := whole[:split], whole[split:]
		got := crc32Combine(crc32IEEE(a), crc32IEEE(b), int64(len(b)))
		want := crc32IEEE(whole)
		if got != want {
			t.Errorf("split=%d: crc32Combine = %08x, want %08x", split, got, want)
		}
	}
}

func TestCRC32CombineEmptySecond(t *testing.T) {
	a := []byte("some bytes")
	got := crc32Combine(crc32IEEE(a), crc32IEEE(nil), 0)
	if want := crc32IEEE(a); got != want {
		t.Errorf("crc32Combine with empty second operand = %08x, want %08x", got, want)
	}
}
