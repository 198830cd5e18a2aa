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

// writeListCell appends a List cell: the items of the nested column
// joined by sep2, each formatted by recursing into formatCell through
// its own WriterTag.
func writeListCell(buf []byte, pos int, items Column, p *fmtParams) int {
	n := items.Len()
	for i := 0; i < n; i++ {
		if i > 0 {
			buf[pos] = p.sep2
			pos++
		}
		pos = formatCell(buf, pos, items, i, p)
	}
	return pos
}
