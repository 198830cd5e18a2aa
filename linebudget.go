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

// quoteOverhead is the per-field byte cost of a possible opening or
// closing quote character.
const quoteOverhead = 1

// maxLineLen returns a byte count no single formatted row can ever
// exceed, per the line-budget estimator: a fixed per-column overhead for
// quoting and the separator, plus twice each column's natural maximum
// width (the doubling is a safe over-approximation covering a
// worst-case fully-escaped field, not a tight bound; see colWidth).
func maxLineLen(j *Job) int {
	sepLen := 0
	if j.Sep != 0 {
		sepLen = 1
	}

	total := len(j.EOL)
	total += j.Ncol * (2*quoteOverhead + sepLen)
	for _, c := range j.Columns {
		total += colWidth(c, j) * 2
	}
	if j.DoRowNames {
		total += 2*quoteOverhead + sepLen
		total += colWidth(j.RowNames, j) * 2
	}
	return total
}

// colWidth returns column c's natural maximum cell width: the fixed
// writerMaxLen for fixed-width tags (with the clamped scipen bias added
// for Float64), or a column-specific probe for variable-width tags. If
// the job's NA token is wider than the natural max, the NA token's
// length is substituted, since NA may be written in place of any cell.
func colWidth(c Column, j *Job) int {
	w := writerMaxLen[c.Tag()]
	switch c.Tag() {
	case Float64, Complex:
		if j.Scipen > 0 {
			w += min(j.Scipen, maxScipen)
		}
	case String:
		w = c.(StringColumn).MaxStringLen(j.Nrow)
	case CategString:
		w = c.(CategColumn).MaxCategLen()
	case List:
		w = c.(ListColumn).MaxListItemLen(j.Nrow)
	}
	if len(j.NA) > w {
		w = len(j.NA)
	}
	return w
}
