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

// fmtParams is a frozen snapshot of the per-job formatting knobs that
// would otherwise need to be process-wide mutable globals: separators,
// the decimal mark, the NA token, quoting policy, and the scipen bias.
// One instance is built per Job.Write call and passed down the formatter
// call chain (or captured by each worker goroutine); nothing in this
// package mutates a fmtParams after construction, so the same value is
// safe to share, read-only, across every worker.
type fmtParams struct {
	sep     byte
	sep2    byte
	dec     byte
	na      []byte
	quote   QuoteMode
	qmethod QMethod
	scipen  int
	squash  bool
}

func newFmtParams(j *Job) *fmtParams {
	return &fmtParams{
		sep:     j.Sep,
		sep2:    j.Sep2,
		dec:     j.Dec,
		na:      j.NA,
		quote:   j.Quote,
		qmethod: j.QMethod,
		scipen:  j.Scipen,
		squash:  j.SquashDateTime,
	}
}

// writeNA appends the job's NA token, unquoted.
func (p *fmtParams) writeNA(buf []byte, pos int) int {
	return pos + copy(buf[pos:], p.na)
}
