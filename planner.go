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

// plan holds the derived sizing for one Write call: how many bytes each
// worker's scratch buffer gets, how many rows land in each batch, how
// many batches there are, and how many workers actually run.
type plan struct {
	buffSize     int
	rowsPerBatch int
	numBatches   int
	nThread      int
}

// planBatches derives rowsPerBatch, numBatches, and the effective thread
// count from buffMB, maxLineLen, and nrow, per the batch planner design:
// the scratch buffer is doubled past the configured buffMB whenever a
// single row could occupy more than half of it, which guarantees room
// for at least two rows per batch.
func planBatches(lineLen, buffMB, nrow, nth0 int) plan {
	buffSize := buffMB << 20
	if 2*lineLen > buffSize {
		buffSize = 2 * lineLen
	}

	rowsPerBatch := buffSize / lineLen
	if lineLen > buffSize/2 {
		rowsPerBatch = 2
	}
	rowsPerBatch = clampInt(rowsPerBatch, 1, nrow)

	numBatches := (nrow + rowsPerBatch - 1) / rowsPerBatch
	if numBatches < 1 {
		numBatches = 1
	}

	nth := nth0
	if nth > numBatches {
		nth = numBatches
	}
	if nth < 1 {
		nth = 1
	}

	return plan{
		buffSize:     buffSize,
		rowsPerBatch: rowsPerBatch,
		numBatches:   numBatches,
		nThread:      nth,
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
