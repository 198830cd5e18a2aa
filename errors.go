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
	"errors"
	"fmt"
)

// errFastcsv is the base error all package errors wrap, so callers can
// test for any fastcsv failure with a single errors.Is.
var errFastcsv = errors.New("fastcsv")

var (
	// ErrConfig indicates an invalid Job configuration: buffMB out of
	// range, a zero-length eol, or an unsupported writer tag.
	ErrConfig = fmt.Errorf("%w: invalid configuration", errFastcsv)

	// ErrOpen indicates the destination could not be opened or created.
	ErrOpen = fmt.Errorf("%w: opening destination", errFastcsv)

	// ErrAllocation indicates a panic recovered while a worker allocated
	// its scratch buffer or formatted a batch (including the batch's
	// output copy).
	ErrAllocation = fmt.Errorf("%w: allocating buffers", errFastcsv)

	// ErrCompression indicates a non-nil return from the deflate encoder.
	ErrCompression = fmt.Errorf("%w: compressing batch", errFastcsv)

	// ErrWrite indicates a short write or an OS-level write failure.
	ErrWrite = fmt.Errorf("%w: writing to sink", errFastcsv)

	// ErrClose indicates a close-after-success failure. It is only
	// surfaced when no earlier failure already explains the bad state.
	ErrClose = fmt.Errorf("%w: closing sink", errFastcsv)
)

// causeRank orders error kinds by reporting preference: when a job fails
// with more than one recorded reason, the engine surfaces the
// highest-ranked one, since a compression failure is more likely the
// root cause than the write failure it triggers, and so on down the
// list.
func causeRank(err error) int {
	switch {
	case errors.Is(err, ErrCompression):
		return 4
	case errors.Is(err, ErrWrite):
		return 3
	case errors.Is(err, ErrAllocation):
		return 2
	case errors.Is(err, ErrClose):
		return 1
	default:
		return 0
	}
}

// firstCause returns the higher-ranked of two recorded failures,
// preferring a (the earlier-recorded one) on a tie. Either argument may
// be nil.
func firstCause(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if causeRank(b) > causeRank(a) {
		return b
	}
	return a
}
