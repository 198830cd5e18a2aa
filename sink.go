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
	"fmt"
	"io"
	"os"
)

// openDestination opens a Job's destination per the sink writer design:
// an empty Path means stdout (returned wrapped so Close is a no-op,
// since callers must never close os.Stdout), otherwise the file is
// opened for write/create, truncating unless Append is set, with mode
// 0666 so the destination's permissions are governed by umask like any
// other created file.
func openDestination(j *Job) (io.WriteCloser, error) {
	if j.Path == "" {
		return nopCloser{os.Stdout}, nil
	}

	flags := os.O_WRONLY | os.O_CREATE
	if j.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(j.Path, flags, 0o666)
	if err != nil {
		if _, statErr := os.Stat(j.Path); statErr == nil {
			return nil, fmt.Errorf("%w: %q exists but is not writable: %w", ErrOpen, j.Path, err)
		}
		return nil, fmt.Errorf("%w: cannot create %q: %w", ErrOpen, j.Path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
