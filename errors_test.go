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
	"testing"
)

func TestFirstCausePrefersCompressionOverWrite(t *testing.T) {
	got := firstCause(ErrWrite, ErrCompression)
	if !errors.Is(got, ErrCompression) {
		t.Errorf("firstCause = %v, want ErrCompression", got)
	}
}

func TestFirstCausePrefersWriteOverClose(t *testing.T) {
	got := firstCause(ErrClose, ErrWrite)
	if !errors.Is(got, ErrWrite) {
		t.Errorf("firstCause = %v, want ErrWrite", got)
	}
}

func TestFirstCauseNilHandling(t *testing.T) {
	if got := firstCause(nil, ErrOpen); !errors.Is(got, ErrOpen) {
		t.Errorf("firstCause(nil, ErrOpen) = %v, want ErrOpen", got)
	}
	if got := firstCause(ErrOpen, nil); !errors.Is(got, ErrOpen) {
		t.Errorf("firstCause(ErrOpen, nil) = %v, want ErrOpen", got)
	}
	if got := firstCause(nil, nil); got != nil {
		t.Errorf("firstCause(nil, nil) = %v, want nil", got)
	}
}
