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

func TestNewJobDefaults(t *testing.T) {
	cols := []Column{testInt32Col{vals: []int32{1, 2, 3}}}
	j, err := NewJob("", cols)
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if j.Sep != ',' || j.Dec != '.' || string(j.EOL) != "\n" {
		t.Errorf("unexpected defaults: sep=%q dec=%q eol=%q", j.Sep, j.Dec, j.EOL)
	}
	if j.BuffMB != 8 || j.NThread != 1 {
		t.Errorf("unexpected defaults: buffMB=%d nThread=%d", j.BuffMB, j.NThread)
	}
	if j.Nrow != 3 {
		t.Errorf("Nrow = %d, want 3", j.Nrow)
	}
}

func TestNewJobRejectsBadBuffMB(t *testing.T) {
	cols := []Column{testInt32Col{vals: []int32{1}}}
	if _, err := NewJob("", cols, WithBuffMB(0)); !errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
	if _, err := NewJob("", cols, WithBuffMB(2000)); !errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}

func TestNewJobRejectsEmptyEOL(t *testing.T) {
	cols := []Column{testInt32Col{vals: []int32{1}}}
	if _, err := NewJob("", cols, WithEOL(nil)); !errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}

func TestNewJobRejectsGzipToStdout(t *testing.T) {
	cols := []Column{testInt32Col{vals: []int32{1}}}
	if _, err := NewJob("", cols, WithGzip()); !errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}

func TestNewJobRejectsMismatchedColumnLength(t *testing.T) {
	cols := []Column{
		testInt32Col{vals: []int32{1, 2, 3}},
		testInt32Col{vals: []int32{1, 2}},
	}
	if _, err := NewJob("", cols); !errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}
