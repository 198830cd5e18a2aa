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
	"path/filepath"
	"testing"
)

func TestOpenDestinationCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	j := &Job{Path: path}

	w, err := openDestination(j)
	if err != nil {
		t.Fatalf("openDestination: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenDestinationCannotCreate(t *testing.T) {
	// A path inside a nonexistent directory can never be created.
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	j := &Job{Path: path}

	_, err := openDestination(j)
	if !errors.Is(err, ErrOpen) {
		t.Fatalf("err = %v, want ErrOpen", err)
	}
}
