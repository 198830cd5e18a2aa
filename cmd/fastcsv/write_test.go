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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCmdRejectsMultiByteSep(t *testing.T) {
	w := &writeCmd{rows: 5, out: filepath.Join(t.TempDir(), "out.csv"), sep: ",,", stdout: &bytes.Buffer{}}
	err := w.Run()
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("err = %v, want ErrFlagParse", err)
	}
}

func TestWriteCmdRejectsNegativeRows(t *testing.T) {
	w := &writeCmd{rows: -1, out: filepath.Join(t.TempDir(), "out.csv"), sep: ",", stdout: &bytes.Buffer{}}
	err := w.Run()
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("err = %v, want ErrFlagParse", err)
	}
}

func TestWriteCmdRejectsGzipToStdout(t *testing.T) {
	w := &writeCmd{rows: 5, out: "", sep: ",", gzip: true, stdout: &bytes.Buffer{}}
	err := w.Run()
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("err = %v, want ErrFlagParse", err)
	}
}

func TestWriteCmdWritesFileAndBenchSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	var stdout bytes.Buffer
	w := &writeCmd{
		rows:    50,
		out:     path,
		sep:     ",",
		threads: 2,
		buffMB:  1,
		bench:   true,
		stdout:  &stdout,
	}
	if err := w.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "id,measurement,label\n") {
		n := min(40, len(data))
		t.Errorf("output missing expected header, got prefix %q", string(data)[:n])
	}

	if !strings.Contains(stdout.String(), "rows/sec") {
		t.Errorf("bench summary missing from stdout: %q", stdout.String())
	}
}
