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

// Command fastcsv emits a synthetic demo table as delimited text, split
// across worker goroutines, with an optional single-member gzip sink.
package main

import "os"

func main() {
	app := newFastcsvApp()
	// Errors are reported and the exit code set by app.ExitErrHandler;
	// ignoring the return here mirrors that handler owning the exit.
	_ = app.Run(os.Args)
}
