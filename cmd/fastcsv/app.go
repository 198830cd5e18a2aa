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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	// ExitCodeSuccess is the successful exit code.
	ExitCodeSuccess int = iota
	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError
	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

func init() {
	// Set the HelpFlag to a name no one would type, same trick the
	// parent library's own CLI uses, so the root command's bare
	// positional handling never collides with cli's own --help.
	cli.HelpFlag = &cli.BoolFlag{
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// must panics if err is non-nil; used only where the alternative (an
// error from fmt.Fprintf on our own already-open writers) should never
// realistically happen.
func must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func newFastcsvApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Emit delimited text fast, with optional gzip.",
		Description: strings.Join([]string{
			"fastcsv(1) writes a synthetic demo table as CSV or TSV,",
			"splitting the work across goroutines and optionally",
			"streaming the result through a single gzip member.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "rows",
				Usage: "number of demo rows to emit",
				Value: 100000,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output path; empty means stdout",
				Value: "",
			},
			&cli.BoolFlag{
				Name:               "gzip",
				Usage:              "stream output through a single gzip member",
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:  "sep",
				Usage: "field separator",
				Value: ",",
			},
			&cli.IntFlag{
				Name:  "threads",
				Usage: "worker goroutines; 0 means runtime.NumCPU",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  "buffer-mb",
				Usage: "per-worker scratch buffer size, in MiB",
				Value: 8,
			},
			&cli.BoolFlag{
				Name:               "progress",
				Usage:              "print progress to stderr",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "bench",
				Usage:              "print a throughput summary table after writing",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "license",
				Usage:              "print license information and exit",
				DisableDefaultText: true,
			},
		},
		Copyright:       "Google LLC",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				must(0, cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}
			if c.Bool("license") {
				return printLicense(c)
			}

			w := &writeCmd{
				rows:     c.Int("rows"),
				out:      c.String("out"),
				gzip:     c.Bool("gzip"),
				sep:      c.String("sep"),
				threads:  c.Int("threads"),
				buffMB:   c.Int("buffer-mb"),
				progress: c.Bool("progress"),
				bench:    c.Bool("bench"),
				stdout:   c.App.Writer,
			}
			return w.Run()
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			_ = must(fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", c.App.Name, err))
			if errors.Is(err, ErrFlagParse) {
				cli.OsExiter(ExitCodeFlagParseError)
				return
			}
			cli.OsExiter(ExitCodeUnknownError)
		},
	}
}
