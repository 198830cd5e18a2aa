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

import "fmt"

// WriterTag selects which formatter a Column is read through.
type WriterTag int

const (
	// Bool8 writes values in {0,1} with INT8_MIN as NA.
	Bool8 WriterTag = iota
	// Bool32 writes values in {0,1} as a 32-bit numeric with INT32_MIN as NA.
	Bool32
	// Bool32AsString writes the same domain as Bool32 but as TRUE/FALSE.
	Bool32AsString
	// Int32 writes signed 32-bit integers with INT32_MIN as NA.
	Int32
	// Int64 writes signed 64-bit integers with INT64_MIN as NA.
	Int64
	// Float64 writes IEEE-754 doubles with shortest-round-trip decimal.
	Float64
	// Complex writes a pair of Float64 fields joined by a sign and "i".
	Complex
	// ITime writes integer seconds-of-day as HH:MM:SS.
	ITime
	// DateInt32 writes integer days-since-epoch as YYYY-MM-DD.
	DateInt32
	// DateFloat64 writes a double holding whole days-since-epoch as YYYY-MM-DD.
	DateFloat64
	// POSIXct writes a double of seconds-since-epoch as a timestamp.
	POSIXct
	// Nanotime writes int64 nanoseconds-since-epoch as a timestamp.
	Nanotime
	// String writes a byte string with auto/forced/escaped quoting.
	String
	// CategString writes a column of category indices through a label table.
	CategString
	// List dispatches recursively over a nested column, joined by sep2.
	List
)

// writerMaxLen holds the fixed per-cell byte width for each WriterTag, used
// by the line-budget estimator. Variable-width tags (String, CategString,
// List) are 0 here; their contribution is computed per-column instead.
//
// Numeric widths are upper bounds, not tight: Float64's bound covers the
// widest field the formatter in format_float.go can produce (15 significant
// digits, sign, decimal point, and a 3-digit signed exponent) with margin
// for the scipen bias added separately by the line-budget estimator.
var writerMaxLen = [...]int{
	Bool8:          1,
	Bool32:         2, // "-1" isn't a legal value but NA's INT32_MIN is never fully rendered; 2 covers "0"/"1".
	Bool32AsString: 5, // "FALSE"
	Int32:          11,
	Int64:          20,
	Float64:        24,
	Complex:        2*24 + 2, // real + sign + imag + "i"
	ITime:          8,        // "HH:MM:SS"
	DateInt32:      10,       // "YYYY-MM-DD"
	DateFloat64:    10,
	POSIXct:        27, // "YYYY-MM-DDTHH:MM:SS.uuuuuuZ"
	Nanotime:       30, // "YYYY-MM-DDTHH:MM:SS.nnnnnnnnnZ"
	String:         0,
	CategString:    0,
	List:           0,
}

// QuoteMode selects when String and CategString cells are quoted.
type QuoteMode int

const (
	// QuoteAuto quotes a field only if it is empty or contains sep, sep2,
	// '\n', '\r', or '"'.
	QuoteAuto QuoteMode = iota
	// QuoteOn always quotes String and CategString cells.
	QuoteOn
	// QuoteOff never quotes String and CategString cells.
	QuoteOff
)

// QMethod selects how an embedded quote character is escaped when a field
// is quoted.
type QMethod int

const (
	// QMethodDouble escapes an embedded '"' by doubling it.
	QMethodDouble QMethod = iota
	// QMethodBackslash escapes an embedded '"' (and '\') with a backslash.
	QMethodBackslash
)

// Column is the handle a Job reads typed cells through. A concrete Column
// implements Tag, Len, and whichever of the narrow per-type interfaces
// below match its WriterTag; formatters recover the right one with a type
// assertion rather than through a single god interface. A Column's
// lifetime must exceed the Job.Write call that reads it, and its cells
// must be safe to read concurrently from every worker goroutine.
type Column interface {
	// Tag reports which formatter reads this column's cells.
	Tag() WriterTag
	// Len reports the number of rows (cells) in the column.
	Len() int
}

// Bool8Column is implemented by Bool8 columns. Value returns -128
// (INT8_MIN) for NA, otherwise 0 or 1.
type Bool8Column interface {
	Bool8(i int) int8
}

// Bool32Column is implemented by Bool32 and Bool32AsString columns. Value
// returns math.MinInt32 for NA, otherwise 0 or 1.
type Bool32Column interface {
	Bool32(i int) int32
}

// Int32Column is implemented by Int32 columns. INT32_MIN signals NA.
type Int32Column interface {
	Int32(i int) int32
}

// Int64Column is implemented by Int64 columns. INT64_MIN signals NA.
type Int64Column interface {
	Int64(i int) int64
}

// Float64Column is implemented by Float64 columns. NaN signals NA.
type Float64Column interface {
	Float64(i int) float64
}

// ComplexColumn is implemented by Complex columns.
type ComplexColumn interface {
	Complex(i int) complex128
}

// DateColumn is implemented by DateInt32 columns: days since 1970-01-01,
// valid in [-719468, 2932896]; INT32_MIN (and any value outside that
// domain) signals NA.
type DateColumn interface {
	DateInt32(i int) int32
}

// DateFloatColumn is implemented by DateFloat64 columns: whole days since
// 1970-01-01 stored as a double; NaN signals NA.
type DateFloatColumn interface {
	DateFloat64(i int) float64
}

// ITimeColumn is implemented by ITime columns: seconds-of-day in
// [0,86399]; any negative value signals NA.
type ITimeColumn interface {
	ITime(i int) int32
}

// POSIXctColumn is implemented by POSIXct columns: seconds since epoch as
// a double; non-finite signals NA.
type POSIXctColumn interface {
	POSIXct(i int) float64
}

// NanotimeColumn is implemented by Nanotime columns: nanoseconds since
// epoch; math.MinInt64 signals NA.
type NanotimeColumn interface {
	Nanotime(i int) int64
}

// StringColumn is implemented by String columns.
type StringColumn interface {
	// StringAt returns the cell's bytes and true, or (nil, false) for NA.
	StringAt(i int) ([]byte, bool)
	// MaxStringLen returns the max byte length across the first nrow
	// cells, used by the line-budget estimator.
	MaxStringLen(nrow int) int
}

// CategColumn is implemented by CategString columns: a column of category
// indices into a shared label table.
type CategColumn interface {
	// CategIndex returns the cell's index into the label table, or -1
	// for NA.
	CategIndex(i int) int
	// CategLabel returns the label bytes for a given category index.
	CategLabel(idx int) []byte
	// MaxCategLen returns the max label byte length across all labels.
	MaxCategLen() int
}

// ListColumn is implemented by List columns: each cell is itself a nested
// Column of scalar items joined by Job.Sep2.
type ListColumn interface {
	// ListItem returns the nested Column holding the items of row i.
	ListItem(i int) Column
	// MaxListItemLen returns the max recursive rendered width of any
	// single list item across the first nrow rows, used by the
	// line-budget estimator.
	MaxListItemLen(nrow int) int
}

// Job is an immutable configuration record describing one emission.
// Construct one with NewJob and zero or more Option values; a Job is safe
// to reuse (and to read concurrently) across multiple Write calls once
// built.
type Job struct {
	// Path is the destination file path. An empty Path means stdout,
	// in which case Gzip must be false.
	Path string
	// Append opens Path with O_APPEND instead of O_TRUNC.
	Append bool

	// BOM prepends a 3-byte UTF-8 byte-order mark.
	BOM bool
	// Preamble is written verbatim after the BOM and before the header.
	Preamble []byte

	// ColNames holds the header's column name cells, in the same order
	// as Columns. A nil slice suppresses the header entirely.
	ColNames [][]byte
	// RowNames, when non-nil, supplies one row-name cell per row,
	// emitted before each row's data and formatted through RowNames' own
	// Tag. RowNameTag records the tag passed to WithRowNames; Write does
	// not read it.
	RowNames    Column
	RowNameTag  WriterTag
	DoRowNames  bool

	// Columns holds one entry per output field, in emission order.
	Columns []Column

	// Nrow and Ncol are the emission's row and column counts. Nrow must
	// equal every Column's Len.
	Nrow, Ncol int

	// Sep is the field separator; 0 disables separators entirely.
	Sep byte
	// Sep2 separates items within a List cell; 0 when no List columns
	// are present.
	Sep2 byte
	// Dec is the decimal mark, '.' or ','.
	Dec byte
	// EOL terminates each row; must be non-empty.
	EOL []byte
	// NA is the token written for missing values; may be empty.
	NA []byte

	// Quote and QMethod select the data quoting policy. HeaderQuote
	// may differ and governs the header row only.
	Quote       QuoteMode
	HeaderQuote QuoteMode
	QMethod     QMethod

	// Scipen biases Float64 toward decimal over scientific notation;
	// clamped to 350 by the line-budget estimator per the upstream
	// behavior this package preserves.
	Scipen int

	// SquashDateTime drops separators from date/time/datetime fields
	// (YYYY-MM-DD becomes YYYYMMDD, and so on).
	SquashDateTime bool

	// BuffMB sizes each worker's scratch buffer, in [1,1024] mebibytes.
	BuffMB int
	// NThread requests a worker count; the planner clamps it to the
	// number of batches actually produced.
	NThread int

	// Gzip streams the output through a shared deflate encoder and
	// wraps it in a single RFC-1952 gzip member. Incompatible with an
	// empty Path (stdout).
	Gzip bool

	// ShowProgress enables the progress-thread printer described in
	// the parallel row engine.
	ShowProgress bool
	// Verbose is recorded on the Job; Write produces no additional
	// output for it.
	Verbose bool
}

// Option configures a Job passed to NewJob.
type Option func(*Job)

// NewJob builds a Job from the given columns and options, applying the
// same defaults data emitted by this package has always used: comma
// separator, LF end-of-line, auto quoting, double-quote escaping, no
// scipen bias, and a 8 MiB per-worker buffer.
func NewJob(path string, columns []Column, opts ...Option) (*Job, error) {
	j := &Job{
		Path:        path,
		Columns:     columns,
		Ncol:        len(columns),
		Sep:         ',',
		Dec:         '.',
		EOL:         []byte("\n"),
		Quote:       QuoteAuto,
		HeaderQuote: QuoteAuto,
		QMethod:     QMethodDouble,
		BuffMB:      8,
		NThread:     1,
	}
	if len(columns) > 0 {
		j.Nrow = columns[0].Len()
	}
	for _, opt := range opts {
		opt(j)
	}
	if err := j.validate(); err != nil {
		return nil, err
	}
	if len(j.NA) > 0 && j.Quote == QuoteAuto {
		// A non-empty NA token promotes auto-quoting to unconditional
		// quoting for the whole job, so a literal cell equal to the NA
		// token round-trips distinguishably from a missing one.
		j.Quote = QuoteOn
	}
	return j, nil
}

func (j *Job) validate() error {
	if j.BuffMB < 1 || j.BuffMB > 1024 {
		return fmt.Errorf("%w: buffMB %d out of range [1,1024]", ErrConfig, j.BuffMB)
	}
	if len(j.EOL) == 0 {
		return fmt.Errorf("%w: eol must be non-empty", ErrConfig)
	}
	if j.NThread < 1 {
		return fmt.Errorf("%w: nth must be >= 1", ErrConfig)
	}
	if j.Gzip && j.Path == "" {
		return fmt.Errorf("%w: gzip is not supported when writing to stdout", ErrConfig)
	}
	if j.DoRowNames && j.RowNames != nil {
		if t := j.RowNames.Tag(); t < 0 || int(t) >= len(writerMaxLen) {
			return fmt.Errorf("%w: unsupported row-name writer tag %d", ErrConfig, t)
		}
	}
	for _, c := range j.Columns {
		if t := c.Tag(); t < 0 || int(t) >= len(writerMaxLen) {
			return fmt.Errorf("%w: unsupported writer tag %d", ErrConfig, t)
		}
		if c.Len() != j.Nrow {
			return fmt.Errorf("%w: column length %d does not match nrow %d", ErrConfig, c.Len(), j.Nrow)
		}
	}
	return nil
}

// WithSep sets the field separator. Pass 0 to disable separators.
func WithSep(sep byte) Option { return func(j *Job) { j.Sep = sep } }

// WithSep2 sets the list-item separator.
func WithSep2(sep2 byte) Option { return func(j *Job) { j.Sep2 = sep2 } }

// WithDec sets the decimal mark.
func WithDec(dec byte) Option { return func(j *Job) { j.Dec = dec } }

// WithEOL sets the row terminator.
func WithEOL(eol []byte) Option { return func(j *Job) { j.EOL = eol } }

// WithNA sets the missing-value token.
func WithNA(na []byte) Option { return func(j *Job) { j.NA = na } }

// WithQuote sets both the data quote mode and the header quote mode.
func WithQuote(q QuoteMode) Option { return func(j *Job) { j.Quote = q; j.HeaderQuote = q } }

// WithQMethod sets the quote-escape method.
func WithQMethod(m QMethod) Option { return func(j *Job) { j.QMethod = m } }

// WithScipen biases Float64 toward decimal over scientific notation.
func WithScipen(n int) Option { return func(j *Job) { j.Scipen = n } }

// WithSquashDateTime drops separators from date/time fields.
func WithSquashDateTime() Option { return func(j *Job) { j.SquashDateTime = true } }

// WithColNames sets the header row's cells and enables the header.
func WithColNames(names [][]byte) Option { return func(j *Job) { j.ColNames = names } }

// WithRowNames supplies a column of row-name cells emitted before each
// row's data.
func WithRowNames(c Column, tag WriterTag) Option {
	return func(j *Job) {
		j.RowNames = c
		j.RowNameTag = tag
		j.DoRowNames = true
	}
}

// WithBOM prepends a UTF-8 byte-order mark.
func WithBOM() Option { return func(j *Job) { j.BOM = true } }

// WithPreamble writes bytes verbatim before the header.
func WithPreamble(b []byte) Option { return func(j *Job) { j.Preamble = b } }

// WithAppend opens the destination for append instead of truncation.
func WithAppend() Option { return func(j *Job) { j.Append = true } }

// WithBuffMB sets the per-worker scratch buffer size in mebibytes.
func WithBuffMB(mb int) Option { return func(j *Job) { j.BuffMB = mb } }

// WithThreads requests a worker count.
func WithThreads(n int) Option { return func(j *Job) { j.NThread = n } }

// WithGzip enables streaming gzip compression of the output.
func WithGzip() Option { return func(j *Job) { j.Gzip = true } }

// WithProgress enables the progress-thread printer.
func WithProgress() Option { return func(j *Job) { j.ShowProgress = true } }

// WithVerbose sets Job.Verbose; Write produces no additional output for it.
func WithVerbose() Option { return func(j *Job) { j.Verbose = true } }
