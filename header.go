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

// bom is the 3-byte UTF-8 byte-order mark written when Job.BOM is set.
var bom = []byte{0xEF, 0xBB, 0xBF}

// buildHeader assembles the optional BOM, the verbatim preamble, and (if
// Job.ColNames is set) the column-name row, in a single buffer. Unlike
// the per-row formatters, the header is built once per Write call and so
// is allowed to grow its buffer with append rather than work from a
// pre-sized cursor.
func buildHeader(j *Job) []byte {
	var buf []byte
	if j.BOM {
		buf = append(buf, bom...)
	}
	buf = append(buf, j.Preamble...)
	if j.ColNames == nil {
		return buf
	}

	hp := &fmtParams{
		sep:     j.Sep,
		sep2:    j.Sep2,
		quote:   j.HeaderQuote,
		qmethod: j.QMethod,
	}

	if j.DoRowNames && hp.quote != QuoteOff {
		buf = append(buf, '"', '"')
	}
	for i, name := range j.ColNames {
		if i > 0 || j.DoRowNames {
			if j.Sep != 0 {
				buf = append(buf, j.Sep)
			}
		}
		buf = appendQuotedName(buf, name, hp)
	}
	return append(buf, j.EOL...)
}

func appendQuotedName(buf, name []byte, p *fmtParams) []byte {
	switch p.quote {
	case QuoteOff:
		return append(buf, name...)
	case QuoteOn:
		return appendQuoted(buf, name, p.qmethod)
	default:
		if needsQuoting(name, p.sep, p.sep2) {
			return appendQuoted(buf, name, p.qmethod)
		}
		return append(buf, name...)
	}
}

func appendQuoted(buf, s []byte, m QMethod) []byte {
	buf = append(buf, '"')
	for _, c := range s {
		switch {
		case c == '"' && m == QMethodDouble:
			buf = append(buf, '"')
		case c == '"' && m == QMethodBackslash:
			buf = append(buf, '\\')
		case c == '\\' && m == QMethodBackslash:
			buf = append(buf, '\\')
		}
		buf = append(buf, c)
	}
	return append(buf, '"')
}
