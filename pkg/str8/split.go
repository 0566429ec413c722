// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package str8

import (
	"bytes"
	"strings"
)

// Split cuts s around each occurrence of sep and returns the pieces. At most
// maxSplit cuts are made when maxSplit >= 0; a negative maxSplit means no
// limit.
//
// A nil sep splits on runs of text whitespace and drops empty pieces. A
// byte-like sep splits the byte view, and every piece must be valid UTF-8.
// An empty sep is a *ValueError wrapping ErrEmptySeparator.
func (s Str8) Split(sep Argument, maxSplit int) ([]Str8, error) {
	if sep == nil {
		return fromTextParts(splitWhitespace(s.text, maxSplit)), nil
	}
	if isEmptyArg(sep) {
		return nil, &ValueError{Op: "split", Err: ErrEmptySeparator}
	}
	n := maxSplit + 1
	if maxSplit < 0 {
		n = -1
	}
	return divide(s, sep,
		func(text, sep string) []string { return strings.SplitN(text, sep, n) },
		func(raw, sep []byte) [][]byte { return bytes.SplitN(raw, sep, n) })
}

// RSplit is Split working from the end, so that with a limit the remainder
// is the leading piece.
func (s Str8) RSplit(sep Argument, maxSplit int) ([]Str8, error) {
	if sep == nil {
		return fromTextParts(rsplitWhitespace(s.text, maxSplit)), nil
	}
	if isEmptyArg(sep) {
		return nil, &ValueError{Op: "rsplit", Err: ErrEmptySeparator}
	}
	return divide(s, sep,
		func(text, sep string) []string {
			spans := rsplitSpans(len(text), len(sep), maxSplit, func(end int) int {
				return strings.LastIndex(text[:end], sep)
			})
			out := make([]string, len(spans))
			for i, sp := range spans {
				out[i] = text[sp.lo:sp.hi]
			}
			return out
		},
		func(raw, sep []byte) [][]byte {
			spans := rsplitSpans(len(raw), len(sep), maxSplit, func(end int) int {
				return bytes.LastIndex(raw[:end], sep)
			})
			out := make([][]byte, len(spans))
			for i, sp := range spans {
				out[i] = raw[sp.lo:sp.hi]
			}
			return out
		})
}

// Partition cuts s at the first occurrence of sep. When sep is not found
// head is s and the other two results are empty.
func (s Str8) Partition(sep Argument) (head, match, tail Str8, err error) {
	return s.partition("partition", sep, false)
}

// RPartition cuts s at the last occurrence of sep. When sep is not found
// tail is s and the other two results are empty.
func (s Str8) RPartition(sep Argument) (head, match, tail Str8, err error) {
	return s.partition("rpartition", sep, true)
}

func (s Str8) partition(op string, sep Argument, last bool) (head, match, tail Str8, err error) {
	if isEmptyArg(sep) {
		return Str8{}, Str8{}, Str8{}, &ValueError{Op: op, Err: ErrEmptySeparator}
	}
	parts, err := divide(s, sep,
		func(text, sep string) []string {
			i := strings.Index(text, sep)
			if last {
				i = strings.LastIndex(text, sep)
			}
			return cutAt(text, i, len(sep), last)
		},
		func(raw, sep []byte) [][]byte {
			i := bytes.Index(raw, sep)
			if last {
				i = bytes.LastIndex(raw, sep)
			}
			return cutAt(raw, i, len(sep), last)
		})
	if err != nil {
		return Str8{}, Str8{}, Str8{}, err
	}
	if len(parts) == 1 {
		// Text separator that cannot occur in s.
		if last {
			return Str8{}, Str8{}, s, nil
		}
		return s, Str8{}, Str8{}, nil
	}
	return parts[0], parts[1], parts[2], nil
}

// cutAt returns the three pieces of seq around a separator of sepLen found
// at i. A negative i leaves seq whole on the side selected by last.
func cutAt[S ~string | ~[]byte](seq S, i, sepLen int, last bool) []S {
	var empty S
	if i < 0 {
		if last {
			return []S{empty, empty, seq}
		}
		return []S{seq, empty, empty}
	}
	return []S{seq[:i], seq[i : i+sepLen], seq[i+sepLen:]}
}

// isEmptyArg reports whether a non-nil argument holds no content.
func isEmptyArg(a Argument) bool {
	if a == nil {
		return true
	}
	o := a.resolve()
	if o.kind == KindBytes {
		return len(o.raw) == 0
	}
	return len(o.text) == 0
}

// SplitLines cuts s at line boundaries: "\n", "\r", "\r\n", "\v", "\f",
// the information separators U+001C to U+001E, U+0085, U+2028 and U+2029.
// With keepEnds each line keeps its boundary. A final boundary does not
// start an empty line.
func (s Str8) SplitLines(keepEnds bool) []Str8 {
	return fromTextParts(splitLines(s.text, keepEnds))
}
