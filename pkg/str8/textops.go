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
	"slices"
	"unicode"
	"unicode/utf8"
)

// isSpace reports whether r is text whitespace. It extends unicode.IsSpace
// with the ASCII information separators U+001C to U+001F, which are line
// and field boundaries for text.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// lineBreakLen returns the byte length of the line boundary starting at
// text[i], or 0 when there is none. "\r\n" counts as a single boundary.
func lineBreakLen(text string, i int) int {
	switch c := text[i]; c {
	case '\n', '\v', '\f', 0x1c, 0x1d, 0x1e:
		return 1
	case '\r':
		if i+1 < len(text) && text[i+1] == '\n' {
			return 2
		}
		return 1
	case 0xc2: // U+0085
		if i+1 < len(text) && text[i+1] == 0x85 {
			return 2
		}
	case 0xe2: // U+2028, U+2029
		if i+2 < len(text) && text[i+1] == 0x80 && (text[i+2] == 0xa8 || text[i+2] == 0xa9) {
			return 3
		}
	}
	return 0
}

// splitLines cuts text at every line boundary. With keepEnds the boundaries
// stay attached to their lines.
func splitLines(text string, keepEnds bool) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		n := lineBreakLen(text, i)
		if n == 0 {
			i++
			continue
		}
		end := i
		if keepEnds {
			end = i + n
		}
		lines = append(lines, text[start:end])
		i += n
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// splitWhitespace splits text on runs of whitespace, ignoring leading and
// trailing whitespace. At most maxSplit splits are made when maxSplit >= 0;
// the remainder keeps its trailing whitespace.
func splitWhitespace(text string, maxSplit int) []string {
	var out []string
	i := 0
	for {
		i = skipRunes(text, i, isSpace)
		if i == len(text) {
			return out
		}
		if maxSplit >= 0 && len(out) == maxSplit {
			return append(out, text[i:])
		}
		j := skipRunes(text, i, func(r rune) bool { return !isSpace(r) })
		out = append(out, text[i:j])
		i = j
	}
}

// rsplitWhitespace is splitWhitespace working from the end.
func rsplitWhitespace(text string, maxSplit int) []string {
	var out []string
	i := len(text)
	for {
		i = skipRunesBack(text, i, isSpace)
		if i == 0 {
			break
		}
		if maxSplit >= 0 && len(out) == maxSplit {
			out = append(out, text[:i])
			break
		}
		j := skipRunesBack(text, i, func(r rune) bool { return !isSpace(r) })
		out = append(out, text[j:i])
		i = j
	}
	slices.Reverse(out)
	return out
}

func skipRunes(text string, i int, f func(rune) bool) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !f(r) {
			break
		}
		i += size
	}
	return i
}

func skipRunesBack(text string, i int, f func(rune) bool) int {
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if !f(r) {
			break
		}
		i -= size
	}
	return i
}

// span is a half-open byte range.
type span struct{ lo, hi int }

// rsplitSpans splits a sequence of the given size from the right on a
// separator of sepLen bytes. lastIndex returns the start of the last
// separator inside [0, end), or -1.
func rsplitSpans(size, sepLen, maxSplit int, lastIndex func(end int) int) []span {
	var spans []span
	end := size
	for maxSplit < 0 || len(spans) < maxSplit {
		i := lastIndex(end)
		if i < 0 {
			break
		}
		spans = append(spans, span{i + sepLen, end})
		end = i
	}
	spans = append(spans, span{0, end})
	slices.Reverse(spans)
	return spans
}

// byteSet is a membership table over byte values.
type byteSet [256]bool

func makeByteSet(b []byte) *byteSet {
	var set byteSet
	for _, c := range b {
		set[c] = true
	}
	return &set
}

func (set *byteSet) trimLeft(b []byte) []byte {
	for len(b) > 0 && set[b[0]] {
		b = b[1:]
	}
	return b
}

func (set *byteSet) trimRight(b []byte) []byte {
	for len(b) > 0 && set[b[len(b)-1]] {
		b = b[:len(b)-1]
	}
	return b
}

// runeSet returns a predicate matching the characters of chars.
func runeSet(chars string) func(rune) bool {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return func(r rune) bool {
		_, ok := set[r]
		return ok
	}
}
