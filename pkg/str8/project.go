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
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state between calls, so every operation builds its own.

func (s Str8) Upper() Str8 {
	return s.project(cases.Upper(language.Und).String)
}

func (s Str8) Lower() Str8 {
	return s.project(cases.Lower(language.Und).String)
}

// Casefold returns the case-folded form of s, suited to caseless matching:
// "ß" folds to "ss".
func (s Str8) Casefold() Str8 {
	return s.project(cases.Fold().String)
}

// Capitalize returns s with its first character in title case and the rest
// lowercased.
func (s Str8) Capitalize() Str8 {
	return s.project(func(text string) string {
		r, size := utf8.DecodeRuneInString(text)
		if size == 0 {
			return text
		}
		return string(unicode.ToTitle(r)) + cases.Lower(language.Und).String(text[size:])
	})
}

// SwapCase converts uppercase characters to lowercase and lowercase ones to
// uppercase.
func (s Str8) SwapCase() Str8 {
	return s.project(func(text string) string {
		upper, lower := cases.Upper(language.Und), cases.Lower(language.Und)
		var b strings.Builder
		b.Grow(len(text))
		for _, r := range text {
			switch {
			case unicode.IsUpper(r) || unicode.IsTitle(r):
				b.WriteString(lower.String(string(r)))
			case unicode.IsLower(r):
				b.WriteString(upper.String(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		return b.String()
	})
}

// Title returns s with every word starting in title case and continuing in
// lowercase. A word is a run of cased characters.
func (s Str8) Title() Str8 {
	return s.project(func(text string) string {
		var b strings.Builder
		b.Grow(len(text))
		prevCased := false
		for _, r := range text {
			if prevCased {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevCased = isCased(r)
		}
		return b.String()
	})
}

// Center pads s on both sides with fill to width characters. When the
// padding is odd the extra character goes to the left if width is odd.
func (s Str8) Center(width int, fill rune) Str8 {
	marg := width - s.n
	if marg <= 0 {
		return s
	}
	left := marg/2 + (marg & width & 1)
	return s.pad(left, marg-left, fill)
}

// LJust pads s on the right with fill to width characters.
func (s Str8) LJust(width int, fill rune) Str8 {
	return s.pad(0, width-s.n, fill)
}

// RJust pads s on the left with fill to width characters.
func (s Str8) RJust(width int, fill rune) Str8 {
	return s.pad(width-s.n, 0, fill)
}

// ZFill pads s on the left with zeros to width characters. A leading sign
// stays in front of the zeros.
func (s Str8) ZFill(width int) Str8 {
	fill := width - s.n
	if fill <= 0 {
		return s
	}
	zeros := strings.Repeat("0", fill)
	if s.n > 0 && (s.text[0] == '+' || s.text[0] == '-') {
		return fromText(s.text[:1] + zeros + s.text[1:])
	}
	return fromText(zeros + s.text)
}

// ExpandTabs replaces each tab with spaces up to the next multiple of
// tabSize columns. Columns restart after "\n" and "\r". A tabSize of zero or
// less removes tabs.
func (s Str8) ExpandTabs(tabSize int) Str8 {
	if !strings.Contains(s.text, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s.text {
		switch r {
		case '\t':
			if tabSize > 0 {
				n := tabSize - col%tabSize
				b.WriteString(strings.Repeat(" ", n))
				col += n
			}
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return fromText(b.String())
}

// Repeat returns s repeated n times. A count of zero or less gives the empty
// string.
func (s Str8) Repeat(n int) Str8 {
	if n <= 0 {
		return Str8{}
	}
	return s.project(func(text string) string { return strings.Repeat(text, n) })
}

func (s Str8) pad(left, right int, fill rune) Str8 {
	left, right = max(left, 0), max(right, 0)
	if left == 0 && right == 0 {
		return s
	}
	f := string(fill)
	return fromText(strings.Repeat(f, left) + s.text + strings.Repeat(f, right))
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}
