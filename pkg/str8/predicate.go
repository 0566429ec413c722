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
	"unicode"
	"unicode/utf8"
)

// Predicates on characters. Except for IsASCII and IsPrintable they are
// false for the empty string.

func (s Str8) IsAlnum() bool {
	return s.query(all(func(r rune) bool {
		return unicode.IsLetter(r) || isNumeric(r)
	}))
}

func (s Str8) IsAlpha() bool {
	return s.query(all(unicode.IsLetter))
}

// IsASCII reports whether every character is below U+0080.
func (s Str8) IsASCII() bool {
	return s.isASCII()
}

// IsDecimal reports whether every character is a decimal digit (Nd).
func (s Str8) IsDecimal() bool {
	return s.query(all(unicode.IsDigit))
}

// IsDigit is IsDecimal extended to digits that are not used in decimal
// notation, such as superscripts and circled digits.
func (s Str8) IsDigit() bool {
	return s.query(all(isDigit))
}

// IsNumeric reports whether every character has a numeric value: digits,
// letter numbers and other numbers.
func (s Str8) IsNumeric() bool {
	return s.query(all(isNumeric))
}

// IsIdentifier reports whether s is a letter or underscore followed by
// letters, digits, combining marks and connector punctuation.
func (s Str8) IsIdentifier() bool {
	return s.query(func(text string) bool {
		r, size := utf8.DecodeRuneInString(text)
		if size == 0 || !(r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)) {
			return false
		}
		return all(func(r rune) bool {
			return unicode.IsLetter(r) || unicode.In(r, unicode.Nd, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Pc)
		})(text[size:]) || size == len(text)
	})
}

// IsLower reports whether s has at least one cased character and all of
// them are lowercase.
func (s Str8) IsLower() bool {
	return s.query(func(text string) bool {
		cased := false
		for _, r := range text {
			if unicode.IsUpper(r) || unicode.IsTitle(r) {
				return false
			}
			cased = cased || unicode.IsLower(r)
		}
		return cased
	})
}

// IsUpper reports whether s has at least one cased character and all of
// them are uppercase.
func (s Str8) IsUpper() bool {
	return s.query(func(text string) bool {
		cased := false
		for _, r := range text {
			if unicode.IsLower(r) || unicode.IsTitle(r) {
				return false
			}
			cased = cased || unicode.IsUpper(r)
		}
		return cased
	})
}

// IsTitle reports whether s is titlecased: uppercase and titlecase
// characters only follow uncased ones, lowercase characters only follow
// cased ones, and there is at least one cased character.
func (s Str8) IsTitle() bool {
	return s.query(func(text string) bool {
		cased, prevCased := false, false
		for _, r := range text {
			switch {
			case unicode.IsUpper(r) || unicode.IsTitle(r):
				if prevCased {
					return false
				}
				prevCased, cased = true, true
			case unicode.IsLower(r):
				if !prevCased {
					return false
				}
				prevCased, cased = true, true
			default:
				prevCased = false
			}
		}
		return cased
	})
}

// IsPrintable reports whether every character is printable: no control,
// format or separator characters other than the ASCII space.
func (s Str8) IsPrintable() bool {
	return s.query(func(text string) bool {
		for _, r := range text {
			if !unicode.IsPrint(r) {
				return false
			}
		}
		return true
	})
}

// IsSpace reports whether every character is whitespace.
func (s Str8) IsSpace() bool {
	return s.query(all(isSpace))
}

// all returns a predicate on non-empty text holding for every character.
func all(f func(rune) bool) func(string) bool {
	return func(text string) bool {
		if text == "" {
			return false
		}
		for _, r := range text {
			if !f(r) {
				return false
			}
		}
		return true
	}
}

// otherDigits lists characters outside Nd that still read as a single digit.
var otherDigits = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(otherDigits, r)
}

func isNumeric(r rune) bool {
	return unicode.In(r, unicode.Nd, unicode.Nl, unicode.No)
}
