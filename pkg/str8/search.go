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

// Contains reports whether sub occurs in s.
func (s Str8) Contains(sub Argument) bool {
	return search(s, sub, false, strings.Contains, bytes.Contains)
}

// Equal reports whether s and other hold the same string. A byte-like other
// is compared with the byte view, a text other with the text view. Since
// the byte view is the UTF-8 encoding of the text view, both answers agree
// whenever other is valid UTF-8.
func (s Str8) Equal(other Argument) bool {
	return search(s, other, false,
		func(text, o string) bool { return text == o },
		bytes.Equal)
}

// Compare orders s and other lexicographically, returning -1, 0 or +1. Both
// sides are compared in other's kind: byte views against a byte-like other,
// text against a text other. UTF-8 preserves code point order, so the two
// agree for valid operands.
func (s Str8) Compare(other Argument) int {
	o := resolve(other)
	if o.kind == KindBytes {
		return bytes.Compare(s.raw, o.raw)
	}
	return strings.Compare(s.text, o.text)
}

// Count returns the number of non-overlapping occurrences of sub. An empty
// sub matches between every pair of units: characters for text, bytes for a
// byte-like sub.
func (s Str8) Count(sub Argument) int {
	return search(s, sub, 0, strings.Count, func(raw, sub []byte) int {
		if len(sub) == 0 {
			return len(raw) + 1
		}
		return bytes.Count(raw, sub)
	})
}

func (s Str8) HasPrefix(prefix Argument) bool {
	return search(s, prefix, false, strings.HasPrefix, bytes.HasPrefix)
}

func (s Str8) HasSuffix(suffix Argument) bool {
	return search(s, suffix, false, strings.HasSuffix, bytes.HasSuffix)
}

// Find returns the position of the first occurrence of sub, or -1. The
// position is a character index for a text sub and a byte index for a
// byte-like sub:
//
//	abc := str8.Must(str8.FromString("áβç"))
//	abc.Find(str8.Text("β"))          // 1
//	abc.Find(str8.Bytes("\xce\xb2"))  // 2
func (s Str8) Find(sub Argument) int {
	return search(s, sub, -1,
		func(text, sub string) int { return charOffset(text, strings.Index(text, sub)) },
		bytes.Index)
}

// RFind is Find for the last occurrence.
func (s Str8) RFind(sub Argument) int {
	return search(s, sub, -1,
		func(text, sub string) int { return charOffset(text, strings.LastIndex(text, sub)) },
		bytes.LastIndex)
}

// Index is Find returning a *ValueError wrapping ErrNotFound instead of -1.
func (s Str8) Index(sub Argument) (int, error) {
	return found("index", s.Find(sub))
}

// RIndex is RFind returning a *ValueError wrapping ErrNotFound instead of -1.
func (s Str8) RIndex(sub Argument) (int, error) {
	return found("rindex", s.RFind(sub))
}

func found(op string, i int) (int, error) {
	if i < 0 {
		return -1, &ValueError{Op: op, Err: ErrNotFound}
	}
	return i, nil
}
