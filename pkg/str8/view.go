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
	"fmt"
	"hash/maphash"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// Bytes returns the UTF-8 byte view. The slice is shared with s and must not
// be modified.
func (s Str8) Bytes() []byte {
	return s.raw
}

// String returns the text view.
func (s Str8) String() string {
	return s.text
}

// GoString returns the quoted text, so that %#v prints a Str8 like a string
// literal.
func (s Str8) GoString() string {
	return strconv.Quote(s.text)
}

// Len returns the length in characters.
func (s Str8) Len() int {
	return s.n
}

// ByteLen returns the length in bytes.
func (s Str8) ByteLen() int {
	return len(s.raw)
}

func (s Str8) IsEmpty() bool {
	return len(s.raw) == 0
}

// Size returns the number of bytes retained by s: the header plus both
// representations.
func (s Str8) Size() int {
	return int(unsafe.Sizeof(s)) + cap(s.raw) + len(s.text)
}

// Hash returns the maphash of the text view. For any seed it equals
// maphash.String(seed, s.String()) and maphash.Bytes(seed, s.Bytes()), so a
// Str8 hashes like either of its representations.
func (s Str8) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, s.text)
}

// At returns the character at character index i. A negative index counts
// from the end. At panics if i is out of range.
func (s Str8) At(i int) Str8 {
	if i < 0 {
		i += s.n
	}
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("str8: index %d out of range [0:%d]", i, s.n))
	}
	off := s.byteOffset(i)
	_, size := utf8.DecodeRuneInString(s.text[off:])
	return fromText(s.text[off : off+size])
}

// Slice returns the characters in [start, end). Negative bounds count from
// the end and bounds are clamped to the string, so Slice never panics.
func (s Str8) Slice(start, end int) Str8 {
	start, end = clampRange(start, end, s.n)
	if start >= end {
		return Str8{}
	}
	if start == 0 && end == s.n {
		return s
	}
	lo := s.byteOffset(start)
	hi := lo + s.byteOffset(end-start, lo)
	return fromText(s.text[lo:hi])
}

// Runes iterates over the characters of s with their character index.
func (s Str8) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		i := 0
		for _, r := range s.text {
			if !yield(i, r) {
				return
			}
			i++
		}
	}
}

// WriteTo writes the byte view to w.
func (s Str8) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.raw)
	if err == nil && n < len(s.raw) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Int parses the text, surrounding whitespace excluded, as a base 10 integer.
func (s Str8) Int() (int, error) {
	return strconv.Atoi(strings.TrimFunc(s.text, isSpace))
}

// byteOffset converts a character count into a byte offset, starting at the
// optional byte position from.
func (s Str8) byteOffset(chars int, from ...int) int {
	text := s.text
	if len(from) > 0 {
		text = text[from[0]:]
	}
	if s.isASCII() {
		return chars
	}
	off := 0
	for ; chars > 0 && off < len(text); chars-- {
		_, size := utf8.DecodeRuneInString(text[off:])
		off += size
	}
	return off
}

func (s Str8) isASCII() bool {
	return s.n == len(s.raw)
}

// charOffset converts a byte offset of text into a character offset.
func charOffset(text string, off int) int {
	if off <= 0 {
		return off
	}
	return utf8.RuneCountInString(text[:off])
}

// clampRange normalizes slice bounds the way sequence slicing does: negative
// values count from the end and the result lies within [0, n].
func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start = max(start+n, 0)
	}
	if end < 0 {
		end = max(end+n, 0)
	}
	return min(start, n), min(end, n)
}
