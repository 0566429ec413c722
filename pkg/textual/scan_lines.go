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

package textual

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// ScanLines is a bufio.SplitFunc returning lines with their terminator:
// "\n", "\r\n" or a lone "\r". Concatenating the tokens gives back the
// input. The last line may have no terminator.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i+1], nil
		}
		// A '\r' at the end of the buffer may be the first half of "\r\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i+2], nil
		}
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ScanWords is a bufio.SplitFunc returning words followed by the whitespace
// after them. Leading whitespace of the input is attached to the first word,
// so concatenating the tokens gives back the input. Invalid UTF-8 bytes
// count as word characters.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	start := skip(data, 0, true)
	end := skip(data, start, false)
	end = skip(data, end, true)
	if end < len(data) || atEOF {
		return end, data[:end], nil
	}
	return 0, nil, nil
}

// skip advances i over runes that are whitespace when space is true, or
// not whitespace when it is false.
func skip(data []byte, i int, space bool) int {
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		isSpace := !(r == utf8.RuneError && size == 1) && unicode.IsSpace(r)
		if isSpace != space {
			break
		}
		i += size
	}
	return i
}
