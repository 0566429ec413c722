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
	"encoding/hex"
	"strings"

	"github.com/abarnert/str8/pkg/codec"
)

// Encode returns the text of s in the named encoding, strictly: a character
// the encoding cannot represent is an *EncodeError.
//
// For UTF-8 the byte view of s is returned itself, without a copy.
func (s Str8) Encode(encoding string) ([]byte, error) {
	return s.EncodeWith(encoding, codec.Strict)
}

// EncodeWith is Encode with an explicit error mode.
func (s Str8) EncodeWith(encoding string, mode codec.ErrorMode) ([]byte, error) {
	if isUTF8(encoding) {
		return s.raw, nil
	}
	c, err := codec.Lookup(encoding)
	if err != nil {
		return nil, err
	}
	return c.Encode(s.text, mode)
}

// Decode returns s for UTF-8. A Str8 is already decoded text, so decoding it
// from any other encoding is an *UnsupportedOperationError.
func (s Str8) Decode(encoding string) (Str8, error) {
	if isUTF8(encoding) {
		return s, nil
	}
	return Str8{}, &UnsupportedOperationError{
		Op:     "decode",
		Reason: "cannot decode UTF-8 Str8 as " + encoding,
	}
}

// Hex returns the lowercase hexadecimal digits of the byte view.
func (s Str8) Hex() Str8 {
	return fromText(hex.EncodeToString(s.raw))
}

// FromHex decodes hexadecimal digits, in either case and with ASCII
// whitespace (space, tab, newline, vertical tab, form feed, carriage
// return) between them, into a Str8. The decoded bytes must be valid UTF-8.
func FromHex(digits string) (Str8, error) {
	digits = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return -1
		}
		return r
	}, digits)
	b, err := hex.DecodeString(digits)
	if err != nil {
		return Str8{}, &ValueError{Op: "fromhex", Err: ErrInvalidHex}
	}
	return fromRaw(b)
}

// isUTF8 reports whether encoding names UTF-8. The empty name is UTF-8.
func isUTF8(encoding string) bool {
	return encoding == "" || codec.IsUTF8(encoding)
}
