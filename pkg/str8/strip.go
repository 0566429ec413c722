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

import "strings"

type stripSide uint8

const (
	stripLeft stripSide = 1 << iota
	stripRight
	stripBoth = stripLeft | stripRight
)

// Strip removes leading and trailing characters found in chars.
//
// A nil chars removes text whitespace. Text chars removes those characters.
// Byte-like chars removes those byte values from the byte view; if that
// cuts a character in half the result is a *DecodeError.
func (s Str8) Strip(chars Argument) (Str8, error) {
	return s.strip(chars, stripBoth)
}

// LStrip is Strip for leading characters only.
func (s Str8) LStrip(chars Argument) (Str8, error) {
	return s.strip(chars, stripLeft)
}

// RStrip is Strip for trailing characters only.
func (s Str8) RStrip(chars Argument) (Str8, error) {
	return s.strip(chars, stripRight)
}

// TrimSpace strips text whitespace from both ends. It is Strip(nil) without
// an error.
func (s Str8) TrimSpace() Str8 {
	return s.project(func(text string) string {
		return trimFunc(text, isSpace, stripBoth)
	})
}

func (s Str8) strip(chars Argument, side stripSide) (Str8, error) {
	if chars == nil {
		return s.project(func(text string) string {
			return trimFunc(text, isSpace, side)
		}), nil
	}
	return reshape(s, chars,
		func(text, chars string) string {
			return trimFunc(text, runeSet(chars), side)
		},
		func(raw, chars []byte) []byte {
			set := makeByteSet(chars)
			if side&stripLeft != 0 {
				raw = set.trimLeft(raw)
			}
			if side&stripRight != 0 {
				raw = set.trimRight(raw)
			}
			return raw
		})
}

func trimFunc(text string, f func(rune) bool, side stripSide) string {
	if side&stripLeft != 0 {
		text = strings.TrimLeftFunc(text, f)
	}
	if side&stripRight != 0 {
		text = strings.TrimRightFunc(text, f)
	}
	return text
}
