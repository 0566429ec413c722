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
	"unicode/utf8"

	"github.com/abarnert/str8/pkg/codec"
)

// Kind tells whether an Argument is text or a byte sequence.
type Kind uint8

const (
	KindText Kind = iota + 1
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	}
	return "unknown"
}

// Argument is the operand of a Str8 operation whose behavior depends on
// whether the operand is text or bytes.
//
// The set of implementations is closed: Text, Bytes and Str8. A Str8 operand
// is byte-like, like any other UTF-8 byte sequence, so searching for a Str8
// yields byte offsets. Operations that join or format values take the text
// view of a Str8 instead.
type Argument interface {
	resolve() operand
}

// Text is a text operand. Positions computed against it are character
// offsets.
type Text string

// Bytes is a byte-like operand. Positions computed against it are byte
// offsets.
type Bytes []byte

func (t Text) resolve() operand {
	return operand{kind: KindText, text: string(t)}
}

func (b Bytes) resolve() operand {
	return operand{kind: KindBytes, raw: b}
}

func (s Str8) resolve() operand {
	return operand{kind: KindBytes, raw: s.raw, text: s.text, dual: true}
}

// KindOf returns the kind of a. A nil Argument is text.
func KindOf(a Argument) Kind {
	return resolve(a).kind
}

// operand is the resolved form of an Argument.
type operand struct {
	kind Kind
	text string
	raw  []byte
	dual bool // raw and text are a validated Str8 pair
}

func resolve(a Argument) operand {
	if a == nil {
		return operand{kind: KindText}
	}
	return a.resolve()
}

// asText returns the operand as validated text. Byte-like operands are
// decoded as strict UTF-8.
func (o operand) asText() (string, error) {
	switch {
	case o.dual:
		return o.text, nil
	case o.kind == KindBytes:
		if err := codec.ValidateUTF8(o.raw); err != nil {
			return "", err
		}
		return string(o.raw), nil
	}
	if err := codec.ValidateString(o.text); err != nil {
		return "", err
	}
	return o.text, nil
}

// wholeText reports whether a text operand is valid UTF-8, that is, whether
// it can only ever match on character boundaries of a Str8.
func (o operand) wholeText() bool {
	return utf8.ValidString(o.text)
}
