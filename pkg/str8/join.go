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
	"strings"
)

// Join concatenates elems with s between them.
//
// Every element is read as text: a Str8 contributes its text view, Text
// passes through and Bytes is decoded as strict UTF-8, failing with a
// *DecodeError when it is not valid.
func (s Str8) Join(elems ...Argument) (Str8, error) {
	parts := make([]string, len(elems))
	for i, e := range elems {
		t, err := resolve(e).asText()
		if err != nil {
			return Str8{}, err
		}
		parts[i] = t
	}
	return fromText(strings.Join(parts, s.text)), nil
}

// JoinStr8 is Join for elements that are already Str8 values. It cannot
// fail.
func (s Str8) JoinStr8(elems []Str8) Str8 {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.text
	}
	return fromText(strings.Join(parts, s.text))
}

// Format uses s as a fmt format string.
//
// Arguments of type Str8, Bytes, []byte and Text are converted to text
// first, as Join does, so "%s" prints any of them as text. The formatted
// result must be valid UTF-8.
func (s Str8) Format(args ...any) (Str8, error) {
	conv := make([]any, len(args))
	for i, a := range args {
		c, err := formatArg(a)
		if err != nil {
			return Str8{}, err
		}
		conv[i] = c
	}
	return FromString(fmt.Sprintf(s.text, conv...))
}

func formatArg(a any) (any, error) {
	switch x := a.(type) {
	case Str8:
		return x.text, nil
	case *Str8:
		if x == nil {
			return "", nil
		}
		return x.text, nil
	case Text:
		return string(x), nil
	case Bytes:
		return x.resolve().asText()
	case []byte:
		return Bytes(x).resolve().asText()
	}
	return a, nil
}
