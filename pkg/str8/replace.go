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

// Replace returns a copy of s with the first n occurrences of old replaced
// by new, or all of them when n < 0.
//
// The byte view is edited only when old and new are both byte-like. In any
// other combination both are read as text, which decodes a byte-like
// argument as strict UTF-8 and may fail with a *DecodeError. With an empty
// old, new is inserted before every unit: every character on the text path
// and every byte on the byte path.
func (s Str8) Replace(old, new Argument, n int) (Str8, error) {
	o, w := resolve(old), resolve(new)
	if o.kind == KindBytes && w.kind == KindBytes {
		return wrapRaw(s, replaceBytes(s.raw, o.raw, w.raw, n))
	}
	ot, err := o.asText()
	if err != nil {
		return Str8{}, err
	}
	wt, err := w.asText()
	if err != nil {
		return Str8{}, err
	}
	return wrapText(s, strings.Replace(s.text, ot, wt, n)), nil
}

func replaceBytes(raw, old, new []byte, n int) []byte {
	if n == 0 {
		return raw
	}
	if len(old) > 0 {
		return bytes.Replace(raw, old, new, n)
	}
	// bytes.Replace steps over whole UTF-8 sequences for an empty old.
	if n < 0 || n > len(raw)+1 {
		n = len(raw) + 1
	}
	out := make([]byte, 0, len(raw)+n*len(new))
	for i := 0; i < n-1; i++ {
		out = append(out, new...)
		out = append(out, raw[i])
	}
	out = append(out, new...)
	return append(out, raw[n-1:]...)
}

// Concat returns s followed by other. A byte-like other is appended to the
// byte view and the result must be valid UTF-8; text is appended to the text
// view.
func (s Str8) Concat(other Argument) (Str8, error) {
	return reshape(s, other,
		func(text, other string) string { return text + other },
		func(raw, other []byte) []byte {
			if len(other) == 0 {
				return raw
			}
			out := make([]byte, 0, len(raw)+len(other))
			return append(append(out, raw...), other...)
		})
}
