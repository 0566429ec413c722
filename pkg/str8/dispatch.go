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

// The helpers below are the only places where an Argument's kind is
// inspected. Every exported operation is one instantiation of a helper with
// a text implementation and a byte implementation.

// project runs a text operation on the text view and wraps its result.
func (s Str8) project(op func(string) string) Str8 {
	out := op(s.text)
	if out == s.text {
		return s
	}
	return fromText(out)
}

// query runs a predicate on the text view.
func (s Str8) query(pred func(string) bool) bool {
	return pred(s.text)
}

// search routes a single-argument query. A byte-like needle is looked up in
// the byte view and positions are byte offsets; a text needle is looked up
// in the text view and positions are character offsets. A text needle that
// is not valid UTF-8 cannot occur in s and yields miss.
func search[R any](s Str8, arg Argument, miss R, onText func(text, needle string) R, onBytes func(raw, needle []byte) R) R {
	o := resolve(arg)
	if o.kind == KindBytes {
		return onBytes(s.raw, o.raw)
	}
	if !o.wholeText() {
		return miss
	}
	return onText(s.text, o.text)
}

// reshape routes an operation whose result is a single new Str8. Byte
// results are validated, so a byte-level edit that breaks a character fails
// with a *DecodeError.
func reshape(s Str8, arg Argument, onText func(text, arg string) string, onBytes func(raw, arg []byte) []byte) (Str8, error) {
	o := resolve(arg)
	if o.kind == KindBytes {
		return wrapRaw(s, onBytes(s.raw, o.raw))
	}
	t, err := o.asText()
	if err != nil {
		return Str8{}, err
	}
	return wrapText(s, onText(s.text, t)), nil
}

// divide routes an operation producing several pieces, each wrapped and
// validated on its own.
func divide(s Str8, arg Argument, onText func(text, arg string) []string, onBytes func(raw, arg []byte) [][]byte) ([]Str8, error) {
	o := resolve(arg)
	if o.kind == KindBytes {
		return fromRawParts(onBytes(s.raw, o.raw))
	}
	if !o.wholeText() {
		return []Str8{s}, nil
	}
	return fromTextParts(onText(s.text, o.text)), nil
}

// wrapRaw validates the result of a byte-level operation on s. When the
// operation changed nothing, s itself is returned.
func wrapRaw(s Str8, out []byte) (Str8, error) {
	if len(out) == len(s.raw) && (len(out) == 0 || &out[0] == &s.raw[0]) {
		return s, nil
	}
	return fromRaw(out)
}

func wrapText(s Str8, out string) Str8 {
	if out == s.text {
		return s
	}
	return fromText(out)
}
