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
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/abarnert/str8/pkg/codec"
)

// Str8 is an immutable UTF-8 string that is at the same time a byte sequence
// and a text.
//
// Both views are materialized when the value is built and never change:
// Bytes returns the UTF-8 encoding of String, always. The zero value is the
// empty string.
//
// Str8 values are cheap to copy; copies share their storage.
type Str8 struct {
	raw  []byte
	text string
	n    int
}

// FromBytes builds a Str8 from UTF-8 bytes. The bytes are copied.
//
// It returns a *DecodeError if b is not valid UTF-8.
func FromBytes(b []byte) (Str8, error) {
	if err := codec.ValidateUTF8(b); err != nil {
		return Str8{}, err
	}
	raw := bytes.Clone(b)
	return Str8{raw: raw, text: string(raw), n: utf8.RuneCount(raw)}, nil
}

// FromString builds a Str8 from text.
//
// Go strings may hold arbitrary bytes, so s is validated: a *DecodeError is
// returned if it is not valid UTF-8.
func FromString(s string) (Str8, error) {
	if err := codec.ValidateString(s); err != nil {
		return Str8{}, err
	}
	return fromText(s), nil
}

// FromEncoded decodes b from the named encoding and stores the result as
// UTF-8. mode decides what happens to bytes that cannot be decoded.
func FromEncoded(b []byte, encoding string, mode codec.ErrorMode) (Str8, error) {
	if isUTF8(encoding) && (mode == "" || mode == codec.Strict) {
		return FromBytes(b)
	}
	if encoding == "" {
		encoding = string(codec.UTF8)
	}
	c, err := codec.Lookup(encoding)
	if err != nil {
		return Str8{}, err
	}
	s, err := c.Decode(b, mode)
	if err != nil {
		return Str8{}, err
	}
	return fromText(s), nil
}

// ReadFrom reads r to the end and decodes it like FromEncoded.
func ReadFrom(r io.Reader, encoding string, mode codec.ErrorMode) (Str8, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Str8{}, err
	}
	return FromEncoded(b, encoding, mode)
}

// New converts any value to a Str8.
//
//   - A Str8 is returned as is, sharing its storage.
//   - []byte and Bytes are decoded as strict UTF-8.
//   - string and Text are validated as UTF-8.
//   - A fmt.Stringer or an error contributes its String or Error text.
//   - Anything else is formatted with fmt.Sprint.
func New(v any) (Str8, error) {
	switch x := v.(type) {
	case Str8:
		return x, nil
	case *Str8:
		if x == nil {
			return Str8{}, nil
		}
		return *x, nil
	case []byte:
		return FromBytes(x)
	case Bytes:
		return FromBytes(x)
	case string:
		return FromString(x)
	case Text:
		return FromString(string(x))
	case fmt.Stringer:
		return FromString(x.String())
	case error:
		return FromString(x.Error())
	}
	return FromString(fmt.Sprint(v))
}

// Must returns s, and panics if err is not nil.
//
//	greeting := str8.Must(str8.FromString("héllo"))
func Must(s Str8, err error) Str8 {
	if err != nil {
		panic(err)
	}
	return s
}

// fromText wraps text already known to be valid UTF-8.
func fromText(s string) Str8 {
	return Str8{raw: []byte(s), text: s, n: utf8.RuneCountInString(s)}
}

// fromRaw wraps bytes produced by a byte-level operation. They are owned by
// the new value and validated.
func fromRaw(b []byte) (Str8, error) {
	if err := codec.ValidateUTF8(b); err != nil {
		return Str8{}, err
	}
	return Str8{raw: b, text: string(b), n: utf8.RuneCount(b)}, nil
}

// fromRawParts wraps each part with fromRaw, failing on the first invalid one.
func fromRawParts(parts [][]byte) ([]Str8, error) {
	out := make([]Str8, len(parts))
	for i, p := range parts {
		s, err := fromRaw(bytes.Clone(p))
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func fromTextParts(parts []string) []Str8 {
	out := make([]Str8, len(parts))
	for i, p := range parts {
		out[i] = fromText(p)
	}
	return out
}
