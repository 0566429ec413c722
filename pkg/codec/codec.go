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

// Package codec converts between UTF-8 and the legacy encodings found at the
// boundaries of a program.
//
// Inside the module every piece of text is UTF-8. codec is the single place
// where other encodings are decoded into UTF-8 or produced from it, with an
// explicit ErrorMode deciding what happens to bytes or characters that do not
// fit.
package codec

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrorMode selects how a Codec handles input it cannot convert.
type ErrorMode string

const (
	// Strict fails on the first invalid byte or unrepresentable character.
	Strict ErrorMode = "strict"
	// Replace substitutes U+FFFD when decoding and '?' when encoding.
	Replace ErrorMode = "replace"
	// Ignore drops what cannot be converted.
	Ignore ErrorMode = "ignore"
	// BackslashReplace writes \xNN, \uNNNN or \UNNNNNNNN escapes.
	BackslashReplace ErrorMode = "backslashreplace"
	// XMLCharRefReplace writes &#NNNN; references. Encoding only.
	XMLCharRefReplace ErrorMode = "xmlcharrefreplace"
)

// ParseErrorMode maps a mode name to an ErrorMode. The empty name is Strict.
func ParseErrorMode(name string) (ErrorMode, error) {
	m := ErrorMode(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case "":
		return Strict, nil
	case Strict, Replace, Ignore, BackslashReplace, XMLCharRefReplace:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
}

// Codec converts between UTF-8 and one encoding.
//
// The zero Codec is the UTF-8 codec.
type Codec struct {
	id  EncodingID
	enc encoding.Encoding
	cm  *charmap.Charmap
}

// ID returns the canonical name of the codec's encoding.
func (c Codec) ID() EncodingID {
	if c.id == "" {
		return UTF8
	}
	return c.id
}

// Encoding returns the x/text encoding backing the codec, for streaming use.
func (c Codec) Encoding() encoding.Encoding {
	switch c.ID() {
	case UTF8:
		return unicode.UTF8
	case ASCII:
		return asciiEncoding{}
	}
	return c.enc
}

// Decode converts b from the codec's encoding into UTF-8 text.
func (c Codec) Decode(b []byte, mode ErrorMode) (string, error) {
	if mode == "" {
		mode = Strict
	}
	if _, err := ParseErrorMode(string(mode)); err != nil {
		return "", err
	}
	if mode == XMLCharRefReplace {
		return "", fmt.Errorf("%w: %s cannot be used for decoding", ErrUnsupportedMode, mode)
	}
	switch {
	case c.ID() == UTF8:
		return decodeUTF8(b, mode)
	case c.id == ASCII:
		return c.decodeBytewise(b, mode, func(x byte) rune {
			if x < utf8.RuneSelf {
				return rune(x)
			}
			return utf8.RuneError
		})
	case c.cm != nil:
		return c.decodeBytewise(b, mode, c.cm.DecodeByte)
	}
	return c.decodeGeneric(b, mode)
}

// Encode converts UTF-8 text into the codec's encoding.
func (c Codec) Encode(s string, mode ErrorMode) ([]byte, error) {
	if mode == "" {
		mode = Strict
	}
	if _, err := ParseErrorMode(string(mode)); err != nil {
		return nil, err
	}
	if !utf8.ValidString(s) {
		return nil, &EncodeError{Encoding: c.ID(), Offset: -1, Reason: "source is not valid UTF-8"}
	}
	switch {
	case c.ID() == UTF8:
		return []byte(s), nil
	case c.id == ASCII:
		return c.encodeBytewise(s, mode, func(r rune) (byte, bool) {
			if r < utf8.RuneSelf {
				return byte(r), true
			}
			return 0, false
		})
	case c.cm != nil:
		return c.encodeBytewise(s, mode, c.cm.EncodeRune)
	}
	return c.encodeGeneric(s, mode)
}

// ValidateUTF8 returns a *DecodeError locating the first invalid sequence of b,
// or nil when b is valid UTF-8. Surrogate code points are invalid.
func ValidateUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	return invalidUTF8(b)
}

// ValidateString is ValidateUTF8 for a string.
func ValidateString(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	return invalidUTF8([]byte(s))
}

func invalidUTF8(b []byte) *DecodeError {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return &DecodeError{Encoding: UTF8, Offset: i, Reason: utf8Reason(b[i:])}
		}
		i += size
	}
	return &DecodeError{Encoding: UTF8, Offset: -1, Reason: "invalid UTF-8"}
}

func utf8Reason(b []byte) string {
	c := b[0]
	switch {
	case c >= 0x80 && c < 0xC0:
		return fmt.Sprintf("invalid start byte 0x%02x", c)
	case c >= 0xF5 || c == 0xC0 || c == 0xC1:
		return fmt.Sprintf("invalid start byte 0x%02x", c)
	case !utf8.FullRune(b):
		return "unexpected end of data"
	}
	return fmt.Sprintf("invalid continuation byte after 0x%02x", c)
}

func decodeUTF8(b []byte, mode ErrorMode) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	if mode == Strict {
		return "", invalidUTF8(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			substituteByte(&sb, b[i], mode)
			i++
			continue
		}
		sb.Write(b[i : i+size])
		i += size
	}
	return sb.String(), nil
}

// decodeBytewise decodes single-byte encodings; table returns U+FFFD for
// undefined bytes.
func (c Codec) decodeBytewise(b []byte, mode ErrorMode, table func(byte) rune) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for i, x := range b {
		r := table(x)
		if r != utf8.RuneError {
			sb.WriteRune(r)
			continue
		}
		if mode == Strict {
			return "", &DecodeError{Encoding: c.id, Offset: i, Reason: fmt.Sprintf("byte 0x%02x is undefined", x)}
		}
		substituteByte(&sb, x, mode)
	}
	return sb.String(), nil
}

// decodeGeneric relies on the x/text decoder, which substitutes U+FFFD for
// invalid input instead of failing. Output holding U+FFFD is accepted as is
// only when it encodes back to the input; otherwise strict mode fails, and
// backslash escapes degrade to replacement characters because the offending
// bytes are no longer known.
func (c Codec) decodeGeneric(b []byte, mode ErrorMode) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", &DecodeError{Encoding: c.id, Offset: -1, Reason: err.Error()}
	}
	s := string(out)
	if !strings.ContainsRune(s, utf8.RuneError) || c.encodesBackTo(out, b) {
		return s, nil
	}
	switch mode {
	case Strict:
		return "", &DecodeError{Encoding: c.id, Offset: -1, Reason: "invalid byte sequence"}
	case Ignore:
		return strings.ReplaceAll(s, string(utf8.RuneError), ""), nil
	}
	return s, nil
}

// encodesBackTo reports whether text encodes to src, in which case every
// U+FFFD in text was present in src. The encoder may add a byte order mark.
func (c Codec) encodesBackTo(text, src []byte) bool {
	re, err := c.enc.NewEncoder().Bytes(text)
	if err != nil {
		return false
	}
	if bytes.Equal(re, src) {
		return true
	}
	extra := len(re) - len(src)
	return extra > 0 && extra <= 4 && bytes.HasSuffix(re, src)
}

func (c Codec) encodeBytewise(s string, mode ErrorMode, table func(rune) (byte, bool)) ([]byte, error) {
	out := make([]byte, 0, len(s))
	i := 0
	for _, r := range s {
		if x, ok := table(r); ok {
			out = append(out, x)
		} else {
			if mode == Strict {
				return nil, &EncodeError{Encoding: c.id, Offset: i, Rune: r, Reason: "character not in repertoire"}
			}
			out = appendSubstitute(out, r, mode)
		}
		i++
	}
	return out, nil
}

func (c Codec) encodeGeneric(s string, mode ErrorMode) ([]byte, error) {
	out, err := c.enc.NewEncoder().String(s)
	if err == nil {
		return []byte(out), nil
	}
	switch mode {
	case Strict:
		return nil, c.locateEncodeError(s, err)
	case Replace:
		out, err = encoding.ReplaceUnsupported(c.enc.NewEncoder()).String(s)
	case XMLCharRefReplace:
		out, err = encoding.HTMLEscapeUnsupported(c.enc.NewEncoder()).String(s)
	default:
		return c.encodeRunewise(s, mode)
	}
	if err != nil {
		return nil, c.locateEncodeError(s, err)
	}
	return []byte(out), nil
}

// encodeRunewise encodes one character at a time so that unsupported ones can
// be dropped or escaped. It is only reached after a whole-string encode failed.
func (c Codec) encodeRunewise(s string, mode ErrorMode) ([]byte, error) {
	enc := c.enc.NewEncoder()
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, err := enc.String(string(r))
		if err != nil {
			out = appendSubstitute(out, r, mode)
			continue
		}
		out = append(out, b...)
	}
	return out, nil
}

func (c Codec) locateEncodeError(s string, cause error) *EncodeError {
	enc := c.enc.NewEncoder()
	i := 0
	for _, r := range s {
		if _, err := enc.String(string(r)); err != nil {
			return &EncodeError{Encoding: c.id, Offset: i, Rune: r, Reason: err.Error()}
		}
		i++
	}
	return &EncodeError{Encoding: c.id, Offset: -1, Reason: cause.Error()}
}

func substituteByte(sb *strings.Builder, x byte, mode ErrorMode) {
	switch mode {
	case Replace:
		sb.WriteRune(utf8.RuneError)
	case BackslashReplace:
		fmt.Fprintf(sb, `\x%02x`, x)
	}
}

func appendSubstitute(out []byte, r rune, mode ErrorMode) []byte {
	switch mode {
	case Replace:
		return append(out, '?')
	case BackslashReplace:
		switch {
		case r <= 0xFF:
			return fmt.Appendf(out, `\x%02x`, r)
		case r <= 0xFFFF:
			return fmt.Appendf(out, `\u%04x`, r)
		}
		return fmt.Appendf(out, `\U%08x`, r)
	case XMLCharRefReplace:
		return fmt.Appendf(out, "&#%d;", r)
	}
	return out
}
