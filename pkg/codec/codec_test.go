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

package codec

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Aliases(t *testing.T) {
	cases := []struct {
		name string
		want EncodingID
	}{
		{"utf-8", UTF8},
		{"UTF8", UTF8},
		{"utf_8", UTF8},
		{"latin-1", ISO8859_1},
		{"Latin_1", ISO8859_1},
		{"ISO-8859-1", ISO8859_1},
		{"cp1252", Windows1252},
		{"ascii", ASCII},
		{"Shift_JIS", ShiftJIS},
		{"utf-16-le", UTF16LE},
	}
	for _, c := range cases {
		got, err := Lookup(c.name)
		require.NoError(t, err, c.name)
		assert.Equal(t, c.want, got.ID(), c.name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("no-such-encoding")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestIsUTF8(t *testing.T) {
	assert.True(t, IsUTF8("utf-8"))
	assert.True(t, IsUTF8("UTF8"))
	assert.True(t, IsUTF8("utf_8"))
	assert.False(t, IsUTF8("latin-1"))
	assert.False(t, IsUTF8(""))
}

func TestValidateUTF8(t *testing.T) {
	require.NoError(t, ValidateUTF8([]byte("áβç")))

	err := ValidateUTF8([]byte{'a', 0x80})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Offset)
	assert.Equal(t, UTF8, de.Encoding)

	// A truncated two-byte sequence.
	err = ValidateUTF8([]byte{0xCE})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 0, de.Offset)
	assert.Contains(t, de.Reason, "end of data")

	// Encoded surrogate halves are rejected.
	require.Error(t, ValidateUTF8([]byte{0xED, 0xA0, 0x80}))
}

func TestDecode_UTF8Modes(t *testing.T) {
	c, err := Lookup("utf-8")
	require.NoError(t, err)
	in := []byte{'a', 0xFF, 'b'}

	_, err = c.Decode(in, Strict)
	var de *DecodeError
	require.ErrorAs(t, err, &de)

	s, err := c.Decode(in, Replace)
	require.NoError(t, err)
	assert.Equal(t, "a�b", s)

	s, err = c.Decode(in, Ignore)
	require.NoError(t, err)
	assert.Equal(t, "ab", s)

	s, err = c.Decode(in, BackslashReplace)
	require.NoError(t, err)
	assert.Equal(t, `a\xffb`, s)

	_, err = c.Decode(in, XMLCharRefReplace)
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
}

func TestLatin1_RoundTrip(t *testing.T) {
	c, err := Lookup("latin-1")
	require.NoError(t, err)

	s, err := c.Decode([]byte{0x43, 0x61, 0x66, 0xE9}, Strict)
	require.NoError(t, err)
	assert.Equal(t, "Café", s)

	b, err := c.Encode("áç", Strict)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE1, 0xE7}, b)
}

func TestEncode_ErrorModes(t *testing.T) {
	c, err := Lookup("latin-1")
	require.NoError(t, err)

	_, err = c.Encode("áβç", Strict)
	var ee *EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 1, ee.Offset)
	assert.Equal(t, 'β', ee.Rune)

	b, err := c.Encode("áβç", Replace)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE1, '?', 0xE7}, b)

	b, err = c.Encode("áβç", Ignore)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE1, 0xE7}, b)

	b, err = c.Encode("áβç", BackslashReplace)
	require.NoError(t, err)
	assert.Equal(t, "\xe1\\u03b2\xe7", string(b))

	b, err = c.Encode("áβç", XMLCharRefReplace)
	require.NoError(t, err)
	assert.Equal(t, "\xe1&#946;\xe7", string(b))
}

func TestASCII(t *testing.T) {
	c, err := Lookup("ascii")
	require.NoError(t, err)

	_, err = c.Decode([]byte("caf\xe9"), Strict)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 3, de.Offset)

	_, err = c.Encode("café", Strict)
	var ee *EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.Offset)
}

func TestWindows1252_Euro(t *testing.T) {
	c, err := Lookup("cp1252")
	require.NoError(t, err)

	s, err := c.Decode([]byte{'a', 0x80}, Strict)
	require.NoError(t, err)
	assert.Equal(t, "a€", s)

	b, err := c.Encode("€", Strict)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, b)
}

func TestUTF16_BOM(t *testing.T) {
	c, err := Lookup("utf-16")
	require.NoError(t, err)

	b, err := c.Encode("hi", Strict)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, b)

	s, err := c.Decode(b, Strict)
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestDecode_GenuineReplacementCharacter(t *testing.T) {
	c, err := Lookup("utf-16le")
	require.NoError(t, err)

	s, err := c.Decode([]byte{0xFD, 0xFF}, Strict)
	require.NoError(t, err)
	assert.Equal(t, "\uFFFD", s)

	s, err = c.Decode([]byte{'a', 0, 0xFD, 0xFF}, Ignore)
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFD", s)

	// An unpaired surrogate also decodes to U+FFFD, but does not encode back.
	_, err = c.Decode([]byte{0x00, 0xD8}, Strict)
	var de *DecodeError
	require.ErrorAs(t, err, &de)

	bom, err := Lookup("utf-16")
	require.NoError(t, err)
	s, err = bom.Decode([]byte{0xFD, 0xFF}, Strict)
	require.NoError(t, err)
	assert.Equal(t, "\uFFFD", s)
}

func TestShiftJIS_RoundTrip(t *testing.T) {
	c, err := Lookup("shift_jis")
	require.NoError(t, err)

	b, err := c.Encode("日本", Strict)
	require.NoError(t, err)
	s, err := c.Decode(b, Strict)
	require.NoError(t, err)
	assert.Equal(t, "日本", s)
}

func TestParseErrorMode(t *testing.T) {
	m, err := ParseErrorMode("")
	require.NoError(t, err)
	assert.Equal(t, Strict, m)

	m, err = ParseErrorMode("Replace")
	require.NoError(t, err)
	assert.Equal(t, Replace, m)

	_, err = ParseErrorMode("surrogateescape")
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
}

// TestNewUTF8Reader_ISO8859_1 checks that NewUTF8Reader decodes ISO-8859-1
// into UTF-8 as a streaming reader.
func TestNewUTF8Reader_ISO8859_1(t *testing.T) {
	// "Café" encoded as ISO-8859-1: 43 61 66 E9
	r, err := NewUTF8Reader(bytes.NewReader([]byte{0x43, 0x61, 0x66, 0xE9}), "iso-8859-1")
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Café", string(out))
}

func TestNewUTF8Reader_ASCII(t *testing.T) {
	r, err := NewUTF8Reader(strings.NewReader("ok\xff"), "ascii")
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "ok�", string(out))
}

func TestNewEncodingWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewEncodingWriter(&buf, "latin-1")
	require.NoError(t, err)

	_, err = io.WriteString(w, "Café")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, []byte{0x43, 0x61, 0x66, 0xE9}, buf.Bytes())
}

func TestReaderToUTF8_AndBack(t *testing.T) {
	s, err := ReaderToUTF8(bytes.NewReader([]byte{0xE9, 0xE8}), "latin1", Strict)
	require.NoError(t, err)
	assert.Equal(t, "éè", s)

	var buf bytes.Buffer
	require.NoError(t, FromUTF8ToWriter(s, "latin1", Strict, &buf))
	assert.Equal(t, []byte{0xE9, 0xE8}, buf.Bytes())
}

func TestNames_IncludesBuiltins(t *testing.T) {
	names := Names()
	assert.Contains(t, names, string(UTF8))
	assert.Contains(t, names, string(ASCII))
	assert.Contains(t, names, string(ISO8859_1))
}
