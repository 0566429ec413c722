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
	"errors"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// NewUTF8Reader wraps r so that reads yield UTF-8 decoded from the named
// encoding. UTF-8 input is returned as is; validation is left to the consumer.
//
// Streaming decoders substitute U+FFFD for invalid input. Use ReaderToUTF8
// when strict decoding is required.
func NewUTF8Reader(r io.Reader, name string) (io.Reader, error) {
	c, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if c.ID() == UTF8 {
		return r, nil
	}
	return transform.NewReader(r, c.Encoding().NewDecoder()), nil
}

// NewEncodingWriter wraps w so that UTF-8 written to it reaches w in the
// named encoding. Close must be called to flush buffered output; it does not
// close w.
func NewEncodingWriter(w io.Writer, name string) (io.WriteCloser, error) {
	c, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if c.ID() == UTF8 {
		return nopWriteCloser{w}, nil
	}
	return transform.NewWriter(w, c.Encoding().NewEncoder()), nil
}

// ReaderToUTF8 reads r to the end and decodes it from the named encoding.
func ReaderToUTF8(r io.Reader, name string, mode ErrorMode) (string, error) {
	c, err := Lookup(name)
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return c.Decode(b, mode)
}

// FromUTF8ToWriter encodes text to the named encoding and writes it to w.
func FromUTF8ToWriter(text string, name string, mode ErrorMode, w io.Writer) error {
	c, err := Lookup(name)
	if err != nil {
		return err
	}
	b, err := c.Encode(text, mode)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

var errNotASCII = errors.New("codec: character outside of US-ASCII")

// asciiEncoding is US-ASCII as an x/text encoding, used by the streaming
// helpers. The non-streaming path lives in Codec.
type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiDecoder{}}
}

func (asciiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiEncoder{}}
}

type asciiDecoder struct{ transform.NopResetter }

func (asciiDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		} else {
			if nDst+utf8.UTFMax-1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], utf8.RuneError)
		}
		nSrc++
	}
	return nDst, nSrc, nil
}

type asciiEncoder struct{ transform.NopResetter }

func (asciiEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, errNotASCII
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
