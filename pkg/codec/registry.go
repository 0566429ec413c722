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
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// EncodingID is the canonical, lower-case name of an encoding.
type EncodingID string

const (
	UTF8        EncodingID = "utf-8"
	ASCII       EncodingID = "us-ascii"
	ISO8859_1   EncodingID = "iso-8859-1"
	ISO8859_2   EncodingID = "iso-8859-2"
	ISO8859_5   EncodingID = "iso-8859-5"
	ISO8859_7   EncodingID = "iso-8859-7"
	ISO8859_15  EncodingID = "iso-8859-15"
	Windows1250 EncodingID = "windows-1250"
	Windows1251 EncodingID = "windows-1251"
	Windows1252 EncodingID = "windows-1252"
	KOI8R       EncodingID = "koi8-r"
	KOI8U       EncodingID = "koi8-u"
	CP437       EncodingID = "ibm437"
	CP850       EncodingID = "ibm850"
	MacRoman    EncodingID = "macintosh"
	UTF16       EncodingID = "utf-16"
	UTF16LE     EncodingID = "utf-16le"
	UTF16BE     EncodingID = "utf-16be"
	UTF32       EncodingID = "utf-32"
	UTF32LE     EncodingID = "utf-32le"
	UTF32BE     EncodingID = "utf-32be"
	ShiftJIS    EncodingID = "shift_jis"
	EUCJP       EncodingID = "euc-jp"
	ISO2022JP   EncodingID = "iso-2022-jp"
	GBK         EncodingID = "gbk"
	GB18030     EncodingID = "gb18030"
	HZGB2312    EncodingID = "hz-gb-2312"
	Big5        EncodingID = "big5"
	EUCKR       EncodingID = "euc-kr"
)

// registry holds every encoding known without consulting the IANA index.
// UTF-16 and UTF-32 without an explicit byte order follow the usual
// convention: a BOM is honored when decoding and written when encoding, and
// little-endian is assumed otherwise.
var registry = map[EncodingID]encoding.Encoding{
	ISO8859_1:   charmap.ISO8859_1,
	ISO8859_2:   charmap.ISO8859_2,
	ISO8859_5:   charmap.ISO8859_5,
	ISO8859_7:   charmap.ISO8859_7,
	ISO8859_15:  charmap.ISO8859_15,
	Windows1250: charmap.Windows1250,
	Windows1251: charmap.Windows1251,
	Windows1252: charmap.Windows1252,
	KOI8R:       charmap.KOI8R,
	KOI8U:       charmap.KOI8U,
	CP437:       charmap.CodePage437,
	CP850:       charmap.CodePage850,
	MacRoman:    charmap.Macintosh,
	UTF16:       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	UTF16LE:     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	UTF16BE:     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	UTF32:       utf32.UTF32(utf32.LittleEndian, utf32.UseBOM),
	UTF32LE:     utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	UTF32BE:     utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	ShiftJIS:    japanese.ShiftJIS,
	EUCJP:       japanese.EUCJP,
	ISO2022JP:   japanese.ISO2022JP,
	GBK:         simplifiedchinese.GBK,
	GB18030:     simplifiedchinese.GB18030,
	HZGB2312:    simplifiedchinese.HZGB2312,
	Big5:        traditionalchinese.Big5,
	EUCKR:       korean.EUCKR,
}

// aliases maps normalized names (see normalize) to canonical ids.
var aliases = map[string]EncodingID{
	"utf-8": UTF8, "utf8": UTF8, "u8": UTF8, "utf": UTF8, "cp65001": UTF8,
	"us-ascii": ASCII, "ascii": ASCII, "646": ASCII, "us": ASCII,
	"iso-8859-1": ISO8859_1, "iso8859-1": ISO8859_1, "latin-1": ISO8859_1, "latin1": ISO8859_1, "l1": ISO8859_1, "8859": ISO8859_1, "cp819": ISO8859_1,
	"iso-8859-2": ISO8859_2, "iso8859-2": ISO8859_2, "latin-2": ISO8859_2, "latin2": ISO8859_2, "l2": ISO8859_2,
	"iso-8859-5": ISO8859_5, "iso8859-5": ISO8859_5, "cyrillic": ISO8859_5,
	"iso-8859-7": ISO8859_7, "iso8859-7": ISO8859_7, "greek": ISO8859_7,
	"iso-8859-15": ISO8859_15, "iso8859-15": ISO8859_15, "latin-9": ISO8859_15, "latin9": ISO8859_15, "l9": ISO8859_15,
	"windows-1250": Windows1250, "cp1250": Windows1250,
	"windows-1251": Windows1251, "cp1251": Windows1251,
	"windows-1252": Windows1252, "cp1252": Windows1252,
	"koi8-r": KOI8R, "koi8r": KOI8R,
	"koi8-u": KOI8U, "koi8u": KOI8U,
	"ibm437": CP437, "cp437": CP437, "437": CP437,
	"ibm850": CP850, "cp850": CP850, "850": CP850,
	"macintosh": MacRoman, "mac-roman": MacRoman, "macroman": MacRoman,
	"utf-16": UTF16, "utf16": UTF16,
	"utf-16le": UTF16LE, "utf-16-le": UTF16LE, "utf16le": UTF16LE,
	"utf-16be": UTF16BE, "utf-16-be": UTF16BE, "utf16be": UTF16BE,
	"utf-32": UTF32, "utf32": UTF32,
	"utf-32le": UTF32LE, "utf-32-le": UTF32LE, "utf32le": UTF32LE,
	"utf-32be": UTF32BE, "utf-32-be": UTF32BE, "utf32be": UTF32BE,
	"shift-jis": ShiftJIS, "shiftjis": ShiftJIS, "sjis": ShiftJIS, "s-jis": ShiftJIS,
	"euc-jp": EUCJP, "eucjp": EUCJP,
	"iso-2022-jp": ISO2022JP, "iso2022-jp": ISO2022JP,
	"gbk": GBK, "cp936": GBK, "gb2312": GBK, "euc-cn": GBK,
	"gb18030": GB18030,
	"hz-gb-2312": HZGB2312, "hz": HZGB2312,
	"big5": Big5, "big5-tw": Big5, "cp950": Big5,
	"euc-kr": EUCKR, "euckr": EUCKR, "cp949": EUCKR,
}

func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "-", " ", "-").Replace(n)
}

// IsUTF8 reports whether name designates UTF-8.
func IsUTF8(name string) bool {
	return aliases[normalize(name)] == UTF8
}

// Lookup returns the codec for an encoding name.
//
// Names are matched case-insensitively, '_' and ' ' are equivalent to '-',
// and common aliases such as "latin-1", "cp1252" or "utf8" are accepted.
// Names outside the built-in table are resolved through the IANA index.
func Lookup(name string) (Codec, error) {
	n := normalize(name)
	if id, ok := aliases[n]; ok {
		return codecFor(id, registry[id]), nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return Codec{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if enc == unicode.UTF8 {
		return Codec{id: UTF8}, nil
	}
	id := EncodingID(n)
	if canonical, err := ianaindex.IANA.Name(enc); err == nil {
		id = EncodingID(strings.ToLower(canonical))
	}
	return codecFor(id, enc), nil
}

func codecFor(id EncodingID, enc encoding.Encoding) Codec {
	c := Codec{id: id, enc: enc}
	if cm, ok := enc.(*charmap.Charmap); ok {
		c.cm = cm
	}
	return c
}

// Names lists the canonical ids of the built-in encodings.
func Names() []string {
	names := make([]string, 0, len(registry)+2)
	names = append(names, string(UTF8), string(ASCII))
	for id := range registry {
		names = append(names, string(id))
	}
	sort.Strings(names)
	return names
}
