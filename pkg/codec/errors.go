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
	"fmt"
)

var (
	// ErrUnknownEncoding is returned by Lookup when no codec matches a name.
	ErrUnknownEncoding = errors.New("codec: unknown encoding")

	// ErrUnsupportedMode is returned when an ErrorMode is not meaningful for
	// the requested direction (for instance XMLCharRefReplace while decoding).
	ErrUnsupportedMode = errors.New("codec: unsupported error mode")
)

// DecodeError reports bytes that cannot be decoded under a strict error mode.
//
// Offset is the position of the first offending byte in the input, or -1 when
// the underlying decoder cannot tell where the failure happened.
type DecodeError struct {
	Encoding EncodingID
	Offset   int
	Reason   string
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("codec: cannot decode %s: %s", e.Encoding, e.Reason)
	}
	return fmt.Sprintf("codec: cannot decode %s at byte %d: %s", e.Encoding, e.Offset, e.Reason)
}

// EncodeError reports text that cannot be represented in a target encoding.
//
// Offset is a character (rune) index into the source text.
type EncodeError struct {
	Encoding EncodingID
	Offset   int
	Rune     rune
	Reason   string
}

func (e *EncodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("codec: cannot encode to %s: %s", e.Encoding, e.Reason)
	}
	return fmt.Sprintf("codec: cannot encode %U at character %d to %s: %s", e.Rune, e.Offset, e.Encoding, e.Reason)
}
