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
	"errors"

	"github.com/abarnert/str8/pkg/codec"
)

// DecodeError is returned whenever bytes fail strict decoding, during
// construction or when a byte-like operand has to be read as text.
type DecodeError = codec.DecodeError

// EncodeError is returned when text cannot be represented in a target
// encoding.
type EncodeError = codec.EncodeError

var (
	ErrNotFound       = errors.New("substring not found")
	ErrEmptySeparator = errors.New("empty separator")
	ErrLengthMismatch = errors.New("arguments must have equal length")
	ErrTableKey       = errors.New("translation keys must be a single character")
	ErrInvalidHex     = errors.New("invalid hexadecimal input")
)

// ValueError reports an argument with the right kind but an unusable value.
// Err is one of the Err* sentinels of this package.
type ValueError struct {
	Op  string
	Err error
}

func (e *ValueError) Error() string {
	return "str8: " + e.Op + ": " + e.Err.Error()
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// UnsupportedOperationError reports a request that has no meaning for a
// Str8, such as decoding it from an encoding other than UTF-8 or mixing text
// and bytes where a single kind is required.
type UnsupportedOperationError struct {
	Op     string
	Reason string
}

func (e *UnsupportedOperationError) Error() string {
	return "str8: " + e.Op + ": " + e.Reason
}
