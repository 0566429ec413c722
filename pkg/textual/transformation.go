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

package textual

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/abarnert/str8/pkg/codec"
	"github.com/abarnert/str8/pkg/str8"
)

// Transformation describes a conversion from one text nature to another.
type Transformation struct {
	From Nature `json:"from" yaml:"from"`
	To   Nature `json:"to" yaml:"to"`
}

// Nature is an encoding together with the error mode used with it.
// An empty Encoding is UTF-8 and an empty Errors is codec.Strict.
type Nature struct {
	Encoding string          `json:"encoding" yaml:"encoding"`
	Errors   codec.ErrorMode `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// DecodeText reads all of r in the From nature and closes r.
func (t Transformation) DecodeText(r io.ReadCloser) (str8.Str8, error) {
	defer func() { _ = r.Close() }()
	return str8.ReadFrom(r, t.From.Encoding, t.From.Errors)
}

// EncodeResult writes s to w in the To nature and closes w. A failure to
// close w is returned when the write succeeded.
func (t Transformation) EncodeResult(s str8.Str8, w io.WriteCloser) (err error) {
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return t.write(s, w)
}

// Run decodes all of r, cuts it into lines with ScanLines, passes them
// through p and writes the results to w in index order.
//
// Decoding and encoding failures stop the run. Errors carried by the items
// and a panic recorded by a stage are joined into the returned error, after
// every item has been written.
func (t Transformation) Run(ctx context.Context, p Processor[Dual], r io.Reader, w io.Writer) error {
	text, err := str8.ReadFrom(r, t.From.Encoding, t.From.Errors)
	if err != nil {
		return fmt.Errorf("textual: decode %s: %w", t.From.label(), err)
	}

	ctx, ps := EnsurePanicStore(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := scanLines(text)
	in := make(chan Dual)
	go func() {
		defer close(in)
		for i, line := range lines {
			select {
			case <-ctx.Done():
				return
			case in <- NewDual(line).WithIndex(i):
			}
		}
	}()

	results := make([]Dual, 0, len(lines))
	for d := range p.Apply(ctx, in) {
		results = append(results, d)
	}
	slices.SortStableFunc(results, func(a, b Dual) int {
		return a.Index - b.Index
	})

	errs := make([]error, 0)
	for _, d := range results {
		if d.Error != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", d.Index+1, d.Error))
		}
		if err := t.write(d.Value, w); err != nil {
			return errors.Join(append(errs, err)...)
		}
	}
	errs = append(errs, ps.Err(), ctx.Err())
	return errors.Join(errs...)
}

// Stream is Run without buffering: r is decoded incrementally, items are
// written as p emits them, and bytes the From encoding cannot decode become
// U+FFFD whatever the From error mode.
func (t Transformation) Stream(ctx context.Context, p Processor[Dual], r io.Reader, w io.Writer) error {
	ctx, ps := EnsurePanicStore(ctx)

	rp := NewIOReaderProcessor[Dual](p, r)
	if err := rp.SetEncoding(t.From.Encoding); err != nil {
		return err
	}
	rp.SetContext(ctx)
	defer rp.Stop()

	errs := make([]error, 0)
	for d := range rp.Start() {
		if d.Error != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", d.Index+1, d.Error))
		}
		if err := t.write(d.Value, w); err != nil {
			return errors.Join(append(errs, err)...)
		}
	}
	errs = append(errs, rp.Err(), ps.Err())
	return errors.Join(errs...)
}

func (t Transformation) write(s str8.Str8, w io.Writer) error {
	b, err := s.EncodeWith(t.To.Encoding, t.To.Errors)
	if err != nil {
		return fmt.Errorf("textual: encode %s: %w", t.To.label(), err)
	}
	_, err = w.Write(b)
	return err
}

func (n Nature) label() string {
	enc := n.Encoding
	if enc == "" {
		enc = string(codec.UTF8)
	}
	if n.Errors == "" {
		return enc
	}
	return enc + "/" + string(n.Errors)
}

// scanLines cuts s the way ScanLines cuts a stream, so Run and Stream see
// the same lines.
func scanLines(s str8.Str8) []str8.Str8 {
	var out []str8.Str8
	data := s.Bytes()
	for len(data) > 0 {
		advance, token, _ := ScanLines(data, true)
		// Cuts fall after ASCII terminators, so every token is valid UTF-8.
		out = append(out, str8.Must(str8.FromBytes(token)))
		data = data[advance:]
	}
	return out
}
