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
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/abarnert/str8/pkg/codec"
)

// IOReaderProcessor feeds the tokens of a reader to a processor.
//
// The reader is decoded from its encoding (UTF-8 unless SetEncoding says
// otherwise), cut by a bufio.SplitFunc (ScanLines by default), and every
// token enters the processor as a carrier whose index is its position in the
// stream.
//
// Streaming decoders substitute U+FFFD for bytes they cannot decode. Use
// Transformation.Run when the input must be decoded strictly.
type IOReaderProcessor[S Carrier[S], P Processor[S]] struct {
	reader    io.Reader
	encoding  string
	splitFunc bufio.SplitFunc
	processor P

	ctx    context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	err error
}

func NewIOReaderProcessor[S Carrier[S], P Processor[S]](processor P, reader io.Reader) *IOReaderProcessor[S, P] {
	return &IOReaderProcessor[S, P]{
		reader:    reader,
		encoding:  string(codec.UTF8),
		splitFunc: ScanLines,
		processor: processor,
	}
}

// SetContext sets the parent context of the scanning loop and of the
// processor. A nil ctx means context.Background().
func (p *IOReaderProcessor[S, P]) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	p.ctx, p.cancel = context.WithCancel(ctx)
}

// SetSplitFunc replaces the tokenizer.
func (p *IOReaderProcessor[S, P]) SetSplitFunc(splitFunc bufio.SplitFunc) {
	p.splitFunc = splitFunc
}

// SetEncoding sets the encoding of the reader. It fails with
// codec.ErrUnknownEncoding for names codec.Lookup does not know. The empty
// name is UTF-8.
func (p *IOReaderProcessor[S, P]) SetEncoding(name string) error {
	if name == "" {
		name = string(codec.UTF8)
	}
	if _, err := codec.Lookup(name); err != nil {
		return err
	}
	p.encoding = name
	return nil
}

func (p *IOReaderProcessor[S, P]) ensureContext() {
	switch {
	case p.ctx == nil:
		p.ctx, p.cancel = context.WithCancel(context.Background())
	case p.cancel == nil:
		p.ctx, p.cancel = context.WithCancel(p.ctx)
	}
}

// Start begins scanning and returns the processor's output. The output is
// closed once the reader is exhausted and the processor is done, or when the
// processor is stopped.
func (p *IOReaderProcessor[S, P]) Start() <-chan S {
	p.ensureContext()
	ctx := p.ctx

	in := make(chan S)
	out := p.processor.Apply(ctx, in)

	go func() {
		defer close(in)

		r, err := codec.NewUTF8Reader(p.reader, p.encoding)
		if err != nil {
			p.setErr(err)
			return
		}
		scanner := bufio.NewScanner(r)
		if p.splitFunc != nil {
			scanner.Split(p.splitFunc)
		}

		prototype := *new(S)
		for index := 0; ; index++ {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if !scanner.Scan() {
				p.setErr(scanner.Err())
				return
			}
			item := prototype.FromUTF8String(scanner.Text()).WithIndex(index)
			select {
			case <-ctx.Done():
				return
			case in <- item:
			}
		}
	}()
	return out
}

// StartWithTimeout is Start with a deadline on the whole run.
func (p *IOReaderProcessor[S, P]) StartWithTimeout(timeout time.Duration) <-chan S {
	if timeout <= 0 {
		return p.Start()
	}
	parent := p.ctx
	if parent == nil {
		parent = context.Background()
	}
	p.ctx, p.cancel = context.WithTimeout(parent, timeout)
	return p.Start()
}

// Stop cancels the run.
func (p *IOReaderProcessor[S, P]) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
}

// Err returns the error that ended scanning, if any. It is meaningful once
// the output channel is closed.
func (p *IOReaderProcessor[S, P]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *IOReaderProcessor[S, P]) setErr(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}
