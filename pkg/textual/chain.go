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
)

// Chain is a Processor running several processors one after the other:
//
//	chain := NewChain[Dual](Map(upper), Slog[Dual]("out"))
//
//	p := NewIOReaderProcessor[Dual](chain, reader)
//	p.SetContext(ctx)
//	for d := range p.Start() {
//		_ = d.Value
//	}
//
// Nil processors are ignored.
type Chain[S Carrier[S]] struct {
	processors []Processor[S]
}

func NewChain[S Carrier[S]](processors ...Processor[S]) *Chain[S] {
	return &Chain[S]{
		processors: processors,
	}
}

// Apply feeds in through every processor in order and returns the output of
// the last one. Without processors, in is returned as is.
func (c *Chain[S]) Apply(ctx context.Context, in <-chan S) <-chan S {
	out := in
	for _, p := range c.processors {
		if p == nil {
			continue
		}
		out = p.Apply(ctx, out)
	}
	return out
}

// Len returns the number of processors in c, nil ones included.
func (c *Chain[S]) Len() int {
	return len(c.processors)
}
