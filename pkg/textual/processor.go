// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textual

import (
	"context"
	"runtime/debug"
)

// Processor is one stage of a pipeline.
//
// Implementations:
//
//   - read zero or more values from in and emit zero or more values on the
//     returned channel;
//   - stop promptly when ctx is canceled;
//   - close the returned channel when done, and never close in.
//
// The returned channel must be non-nil and consumed until it is closed.
type Processor[S Carrier[S]] interface {
	Apply(ctx context.Context, in <-chan S) <-chan S
}

// ProcessorFunc adapts a function into a Processor:
//
//	upper := ProcessorFunc[Dual](func(ctx context.Context, in <-chan Dual) <-chan Dual {
//		return Async(ctx, in, func(_ context.Context, d Dual) Dual {
//			d.Value = d.Value.Upper()
//			return d
//		})
//	})
type ProcessorFunc[S Carrier[S]] func(ctx context.Context, in <-chan S) <-chan S

// Apply calls f(ctx, in).
//
// If f panics, or is nil, or returns a nil channel, the fault is recorded in
// the PanicStore of ctx and a closed channel is returned.
func (f ProcessorFunc[S]) Apply(ctx context.Context, in <-chan S) (out <-chan S) {
	ctx, ps := EnsurePanicStore(ctx)

	defer func() {
		if r := recover(); r != nil {
			ps.Store(r, debug.Stack())
			out = closedChan[S]()
		}
	}()

	out = f(ctx, in)
	if out == nil {
		ps.Store("textual: ProcessorFunc returned a nil channel", debug.Stack())
		out = closedChan[S]()
	}
	return out
}

// Chain runs p after f. Nil processors are skipped.
func (f ProcessorFunc[S]) Chain(p ...Processor[S]) ProcessorFunc[S] {
	if len(p) == 0 {
		return f
	}
	c := NewChain[S](append([]Processor[S]{f}, p...)...)
	return c.Apply
}

// ProcessorFuncFrom adapts any Processor into a ProcessorFunc.
func ProcessorFuncFrom[S Carrier[S]](p Processor[S]) ProcessorFunc[S] {
	if p == nil {
		return nil
	}
	return p.Apply
}

func closedChan[S any]() <-chan S {
	ch := make(chan S)
	close(ch)
	return ch
}
