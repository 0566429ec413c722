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
	"log/slog"
)

// Slog logs every item passing through with the default logger: errors at
// error level, other items at debug level. Items are forwarded unchanged.
func Slog[C Carrier[C]](label string) ProcessorFunc[C] {
	return SlogTo[C](nil, label)
}

// SlogTo is Slog with an explicit logger. A nil logger means slog.Default().
func SlogTo[C Carrier[C]](logger *slog.Logger, label string) ProcessorFunc[C] {
	return func(ctx context.Context, in <-chan C) <-chan C {
		return Async(ctx, in, func(ctx context.Context, item C) C {
			l := logger
			if l == nil {
				l = slog.Default()
			}
			if err := item.GetError(); err != nil {
				l.ErrorContext(ctx, label, "index", item.GetIndex(), "string", item.UTF8String(), "err", err)
			} else {
				l.DebugContext(ctx, label, "index", item.GetIndex(), "string", item.UTF8String())
			}
			return item
		})
	}
}
