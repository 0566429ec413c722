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
	"errors"
	"testing"

	"github.com/abarnert/str8/pkg/codec"
)

func TestDual_FromUTF8String(t *testing.T) {
	d := Dual{}.FromUTF8String("héllo")
	if d.Error != nil || d.UTF8String() != "héllo" {
		t.Fatalf("unexpected dual: %q %v", d.UTF8String(), d.Error)
	}

	d = Dual{}.FromUTF8String("h\xe9llo")
	var de *codec.DecodeError
	if !errors.As(d.GetError(), &de) {
		t.Fatalf("expected a DecodeError, got %v", d.GetError())
	}
	if got, want := d.UTF8String(), "h�llo"; got != want {
		t.Fatalf("unexpected replacement: got %q want %q", got, want)
	}
}

func TestDual_AggregateSortsAndJoinsErrors(t *testing.T) {
	items := lines("c", "a", "b")
	items[0] = items[0].WithIndex(2)
	items[1] = items[1].WithIndex(0).WithError(errors.New("first"))
	items[2] = items[2].WithIndex(1).WithError(errors.New("second"))

	got := Dual{}.Aggregate(items)
	if got.UTF8String() != "abc" {
		t.Fatalf("unexpected aggregate: %q", got.UTF8String())
	}
	if got.Error == nil || got.Error.Error() != "first\nsecond" {
		t.Fatalf("unexpected aggregate error: %v", got.Error)
	}
	if items[0].GetIndex() != 2 {
		t.Fatalf("Aggregate must not reorder its input")
	}
}

func TestDual_WithErrorNilIsNoOp(t *testing.T) {
	d := Dual{}.FromUTF8String("x")
	if d.WithError(nil).Error != nil {
		t.Fatalf("expected no error")
	}
}
