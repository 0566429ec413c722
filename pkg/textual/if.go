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

/*
If / ElseIf / Else over Ops

The If builder selects, per item, the Op applied to its value:

	If(pred1).
		Then(op1).
		ElseIf(pred2, op2).
		Else(op3)

Branches are evaluated in order and the first matching predicate selects its
Op. A nil predicate always matches. A nil Op, or no match without Else,
forwards the item unchanged. Indices are never rewritten.
*/

// Conditional is a Processor applying the Op of the first matching branch.
//
// Configure it during pipeline construction; mutating it while Apply is
// running is not safe.
type Conditional struct {
	branches  []ifBranch
	otherwise Op
}

type ifBranch struct {
	predicate Predicate[Dual]
	op        Op
}

// If starts a conditional builder.
func If(predicate Predicate[Dual]) *Conditional {
	return &Conditional{
		branches: []ifBranch{{predicate: predicate}},
	}
}

// Then sets the Op applied when the If predicate matches.
func (c *Conditional) Then(op Op) *Conditional {
	if c == nil {
		c = &Conditional{}
	}
	if len(c.branches) == 0 {
		c.branches = append(c.branches, ifBranch{})
	}
	c.branches[0].op = op
	return c
}

// ElseIf appends a branch evaluated after the previous ones.
func (c *Conditional) ElseIf(predicate Predicate[Dual], op Op) *Conditional {
	if c == nil {
		c = &Conditional{}
	}
	c.branches = append(c.branches, ifBranch{predicate: predicate, op: op})
	return c
}

// Else sets the Op applied when no branch matches.
func (c *Conditional) Else(op Op) *Conditional {
	if c == nil {
		c = &Conditional{}
	}
	c.otherwise = op
	return c
}

// Apply implements Processor[Dual].
func (c *Conditional) Apply(ctx context.Context, in <-chan Dual) <-chan Dual {
	return Async(ctx, in, func(ctx context.Context, d Dual) Dual {
		return c.choose(ctx, d).apply(d)
	})
}

func (c *Conditional) choose(ctx context.Context, d Dual) Op {
	if c == nil {
		return nil
	}
	for _, br := range c.branches {
		if br.predicate == nil || br.predicate(ctx, d) {
			return br.op
		}
	}
	return c.otherwise
}
