// Copyright 2024 The Leptonica-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dwa lowers a structuring element's HIT cells into
// destination-word-accumulation terms: a (delx, dely) offset pair per
// HIT, from which both generated C text and a live Go evaluator read
// the same aligned 32-bit window of a source word buffer. Keeping the
// two representations (CExpr and Eval) fed by one Term value is what
// lets this package's tests check generated-code correctness without
// a C compiler in the loop.
package dwa

import (
	"fmt"

	"github.com/yiqideren/leptonica/sel"
)

// Op selects dilation (union, OR-combined terms) or erosion
// (intersection, AND-combined terms).
type Op int

const (
	Dilate Op = iota
	Erode
)

// OpForIndex returns the Op of the kernel at the given kernel index
// (2*i for dilation and 2*i+1 for erosion by the Sel at Sela index i):
// even indices dilate, odd indices erode. This mirrors the parity
// convention the generated dispatch table uses.
func OpForIndex(index int) Op {
	if index%2 == 0 {
		return Dilate
	}
	return Erode
}

// Term is one HIT's contribution to the inner-loop accumulation: the
// destination word at the current position ORs (dilate) or ANDs
// (erode) in the source word read from offset (DelX, DelY) relative
// to the current position, using a 32-bit aligned (barrel-shifted)
// read when DelX is nonzero.
type Term struct {
	DelX, DelY int
}

// Lower converts every HIT cell in s into a Term for the operation of
// the given kernel index (see OpForIndex). Unlike the original generator, which warns
// and silently skips a HIT whose offset exceeds +/-31, Lower rejects
// the whole Sel with an error: producing code that is silently wrong
// for some inputs is worse than refusing to generate it (see
// SPEC_FULL.md's redesign note on this exact behavior).
func Lower(s *sel.Sel, index int) ([]Term, error) {
	op := OpForIndex(index)
	var terms []Term
	for _, hit := range s.Hits() {
		j, i := hit[0], hit[1]
		var delx, dely int
		if op == Dilate {
			dely = s.Cy - i
			delx = s.Cx - j
		} else {
			dely = i - s.Cy
			delx = j - s.Cx
		}
		if delx < -31 || delx > 31 {
			return nil, fmt.Errorf("dwa: sel %q: delx=%d out of range [-31,31] at hit (%d,%d)", s.Name, delx, j, i)
		}
		if dely < -31 || dely > 31 {
			return nil, fmt.Errorf("dwa: sel %q: dely=%d out of range [-31,31] at hit (%d,%d)", s.Name, dely, j, i)
		}
		terms = append(terms, Term{DelX: delx, DelY: dely})
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("dwa: sel %q has no HIT cells", s.Name)
	}
	return terms, nil
}
