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

// Package morph is the pure-Go counterpart to the generated C
// kernels: it interprets the same (delx, dely) DWA terms directly
// against a live word buffer, instead of emitting text. It exists so
// this module's tests and its preview tooling have a binary
// dilation/erosion to exercise without a C compiler in the loop.
package morph

import (
	"fmt"

	"github.com/yiqideren/leptonica/internal/dwa"
	"github.com/yiqideren/leptonica/pix"
	"github.com/yiqideren/leptonica/sel"
)

// Op selects dilation or erosion.
type Op int

const (
	Dilate Op = iota
	Erode
)

func toDWAOp(op Op) dwa.Op {
	if op == Erode {
		return dwa.Erode
	}
	return dwa.Dilate
}

// Kernel is a compiled structuring element: the DWA terms for one
// operation, ready to run against a source word buffer.
type Kernel struct {
	SelName string
	Op      Op
	Terms   []dwa.Term
	// MaxOffset is the largest |delx| or |dely| any term reads, i.e.
	// the minimum border width a source buffer must carry for every
	// term's reads to stay in bounds.
	MaxOffset int
}

// CompileKernel lowers s into a Kernel for the given operation. The
// kernel index follows the same 2*i+(erode) convention codegen uses,
// so a compiled Kernel reads exactly the terms the generated C kernel
// at that index would.
func CompileKernel(s *sel.Sel, i int, op Op) (*Kernel, error) {
	index := 2 * i
	if op == Erode {
		index++
	}
	terms, err := dwa.Lower(s, index)
	if err != nil {
		return nil, err
	}
	maxOff := 0
	for _, t := range terms {
		if a := abs(t.DelX); a > maxOff {
			maxOff = a
		}
		if a := abs(t.DelY); a > maxOff {
			maxOff = a
		}
	}
	return &Kernel{SelName: s.Name, Op: op, Terms: terms, MaxOffset: maxOff}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Run evaluates the kernel over every destination word, writing
// results into datad. datas/wpls describe the full (already bordered)
// source buffer; rowBase/colBase locate the destination's (0,0) word
// within that buffer, so a term's negative offsets land on border
// pixels rather than running off the front of the slice — the
// equivalent of the generated C kernel's sptr pointing partway into a
// larger allocation and reading before it.
func (k *Kernel) Run(datad []uint32, w, h, wpld int, datas []uint32, wpls, rowBase, colBase int) {
	dop := toDWAOp(k.Op)
	for i := 0; i < h; i++ {
		for j := 0; j < wpld; j++ {
			datad[i*wpld+j] = dwa.EvalAll(k.Terms, dop, datas, wpls, rowBase+i, colBase+j)
		}
	}
}

// Apply runs the named sel's kernel for op against src (1 bpp only),
// returning a new Pix the same size as src. If dst is non-nil it must
// already have src's dimensions and depth and is overwritten and
// returned in place of a fresh allocation (mirroring the generated
// entry point's pixd-reuse contract).
func Apply(dst, src *pix.Pix, sa *sel.Sela, selName string, op Op) (*pix.Pix, error) {
	if src == nil {
		return nil, fmt.Errorf("morph: src not defined")
	}
	if src.Depth() != 1 {
		return nil, fmt.Errorf("morph: src must be 1 bpp, got %d", src.Depth())
	}

	var s *sel.Sel
	var index int
	for i := 0; i < sa.Count(); i++ {
		cand, err := sa.GetSel(i)
		if err != nil {
			return nil, err
		}
		if cand.Name == selName {
			s, index = cand, i
			break
		}
	}
	if s == nil {
		return nil, fmt.Errorf("morph: no sel named %q", selName)
	}

	kernel, err := CompileKernel(s, index, op)
	if err != nil {
		return nil, err
	}

	// Pad to a whole number of extra words on each side (so the
	// destination's word-column 0 lines up exactly with a word
	// boundary in the padded source row) plus one extra word of
	// margin for the barrel-shift neighbor read.
	borderWords := kernel.MaxOffset/32 + 2
	border := borderWords * 32
	identity := uint32(0)
	if op == Erode {
		identity = ^uint32(0)
	}

	padded, err := pix.AddBorder(src, border, identity)
	if err != nil {
		return nil, err
	}
	defer padded.Close()
	padded.SetPadBits(int(identity & 1))

	w, h, d := src.Dimensions()
	if dst == nil {
		dst, err = pix.Create(w, h, d)
		if err != nil {
			return nil, err
		}
	} else if !pix.SizesEqual(dst, src) {
		return nil, fmt.Errorf("morph: dst size does not match src")
	}

	wpld := dst.Wpl()
	wpls := padded.Wpl()

	kernel.Run(dst.Data, w, h, wpld, padded.Data, wpls, border, borderWords)

	return dst, nil
}
