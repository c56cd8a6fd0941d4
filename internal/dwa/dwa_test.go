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

package dwa

import (
	"testing"

	"github.com/yiqideren/leptonica/sel"
)

func TestOpForIndexParity(tt *testing.T) {
	if OpForIndex(0) != Dilate || OpForIndex(2) != Dilate {
		tt.Error("even indices should dilate")
	}
	if OpForIndex(1) != Erode || OpForIndex(3) != Erode {
		tt.Error("odd indices should erode")
	}
}

func mustSel(tt *testing.T, sx, sy, cx, cy int, name string, hits [][2]int) *sel.Sel {
	tt.Helper()
	s, err := sel.New(sx, sy, cx, cy, name)
	if err != nil {
		tt.Fatal(err)
	}
	for _, h := range hits {
		if err := s.SetElement(h[1], h[0], sel.Hit); err != nil {
			tt.Fatal(err)
		}
	}
	return s
}

func TestLowerIdentitySelZeroOffset(tt *testing.T) {
	s := mustSel(tt, 1, 1, 0, 0, "identity", [][2]int{{0, 0}})
	terms, err := Lower(s, 0)
	if err != nil {
		tt.Fatal(err)
	}
	if len(terms) != 1 || terms[0] != (Term{0, 0}) {
		tt.Fatalf("terms = %v, want single zero-offset term", terms)
	}
}

func TestLowerDilateVsErodeSign(tt *testing.T) {
	// A single HIT one column to the right of center, one row below.
	s := mustSel(tt, 3, 3, 1, 1, "s", [][2]int{{2, 2}})

	dilate, err := Lower(s, 0)
	if err != nil {
		tt.Fatal(err)
	}
	if dilate[0] != (Term{DelX: -1, DelY: -1}) {
		tt.Errorf("dilate term = %+v, want {-1,-1}", dilate[0])
	}

	erode, err := Lower(s, 1)
	if err != nil {
		tt.Fatal(err)
	}
	if erode[0] != (Term{DelX: 1, DelY: 1}) {
		tt.Errorf("erode term = %+v, want {1,1}", erode[0])
	}
}

func TestLowerRejectsOutOfRangeOffset(tt *testing.T) {
	s := mustSel(tt, 40, 1, 0, 0, "wide", [][2]int{{39, 0}})
	if _, err := Lower(s, 0); err == nil {
		tt.Error("delx=39 should be rejected (exceeds +/-31)")
	}
}

func TestLowerRejectsSelWithNoHits(tt *testing.T) {
	s := mustSel(tt, 3, 3, 1, 1, "empty", nil)
	if _, err := Lower(s, 0); err == nil {
		tt.Error("sel with no HIT cells should be rejected")
	}
}

func TestCExprZeroOffset(tt *testing.T) {
	if got := (Term{0, 0}).CExpr(); got != "(*sptr)" {
		tt.Errorf("CExpr() = %q, want \"(*sptr)\"", got)
	}
}

func TestCExprPureVertical(tt *testing.T) {
	if got := (Term{0, 1}).CExpr(); got != "(*(sptr + wpls))" {
		tt.Errorf("CExpr() = %q, want \"(*(sptr + wpls))\"", got)
	}
	if got := (Term{0, -3}).CExpr(); got != "(*(sptr - wpls3))" {
		tt.Errorf("CExpr() = %q, want \"(*(sptr - wpls3))\"", got)
	}
}

func TestCExprPureHorizontal(tt *testing.T) {
	got := (Term{-5, 0}).CExpr()
	want := "((*(sptr) >> 5) | (*(sptr - 1) << 27))"
	if got != want {
		tt.Errorf("CExpr() = %q, want %q", got, want)
	}
}

// TestEvalMatchesCExprSemantics exercises Eval against a tiny
// hand-built word buffer and checks the bits line up with what the
// corresponding CExpr describes in words, for every quadrant of
// (delx, dely) signs.
func TestEvalMatchesCExprSemantics(tt *testing.T) {
	// 3 rows, 2 words per line.
	wpl := 2
	data := []uint32{
		0x00000000, 0x00000000,
		0x80000001, 0x00000000, // row 1: bit 0 (MSB) and bit 31 (LSB) set in word 0
		0x00000000, 0x00000000,
	}

	term := Term{DelX: 0, DelY: 0}
	if got := term.Eval(data, wpl, 1, 0); got != 0x80000001 {
		tt.Errorf("zero-offset Eval = %#x, want 0x80000001", got)
	}

	down := Term{DelX: 0, DelY: 1}
	if got := down.Eval(data, wpl, 0, 0); got != 0x80000001 {
		tt.Errorf("DelY=1 Eval at row 0 = %#x, want row 1's word", got)
	}

	up := Term{DelX: 0, DelY: -1}
	if got := up.Eval(data, wpl, 2, 0); got != 0x80000001 {
		tt.Errorf("DelY=-1 Eval at row 2 = %#x, want row 1's word", got)
	}

	// Shift left by 1 should move the MSB hit out, and pull the MSB of
	// the neighbor word into the vacated LSB.
	left := Term{DelX: 1, DelY: 0}
	got := left.Eval(data, wpl, 1, 0)
	want := (data[1*wpl] << 1) | (data[1*wpl+1] >> 31)
	if got != want {
		tt.Errorf("DelX=1 Eval = %#x, want %#x", got, want)
	}
}

func TestEvalOutOfBoundsReadsZero(tt *testing.T) {
	data := []uint32{0xffffffff, 0xffffffff}
	term := Term{DelX: 0, DelY: -1}
	if got := term.Eval(data, 2, 0, 0); got != 0 {
		tt.Errorf("out-of-bounds Eval = %#x, want 0", got)
	}
}
