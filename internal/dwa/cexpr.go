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

import "fmt"

// wplOffset returns the generated C row-pointer offset expression for
// n extra words per line, e.g. wplOffset(1, true) is "+ wpls" and
// wplOffset(3, false) is "- wpls3".
func wplOffset(n int, positive bool) string {
	sign := "-"
	if positive {
		sign = "+"
	}
	if n == 1 {
		return fmt.Sprintf("%s wpls", sign)
	}
	return fmt.Sprintf("%s wpls%d", sign, n)
}

// CExpr returns the C expression reading the aligned 32-bit source
// window this term selects, relative to the current source pointer
// sptr. It is a direct port of leptonica's makeBarrelshiftString,
// parameterized the same way: DelX is the horizontal and DelY the
// vertical HIT offset, already sign-adjusted by Lower (j-cx and i-cy
// for erosion, cx-j and cy-i for dilation).
func (t Term) CExpr() string {
	delx, dely := t.DelX, t.DelY
	absx, absy := abs(delx), abs(dely)

	switch {
	case delx == 0 && dely == 0:
		return "(*sptr)"
	case delx == 0 && dely < 0:
		return fmt.Sprintf("(*(sptr %s))", wplOffset(absy, false))
	case delx == 0 && dely > 0:
		return fmt.Sprintf("(*(sptr %s))", wplOffset(absy, true))
	case delx < 0 && dely == 0:
		return fmt.Sprintf("((*(sptr) >> %d) | (*(sptr - 1) << %d))", absx, 32-absx)
	case delx > 0 && dely == 0:
		return fmt.Sprintf("((*(sptr) << %d) | (*(sptr + 1) >> %d))", absx, 32-absx)
	case delx < 0 && dely < 0:
		off := wplOffset(absy, false)
		return fmt.Sprintf("((*(sptr %s) >> %d) | (*(sptr %s - 1) << %d))", off, absx, off, 32-absx)
	case delx > 0 && dely < 0:
		off := wplOffset(absy, false)
		return fmt.Sprintf("((*(sptr %s) << %d) | (*(sptr %s + 1) >> %d))", off, absx, off, 32-absx)
	case delx < 0 && dely > 0:
		off := wplOffset(absy, true)
		return fmt.Sprintf("((*(sptr %s) >> %d) | (*(sptr %s - 1) << %d))", off, absx, off, 32-absx)
	default: // delx > 0 && dely > 0
		off := wplOffset(absy, true)
		return fmt.Sprintf("((*(sptr %s) << %d) | (*(sptr %s + 1) >> %d))", off, absx, off, 32-absx)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
