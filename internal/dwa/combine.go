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

// Combine emits the C statement lines that OR (dilate) or AND (erode)
// every term's CExpr into *dptr, in leptonica's own line layout: a
// single term collapses to one assignment line; multiple terms open
// with "*dptr = EXPR OP", continue with indented "EXPR OP" lines, and
// close with a bare "EXPR;" line.
func Combine(terms []Term, op Op) []string {
	tok := "|"
	if op == Erode {
		tok = "&"
	}

	count := len(terms)
	lines := make([]string, 0, count)
	for n, t := range terms {
		expr := t.CExpr()
		switch {
		case count == 1:
			lines = append(lines, fmt.Sprintf("            *dptr = %s;", expr))
		case n == 0:
			lines = append(lines, fmt.Sprintf("            *dptr = %s %s", expr, tok))
		case n < count-1:
			lines = append(lines, fmt.Sprintf("                    %s %s", expr, tok))
		default:
			lines = append(lines, fmt.Sprintf("                    %s;", expr))
		}
	}
	return lines
}

// EvalAll computes the combined destination word at (row, colWord) by
// folding every term's Eval with the operation's combinator. This is
// the live counterpart to Combine's generated text.
func EvalAll(terms []Term, op Op, data []uint32, wpl, row, colWord int) uint32 {
	var acc uint32
	if op == Erode {
		acc = ^uint32(0)
	}
	for _, t := range terms {
		v := t.Eval(data, wpl, row, colWord)
		if op == Dilate {
			acc |= v
		} else {
			acc &= v
		}
	}
	return acc
}
