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

// Package selbasic builds the handful of canonical structuring
// elements exercised by this module's end-to-end scenarios and CLI
// demo. It is not a general shape library: leptonica's own
// selaAddBasic() ships dozens of SEs, but only the ones spec.md's
// scenarios name are reproduced here.
package selbasic

import "github.com/yiqideren/leptonica/sel"

// AddBasic appends the five canonical structuring elements to sa and
// returns their indices in the order: Solid3x3, Centered1x5,
// Centered5x1, OffCenter3x3, SingleHit.
func AddBasic(sa *sel.Sela) ([5]int, error) {
	var idx [5]int

	s1, err := sel.New(3, 3, 1, 1, "sel_3x3")
	if err != nil {
		return idx, err
	}
	fillAll(s1, sel.Hit)
	idx[0] = sa.AddSel(s1)

	s2, err := sel.New(5, 1, 2, 0, "sel_1x5")
	if err != nil {
		return idx, err
	}
	fillAll(s2, sel.Hit)
	idx[1] = sa.AddSel(s2)

	s3, err := sel.New(1, 5, 0, 2, "sel_5x1")
	if err != nil {
		return idx, err
	}
	fillAll(s3, sel.Hit)
	idx[2] = sa.AddSel(s3)

	s4, err := sel.New(3, 3, 0, 0, "sel_3x3_offcenter")
	if err != nil {
		return idx, err
	}
	fillAll(s4, sel.Hit)
	idx[3] = sa.AddSel(s4)

	s5, err := sel.New(1, 1, 0, 0, "sel_identity")
	if err != nil {
		return idx, err
	}
	if err := s5.SetElement(0, 0, sel.Hit); err != nil {
		return idx, err
	}
	idx[4] = sa.AddSel(s5)

	return idx, nil
}

func fillAll(s *sel.Sel, val int8) {
	for i := range s.Data {
		for j := range s.Data[i] {
			s.Data[i][j] = val
		}
	}
}
