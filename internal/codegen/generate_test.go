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

package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yiqideren/leptonica/sel"
)

func threeByThreeSela(tt *testing.T) *sel.Sela {
	tt.Helper()
	sa := sel.NewSela()
	s, err := sel.New(3, 3, 1, 1, "sel_3x3")
	if err != nil {
		tt.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if err := s.SetElement(i, j, sel.Hit); err != nil {
				tt.Fatal(err)
			}
		}
	}
	sa.AddSel(s)
	return sa
}

func TestGenerateProducesBothTUs(tt *testing.T) {
	sa := threeByThreeSela(tt)
	dispatcher, kernels, _, err := Generate(sa, 7)
	if err != nil {
		tt.Fatal(err)
	}
	if !bytes.Contains(dispatcher, []byte("pixFMorphopGen_7")) {
		tt.Error("dispatcher TU missing pixFMorphopGen_7")
	}
	if !bytes.Contains(dispatcher, []byte(`"sel_3x3"`)) {
		tt.Error("dispatcher TU missing sel name in SEL_NAMES table")
	}
	if !bytes.Contains(kernels, []byte("fmorphopgen_low_7")) {
		tt.Error("kernels TU missing fmorphopgen_low_7")
	}
	if !bytes.Contains(kernels, []byte("fdilate_7_0")) {
		tt.Error("kernels TU missing fdilate_7_0")
	}
	if !bytes.Contains(kernels, []byte("ferode_7_0")) {
		tt.Error("kernels TU missing ferode_7_0")
	}
}

func TestGenerateNegativeFileindexCoercedToZero(tt *testing.T) {
	sa := threeByThreeSela(tt)
	dispatcher, _, _, err := Generate(sa, -5)
	if err != nil {
		tt.Fatal(err)
	}
	if !bytes.Contains(dispatcher, []byte("pixFMorphopGen_0")) {
		tt.Error("negative fileindex should be coerced to 0")
	}
}

func TestGenerateIsDeterministic(tt *testing.T) {
	sa := threeByThreeSela(tt)
	d1, k1, _, err := Generate(sa, 3)
	if err != nil {
		tt.Fatal(err)
	}
	d2, k2, _, err := Generate(sa, 3)
	if err != nil {
		tt.Fatal(err)
	}
	if !bytes.Equal(d1, d2) || !bytes.Equal(k1, k2) {
		tt.Error("Generate is not deterministic across repeated calls with identical inputs")
	}
}

func TestGenerateRejectsEmptySela(tt *testing.T) {
	sa := sel.NewSela()
	if _, _, _, err := Generate(sa, 0); err == nil {
		tt.Error("empty sela: want error")
	}
}

func TestGenerateRejectsOutOfRangeSel(tt *testing.T) {
	sa := sel.NewSela()
	s, _ := sel.New(40, 1, 0, 0, "wide")
	s.SetElement(0, 39, sel.Hit)
	sa.AddSel(s)
	if _, _, _, err := Generate(sa, 0); err == nil {
		tt.Error("sel with out-of-range offset: want error, per the redesign-flag reject-outright behavior")
	}
}

func TestGenerateWarnsOnUnnamedSel(tt *testing.T) {
	sa := sel.NewSela()
	s, _ := sel.New(1, 1, 0, 0, "")
	s.SetElement(0, 0, sel.Hit)
	sa.AddSel(s)
	_, _, warnings, err := Generate(sa, 0)
	if err != nil {
		tt.Fatal(err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "no name") {
		tt.Errorf("warnings = %v, want one about the missing name", warnings)
	}
}
