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

package pix

import "testing"

func TestAddRemoveBorderRoundTrip(tt *testing.T) {
	src, _ := Create(6, 6, 1)
	src.setPixel1(3, 3, 1)
	src.setPixel1(0, 0, 1)

	bordered, err := AddBorder(src, 5, 0)
	if err != nil {
		tt.Fatal(err)
	}
	if bordered.Width() != 16 || bordered.Height() != 16 {
		tt.Fatalf("bordered dims = %dx%d, want 16x16", bordered.Width(), bordered.Height())
	}
	if bordered.getPixel1(3+5, 3+5) != 1 {
		tt.Error("interior pixel (3,3) did not survive AddBorder")
	}

	back, err := RemoveBorder(bordered, 5)
	if err != nil {
		tt.Fatal(err)
	}
	if back.Width() != 6 || back.Height() != 6 {
		tt.Fatalf("round-tripped dims = %dx%d, want 6x6", back.Width(), back.Height())
	}
	if back.getPixel1(3, 3) != 1 || back.getPixel1(0, 0) != 1 {
		tt.Error("round trip lost a set pixel")
	}
}

func TestAddBorderFillValue(tt *testing.T) {
	src, _ := Create(4, 4, 1)
	bordered, err := AddBorder(src, 3, 0xffffffff)
	if err != nil {
		tt.Fatal(err)
	}
	if bordered.getPixel1(0, 0) != 1 {
		tt.Error("border pixel should be set to the fill identity value")
	}
	if bordered.getPixel1(3+1, 3+1) != 0 {
		tt.Error("interior pixel should remain 0")
	}
}

func TestSetOrClearBorder(tt *testing.T) {
	p, _ := Create(8, 8, 1)
	if err := SetOrClearBorder(p, 1, 1, 1, 1, RopSet); err != nil {
		tt.Fatal(err)
	}
	if p.getPixel1(0, 0) != 1 || p.getPixel1(7, 7) != 1 {
		tt.Error("border pixels should be set")
	}
	if p.getPixel1(4, 4) != 0 {
		tt.Error("interior pixel should remain clear")
	}
}

func TestRemoveBorderGeneralRejectsNonPositive(tt *testing.T) {
	src, _ := Create(4, 4, 1)
	if _, err := RemoveBorderGeneral(src, 2, 2, 0, 0); err == nil {
		tt.Error("RemoveBorderGeneral with wd<=0: want error")
	}
}
