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

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPreviewProducesValidPNG(tt *testing.T) {
	p, _ := Create(4, 4, 1)
	p.setPixel1(1, 1, 1)

	data, err := Preview(p, 4)
	if err != nil {
		tt.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		tt.Fatalf("Preview did not produce a decodable PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 16 || b.Dy() != 16 {
		tt.Errorf("scaled dims = %dx%d, want 16x16", b.Dx(), b.Dy())
	}
}

func TestPreviewRejectsScaleZero(tt *testing.T) {
	p, _ := Create(2, 2, 1)
	if _, err := Preview(p, 0); err == nil {
		tt.Error("Preview with scale=0: want error")
	}
}

func TestDecodeFromImageRoundTrip(tt *testing.T) {
	p, _ := Create(4, 4, 1)
	p.setPixel1(2, 2, 1)

	img, err := p.AsImage()
	if err != nil {
		tt.Fatal(err)
	}
	back, err := FromImage1bpp(img)
	if err != nil {
		tt.Fatal(err)
	}
	if back.getPixel1(2, 2) != 1 {
		tt.Error("round trip through AsImage/FromImage1bpp lost the set pixel")
	}
	if back.getPixel1(0, 0) != 0 {
		tt.Error("round trip introduced a spurious set pixel")
	}
}
