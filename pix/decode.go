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
	"image"
	_ "image/png"
	"io"
)

// FromImage1bpp decodes img (already read by an image.Decode caller,
// or passed directly) into a 1 bpp Pix, thresholding luminance at the
// midpoint: a foreground (HIT-eligible) pixel is bit 1.
func FromImage1bpp(img image.Image) (*Pix, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	p, err := Create(w, h, 1)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray := grayLevel(img.At(b.Min.X+x, b.Min.Y+y))
			if gray < 128 {
				p.setPixel1(x, y, 1)
			}
		}
	}
	return p, nil
}

// DecodePNG1bpp reads a PNG from r and converts it to a 1 bpp Pix via
// FromImage1bpp.
func DecodePNG1bpp(r io.Reader) (*Pix, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage1bpp(img)
}

func grayLevel(c interface{ RGBA() (r, g, b, a uint32) }) uint32 {
	r, g, b, _ := c.RGBA()
	return (r + g + b) / 3 >> 8
}
