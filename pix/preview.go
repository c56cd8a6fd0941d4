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
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
)

// AsImage converts p to a stdlib image.Image, for display or encoding.
// Only 1 bpp and 8 bpp (with or without colormap) and 32 bpp (RGB,
// byte 0 unused) are supported, since those are the only depths the
// report and preview tooling in this module ever produces.
func (p *Pix) AsImage() (image.Image, error) {
	switch p.d {
	case 1:
		img := image.NewGray(image.Rect(0, 0, p.w, p.h))
		for y := 0; y < p.h; y++ {
			for x := 0; x < p.w; x++ {
				if p.getPixel1(x, y) != 0 {
					img.SetGray(x, y, color.Gray{Y: 0})
				} else {
					img.SetGray(x, y, color.Gray{Y: 255})
				}
			}
		}
		return img, nil
	case 8:
		img := image.NewGray(image.Rect(0, 0, p.w, p.h))
		for y := 0; y < p.h; y++ {
			for x := 0; x < p.w; x++ {
				img.SetGray(x, y, color.Gray{Y: uint8(p.getPixelVal(x, y))})
			}
		}
		if p.Colormap != nil {
			pimg := image.NewPaletted(image.Rect(0, 0, p.w, p.h), p.Colormap.Palette)
			for y := 0; y < p.h; y++ {
				for x := 0; x < p.w; x++ {
					pimg.SetColorIndex(x, y, uint8(p.getPixelVal(x, y)))
				}
			}
			return pimg, nil
		}
		return img, nil
	case 32:
		img := image.NewRGBA(image.Rect(0, 0, p.w, p.h))
		for y := 0; y < p.h; y++ {
			for x := 0; x < p.w; x++ {
				word := p.Data[y*p.wpl+x]
				r := uint8(word >> 24)
				g := uint8(word >> 16)
				b := uint8(word >> 8)
				img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("pix: AsImage does not support depth %d", p.d)
	}
}

// getPixelVal reads a multi-bit-per-pixel sample at (x,y), for depths
// that pack more than one bit per pixel (2/4/8/16 bpp).
func (p *Pix) getPixelVal(x, y int) uint32 {
	bitpos := x * p.d
	word := p.Data[y*p.wpl+bitpos/32]
	shift := uint(32 - p.d - bitpos%32)
	mask := uint32(1)<<uint(p.d) - 1
	return (word >> shift) & mask
}

// Preview renders p as a PNG, upscaled by the given integer factor
// using nearest-neighbor interpolation — the resampling kernel the
// morphgen preview sub-command wants for 1 bpp morphology output, where smooth
// interpolation would blur binary pixel edges into gray.
func Preview(p *Pix, scale int) ([]byte, error) {
	if scale < 1 {
		return nil, fmt.Errorf("pix: scale must be >= 1, got %d", scale)
	}
	src, err := p.AsImage()
	if err != nil {
		return nil, err
	}
	if scale == 1 {
		var buf bytes.Buffer
		if err := png.Encode(&buf, src); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
