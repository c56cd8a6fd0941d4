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

import "fmt"

// AddBorder returns a new Pix with src centered in a border of npix
// pixels on every side, filled with val.
func AddBorder(src *Pix, npix int, val uint32) (*Pix, error) {
	return AddBorderGeneral(src, npix, npix, npix, npix, val)
}

// RemoveBorder returns a new Pix with npix pixels removed from every
// side of src.
func RemoveBorder(src *Pix, npix int) (*Pix, error) {
	return RemoveBorderGeneral(src, npix, npix, npix, npix)
}

// AddBorderGeneral returns a new Pix with src placed at
// (leftpix,toppix), in an image enlarged by leftpix+rightpix and
// toppix+bottompix, with the border pixels set to val.
func AddBorderGeneral(src *Pix, leftpix, rightpix, toppix, bottompix int, val uint32) (*Pix, error) {
	if src == nil {
		return nil, fmt.Errorf("pix: src not defined")
	}
	w, h, d := src.Dimensions()
	dst, err := Create(w+leftpix+rightpix, h+toppix+bottompix, d)
	if err != nil {
		return nil, err
	}
	dst.CopyResolution(src)
	dst.CopyColormap(src)
	dst.SetAllArbitrary(val)
	RasterOp(dst, leftpix, toppix, w, h, RopSrc, src, 0, 0)
	return dst, nil
}

// RemoveBorderGeneral returns a new Pix with leftpix/rightpix/toppix/
// bottompix removed from the corresponding sides of src.
func RemoveBorderGeneral(src *Pix, leftpix, rightpix, toppix, bottompix int) (*Pix, error) {
	if src == nil {
		return nil, fmt.Errorf("pix: src not defined")
	}
	ws, hs, d := src.Dimensions()
	wd := ws - leftpix - rightpix
	hd := hs - toppix - bottompix
	if wd <= 0 {
		return nil, fmt.Errorf("pix: resulting width must be > 0, got %d", wd)
	}
	if hd <= 0 {
		return nil, fmt.Errorf("pix: resulting height must be > 0, got %d", hd)
	}
	dst, err := Create(wd, hd, d)
	if err != nil {
		return nil, err
	}
	dst.CopyResolution(src)
	dst.CopyColormap(src)
	RasterOp(dst, 0, 0, wd, hd, RopSrc, src, leftpix, toppix)
	return dst, nil
}

// SetOrClearBorder sets (op=RopSet) or clears (op=RopClr) the pixels
// within leftpix/rightpix/toppix/bottompix of each edge of pixs.
func SetOrClearBorder(pixs *Pix, leftpix, rightpix, toppix, bottompix int, op RopCode) error {
	if pixs == nil {
		return fmt.Errorf("pix: pixs not defined")
	}
	if op != RopSet && op != RopClr {
		return fmt.Errorf("pix: op must be RopSet or RopClr")
	}
	w, h, _ := pixs.Dimensions()
	RasterOp(pixs, 0, 0, leftpix, h, op, nil, 0, 0)
	RasterOp(pixs, w-rightpix, 0, rightpix, h, op, nil, 0, 0)
	RasterOp(pixs, 0, 0, w, toppix, op, nil, 0, 0)
	RasterOp(pixs, 0, h-bottompix, w, bottompix, op, nil, 0, 0)
	return nil
}

// SetBorderVal sets every pixel within leftpix/rightpix/toppix/
// bottompix of each edge of pixs to val. Only 8 and 32 bpp images are
// supported; val is masked to the low 8 bits at depth 8.
func SetBorderVal(pixs *Pix, leftpix, rightpix, toppix, bottompix int, val uint32) error {
	if pixs == nil {
		return fmt.Errorf("pix: pixs not defined")
	}
	w, h, d := pixs.Dimensions()
	if d != 8 && d != 32 {
		return fmt.Errorf("pix: depth must be 8 or 32 bpp, got %d", d)
	}
	rstart := w - rightpix
	bstart := h - bottompix
	setRow := func(i int, jlo, jhi int) {
		for j := jlo; j < jhi; j++ {
			if d == 8 {
				pixs.setSample8(j, i, uint8(val&0xff))
			} else {
				pixs.Data[i*pixs.wpl+j] = val
			}
		}
	}
	for i := 0; i < toppix; i++ {
		setRow(i, 0, w)
	}
	for i := toppix; i < bstart; i++ {
		setRow(i, 0, leftpix)
		setRow(i, rstart, w)
	}
	for i := bstart; i < h; i++ {
		setRow(i, 0, w)
	}
	return nil
}
