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

// Package pix implements the packed-raster image buffer ("Pix") that
// every morphological operation in this module reads and writes. A Pix
// stores one word-aligned scanline per row, width w, height h, and bit
// depth d in {1, 2, 4, 8, 16, 24, 32}; words-per-line is always
// ceil(w*d/32). Within a 32-bit word, pixel 0 occupies the most
// significant bits, independent of host endianness ("canonical word
// order") — serializing to byte-raster-order formats on a
// little-endian host requires EndianByteSwap first.
package pix

import (
	"fmt"
	"io"
)

// Allowed pixel depths, in bits.
var allowedDepths = map[int]bool{1: true, 2: true, 4: true, 8: true, 16: true, 24: true, 32: true}

// Pix is a packed-raster image buffer with a reference count. Use
// Clone to obtain an additional handle to the same underlying buffer
// and Close to release one; the buffer, Text and Colormap are freed
// only when the last handle is closed.
type Pix struct {
	w, h, d int
	wpl     int

	rc *int

	Data []uint32

	Colormap *Colormap
	Text     string

	XRes, YRes int
	InputFormat int
}

// wordsPerLine computes ceil(w*d/32), the canonical words-per-line for a row of
// width w at depth d.
func wordsPerLine(w, d int) int {
	return (w*d + 31) / 32
}

// Create allocates a new Pix of the given width, height and depth,
// with the pixel buffer zero-initialized. Depth must be one of
// {1,2,4,8,16,24,32}; width and height must be positive.
func Create(w, h, d int) (*Pix, error) {
	p, err := CreateNoInit(w, h, d)
	if err != nil {
		return nil, err
	}
	for i := range p.Data {
		p.Data[i] = 0
	}
	return p, nil
}

// CreateNoInit is like Create but leaves the pixel buffer
// uninitialized (its content is whatever Go's allocator hands back,
// which for a freshly made slice is already zero — callers that need
// genuinely uninitialized memory for performance reasons get no
// further benefit from Go, but the entry point is kept to mirror the
// init/no-init pair the generated kernels' border-fill logic expects).
func CreateNoInit(w, h, d int) (*Pix, error) {
	if !allowedDepths[d] {
		return nil, fmt.Errorf("pix: depth must be one of {1,2,4,8,16,24,32}, got %d", d)
	}
	if w <= 0 {
		return nil, fmt.Errorf("pix: width must be > 0, got %d", w)
	}
	if h <= 0 {
		return nil, fmt.Errorf("pix: height must be > 0, got %d", h)
	}
	wpl := wordsPerLine(w, d)
	rc := 1
	return &Pix{
		w: w, h: h, d: d, wpl: wpl,
		rc:   &rc,
		Data: make([]uint32, wpl*h),
	}, nil
}

// CreateTemplate makes a new Pix with the same dimensions, depth,
// resolution, colormap and text as src, with a freshly zeroed buffer.
func CreateTemplate(src *Pix) (*Pix, error) {
	p, err := CreateTemplateNoInit(src)
	if err != nil {
		return nil, err
	}
	for i := range p.Data {
		p.Data[i] = 0
	}
	return p, nil
}

// CreateTemplateNoInit is like CreateTemplate but does not zero the
// new buffer.
func CreateTemplateNoInit(src *Pix) (*Pix, error) {
	if src == nil {
		return nil, fmt.Errorf("pix: src not defined")
	}
	p, err := CreateNoInit(src.w, src.h, src.d)
	if err != nil {
		return nil, err
	}
	p.CopyResolution(src)
	p.CopyColormap(src)
	p.Text = src.Text
	p.InputFormat = src.InputFormat
	return p, nil
}

// Clone returns a new handle to the same Pix, bumping the shared
// reference count. The returned handle and p alias the same buffer;
// closing either decrements the shared count, and the buffer is freed
// only once the count reaches zero.
func (p *Pix) Clone() *Pix {
	if p == nil {
		return nil
	}
	*p.rc++
	clone := *p
	return &clone
}

// Close decrements the Pix's reference count. It is a no-op on a nil
// Pix. Unlike the C original's pixDestroy, it does not need to null
// the caller's pointer: Go's garbage collector reclaims the struct
// itself once it is unreachable, so only the shared refcount matters
// for deciding when the underlying buffer (and Colormap) are logically
// released. Close is idempotent in the sense that each handle may be
// closed exactly once; closing the same handle twice double-decrements
// the shared count, exactly as calling pixDestroy twice on the same
// unaliased pointer would in C.
func (p *Pix) Close() {
	if p == nil {
		return
	}
	*p.rc--
}

// RefCount reports the Pix's current reference count.
func (p *Pix) RefCount() int {
	if p == nil || p.rc == nil {
		return 0
	}
	return *p.rc
}

// Copy copies pixel data and metadata from src into dst. If dst is
// nil, Copy allocates and returns an independent Pix (refcount 1). If
// dst is non-nil, its dimensions and depth must already match src's.
func Copy(dst, src *Pix) (*Pix, error) {
	if src == nil {
		return nil, fmt.Errorf("pix: src not defined")
	}
	if src == dst {
		return dst, nil
	}
	if dst == nil {
		out, err := CreateTemplateNoInit(src)
		if err != nil {
			return nil, err
		}
		copy(out.Data, src.Data)
		return out, nil
	}
	if !SizesEqual(src, dst) {
		return nil, fmt.Errorf("pix: sizes not equal")
	}
	dst.CopyColormap(src)
	dst.CopyResolution(src)
	dst.InputFormat = src.InputFormat
	dst.Text = src.Text
	copy(dst.Data, src.Data)
	return dst, nil
}

// SizesEqual reports whether a and b have the same width, height and
// depth.
func SizesEqual(a, b *Pix) bool {
	if a == nil || b == nil {
		return false
	}
	return a.w == b.w && a.h == b.h && a.d == b.d
}

// Width, Height, Depth and Wpl return the Pix's dimensions.
func (p *Pix) Width() int  { return p.w }
func (p *Pix) Height() int { return p.h }
func (p *Pix) Depth() int  { return p.d }
func (p *Pix) Wpl() int    { return p.wpl }

// Dimensions returns width, height and depth together.
func (p *Pix) Dimensions() (w, h, d int) { return p.w, p.h, p.d }

// CopyResolution copies the x/y resolution fields from src to p.
func (p *Pix) CopyResolution(src *Pix) {
	p.XRes = src.XRes
	p.YRes = src.YRes
}

// ScaleResolution scales p's resolution fields in place.
func (p *Pix) ScaleResolution(xscale, yscale float64) {
	if p.XRes != 0 && p.YRes != 0 {
		p.XRes = int(xscale*float64(p.XRes) + 0.5)
		p.YRes = int(yscale*float64(p.YRes) + 0.5)
	}
}

// CopyColormap copies src's colormap onto p (replacing any existing
// one). It is not an error for src to have no colormap; p's colormap
// is cleared in that case.
func (p *Pix) CopyColormap(src *Pix) {
	if src.Colormap == nil {
		p.Colormap = nil
		return
	}
	cm := *src.Colormap
	p.Colormap = &cm
}

// AddText appends textstring to any existing text on p.
func (p *Pix) AddText(textstring string) {
	if p.Text == "" {
		p.Text = textstring
		return
	}
	p.Text = p.Text + textstring
}

// PrintInfo writes a short human-readable description of p to the
// given writer, identified by label.
func (p *Pix) PrintInfo(w io.Writer, label string) {
	fmt.Fprintf(w, "  Pix Info for %s:\n", label)
	fmt.Fprintf(w, "    width = %d, height = %d, depth = %d\n", p.w, p.h, p.d)
	fmt.Fprintf(w, "    wpl = %d, refcount = %d\n", p.wpl, p.RefCount())
	if p.Colormap != nil {
		fmt.Fprintf(w, "    colormap: %d colors\n", len(p.Colormap.Palette))
	} else {
		fmt.Fprintf(w, "    no colormap\n")
	}
}
