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

// rmask32[n] has its n least-significant bits set and nothing else.
// Ported directly from leptonica's rmask32 table (pix2.c); since pad
// bits sit at the low-order end of the last word in a row (canonical
// word order puts pixel 0 at the high end), rmask32[endbits] is
// exactly the pad-bit mask for a row with endbits trailing pad bits.
var rmask32 = [33]uint32{
	0x00000000,
	0x00000001, 0x00000003, 0x00000007, 0x0000000f,
	0x0000001f, 0x0000003f, 0x0000007f, 0x000000ff,
	0x000001ff, 0x000003ff, 0x000007ff, 0x00000fff,
	0x00001fff, 0x00003fff, 0x00007fff, 0x0000ffff,
	0x0001ffff, 0x0003ffff, 0x0007ffff, 0x000fffff,
	0x001fffff, 0x003fffff, 0x007fffff, 0x00ffffff,
	0x01ffffff, 0x03ffffff, 0x07ffffff, 0x0fffffff,
	0x1fffffff, 0x3fffffff, 0x7fffffff, 0xffffffff,
}

// SetPadBits sets the pad bits — the bits past width*depth at the end
// of each scanline's last word — to val (0 or 1). It is a no-op at
// depth 32, where there are no pad bits.
func (p *Pix) SetPadBits(val int) {
	p.setPadBitsBand(0, p.h, val)
}

// SetPadBitsBand is like SetPadBits but restricted to the row band
// [by, by+bh).
func (p *Pix) SetPadBitsBand(by, bh, val int) {
	if by < 0 {
		by = 0
	}
	if by >= p.h {
		return
	}
	if by+bh > p.h {
		bh = p.h - by
	}
	p.setPadBitsBand(by, bh, val)
}

func (p *Pix) setPadBitsBand(by, bh, val int) {
	if p.d == 32 {
		return
	}
	endbits := 32 - ((p.w * p.d) % 32)
	if endbits == 32 {
		return
	}
	fullwords := p.w * p.d / 32

	mask := rmask32[endbits]
	if val == 0 {
		mask = ^mask
	}

	for i := by; i < by+bh; i++ {
		idx := i*p.wpl + fullwords
		if val == 0 {
			p.Data[idx] &= mask
		} else {
			p.Data[idx] |= mask
		}
	}
}
