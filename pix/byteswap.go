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
	"encoding/binary"
	"math/bits"
)

// hostBigEndian reports whether this host stores a word's most
// significant byte first.
var hostBigEndian = func() bool {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], 1)
	return b[0] == 0
}()

// EndianByteSwap reverses the byte order of every 32-bit word in p's
// buffer, in place. Canonical word order (pixel 0 at the high end of
// the word) is an abstraction over the buffer's memory layout; when
// that buffer is serialized byte-by-byte on a little-endian host, or
// read back from one, the bytes within each word need reversing to
// restore raster order. It is a no-op on a big-endian host, but this
// package always stores words as Go uint32 values, so the swap is
// only ever meaningful when handing the buffer to something that
// reads it as a flat byte stream (see RawBytes).
func (p *Pix) EndianByteSwap() {
	if hostBigEndian {
		return
	}
	for i, word := range p.Data {
		p.Data[i] = bits.ReverseBytes32(word)
	}
}

// EndianByteSwapNew returns a new Pix with the same dimensions as src,
// holding the byte-swapped copy of src's buffer. On a big-endian host,
// where no swap is needed, it returns a clone of src instead.
func EndianByteSwapNew(src *Pix) (*Pix, error) {
	if hostBigEndian && src != nil {
		return src.Clone(), nil
	}
	dst, err := Copy(nil, src)
	if err != nil {
		return nil, err
	}
	dst.EndianByteSwap()
	return dst, nil
}

// EndianTwoByteSwap reverses the order of the two 16-bit halves within
// every 32-bit word of p's buffer, in place. This is the swap 16 bpp
// (two-byte-sample) images need, as distinct from the full 4-byte swap
// EndianByteSwap performs for 8/32 bpp images.
func (p *Pix) EndianTwoByteSwap() {
	for i, word := range p.Data {
		p.Data[i] = word<<16 | word>>16
	}
}
