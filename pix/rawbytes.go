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
	"unsafe"

	"honnef.co/go/safeish"
)

// RawBytes returns p's pixel buffer reinterpreted as a byte slice,
// without copying. The bytes are in host-native order; callers that
// need raster (big-endian-within-word) byte order on a little-endian
// host must call EndianByteSwap first. The returned slice aliases
// p.Data: writes through it mutate the Pix, and it is only valid for
// as long as p.Data is not reallocated (e.g. by a future resize).
func (p *Pix) RawBytes() []byte {
	if len(p.Data) == 0 {
		return nil
	}
	ptr := safeish.Cast[*byte](unsafe.Pointer(&p.Data[0]))
	return unsafe.Slice(ptr, len(p.Data)*4)
}
