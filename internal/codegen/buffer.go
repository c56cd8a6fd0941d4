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

import "fmt"

// buffer is a growable []byte with the small set of write helpers the
// template splicer needs. It satisfies io.Writer so fmt.Fprintf works
// against it directly.
type buffer []byte

func (b *buffer) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

func (b *buffer) printf(format string, args ...interface{}) { fmt.Fprintf(b, format, args...) }
func (b *buffer) writeb(x byte)                              { *b = append(*b, x) }
func (b *buffer) writes(s string)                            { *b = append(*b, s...) }
func (b *buffer) writelines(lines []string) {
	for _, l := range lines {
		*b = append(*b, l...)
		*b = append(*b, '\n')
	}
}
