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
	"fmt"
	"image/color"
)

// Colormap wraps a stdlib color.Palette as a Pix's indexed colormap.
// It exists as a named type, rather than a bare color.Palette field,
// so pixcmap-style operations (AddColor, Clear) have a natural home.
type Colormap struct {
	Palette color.Palette
}

// NewColormap returns an empty colormap.
func NewColormap() *Colormap {
	return &Colormap{}
}

// AddColor appends c as the next colormap entry and returns its index.
func (c *Colormap) AddColor(col color.Color) int {
	c.Palette = append(c.Palette, col)
	return len(c.Palette) - 1
}

// GetColor returns the color at the given index.
func (c *Colormap) GetColor(index int) (color.Color, error) {
	if index < 0 || index >= len(c.Palette) {
		return nil, fmt.Errorf("pix: colormap index %d out of range [0,%d)", index, len(c.Palette))
	}
	return c.Palette[index], nil
}

// Count reports the number of entries in the colormap.
func (c *Colormap) Count() int {
	if c == nil {
		return 0
	}
	return len(c.Palette)
}

// Clear removes every entry from the colormap.
func (c *Colormap) Clear() {
	c.Palette = nil
}
