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

// Package sel defines the structuring-element model the DWA code
// generator and the pure-Go kernel executor both operate on: a small
// 2-D array of {HIT, MISS, DONTCARE} cells plus an origin.
package sel

import "fmt"

// Cell values for a Sel's Data matrix.
const (
	Miss     = -1
	DontCare = 0
	Hit      = 1
)

// Sel is a structuring element: an Sy x Sx matrix of cells with
// origin (Cx, Cy). Only Hit cells participate in DWA code generation;
// Miss and DontCare cells exist for completeness with the leptonica
// model but are not consumed by the dilation/erosion generator (see
// spec.md's SEL invariant: "a HIT implies a read ... only HITs
// contribute to DWA code").
type Sel struct {
	Sx, Sy int
	Cx, Cy int
	Data   [][]int8
	Name   string
}

// New allocates a Sel of the given dimensions with origin (cx, cy),
// every cell initialized to DontCare.
func New(sx, sy, cx, cy int, name string) (*Sel, error) {
	if sx <= 0 || sy <= 0 {
		return nil, fmt.Errorf("sel: sx and sy must be > 0, got sx=%d sy=%d", sx, sy)
	}
	if cx < 0 || cx >= sx {
		return nil, fmt.Errorf("sel: cx=%d out of range [0,%d)", cx, sx)
	}
	if cy < 0 || cy >= sy {
		return nil, fmt.Errorf("sel: cy=%d out of range [0,%d)", cy, sy)
	}
	data := make([][]int8, sy)
	for i := range data {
		data[i] = make([]int8, sx)
	}
	return &Sel{Sx: sx, Sy: sy, Cx: cx, Cy: cy, Data: data, Name: name}, nil
}

// SetElement sets the cell at (row, col) to val (Hit, Miss or
// DontCare).
func (s *Sel) SetElement(row, col int, val int8) error {
	if row < 0 || row >= s.Sy || col < 0 || col >= s.Sx {
		return fmt.Errorf("sel: (row,col)=(%d,%d) out of range", row, col)
	}
	s.Data[row][col] = val
	return nil
}

// Hits returns the (col, row) coordinates of every Hit cell, in
// row-major order.
func (s *Sel) Hits() [][2]int {
	var out [][2]int
	for i := 0; i < s.Sy; i++ {
		for j := 0; j < s.Sx; j++ {
			if s.Data[i][j] == Hit {
				out = append(out, [2]int{j, i})
			}
		}
	}
	return out
}
