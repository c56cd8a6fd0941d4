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

package sel

import "fmt"

// Sela is an ordered, append-only collection of Sels. A Sel's index i
// in the collection fixes its kernel numbers in the generated dispatch
// table (2*i dilates, 2*i+1 erodes), so insertion order is part of
// Sela's contract, not an implementation detail.
type Sela struct {
	sels []*Sel
}

// NewSela returns an empty Sela.
func NewSela() *Sela {
	return &Sela{}
}

// AddSel appends s to the collection and returns its index.
func (sa *Sela) AddSel(s *Sel) int {
	sa.sels = append(sa.sels, s)
	return len(sa.sels) - 1
}

// Count reports the number of Sels in the collection.
func (sa *Sela) Count() int {
	return len(sa.sels)
}

// GetSel returns the Sel at index i.
func (sa *Sela) GetSel(i int) (*Sel, error) {
	if i < 0 || i >= len(sa.sels) {
		return nil, fmt.Errorf("sel: index %d out of range [0,%d)", i, len(sa.sels))
	}
	return sa.sels[i], nil
}

// GetSelByName returns the first Sel with the given name (a linear,
// case-sensitive scan, matching leptonica's own selaFindSelByName).
func (sa *Sela) GetSelByName(name string) (*Sel, error) {
	for _, s := range sa.sels {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("sel: no sel named %q", name)
}
