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

import "testing"

func TestNewValidatesOrigin(tt *testing.T) {
	if _, err := New(3, 3, 3, 0, "bad-cx"); err == nil {
		tt.Error("cx == sx: want error")
	}
	if _, err := New(3, 3, 0, -1, "bad-cy"); err == nil {
		tt.Error("cy < 0: want error")
	}
	if _, err := New(0, 3, 0, 0, "bad-sx"); err == nil {
		tt.Error("sx == 0: want error")
	}
}

func TestHits(tt *testing.T) {
	s, err := New(3, 3, 1, 1, "plus")
	if err != nil {
		tt.Fatal(err)
	}
	coords := [][2]int{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}
	for _, c := range coords {
		if err := s.SetElement(c[1], c[0], Hit); err != nil {
			tt.Fatal(err)
		}
	}
	got := s.Hits()
	if len(got) != len(coords) {
		tt.Fatalf("len(Hits()) = %d, want %d", len(got), len(coords))
	}
}

func TestSetElementBounds(tt *testing.T) {
	s, _ := New(2, 2, 0, 0, "s")
	if err := s.SetElement(5, 0, Hit); err == nil {
		tt.Error("row out of range: want error")
	}
}
