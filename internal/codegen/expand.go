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

import (
	"fmt"
	"sort"
	"strings"
)

const genMarkerPrefix = "// !! GEN "

// expandRegions walks template text s line by line, copying ordinary
// lines verbatim into b and, on encountering a "// !! GEN <name>"
// marker line, calling the matching function in m to emit generated
// content in its place. Unrecognized markers are a hard error listing
// the known names, so a typo in a template never silently drops a
// region; so is a name in m that the template never uses, so a
// generated fragment is never silently left out. Named markers stand in for hard-coded template line numbers,
// per spec.md §4.4's own allowance for either approach.
func expandRegions(b *buffer, s string, m map[string]func(*buffer) error) error {
	used := make(map[string]bool, len(m))
	for {
		remaining := ""
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s, remaining = s[:i+1], s[i+1:]
		}

		trimmed := strings.TrimRight(s, "\n")
		switch {
		case !strings.HasPrefix(trimmed, genMarkerPrefix):
			b.writes(s)
		default:
			f, ok := m[trimmed]
			if !ok {
				names := make([]string, 0, len(m))
				for k := range m {
					names = append(names, k)
				}
				sort.Strings(names)
				return fmt.Errorf("codegen: unrecognized marker %q, want one of %v", trimmed, names)
			}
			if err := f(b); err != nil {
				return err
			}
			used[trimmed] = true
		}

		if remaining == "" {
			break
		}
		s = remaining
	}
	var unused []string
	for k := range m {
		if !used[k] {
			unused = append(unused, k)
		}
	}
	if len(unused) > 0 {
		sort.Strings(unused)
		return fmt.Errorf("codegen: markers %v not found in template", unused)
	}
	return nil
}
