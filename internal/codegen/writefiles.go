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
	"os"
	"path/filepath"

	"github.com/yiqideren/leptonica/sel"
)

// WriteFiles generates the dispatcher and kernels TUs for sa and
// fileindex and writes them into dir as fmorphgen.{idx}.c and
// fmorphgenlow.{idx}.c, truncating any existing files with those
// names. A failure after the first file is written leaves it in
// place: spec.md §7 explicitly does not require cleanup of partial
// output on error.
func WriteFiles(dir string, sa *sel.Sela, fileindex int) (dispatcherPath, kernelsPath string, warnings []Warning, err error) {
	idx := normalizeFileIndex(fileindex)

	dispatcherSrc, kernelsSrc, warnings, err := Generate(sa, idx)
	if err != nil {
		return "", "", warnings, err
	}

	dispatcherPath = filepath.Join(dir, fmt.Sprintf("fmorphgen.%d.c", idx))
	kernelsPath = filepath.Join(dir, fmt.Sprintf("fmorphgenlow.%d.c", idx))

	if err := os.WriteFile(dispatcherPath, dispatcherSrc, 0o644); err != nil {
		return dispatcherPath, kernelsPath, warnings, fmt.Errorf("codegen: writing %s: %w", dispatcherPath, err)
	}
	if err := os.WriteFile(kernelsPath, kernelsSrc, 0o644); err != nil {
		return dispatcherPath, kernelsPath, warnings, fmt.Errorf("codegen: writing %s: %w", kernelsPath, err)
	}
	return dispatcherPath, kernelsPath, warnings, nil
}
