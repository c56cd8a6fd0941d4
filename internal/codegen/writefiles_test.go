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
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFilesNamesAndContents(tt *testing.T) {
	dir := tt.TempDir()
	sa := threeByThreeSela(tt)

	dispatcherPath, kernelsPath, _, err := WriteFiles(dir, sa, 9)
	if err != nil {
		tt.Fatal(err)
	}
	if filepath.Base(dispatcherPath) != "fmorphgen.9.c" {
		tt.Errorf("dispatcherPath = %q, want basename fmorphgen.9.c", dispatcherPath)
	}
	if filepath.Base(kernelsPath) != "fmorphgenlow.9.c" {
		tt.Errorf("kernelsPath = %q, want basename fmorphgenlow.9.c", kernelsPath)
	}
	if _, err := os.Stat(dispatcherPath); err != nil {
		tt.Error(err)
	}
	if _, err := os.Stat(kernelsPath); err != nil {
		tt.Error(err)
	}
}

func TestWriteFilesTruncatesExisting(tt *testing.T) {
	dir := tt.TempDir()
	sa := threeByThreeSela(tt)

	path := filepath.Join(dir, "fmorphgen.0.c")
	if err := os.WriteFile(path, []byte("stale content that should be fully replaced"), 0o644); err != nil {
		tt.Fatal(err)
	}

	dispatcherPath, _, _, err := WriteFiles(dir, sa, 0)
	if err != nil {
		tt.Fatal(err)
	}
	data, err := os.ReadFile(dispatcherPath)
	if err != nil {
		tt.Fatal(err)
	}
	if string(data) == "stale content that should be fully replaced" {
		tt.Error("WriteFiles did not truncate the existing file")
	}
}
