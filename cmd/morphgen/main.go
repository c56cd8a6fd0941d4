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

// morphgen emits word-parallel binary morphology C kernels from a
// structuring-element collection, and offers a couple of auxiliary
// sub-commands for inspecting the run without a C compiler at hand.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("no sub-command given; want one of: generate, preview, report")
	}
	args := os.Args[2:]
	switch os.Args[1] {
	case "generate":
		return doGenerate(args)
	case "preview":
		return doPreview(args)
	case "report":
		return doReport(args)
	}
	return fmt.Errorf("bad sub-command %q; want one of: generate, preview, report", os.Args[1])
}
