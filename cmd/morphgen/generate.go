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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/yiqideren/leptonica/internal/codegen"
	"github.com/yiqideren/leptonica/sel"
	"github.com/yiqideren/leptonica/selbasic"
)

func doGenerate(args []string) error {
	flags := flag.FlagSet{}
	fileindexFlag := flags.Int("fileindex", 0, "fileindex to embed in the generated function/file names")
	dstdirFlag := flags.String("dstdir", env.Str("MORPHGEN_DSTDIR", "."), "directory to write fmorphgen.N.c / fmorphgenlow.N.c into")
	if err := flags.Parse(args); err != nil {
		return err
	}

	sa := sel.NewSela()
	if _, err := selbasic.AddBasic(sa); err != nil {
		return err
	}

	dispatcherPath, kernelsPath, warnings, err := codegen.WriteFiles(*dstdirFlag, sa, *fileindexFlag)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.SelName, w.Message)
	}
	fmt.Printf("wrote %s\n", dispatcherPath)
	fmt.Printf("wrote %s\n", kernelsPath)
	return nil
}
