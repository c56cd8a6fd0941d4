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

	"github.com/yiqideren/leptonica/internal/codegen"
	"github.com/yiqideren/leptonica/report"
	"github.com/yiqideren/leptonica/sel"
	"github.com/yiqideren/leptonica/selbasic"
)

func doReport(args []string) error {
	flags := flag.FlagSet{}
	fileindexFlag := flags.Int("fileindex", 0, "fileindex the report describes")
	outFlag := flags.String("out", "report.html", "output HTML path")
	mdOutFlag := flags.String("mdout", "", "optional output Markdown path")
	if err := flags.Parse(args); err != nil {
		return err
	}

	sa := sel.NewSela()
	if _, err := selbasic.AddBasic(sa); err != nil {
		return err
	}

	_, _, warnings, err := codegen.Generate(sa, *fileindexFlag)
	if err != nil {
		return err
	}

	md := report.BuildMarkdown(sa, *fileindexFlag, warnings)
	if *mdOutFlag != "" {
		if err := os.WriteFile(*mdOutFlag, []byte(md), 0o644); err != nil {
			return err
		}
	}

	html := report.RenderHTML(md)
	if err := os.WriteFile(*outFlag, html, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *outFlag)
	return nil
}
