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

// Package report renders a generation run (the sels compiled, their
// kernel indices, and any warnings) as Markdown, and that Markdown as
// HTML. It deliberately stamps no timestamp: spec.md's determinism
// property means running generation twice with the same inputs should
// produce byte-identical output, and a report is part of that output.
package report

import (
	"fmt"
	"strings"

	"github.com/shurcooL/sanitized_anchor_name"
	blackfriday "gopkg.in/russross/blackfriday.v2"

	"github.com/yiqideren/leptonica/internal/codegen"
	"github.com/yiqideren/leptonica/sel"
)

// BuildMarkdown renders sa and fileindex as a Markdown document: a
// table of contents, one section per sel naming its dilate/erode
// kernel indices, and a warnings section if any were raised.
func BuildMarkdown(sa *sel.Sela, fileindex int, warnings []codegen.Warning) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Morphology generation report (fileindex %d)\n\n", fileindex)

	fmt.Fprintf(&b, "## Contents\n\n")
	for i := 0; i < sa.Count(); i++ {
		s, err := sa.GetSel(i)
		if err != nil {
			continue
		}
		heading := sectionHeading(s.Name, i)
		fmt.Fprintf(&b, "- [%s](#%s)\n", heading, sanitized_anchor_name.Create(heading))
	}
	if len(warnings) > 0 {
		fmt.Fprintf(&b, "- [Warnings](#%s)\n", sanitized_anchor_name.Create("Warnings"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Sels\n\n")
	for i := 0; i < sa.Count(); i++ {
		s, err := sa.GetSel(i)
		if err != nil {
			continue
		}
		heading := sectionHeading(s.Name, i)
		fmt.Fprintf(&b, "### %s\n\n", heading)
		fmt.Fprintf(&b, "- dimensions: %d x %d, origin (%d, %d)\n", s.Sx, s.Sy, s.Cx, s.Cy)
		fmt.Fprintf(&b, "- hit count: %d\n", len(s.Hits()))
		fmt.Fprintf(&b, "- dilate kernel index: %d\n", 2*i)
		fmt.Fprintf(&b, "- erode kernel index: %d\n\n", 2*i+1)
	}

	if len(warnings) > 0 {
		fmt.Fprintf(&b, "## Warnings\n\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "- **%s**: %s\n", w.SelName, w.Message)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func sectionHeading(name string, index int) string {
	if name == "" {
		name = fmt.Sprintf("sel_%d", index)
	}
	return name
}

// RenderHTML converts Markdown produced by BuildMarkdown into an HTML
// fragment, using the same anchor-slugging algorithm the hand-built
// table of contents in BuildMarkdown uses, so the two never disagree
// about a heading's anchor.
func RenderHTML(markdown string) []byte {
	return blackfriday.Run([]byte(markdown),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.AutoHeadingIDs))
}
