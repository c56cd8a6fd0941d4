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

	"github.com/yiqideren/leptonica/morph"
	"github.com/yiqideren/leptonica/pix"
	"github.com/yiqideren/leptonica/sel"
	"github.com/yiqideren/leptonica/selbasic"
)

func doPreview(args []string) error {
	flags := flag.FlagSet{}
	inFlag := flags.String("in", "", "input PNG to morph (required)")
	outFlag := flags.String("out", "preview.png", "output PNG path")
	selFlag := flags.String("sel", "sel_3x3", "sel name to apply")
	erodeFlag := flags.Bool("erode", false, "erode instead of dilate")
	scaleFlag := flags.Int("scale", 4, "nearest-neighbor upscale factor")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *inFlag == "" {
		return fmt.Errorf("-in is required")
	}

	f, err := os.Open(*inFlag)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := pix.DecodePNG1bpp(f)
	if err != nil {
		return err
	}

	sa := sel.NewSela()
	if _, err := selbasic.AddBasic(sa); err != nil {
		return err
	}

	op := morph.Dilate
	if *erodeFlag {
		op = morph.Erode
	}
	out, err := morph.Apply(nil, src, sa, *selFlag, op)
	if err != nil {
		return err
	}

	png, err := pix.Preview(out, *scaleFlag)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*outFlag, png, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *outFlag)
	return nil
}
