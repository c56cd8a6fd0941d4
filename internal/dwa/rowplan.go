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

package dwa

import "log"

// wpldecls[i] declares the wpls variables first needed at ymax == i+2.
var wpldecls = []string{
	"l_int32              wpls2;",
	"l_int32              wpls2, wpls3;",
	"l_int32              wpls2, wpls3, wpls4;",
	"l_int32              wpls5;",
	"l_int32              wpls5, wpls6;",
	"l_int32              wpls5, wpls6, wpls7;",
	"l_int32              wpls5, wpls6, wpls7, wpls8;",
	"l_int32              wpls9;",
	"l_int32              wpls9, wpls10;",
	"l_int32              wpls9, wpls10, wpls11;",
	"l_int32              wpls9, wpls10, wpls11, wpls12;",
	"l_int32              wpls13;",
	"l_int32              wpls13, wpls14;",
	"l_int32              wpls13, wpls14, wpls15;",
	"l_int32              wpls13, wpls14, wpls15, wpls16;",
	"l_int32              wpls17;",
	"l_int32              wpls17, wpls18;",
	"l_int32              wpls17, wpls18, wpls19;",
	"l_int32              wpls17, wpls18, wpls19, wpls20;",
	"l_int32              wpls21;",
	"l_int32              wpls21, wpls22;",
	"l_int32              wpls21, wpls22, wpls23;",
	"l_int32              wpls21, wpls22, wpls23, wpls24;",
	"l_int32              wpls25;",
	"l_int32              wpls25, wpls26;",
	"l_int32              wpls25, wpls26, wpls27;",
	"l_int32              wpls25, wpls26, wpls27, wpls28;",
	"l_int32              wpls29;",
	"l_int32              wpls29, wpls30;",
	"l_int32              wpls29, wpls30, wpls31;",
}

// wpldefs[i] defines wpls(i+2) = (i+2) * wpls.
var wpldefs = []string{
	"    wpls2 = 2 * wpls;", "    wpls3 = 3 * wpls;", "    wpls4 = 4 * wpls;",
	"    wpls5 = 5 * wpls;", "    wpls6 = 6 * wpls;", "    wpls7 = 7 * wpls;",
	"    wpls8 = 8 * wpls;", "    wpls9 = 9 * wpls;", "    wpls10 = 10 * wpls;",
	"    wpls11 = 11 * wpls;", "    wpls12 = 12 * wpls;", "    wpls13 = 13 * wpls;",
	"    wpls14 = 14 * wpls;", "    wpls15 = 15 * wpls;", "    wpls16 = 16 * wpls;",
	"    wpls17 = 17 * wpls;", "    wpls18 = 18 * wpls;", "    wpls19 = 19 * wpls;",
	"    wpls20 = 20 * wpls;", "    wpls21 = 21 * wpls;", "    wpls22 = 22 * wpls;",
	"    wpls23 = 23 * wpls;", "    wpls24 = 24 * wpls;", "    wpls25 = 25 * wpls;",
	"    wpls26 = 26 * wpls;", "    wpls27 = 27 * wpls;", "    wpls28 = 28 * wpls;",
	"    wpls29 = 29 * wpls;", "    wpls30 = 30 * wpls;", "    wpls31 = 31 * wpls;",
}

// RowPlan is the set of extra "wplsN" row-offset declarations and
// definitions a function's inner loop needs. Declarations come in
// batches of up to four per line (wpls2-4, wpls5-8, ...); every
// variable from wpls2 up to wpls{ymax} is declared exactly once, so a
// term needing wpls17 gets wpls2..wpls16 in the full batches before it
// and wpls17 on its own, with nothing past wpls17 declared.
type RowPlan struct {
	Decls []string
	Defs  []string
}

// PlanRows computes the RowPlan covering every term's |DelY|.
func PlanRows(terms []Term) RowPlan {
	ymax := 0
	for _, t := range terms {
		if a := abs(t.DelY); a > ymax {
			ymax = a
		}
	}
	if ymax > 31 {
		log.Printf("dwa: ymax=%d exceeds 31; truncated to 31", ymax)
		ymax = 31
	}

	// Each threshold below is independent, not mutually exclusive: a
	// large ymax walks through several of them, declaring the first
	// wpls variable of each completed batch of four before the final
	// check declares the (possibly partial) batch ymax itself falls
	// in. This mirrors leptonica's own sarrayMakeWplsCode exactly.
	var plan RowPlan
	if ymax > 4 {
		plan.Decls = append(plan.Decls, wpldecls[2])
	}
	if ymax > 8 {
		plan.Decls = append(plan.Decls, wpldecls[6])
	}
	if ymax > 12 {
		plan.Decls = append(plan.Decls, wpldecls[10])
	}
	if ymax > 16 {
		plan.Decls = append(plan.Decls, wpldecls[14])
	}
	if ymax > 20 {
		plan.Decls = append(plan.Decls, wpldecls[18])
	}
	if ymax > 24 {
		plan.Decls = append(plan.Decls, wpldecls[22])
	}
	if ymax > 28 {
		plan.Decls = append(plan.Decls, wpldecls[26])
	}
	if ymax > 1 {
		plan.Decls = append(plan.Decls, wpldecls[ymax-2])
	}

	for i := 2; i <= ymax; i++ {
		plan.Defs = append(plan.Defs, wpldefs[i-2])
	}
	return plan
}
