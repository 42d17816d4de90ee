// Copyright Semtools Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package drt

import (
	"strings"
)

// Pretty renders an expression as the conventional box diagram, with each box
// listing its referents above a rule and its conditions below it.  For
// example:
//
//	 _____________
//	| x0          |
//	|-------------|
//	| n_dog_1(x0) |
//	|_____________|
func Pretty(e Expr) string {
	return strings.Join(render(e), "\n")
}

// Width determines the number of columns a rendered expression occupies.
func Width(e Expr) int {
	lines := render(e)
	width := 0
	//
	for _, l := range lines {
		width = max(width, len(l))
	}
	//
	return width
}

// Render an expression into a rectangular block of lines, each padded to the
// same width.
func render(e Expr) []string {
	switch e := e.(type) {
	case *DRS:
		return renderBox(e)
	case *Negation:
		return beside([]string{"-"}, render(e.Body))
	case *Or:
		return renderBinary(e.Left, "|", e.Right)
	case *Implication:
		return renderBinary(e.Left, "->", e.Right)
	case *Concatenation:
		return renderBinary(e.Left, "+", e.Right)
	case *And:
		return renderBinary(e.Left, "&", e.Right)
	case *Exists:
		return beside([]string{"exists " + e.Ref.Name + "."}, render(e.Body))
	case *ForAll:
		return beside([]string{"all " + e.Ref.Name + "."}, render(e.Body))
	default:
		// Equality, Atom
		return []string{e.String()}
	}
}

func renderBox(e *DRS) []string {
	refs := make([]string, len(e.Refs))
	//
	for i, r := range e.Refs {
		refs[i] = r.Name
	}
	// Body holds the referent row followed by every condition block.
	body := []string{strings.Join(refs, " ")}
	//
	for _, c := range e.Conds {
		body = append(body, render(c)...)
	}
	//
	width := 0
	for _, l := range body {
		width = max(width, len(l))
	}
	// Assemble the box frame
	lines := make([]string, 0, len(body)+3)
	lines = append(lines, " "+strings.Repeat("_", width+2))
	lines = append(lines, "| "+pad(body[0], width)+" |")
	lines = append(lines, "|"+strings.Repeat("-", width+2)+"|")
	//
	for _, l := range body[1:] {
		lines = append(lines, "| "+pad(l, width)+" |")
	}
	//
	lines = append(lines, "|"+strings.Repeat("_", width+2)+"|")
	//
	return lines
}

func renderBinary(left Expr, op string, right Expr) []string {
	block := beside(render(left), []string{op})
	block = beside(block, render(right))
	block = beside([]string{"("}, block)
	//
	return beside(block, []string{")"})
}

// Beside places two blocks side by side, aligning their vertical centres and
// padding the shorter one with blank lines.
func beside(left []string, right []string) []string {
	height := max(len(left), len(right))
	left = centre(left, height)
	right = centre(right, height)
	//
	lines := make([]string, height)
	//
	for i := 0; i < height; i++ {
		lines[i] = left[i] + " " + right[i]
	}
	//
	return lines
}

// Centre pads a block with blank lines above and below until it reaches the
// given height, keeping all lines at equal width.
func centre(block []string, height int) []string {
	width := 0
	//
	for _, l := range block {
		width = max(width, len(l))
	}
	//
	blank := strings.Repeat(" ", width)
	above := (height - len(block)) / 2
	//
	lines := make([]string, 0, height)
	//
	for i := 0; i < above; i++ {
		lines = append(lines, blank)
	}
	//
	for _, l := range block {
		lines = append(lines, pad(l, width))
	}
	//
	for len(lines) < height {
		lines = append(lines, blank)
	}
	//
	return lines
}

func pad(line string, width int) string {
	return line + strings.Repeat(" ", width-len(line))
}
