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
package boxer

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/semtools/go-boxer/pkg/drt"
	"github.com/semtools/go-boxer/pkg/util"
)

// The external tool prints each discourse's semantic term at fixed line
// offsets from its id marker: a "sem(" header four lines below, and the term
// itself eight lines below, terminated by ").".  This positional contract is
// brittle by that tool's design, so both landmarks are validated before
// anything is extracted.
const (
	semHeaderOffset = 4
	termLineOffset  = 8
)

// termBlock pairs a discourse identifier with its extracted term text.
type termBlock struct {
	discourseID string
	term        string
	// Line of the id marker, counting from 0.
	line int
}

// extractTermBlocks scans the raw output of one external invocation for id
// markers and extracts each discourse's term by the fixed-offset layout.
// Layout violations are reported per discourse, never silently misparsed,
// and do not affect sibling discourses.
func extractTermBlocks(output string) ([]termBlock, []error) {
	var (
		blocks []termBlock
		errs   []error
	)
	//
	lines := strings.Split(output, "\n")
	//
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		//
		if !strings.HasPrefix(line, "id(") {
			continue
		}
		//
		comma := strings.Index(line, ",")
		rbrace := strings.Index(line, ")")
		//
		if comma < 0 || rbrace < comma {
			errs = append(errs, &MalformedBatchLayoutError{"", i, "malformed id marker"})
			continue
		}
		//
		discourseID := unquote(line[3:comma])
		// Internal correlation id ties the id marker to its sem header.
		internalID := line[comma+1 : rbrace]
		//
		if i+termLineOffset >= len(lines) {
			errs = append(errs, &MalformedBatchLayoutError{discourseID, i,
				"output truncated before semantic term"})
			continue
		}
		//
		header := fmt.Sprintf("sem(%s,", internalID)
		//
		if !strings.HasPrefix(lines[i+semHeaderOffset], header) {
			errs = append(errs, &MalformedBatchLayoutError{discourseID, i + semHeaderOffset,
				fmt.Sprintf("expected %q header", header)})
			continue
		}
		//
		termLine := lines[i+termLineOffset]
		//
		if !strings.HasSuffix(termLine, ").") {
			errs = append(errs, &MalformedBatchLayoutError{discourseID, i + termLineOffset,
				`term line does not end with ")."`})
			continue
		}
		//
		term := strings.TrimSpace(termLine[:len(termLine)-2])
		blocks = append(blocks, termBlock{discourseID, term, i})
		//
		i += termLineOffset
	}
	//
	return blocks, errs
}

// DemuxAndParse decodes the raw output of one external invocation covering
// the given discourses.  The result holds exactly one slot per requested
// identifier, in request order; a discourse whose identifier never appears in
// the output, or whose term fails to parse, is absent rather than omitted.
// Parse failures are isolated per discourse.
func DemuxAndParse(output string, discourseIDs []string, occurrence bool,
	useDiscourseIDs bool) []util.Option[drt.Expr] {
	blocks, errs := extractTermBlocks(output)
	//
	for _, err := range errs {
		log.Warnf("skipping discourse: %v", err)
	}
	//
	parsed := make(map[string]drt.Expr, len(blocks))
	// Each block is parsed independently; parses share no state and could
	// equally run concurrently.
	for _, block := range blocks {
		parser := Parser{OccurrenceIndex: occurrence}
		//
		if useDiscourseIDs {
			parser.DiscourseID = block.discourseID
		}
		//
		expr, err := parser.Parse(block.term)
		if err != nil {
			log.Warnf("discourse %q: %v", block.discourseID, err)
			continue
		}
		//
		parsed[block.discourseID] = Simplify(expr)
	}
	//
	results := make([]util.Option[drt.Expr], len(discourseIDs))
	//
	for i, id := range discourseIDs {
		if expr, ok := parsed[id]; ok {
			results[i] = util.Some(expr)
		} else {
			results[i] = util.None[drt.Expr]()
		}
	}
	//
	return results
}

// unquote strips one level of surrounding single quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	//
	return s
}
