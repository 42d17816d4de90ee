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

// Package boxer decodes the semantic output of the C&C / Boxer pipeline into
// discourse representation structures.  The parsing pipeline (candc piped
// into boxer) is located via the CANDCHOME environment variable, which names
// the bin directory of the installation; the models directory is expected in
// the installation root:
//
//	/path/to/candc/
//	    bin/
//	        candc
//	        boxer
//	    models/
//	        boxer/
package boxer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/semtools/go-boxer/pkg/drt"
	"github.com/semtools/go-boxer/pkg/util"
)

// metaPrefix frames each discourse in a batch submission.
const metaPrefix = "<META>"

// Boxer drives the external semantic-analysis pipeline and decodes its
// declared output into expression trees.
type Boxer struct {
	// OccurrenceIndex embeds each lexical item's source position in its
	// predicate names (see Parser).
	OccurrenceIndex bool
	//
	candcBin  string
	boxerBin  string
	modelsDir string
}

// New constructs an interpreter, locating the external binaries via the
// CANDCHOME environment variable.
func New() (*Boxer, error) {
	bin := os.Getenv("CANDCHOME")
	//
	if bin == "" {
		return nil, errors.New("CANDCHOME environment variable not set " +
			"(expected the bin directory of a CandC installation)")
	}
	//
	candc := filepath.Join(bin, "candc")
	boxerBin := filepath.Join(bin, "boxer")
	//
	for _, binary := range []string{candc, boxerBin} {
		if _, err := os.Stat(binary); err != nil {
			return nil, fmt.Errorf("cannot locate %s: %w", binary, err)
		}
	}
	//
	models := filepath.Join(bin, "..", "models", "boxer")
	//
	return &Boxer{candcBin: candc, boxerBin: boxerBin, modelsDir: models}, nil
}

// Interpret parses a single sentence as its own discourse.
func (b *Boxer) Interpret(ctx context.Context, sentence string) (util.Option[drt.Expr], error) {
	return b.InterpretDiscourse(ctx, []string{sentence})
}

// InterpretDiscourse parses several sentences as a single discourse.
func (b *Boxer) InterpretDiscourse(ctx context.Context, sentences []string) (util.Option[drt.Expr], error) {
	results, err := b.BatchInterpret(ctx, [][]string{sentences}, nil)
	//
	if err != nil {
		return util.None[drt.Expr](), err
	}
	//
	return results[0], nil
}

// BatchInterpret parses each discourse (a list of sentences) in one external
// invocation.  When ids is nil, each discourse is identified by its 0-based
// position in the batch and predicates are shared across discourses;
// otherwise one identifier per discourse must be supplied, and
// occurrence-indexed predicates are disambiguated per identifier.  The result
// holds one slot per discourse, in batch order, absent where analysis or
// parsing failed.
func (b *Boxer) BatchInterpret(ctx context.Context, discourses [][]string,
	ids []string) ([]util.Option[drt.Expr], error) {
	useIDs := ids != nil
	//
	if useIDs && len(ids) != len(discourses) {
		return nil, fmt.Errorf("have %d discourses but %d identifiers", len(discourses), len(ids))
	}
	//
	if !useIDs {
		ids = make([]string, len(discourses))
		//
		for i := range discourses {
			ids[i] = strconv.Itoa(i)
		}
	}
	//
	logger := log.WithField("batch", uuid.New().String())
	// candc writes its analysis to a scratch file which boxer then consumes.
	scratch, err := os.CreateTemp("", "boxer-*.in")
	if err != nil {
		return nil, err
	}
	//
	filename := scratch.Name()
	scratch.Close()
	//
	defer os.Remove(filename)
	//
	logger.Debugf("submitting %d discourse(s)", len(discourses))
	//
	_, err = b.call(ctx, logger, b.candcBin, buildSubmission(discourses, ids),
		"--models", b.modelsDir,
		"--output", filename)
	if err != nil {
		return nil, err
	}
	//
	output, err := b.call(ctx, logger, b.boxerBin, "",
		"--box", "false",
		"--semantics", "drs",
		"--format", "prolog",
		"--flat", "false",
		"--resolve", "true",
		"--elimeq", "true",
		"--input", filename)
	if err != nil {
		return nil, err
	}
	//
	return DemuxAndParse(output, ids, b.OccurrenceIndex, useIDs), nil
}

// buildSubmission frames each discourse with its marker line, followed by one
// line per sentence.
func buildSubmission(discourses [][]string, ids []string) string {
	var buf strings.Builder
	//
	for i, sentences := range discourses {
		fmt.Fprintf(&buf, "%s'%s'\n", metaPrefix, ids[i])
		//
		for _, sentence := range sentences {
			buf.WriteString(sentence)
			buf.WriteByte('\n')
		}
	}
	//
	return buf.String()
}

// call invokes an external binary, feeding it the given stdin and capturing
// its stdout.  A non-zero exit is an error carrying the command line and
// whatever the binary wrote to stderr.
func (b *Boxer) call(ctx context.Context, logger *log.Entry, binary string,
	stdin string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	//
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	//
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	//
	logger.Debugf("calling %s %s", binary, strings.Join(args, " "))
	//
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", binary, strings.Join(args, " "),
			err, stderr.String())
	}
	//
	logger.Debugf("%s produced %d bytes", binary, stdout.Len())
	//
	return stdout.String(), nil
}
