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
)

// Index identifies the source position of a lexical item as a (sentence,
// word) pair, both counting from 0.
type Index struct {
	Sentence int
	Word     int
}

// DecodeIndex unpacks the external tool's integer position encoding, where
// 1001 denotes the first word of the first sentence.
func DecodeIndex(n int) Index {
	return Index{(n / 1000) - 1, (n % 1000) - 1}
}

// EncodeIndex is the inverse of DecodeIndex.
func (ix Index) EncodeIndex() int {
	return 1000*(ix.Sentence+1) + (ix.Word + 1)
}

// SanitizeName strips every character that is not an ASCII letter, digit or
// underscore, so that embedded punctuation cannot break the canonical
// predicate naming grammar.
func SanitizeName(name string) string {
	var out strings.Builder
	//
	for _, c := range name {
		if ('A' <= c && c <= 'Z') ||
			('a' <= c && c <= 'z') ||
			('0' <= c && c <= '9') ||
			c == '_' {
			out.WriteRune(c)
		}
	}
	//
	return out.String()
}

// BuildPredicate deterministically builds a canonical predicate identifier of
// the form
//
//	<pos>_<lemma>_[<discourseID>_][s<sentence>_w<word>_]<arity>
//
// The position marker is included only when occurrence indexing is enabled
// and at least one index is present, using the first index; the discourse
// segment only when a discourse identifier was supplied and at least one
// index is present.  Predicates without any index have no textual anchor and
// are forced to the relation marker "r", and are shared across discourses.
func BuildPredicate(pos string, lemma string, indices []Index, arity int,
	discourseID string, occurrence bool) (string, error) {
	if arity <= 0 {
		return "", &InvalidArityError{arity}
	}
	//
	var discourse, position string
	//
	if len(indices) == 0 {
		pos = "r"
	} else {
		if discourseID != "" {
			discourse = discourseID + "_"
		}
		//
		if occurrence {
			position = fmt.Sprintf("s%d_w%d_", indices[0].Sentence, indices[0].Word)
		}
	}
	//
	return fmt.Sprintf("%s_%s_%s%s%d", pos, lemma, discourse, position, arity), nil
}
