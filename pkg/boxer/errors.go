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

	"github.com/semtools/go-boxer/pkg/util/source"
)

// TokenizationError indicates raw term text which could not be split into
// tokens, such as an unterminated quoted atom.
type TokenizationError struct {
	*source.SyntaxError
}

// UnexpectedTokenError indicates a grammar mismatch at a specific expected
// punctuation or keyword position.
type UnexpectedTokenError struct {
	*source.SyntaxError
	// Expected describes the token the grammar required at this position.
	Expected string
	// Actual is the text of the offending token.
	Actual string
}

// UnexpectedConditionError indicates an unknown condition keyword inside a
// box's condition list.
type UnexpectedConditionError struct {
	*source.SyntaxError
	// Token is the unknown keyword.
	Token string
}

// MalformedBatchLayoutError indicates that the fixed-offset layout of the
// external tool's batched output was violated for a given discourse.
type MalformedBatchLayoutError struct {
	// DiscourseID of the affected discourse, where it could be determined.
	DiscourseID string
	// Line on which the violation was detected, counting from 0.
	Line int
	// Msg describes the violated expectation.
	Msg string
}

// Error implements the error interface.
func (e *MalformedBatchLayoutError) Error() string {
	return fmt.Sprintf("discourse %q (line %d): %s", e.DiscourseID, e.Line+1, e.Msg)
}

// InvalidArityError indicates a request to build a predicate name with a
// non-positive arity.
type InvalidArityError struct {
	Arity int
}

// Error implements the error interface.
func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("invalid predicate arity %d", e.Arity)
}
