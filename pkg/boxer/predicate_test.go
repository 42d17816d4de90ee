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
	"errors"
	"testing"

	"github.com/semtools/go-boxer/pkg/util/assert"
)

func TestDecodeIndex_01(t *testing.T) {
	assert.Equal(t, Index{0, 0}, DecodeIndex(1001))
}

func TestDecodeIndex_02(t *testing.T) {
	assert.Equal(t, Index{2, 3}, DecodeIndex(3004))
}

func TestDecodeIndex_03(t *testing.T) {
	// Decoding and encoding are mutually inverse over the whole range the
	// external tool can emit.
	for n := 1001; n <= 9999; n++ {
		if m := DecodeIndex(n).EncodeIndex(); m != n {
			t.Fatalf("round trip of %d gave %d", n, m)
		}
	}
}

func TestSanitizeName_01(t *testing.T) {
	assert.Equal(t, "icecream", SanitizeName("ice cream"))
}

func TestSanitizeName_02(t *testing.T) {
	assert.Equal(t, "thirtytwo", SanitizeName("thirty-two"))
}

func TestSanitizeName_03(t *testing.T) {
	assert.Equal(t, "co_op", SanitizeName("co_op"))
}

func TestSanitizeName_04(t *testing.T) {
	// Sanitization is idempotent.
	names := []string{"dog", "O'Brien", "6.5%", "a b c", ""}
	//
	for _, name := range names {
		once := SanitizeName(name)
		assert.Equal(t, once, SanitizeName(once))
	}
}

func TestBuildPredicate_01(t *testing.T) {
	checkPredicate(t, "n_dog_1",
		"n", "dog", []Index{{0, 1}}, 1, "", false)
}

func TestBuildPredicate_02(t *testing.T) {
	checkPredicate(t, "v_see_t_s2_w3_2",
		"v", "see", []Index{{2, 3}}, 2, "t", true)
}

func TestBuildPredicate_03(t *testing.T) {
	// Only the first index anchors the position marker.
	checkPredicate(t, "n_dog_s0_w1_1",
		"n", "dog", []Index{{0, 1}, {4, 7}}, 1, "", true)
}

func TestBuildPredicate_04(t *testing.T) {
	// A discourse segment requires at least one index.
	checkPredicate(t, "r_agent_2",
		"v", "agent", nil, 2, "t", true)
}

func TestBuildPredicate_05(t *testing.T) {
	checkPredicate(t, "n_dog_t_1",
		"n", "dog", []Index{{0, 1}}, 1, "t", false)
}

func TestBuildPredicate_06(t *testing.T) {
	_, err := BuildPredicate("n", "dog", nil, 0, "", false)
	//
	var arityErr *InvalidArityError
	assert.True(t, errors.As(err, &arityErr), "expected arity error, got %v", err)
	assert.Equal(t, 0, arityErr.Arity)
}

func checkPredicate(t *testing.T, expected string, pos string, lemma string,
	indices []Index, arity int, discourseID string, occurrence bool) {
	t.Helper()
	//
	actual, err := BuildPredicate(pos, lemma, indices, arity, discourseID, occurrence)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
}
