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
	"errors"
	"testing"

	"github.com/semtools/go-boxer/pkg/util/assert"
)

func TestFol_01(t *testing.T) {
	// Referents close existentially over the conjoined conditions.
	e := NewDRS([]Variable{NewVariable("x0")},
		[]Expr{NewAtom("n_dog_1", NewVariable("x0"))})
	//
	checkFol(t, e, "exists x0.n_dog_1(x0)")
}

func TestFol_02(t *testing.T) {
	// Conditions conjoin right-nested; referents close innermost-last first.
	e := NewDRS(
		[]Variable{NewVariable("x0"), NewVariable("x1")},
		[]Expr{
			NewAtom("n_dog_1", NewVariable("x0")),
			NewAtom("n_cat_1", NewVariable("x1")),
			NewAtom("r_agent_2", NewVariable("x0"), NewVariable("x1")),
		})
	//
	checkFol(t, e, "exists x0.exists x1.(n_dog_1(x0) & (n_cat_1(x1) & r_agent_2(x0,x1)))")
}

func TestFol_03(t *testing.T) {
	// A box antecedent takes universal scope over the consequent.
	e := &Implication{
		Left: NewDRS([]Variable{NewVariable("x0")},
			[]Expr{NewAtom("n_man_1", NewVariable("x0"))}),
		Right: NewDRS(nil,
			[]Expr{NewAtom("v_walk_1", NewVariable("x0"))}),
	}
	//
	checkFol(t, e, "all x0.(n_man_1(x0) -> v_walk_1(x0))")
}

func TestFol_04(t *testing.T) {
	// An antecedent without conditions contributes quantifiers only.
	e := &Implication{
		Left: NewDRS([]Variable{NewVariable("x0")}, nil),
		Right: NewDRS(nil,
			[]Expr{NewAtom("v_walk_1", NewVariable("x0"))}),
	}
	//
	checkFol(t, e, "all x0.v_walk_1(x0)")
}

func TestFol_05(t *testing.T) {
	e := &Negation{NewDRS([]Variable{NewVariable("x0")},
		[]Expr{NewAtom("n_dog_1", NewVariable("x0"))})}
	//
	checkFol(t, e, "-exists x0.n_dog_1(x0)")
}

func TestFol_06(t *testing.T) {
	dog := NewDRS(nil, []Expr{NewAtom("n_dog_1", NewVariable("x0"))})
	cat := NewDRS(nil, []Expr{NewAtom("n_cat_1", NewVariable("x0"))})
	//
	checkFol(t, &Or{dog, cat}, "(n_dog_1(x0) | n_cat_1(x0))")
}

func TestFol_07(t *testing.T) {
	// Concatenated boxes merge before translation, so the left box's
	// referent scopes over the right box's conditions.
	e := &Concatenation{
		Left: NewDRS([]Variable{NewVariable("x0")}, nil),
		Right: NewDRS(nil,
			[]Expr{NewAtom("n_dog_1", NewVariable("x0"))}),
	}
	//
	checkFol(t, e, "exists x0.n_dog_1(x0)")
}

func TestFol_08(t *testing.T) {
	checkFol(t, &Equality{NewVariable("x0"), NewVariable("x1")}, "(x0 = x1)")
}

func TestFol_09(t *testing.T) {
	_, err := Fol(NewDRS([]Variable{NewVariable("x0")}, nil))
	//
	assert.True(t, errors.Is(err, ErrEmptyBox), "expected %v, got %v", ErrEmptyBox, err)
}

func checkFol(t *testing.T, e Expr, expected string) {
	t.Helper()
	//
	actual, err := Fol(e)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual.String())
}
