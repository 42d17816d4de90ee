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

	"github.com/semtools/go-boxer/pkg/drt"
	"github.com/semtools/go-boxer/pkg/util/assert"
)

var v = drt.NewVariable

// ============================================================================
// Predicates
// ============================================================================

func TestParsePred_01(t *testing.T) {
	expected := drt.NewDRS(
		[]drt.Variable{v("x0")},
		[]drt.Expr{drt.NewAtom("n_dog_1", v("x0"))})
	//
	checkParse(t, Parser{},
		"drs([[1001]:x0],[[1002]:pred(x0,dog,n,0)])", expected)
}

func TestParsePred_02(t *testing.T) {
	// Occurrence indexing embeds the first index's source position.
	expected := drt.NewDRS(
		[]drt.Variable{v("x0")},
		[]drt.Expr{drt.NewAtom("n_dog_t_s0_w1_1", v("x0"))})
	//
	checkParse(t, Parser{OccurrenceIndex: true, DiscourseID: "t"},
		"drs([[1001]:x0],[[1002]:pred(x0,dog,n,0)])", expected)
}

func TestParsePred_03(t *testing.T) {
	// Without a discourse identifier there is no discourse segment.
	expected := drt.NewDRS(
		[]drt.Variable{v("x0")},
		[]drt.Expr{drt.NewAtom("n_dog_s0_w1_1", v("x0"))})
	//
	checkParse(t, Parser{OccurrenceIndex: true},
		"drs([[1001]:x0],[[1002]:pred(x0,dog,n,0)])", expected)
}

func TestParsePred_04(t *testing.T) {
	// An unindexed predicate is forced to the relation marker and never
	// carries discourse or position segments.
	expected := drt.NewDRS(
		[]drt.Variable{v("x0")},
		[]drt.Expr{drt.NewAtom("r_dog_1", v("x0"))})
	//
	checkParse(t, Parser{OccurrenceIndex: true, DiscourseID: "t"},
		"drs([[1001]:x0],[[]:pred(x0,dog,n,0)])", expected)
}

func TestParsePred_05(t *testing.T) {
	// Embedded punctuation is stripped from the lemma.
	expected := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("n_icecream_1", v("x0"))})
	//
	checkParse(t, Parser{},
		"drs([],[[1002]:pred(x0,'ice cream',n,0)])", expected)
}

func TestParseNamed_01(t *testing.T) {
	// Named entities stay stable across discourses and occurrences.
	expected := drt.NewDRS(
		[]drt.Variable{v("x0")},
		[]drt.Expr{drt.NewAtom("n_john_1", v("x0"))})
	//
	checkParse(t, Parser{OccurrenceIndex: true, DiscourseID: "t"},
		"drs([[1001]:x0],[[1002]:named(x0,john,per,0)])", expected)
}

func TestParseRel_01(t *testing.T) {
	expected := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("r_agent_2", v("x0"), v("x1"))})
	//
	checkParse(t, Parser{},
		"drs([],[[1003]:rel(x0,x1,agent,0)])", expected)
}

func TestParseCard_01(t *testing.T) {
	expected := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("r_card_3", v("x0"), v("28"), v("ge"))})
	//
	checkParse(t, Parser{},
		"drs([],[[1002]:card(x0,28,ge)])", expected)
}

// ============================================================================
// Connectives
// ============================================================================

func TestParseEq_01(t *testing.T) {
	// Internal variable names are rewritten to the stable prefix.
	expected := drt.NewDRS(nil,
		[]drt.Expr{&drt.Equality{Left: v("z100"), Right: v("x1")}})
	//
	checkParse(t, Parser{},
		"drs([],[[]:eq(_G100,x1)])", expected)
}

func TestParseNot_01(t *testing.T) {
	inner := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("n_dog_1", v("x0"))})
	expected := drt.NewDRS(nil,
		[]drt.Expr{&drt.Negation{Body: inner}})
	//
	checkParse(t, Parser{},
		"drs([],[[]:not(drs([],[[1002]:pred(x0,dog,n,0)]))])", expected)
}

func TestParseOr_01(t *testing.T) {
	left := drt.NewDRS(nil, []drt.Expr{drt.NewAtom("n_cat_1", v("x0"))})
	right := drt.NewDRS(nil, []drt.Expr{drt.NewAtom("n_dog_1", v("x0"))})
	expected := drt.NewDRS(nil,
		[]drt.Expr{&drt.Or{Left: left, Right: right}})
	//
	checkParse(t, Parser{},
		"drs([],[[]:or(drs([],[[1002]:pred(x0,cat,n,0)]),drs([],[[1004]:pred(x0,dog,n,0)]))])",
		expected)
}

func TestParseImp_01(t *testing.T) {
	left := drt.NewDRS([]drt.Variable{v("x0")},
		[]drt.Expr{drt.NewAtom("n_man_1", v("x0"))})
	right := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("v_walk_1", v("x0"))})
	expected := drt.NewDRS(nil,
		[]drt.Expr{&drt.Implication{Left: left, Right: right}})
	//
	checkParse(t, Parser{},
		"drs([],[[]:imp(drs([[1002]:x0],[[1002]:pred(x0,man,n,0)]),drs([],[[1003]:pred(x0,walk,v,0)]))])",
		expected)
}

func TestParseProp_01(t *testing.T) {
	// The proposition's own variable never survives.
	inner := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("n_dog_1", v("x0"))})
	expected := drt.NewDRS(nil, []drt.Expr{inner})
	//
	checkParse(t, Parser{},
		"drs([],[[]:prop(_G15,drs([],[[1002]:pred(x0,dog,n,0)]))])", expected)
}

func TestParseMerge_01(t *testing.T) {
	left := drt.NewDRS([]drt.Variable{v("x0")}, nil)
	right := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("n_dog_1", v("x0"))})
	expected := &drt.Concatenation{Left: left, Right: right}
	//
	checkParse(t, Parser{},
		"merge(drs([[1001]:x0],[]),drs([],[[1002]:pred(x0,dog,n,0)]))", expected)
}

func TestParseMerge_02(t *testing.T) {
	// smerge parses identically to merge.
	left := drt.NewDRS([]drt.Variable{v("x0")}, nil)
	right := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("n_dog_1", v("x0"))})
	expected := &drt.Concatenation{Left: left, Right: right}
	//
	checkParse(t, Parser{},
		"smerge(drs([[1001]:x0],[]),drs([],[[1002]:pred(x0,dog,n,0)]))", expected)
}

// ============================================================================
// Time expressions
// ============================================================================

func TestParseTimex_01(t *testing.T) {
	// Placeholder slots contribute nothing.
	expected := drt.NewDRS(
		[]drt.Variable{v("x0")},
		[]drt.Expr{
			drt.NewAtom("r_date_1", v("x0")),
			drt.NewAtom("r_pol_2", v("x0"), v("pos")),
			drt.NewAtom("r_month_2", v("x0"), v("04")),
		})
	//
	checkParse(t, Parser{},
		"drs([[1001]:x0],[[1004]:timex(x0,date([]: +,[]:'XXXX',[1004]:'04',[]:'XX'))])",
		expected)
}

func TestParseTimex_02(t *testing.T) {
	expected := drt.NewDRS(nil,
		[]drt.Expr{
			drt.NewAtom("r_date_1", v("x0")),
			drt.NewAtom("r_pol_2", v("x0"), v("neg")),
			drt.NewAtom("r_year_2", v("x0"), v("1999")),
			drt.NewAtom("r_day_2", v("x0"), v("12")),
		})
	//
	checkParse(t, Parser{},
		"drs([],[[]:timex(x0,date([]: -,[]:'1999',[]:'XX',[]:'12'))])",
		expected)
}

func TestParseTimex_03(t *testing.T) {
	// A colon inside a year value would break the naming grammar.
	expected := drt.NewDRS(nil,
		[]drt.Expr{
			drt.NewAtom("r_date_1", v("x0")),
			drt.NewAtom("r_year_2", v("x0"), v("20_30")),
		})
	//
	checkParse(t, Parser{},
		"drs([],[[]:timex(x0,date([]: +,[]:'20:30',[]:'XX',[]:'XX'))])",
		expected)
}

func TestParseTimex_04(t *testing.T) {
	expected := drt.NewDRS(nil,
		[]drt.Expr{
			drt.NewAtom("r_time_1", v("x0")),
			drt.NewAtom("r_hour_2", v("x0"), v("09")),
			drt.NewAtom("r_sec_2", v("x0"), v("30")),
		})
	//
	checkParse(t, Parser{},
		"drs([],[[]:timex(x0,time([]:'09',[]:'XX',[]:'30'))])",
		expected)
}

// ============================================================================
// Questions
// ============================================================================

func TestParseWhq_01(t *testing.T) {
	types := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("n_city_1", v("x0"))})
	restriction := drt.NewDRS([]drt.Variable{v("x0")},
		[]drt.Expr{drt.NewAtom("n_city_1", v("x0"))})
	body := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("v_exist_1", v("x0"))})
	//
	expected := drt.NewDRS(nil, []drt.Expr{
		&drt.Concatenation{
			Left:  types,
			Right: &drt.Concatenation{Left: restriction, Right: body},
		}})
	//
	checkParse(t, Parser{},
		"drs([],[[]:whq([des:city],drs([[1001]:x0],[[1002]:pred(x0,city,n,0)]),x0,drs([],[[1003]:pred(x0,exist,v,0)]))])",
		expected)
}

func TestParseWhq_02(t *testing.T) {
	// A count question constrains its answer twice.
	types := drt.NewDRS(nil, []drt.Expr{
		drt.NewAtom("n_number_1", v("z10")),
		drt.NewAtom("n_count_1", v("z10")),
	})
	restriction := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("n_dog_1", v("z10"))})
	body := drt.NewDRS(nil,
		[]drt.Expr{drt.NewAtom("v_bark_1", v("z10"))})
	//
	expected := drt.NewDRS(nil, []drt.Expr{
		&drt.Concatenation{
			Left:  types,
			Right: &drt.Concatenation{Left: restriction, Right: body},
		}})
	//
	checkParse(t, Parser{},
		"drs([],[[]:whq([num:cou],drs([],[[1002]:pred(_G10,dog,n,0)]),_G10,drs([],[[1003]:pred(_G10,bark,v,0)]))])",
		expected)
}

// ============================================================================
// Failures
// ============================================================================

func TestParseErr_01(t *testing.T) {
	_, err := (&Parser{}).Parse("drs([],[[]:foo(x0)])")
	//
	var condErr *UnexpectedConditionError
	assert.True(t, errors.As(err, &condErr), "expected condition error, got %v", err)
	assert.Equal(t, "foo", condErr.Token)
}

func TestParseErr_02(t *testing.T) {
	_, err := (&Parser{}).Parse("drs(x0)")
	//
	var tokenErr *UnexpectedTokenError
	assert.True(t, errors.As(err, &tokenErr), "expected token error, got %v", err)
	assert.Equal(t, "'['", tokenErr.Expected)
	assert.Equal(t, "x0", tokenErr.Actual)
}

func TestParseErr_03(t *testing.T) {
	_, err := (&Parser{}).Parse("drs([],[[]:'oops])")
	//
	var tokErr *TokenizationError
	assert.True(t, errors.As(err, &tokErr), "expected tokenization error, got %v", err)
}

func TestParseErr_04(t *testing.T) {
	// Trailing text after a complete term is rejected.
	_, err := (&Parser{}).Parse("drs([],[[]:eq(x0,x1)]) x")
	//
	var tokenErr *UnexpectedTokenError
	assert.True(t, errors.As(err, &tokenErr), "expected token error, got %v", err)
	assert.Equal(t, "end of input", tokenErr.Expected)
}

func TestParseErr_05(t *testing.T) {
	// Unknown time expression functors are rejected rather than skipped.
	_, err := (&Parser{}).Parse("drs([],[[]:timex(x0,epoch([]:'0'))])")
	//
	var tokenErr *UnexpectedTokenError
	assert.True(t, errors.As(err, &tokenErr), "expected token error, got %v", err)
	assert.Equal(t, "date or time", tokenErr.Expected)
}

func TestParseErr_06(t *testing.T) {
	_, err := (&Parser{}).Parse("drs([[abc]:x0],[])")
	//
	var tokenErr *UnexpectedTokenError
	assert.True(t, errors.As(err, &tokenErr), "expected token error, got %v", err)
	assert.Equal(t, "index", tokenErr.Expected)
}

func TestParseErr_07(t *testing.T) {
	_, err := (&Parser{}).Parse("box([],[])")
	//
	var tokenErr *UnexpectedTokenError
	assert.True(t, errors.As(err, &tokenErr), "expected token error, got %v", err)
	assert.Equal(t, "drs, merge or smerge", tokenErr.Expected)
}

func checkParse(t *testing.T, parser Parser, input string, expected drt.Expr) {
	t.Helper()
	//
	actual, err := parser.Parse(input)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
}
