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
	"strconv"
	"strings"

	"github.com/semtools/go-boxer/pkg/drt"
	"github.com/semtools/go-boxer/pkg/util/source"
	"github.com/semtools/go-boxer/pkg/util/source/lex"
)

// Parser converts one semantic term, as printed by the external analysis
// pipeline, into an expression tree.  Predicates derived from lexical items
// are named
//
//	<pos>_<word>[_<discourse id>][_s<sentence>_w<word>]_<arity>
//
// so the binary predicate for the verb "see", appearing as the fourth word of
// the third sentence of discourse "t", would be v_see_t_s3_w4_2.  The
// discourse and position segments are controlled by the fields below.
type Parser struct {
	// OccurrenceIndex embeds each lexical item's (sentence, word) source
	// position in its predicate name, keeping otherwise-identical predicates
	// distinct per occurrence.
	OccurrenceIndex bool
	// DiscourseID disambiguates occurrence-indexed predicates across
	// discourses.  Empty means no discourse segment.
	DiscourseID string
}

// Parse consumes exactly one well-formed term, failing if anything other than
// whitespace follows it.
func (p *Parser) Parse(input string) (drt.Expr, error) {
	srcfile := source.NewSourceFile("sem", []byte(input))
	//
	tokens, err := lexTerm(srcfile)
	if err != nil {
		return nil, err
	}
	// Cursor state is per-call, so one Parser may serve many goroutines.
	state := &termParser{p.OccurrenceIndex, p.DiscourseID, srcfile, tokens, 0}
	//
	expr, err := state.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	if !state.done() {
		return nil, state.unexpected("end of input", state.lookahead())
	}
	//
	return expr, nil
}

// termParser is the cursor over one term's token stream.
type termParser struct {
	occurrence  bool
	discourseID string
	srcfile     *source.File
	tokens      []lex.Token
	// Position within the tokens
	index int
}

// Done determines whether the parser has consumed all the available tokens.
func (p *termParser) done() bool {
	return p.lookahead().Kind == END_OF
}

// Lookahead returns the next token without consuming it.  This must exist
// because END_OF is always appended at the end of the token stream.
func (p *termParser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *termParser) next() lex.Token {
	token := p.tokens[p.index]
	//
	if token.Kind != END_OF {
		p.index++
	}
	//
	return token
}

// Text recovers the string a given token covers, stripping the delimiters of
// quoted atoms.  Escape sequences inside quoted atoms pass through literally.
func (p *termParser) text(token lex.Token) string {
	text := p.srcfile.Text(token.Span)
	//
	if token.Kind == QUOTED {
		text = text[1 : len(text)-1]
	}
	//
	return text
}

func (p *termParser) expect(kind uint, description string) (lex.Token, error) {
	if p.lookahead().Kind != kind {
		return lex.Token{}, p.unexpected(description, p.lookahead())
	}
	//
	return p.next(), nil
}

// Word consumes the next token provided it is a bare word or quoted atom,
// returning its text.
func (p *termParser) word(description string) (string, lex.Token, error) {
	token := p.lookahead()
	//
	if token.Kind != SYMBOL && token.Kind != QUOTED {
		return "", token, p.unexpected(description, token)
	}
	//
	p.next()
	//
	return p.text(token), token, nil
}

func (p *termParser) unexpected(expected string, actual lex.Token) error {
	text := p.srcfile.Text(actual.Span)
	//
	if actual.Kind == END_OF {
		text = "end of input"
	}
	//
	msg := fmt.Sprintf("expected %s, found %q", expected, text)
	//
	return &UnexpectedTokenError{p.srcfile.SyntaxError(actual.Span, msg), expected, text}
}

// ============================================================================
// Terms
// ============================================================================

// parseExpression consumes one box-valued term: a box literal, or the merge
// of two such terms.
func (p *termParser) parseExpression() (drt.Expr, error) {
	token, err := p.expect(SYMBOL, "term")
	if err != nil {
		return nil, err
	}
	//
	switch p.text(token) {
	case "drs":
		return p.parseDrs()
	case "merge", "smerge":
		left, right, err := p.parseBinary()
		if err != nil {
			return nil, err
		}
		//
		return &drt.Concatenation{Left: left, Right: right}, nil
	default:
		return nil, p.unexpected("drs, merge or smerge", token)
	}
}

// parseBinary consumes the parenthesised argument pair of a binary term.
func (p *termParser) parseBinary() (drt.Expr, drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, nil, err
	}
	//
	left, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, nil, err
	}
	//
	right, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, nil, err
	}
	//
	return left, right, nil
}

// parseDrs consumes the body of a box: its referent list followed by its
// condition list, both in declaration order.
func (p *termParser) parseDrs() (drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(LSQUARE, "'['"); err != nil {
		return nil, err
	}
	//
	var refs []drt.Variable
	//
	for p.lookahead().Kind != RSQUARE {
		if _, err := p.parseIndexList(); err != nil {
			return nil, err
		}
		//
		name, _, err := p.word("referent")
		if err != nil {
			return nil, err
		}
		//
		refs = append(refs, makeVariable(name))
		//
		if p.lookahead().Kind == COMMA {
			p.next()
		}
	}
	//
	p.next() // swallow ']'
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(LSQUARE, "'['"); err != nil {
		return nil, err
	}
	//
	var conds []drt.Expr
	//
	for p.lookahead().Kind != RSQUARE {
		indices, err := p.parseIndexList()
		if err != nil {
			return nil, err
		}
		//
		parsed, err := p.parseCondition(indices)
		if err != nil {
			return nil, err
		}
		//
		conds = append(conds, parsed...)
		//
		if p.lookahead().Kind == COMMA {
			p.next()
		}
	}
	//
	p.next() // swallow ']'
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	return drt.NewDRS(refs, conds), nil
}

// parseIndexList consumes an index-list annotation "[n1,n2,...]:", decoding
// each integer into its (sentence, word) position.
func (p *termParser) parseIndexList() ([]Index, error) {
	if _, err := p.expect(LSQUARE, "'['"); err != nil {
		return nil, err
	}
	//
	var indices []Index
	//
	for p.lookahead().Kind != RSQUARE {
		token, err := p.expect(SYMBOL, "index")
		if err != nil {
			return nil, err
		}
		//
		n, err := strconv.Atoi(p.text(token))
		if err != nil {
			return nil, p.unexpected("index", token)
		}
		//
		indices = append(indices, DecodeIndex(n))
		//
		if p.lookahead().Kind == COMMA {
			p.next()
		}
	}
	//
	p.next() // swallow ']'
	//
	if _, err := p.expect(COLON, "':'"); err != nil {
		return nil, err
	}
	//
	return indices, nil
}

// ============================================================================
// Conditions
// ============================================================================

// parseCondition consumes one condition, having already consumed its
// index-list annotation.  Most conditions yield a single expression; timex
// splices several atoms directly into the enclosing condition list.
func (p *termParser) parseCondition(indices []Index) ([]drt.Expr, error) {
	token, err := p.expect(SYMBOL, "condition")
	if err != nil {
		return nil, err
	}
	//
	switch p.text(token) {
	case "not":
		return p.parseNot()
	case "or":
		left, right, err := p.parseBinary()
		if err != nil {
			return nil, err
		}
		//
		return []drt.Expr{&drt.Or{Left: left, Right: right}}, nil
	case "imp":
		left, right, err := p.parseBinary()
		if err != nil {
			return nil, err
		}
		//
		return []drt.Expr{&drt.Implication{Left: left, Right: right}}, nil
	case "eq":
		return p.parseEq()
	case "prop":
		return p.parseProp()
	case "pred":
		return p.parsePred(indices)
	case "named":
		return p.parseNamed()
	case "rel":
		return p.parseRel()
	case "card":
		return p.parseCard()
	case "timex":
		return p.parseTimex()
	case "whq":
		return p.parseWhq()
	default:
		text := p.text(token)
		msg := fmt.Sprintf("unknown condition %q", text)
		//
		return nil, &UnexpectedConditionError{p.srcfile.SyntaxError(token.Span, msg), text}
	}
}

func (p *termParser) parseNot() ([]drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	return []drt.Expr{&drt.Negation{Body: inner}}, nil
}

func (p *termParser) parseEq() ([]drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	left, _, err := p.word("variable")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	right, _, err := p.word("variable")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	return []drt.Expr{&drt.Equality{Left: makeVariable(left), Right: makeVariable(right)}}, nil
}

// parseProp consumes a proposition wrapper, e.g. prop(_G15949, drs(...)).
// The proposition's own variable is discarded.
func (p *termParser) parseProp() ([]drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	if _, _, err := p.word("variable"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	return []drt.Expr{inner}, nil
}

// parsePred consumes a lexical predicate, e.g. pred(_G3943, dog, n, 0).
func (p *termParser) parsePred(indices []Index) ([]drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	arg, _, err := p.word("variable")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	name, _, err := p.word("name")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	pos, _, err := p.word("part of speech")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	// Word sense is discarded.
	if _, _, err := p.word("sense"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	pred, err := BuildPredicate(pos, SanitizeName(name), indices, 1, p.discourseID, p.occurrence)
	if err != nil {
		return nil, err
	}
	//
	return []drt.Expr{drt.NewAtom(pred, makeVariable(arg))}, nil
}

// parseNamed consumes a named entity, e.g. named(x0, john, per, 0).  Named
// entities are always noun-marked and never occurrence indexed, so the same
// entity yields the same predicate in every discourse.
func (p *termParser) parseNamed() ([]drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	arg, _, err := p.word("variable")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	name, _, err := p.word("name")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	// Entity category is discarded.
	if _, _, err := p.word("category"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	if _, _, err := p.word("sense"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	pred := fmt.Sprintf("n_%s_%d", SanitizeName(name), 1)
	//
	return []drt.Expr{drt.NewAtom(pred, makeVariable(arg))}, nil
}

// parseRel consumes a binary relation, e.g. rel(_G3993, _G3943, agent, 0).
func (p *termParser) parseRel() ([]drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	arg1, _, err := p.word("variable")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	arg2, _, err := p.word("variable")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	name, _, err := p.word("name")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	if _, _, err := p.word("sense"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	pred := fmt.Sprintf("r_%s_%d", SanitizeName(name), 2)
	//
	return []drt.Expr{drt.NewAtom(pred, makeVariable(arg1), makeVariable(arg2))}, nil
}

// parseCard consumes a cardinality constraint, e.g. card(_G18535, 28, ge).
func (p *termParser) parseCard() ([]drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	arg, _, err := p.word("variable")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	value, _, err := p.word("value")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	comparator, _, err := p.word("comparator")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	atom := drt.NewAtom("r_card_3", makeVariable(arg), makeVariable(value), makeVariable(comparator))
	//
	return []drt.Expr{atom}, nil
}

// ============================================================================
// Time expressions
// ============================================================================

// parseTimex consumes a time expression, e.g.
//
//	timex(_G18322, date([]: +, []:'XXXX', [1004]:'04', []:'XX'))
//
// Each known slot contributes one binary atom unless it holds the external
// tool's "unknown" placeholder; the atoms are spliced directly into the
// enclosing condition list.
func (p *termParser) parseTimex() ([]drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	arg, _, err := p.word("variable")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	conds, err := p.parseTimeExpression(makeVariable(arg))
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	return conds, nil
}

func (p *termParser) parseTimeExpression(arg drt.Variable) ([]drt.Expr, error) {
	functor, token, err := p.word("date or time")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	var conds []drt.Expr
	//
	switch functor {
	case "date":
		conds, err = p.parseDate(arg)
	case "time":
		conds, err = p.parseTime(arg)
	default:
		return nil, p.unexpected("date or time", token)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	// Marker atom always included
	marker := drt.NewAtom(fmt.Sprintf("r_%s_1", functor), arg)
	//
	return append([]drt.Expr{marker}, conds...), nil
}

// parseDate consumes the polarity/year/month/day slots of a date.  Slot
// indices are consumed and discarded; only the values are kept.
func (p *termParser) parseDate(arg drt.Variable) ([]drt.Expr, error) {
	var conds []drt.Expr
	// Polarity
	pol, err := p.parseTimeSlot()
	if err != nil {
		return nil, err
	}
	//
	switch pol {
	case "+":
		conds = append(conds, drt.NewAtom("r_pol_2", arg, drt.NewVariable("pos")))
	case "-":
		conds = append(conds, drt.NewAtom("r_pol_2", arg, drt.NewVariable("neg")))
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	// Year
	year, err := p.parseTimeSlot()
	if err != nil {
		return nil, err
	}
	//
	if year != "XXXX" {
		year = strings.ReplaceAll(year, ":", "_")
		conds = append(conds, drt.NewAtom("r_year_2", arg, makeVariable(year)))
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	// Month
	month, err := p.parseTimeSlot()
	if err != nil {
		return nil, err
	}
	//
	if month != "XX" {
		conds = append(conds, drt.NewAtom("r_month_2", arg, makeVariable(month)))
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	// Day
	day, err := p.parseTimeSlot()
	if err != nil {
		return nil, err
	}
	//
	if day != "XX" {
		conds = append(conds, drt.NewAtom("r_day_2", arg, makeVariable(day)))
	}
	//
	return conds, nil
}

// parseTime consumes the hour/minute/second slots of a clock time.
func (p *termParser) parseTime(arg drt.Variable) ([]drt.Expr, error) {
	var conds []drt.Expr
	//
	hour, err := p.parseTimeSlot()
	if err != nil {
		return nil, err
	}
	//
	if hour != "XX" {
		conds = append(conds, drt.NewAtom("r_hour_2", arg, makeVariable(hour)))
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	minute, err := p.parseTimeSlot()
	if err != nil {
		return nil, err
	}
	//
	if minute != "XX" {
		conds = append(conds, drt.NewAtom("r_min_2", arg, makeVariable(minute)))
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	second, err := p.parseTimeSlot()
	if err != nil {
		return nil, err
	}
	//
	if second != "XX" {
		conds = append(conds, drt.NewAtom("r_sec_2", arg, makeVariable(second)))
	}
	//
	return conds, nil
}

// parseTimeSlot consumes one indexed slot value, discarding its index list.
func (p *termParser) parseTimeSlot() (string, error) {
	if _, err := p.parseIndexList(); err != nil {
		return "", err
	}
	//
	value, _, err := p.word("value")
	//
	return value, err
}

// ============================================================================
// Questions
// ============================================================================

// parseWhq consumes a question term, e.g.
//
//	whq([des:city], drs(...), _G4017, drs(...))
//
// The answer-type constraints become unary atoms over the designated answer
// variable, in a fresh box merged ahead of the restrictor and body.
func (p *termParser) parseWhq() ([]drt.Expr, error) {
	if _, err := p.expect(LBRACE, "'('"); err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(LSQUARE, "'['"); err != nil {
		return nil, err
	}
	//
	var ansTypes []string
	//
	for p.lookahead().Kind != RSQUARE {
		category, _, err := p.word("answer category")
		if err != nil {
			return nil, err
		}
		//
		if _, err := p.expect(COLON, "':'"); err != nil {
			return nil, err
		}
		//
		answer, _, err := p.word("answer type")
		if err != nil {
			return nil, err
		}
		//
		switch category {
		case "des":
			ansTypes = append(ansTypes, answer)
		case "num":
			ansTypes = append(ansTypes, "number")
			//
			if answer == "cou" {
				ansTypes = append(ansTypes, "count")
			} else {
				ansTypes = append(ansTypes, answer)
			}
		default:
			ansTypes = append(ansTypes, answer)
		}
	}
	//
	p.next() // swallow ']'
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	restriction, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	ref, _, err := p.word("answer variable")
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(COMMA, "','"); err != nil {
		return nil, err
	}
	//
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	//
	if _, err := p.expect(RBRACE, "')'"); err != nil {
		return nil, err
	}
	//
	answer := makeVariable(ref)
	conds := make([]drt.Expr, len(ansTypes))
	//
	for i, t := range ansTypes {
		conds[i] = drt.NewAtom(fmt.Sprintf("n_%s_%d", SanitizeName(t), 1), answer)
	}
	//
	types := drt.NewDRS(nil, conds)
	//
	return []drt.Expr{&drt.Concatenation{
		Left:  types,
		Right: &drt.Concatenation{Left: restriction, Right: body},
	}}, nil
}

// makeVariable rewrites the external tool's internal variable prefix to a
// distinct stable prefix, so generated names cannot collide with variables
// introduced by the predicate naming scheme.
func makeVariable(name string) drt.Variable {
	if strings.HasPrefix(name, "_G") {
		name = "z" + name[2:]
	}
	//
	return drt.NewVariable(name)
}
