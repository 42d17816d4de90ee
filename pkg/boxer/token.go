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
	"github.com/semtools/go-boxer/pkg/util"
	"github.com/semtools/go-boxer/pkg/util/source"
	"github.com/semtools/go-boxer/pkg/util/source/lex"
)

// END_OF signals "end of input"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// LSQUARE signals "left square bracket"
const LSQUARE uint = 4

// RSQUARE signals "right square bracket"
const RSQUARE uint = 5

// COMMA signals a comma
const COMMA uint = 6

// COLON signals a colon
const COLON uint = 7

// QUOTED signals a quoted atom, including its delimiters
const QUOTED uint = 8

// SYMBOL signals a bare word
const SYMBOL uint = 9

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\r'),
	lex.Unit('\n')))

// Rule for describing bare words: a maximal run of anything which is neither
// punctuation, whitespace nor a quote.
var symbol lex.Scanner[rune] = lex.Many(lex.Except(
	'(', ')', '[', ']', ',', ':', '\'', ' ', '\t', '\r', '\n'))

// Rule for describing quoted atoms, with backslash as the only escape.
var quoted lex.Scanner[rune] = lex.Quoted('\'', '\\')

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('['), LSQUARE),
	lex.Rule(lex.Unit(']'), RSQUARE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(quoted, QUOTED),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(symbol, SYMBOL),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// lexTerm tokenises one semantic term.  Anything the rules cannot consume
// (in practice, an unterminated quote) fails the whole term.
func lexTerm(srcfile *source.File) ([]lex.Token, error) {
	lexer := lex.NewLexer(srcfile.Contents(), rules...)
	// Lex as many tokens as possible
	tokens := lexer.Collect()
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := int(lexer.Index()), int(lexer.Index()+lexer.Remaining())
		err := srcfile.SyntaxError(source.NewSpan(start, end), "malformed quoting or illegal character")
		//
		return nil, &TokenizationError{err}
	}
	// Remove any whitespace
	tokens = util.RemoveMatching(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	//
	return tokens, nil
}
