// Copyright The Effectunify Authors
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
package surface

import (
	"github.com/lacuna-lang/effectunify/pkg/util/collection/array"
	"github.com/lacuna-lang/effectunify/pkg/util/source"
	"github.com/lacuna-lang/effectunify/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals spaces and tabs (but not newlines, which separate
// equations and are therefore significant).
const WHITESPACE uint = 1

// COMMENT signals "# ... \n"
const COMMENT uint = 2

// NEWLINE signals the end of one equation.
const NEWLINE uint = 3

// LBRACE signals "("
const LBRACE uint = 4

// RBRACE signals ")"
const RBRACE uint = 5

// NOT signals "!" or "¬"
const NOT uint = 6

// AND signals "&" or "∧" (intersection)
const AND uint = 7

// OR signals "|" or "∨" (union)
const OR uint = 8

// TILDE signals "~", the equation separator
const TILDE uint = 9

// DOLLAR signals "$", the rigid-variable marker
const DOLLAR uint = 10

// TRUE signals "T" or "⊤" (Pure)
const TRUE uint = 11

// FALSE signals "F" or "⊥" (Univ)
const FALSE uint = 12

// IDENTIFIER signals a variable name
const IDENTIFIER uint = 13

// Rule for describing whitespace (excluding newlines, which are tokens in
// their own right).
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r')))

// Comments start with '#' and continue until the end of the line.
var comment lex.Scanner[rune] = lex.And(lex.Unit('#'), lex.Until('\n'))

// Identifiers start with a lowercase letter, underscore or apostrophe, to
// keep them unambiguous against the single-character keywords T/F under
// this lexer's first-match-wins rule ordering (same ordering discipline as
// pkg/asm/assembler/lexer.go's KEYWORD_* rules preceding IDENTIFIER).
var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Unit('\''),
	lex.Within('a', 'z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Unit('\''),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// lexing rules, in priority order
var rules = []lex.LexRule[rune]{
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Unit('\n'), NEWLINE),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('!'), NOT),
	lex.Rule(lex.Unit('¬'), NOT),
	lex.Rule(lex.Unit('&'), AND),
	lex.Rule(lex.Unit('∧'), AND),
	lex.Rule(lex.Unit('|'), OR),
	lex.Rule(lex.Unit('∨'), OR),
	lex.Rule(lex.Unit('~'), TILDE),
	lex.Rule(lex.Unit('$'), DOLLAR),
	lex.Rule(lex.Unit('T'), TRUE),
	lex.Rule(lex.Unit('⊤'), TRUE),
	lex.Rule(lex.Unit('F'), FALSE),
	lex.Rule(lex.Unit('⊥'), FALSE),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex tokenises a source file into a sequence of tokens, stripping
// whitespace and comments, or reports a syntax error for unrecognised
// text.
func Lex(srcfile *source.File) ([]lex.Token, *source.SyntaxError) {
	lexer := lex.NewLexer(srcfile.Contents(), rules...)
	tokens := lexer.Collect()

	if lexer.Remaining() != 0 {
		start, end := int(lexer.Index()), int(lexer.Index()+lexer.Remaining())
		return nil, srcfile.SyntaxError(source.NewSpan(start, end), "unrecognised text")
	}

	tokens = array.RemoveMatching(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	tokens = array.RemoveMatching(tokens, func(t lex.Token) bool { return t.Kind == COMMENT })

	return tokens, nil
}
