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
	"github.com/lacuna-lang/effectunify/pkg/unify"
	"github.com/lacuna-lang/effectunify/pkg/util/source"
	"github.com/lacuna-lang/effectunify/pkg/util/source/lex"
)

// Document is the parsed form of an equation file: the equations
// themselves, plus the rigidity every variable mentioned in the file was
// classified with (rigid iff marked with a leading '$' anywhere in the
// file).
type Document struct {
	Equations []unify.Pair[string]
	Rigidity  Rigidity
}

// Rigidity is a unify.RigidityEnv[string] collected while parsing.
type Rigidity map[string]unify.Rigidity

// Get implements unify.RigidityEnv.
func (r Rigidity) Get(sym string) unify.Rigidity {
	if k, ok := r[sym]; ok {
		return k
	}

	return unify.Flexible
}

// ParseFile parses the named file's contents as an equation document.
func ParseFile(filename string) (Document, []source.SyntaxError) {
	files, err := source.ReadFiles(filename)
	if err != nil {
		return Document{}, []source.SyntaxError{}
	}

	return Parse(&files[0])
}

// Parse parses a single source file's contents as an equation document:
// one equation (lhs ~ rhs) per non-blank, non-comment line.
func Parse(srcfile *source.File) (Document, []source.SyntaxError) {
	tokens, err := Lex(srcfile)
	if err != nil {
		return Document{}, []source.SyntaxError{*err}
	}

	p := &parser{srcfile: srcfile, tokens: tokens, rigid: Rigidity{}}

	var equations []unify.Pair[string]

	for !p.follows(END_OF) {
		if p.match(NEWLINE) {
			continue // blank line
		}

		lhs, errs := p.parseUnion()
		if len(errs) != 0 {
			return Document{}, errs
		}

		if !p.match(TILDE) {
			return Document{}, p.syntaxErrors(p.lookahead(), "expected '~'")
		}

		rhs, errs := p.parseUnion()
		if len(errs) != 0 {
			return Document{}, errs
		}

		if !p.follows(END_OF) && !p.match(NEWLINE) {
			return Document{}, p.syntaxErrors(p.lookahead(), "expected newline after equation")
		}

		equations = append(equations, unify.Pair[string]{LHS: lhs, RHS: rhs})
	}

	return Document{Equations: equations, Rigidity: p.rigid}, nil
}

type parser struct {
	srcfile *source.File
	tokens  []lex.Token
	index   int
	rigid   Rigidity
}

// parseUnion := parseInter (('|') parseInter)*
func (p *parser) parseUnion() (Term, []source.SyntaxError) {
	lhs, errs := p.parseIntersection()
	if len(errs) != 0 {
		return lhs, errs
	}

	for p.follows(OR) {
		p.expect(OR)

		rhs, errs := p.parseIntersection()
		if len(errs) != 0 {
			return rhs, errs
		}

		lhs = Union(lhs, rhs)
	}

	return lhs, nil
}

// parseIntersection := parseNot (('&') parseNot)*
func (p *parser) parseIntersection() (Term, []source.SyntaxError) {
	lhs, errs := p.parseNot()
	if len(errs) != 0 {
		return lhs, errs
	}

	for p.follows(AND) {
		p.expect(AND)

		rhs, errs := p.parseNot()
		if len(errs) != 0 {
			return rhs, errs
		}

		lhs = Intersection(lhs, rhs)
	}

	return lhs, nil
}

// parseNot := '!'? parseAtom
func (p *parser) parseNot() (Term, []source.SyntaxError) {
	if p.match(NOT) {
		operand, errs := p.parseAtom()
		if len(errs) != 0 {
			return operand, errs
		}

		return Complement(operand), nil
	}

	return p.parseAtom()
}

// parseAtom := TRUE | FALSE | '$'? IDENTIFIER | '(' parseUnion ')'
func (p *parser) parseAtom() (Term, []source.SyntaxError) {
	var empty Term

	switch {
	case p.match(TRUE):
		return Pure(), nil
	case p.match(FALSE):
		return Univ(), nil
	case p.follows(LBRACE):
		p.expect(LBRACE)

		inner, errs := p.parseUnion()
		if len(errs) != 0 {
			return empty, errs
		}

		if !p.match(RBRACE) {
			return empty, p.syntaxErrors(p.lookahead(), "expected ')'")
		}

		return inner, nil
	case p.match(DOLLAR):
		name, errs := p.parseIdentifier()
		if len(errs) != 0 {
			return empty, errs
		}

		p.rigid[name] = unify.Rigid

		return Var(name), nil
	case p.follows(IDENTIFIER):
		name, errs := p.parseIdentifier()
		if len(errs) != 0 {
			return empty, errs
		}

		return Var(name), nil
	default:
		return empty, p.syntaxErrors(p.lookahead(), "expected a type")
	}
}

func (p *parser) parseIdentifier() (string, []source.SyntaxError) {
	token := p.lookahead()
	if token.Kind != IDENTIFIER {
		return "", p.syntaxErrors(token, "expected a variable name")
	}

	p.index++

	return p.text(token), nil
}

func (p *parser) text(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

func (p *parser) follows(kinds ...uint) bool {
	k := p.lookahead().Kind
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}

	return false
}

func (p *parser) lookahead() lex.Token {
	if p.index >= len(p.tokens) {
		return lex.Token{Kind: END_OF}
	}

	return p.tokens[p.index]
}

func (p *parser) match(kind uint) bool {
	if p.follows(kind) {
		p.index++
		return true
	}

	return false
}

func (p *parser) expect(kind uint) lex.Token {
	if !p.follows(kind) {
		panic("surface: internal parser failure: expected token not present")
	}

	token := p.tokens[p.index]
	p.index++

	return token
}

func (p *parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
