// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package directive

import (
	"go/scanner"
	"go/token"
	"strconv"

	"fillmore-labs.com/calltrace/internal/diag"
)

type entryKind uint8

const (
	flagEntry  entryKind = iota // pause
	valueEntry                  // prefix_enter = "->"
	listEntry                   // enable(a, b)
)

// entry is a single configuration item of a directive.
type entry struct {
	kind     entryKind
	name     string
	value    token.Token // literal kind of a value entry
	lit      string
	list     []entry
	pos, end token.Pos
}

func (e entry) Pos() token.Pos { return e.pos }

func (e entry) End() token.Pos { return e.end }

// stringValue returns the unquoted value of a string literal entry.
func (e entry) stringValue() (string, bool) {
	if e.value != token.STRING {
		return "", false
	}

	s, err := strconv.Unquote(e.lit)
	if err != nil {
		return "", false
	}

	return s, true
}

// parser is a recursive descent parser for directive entries, operating on Go tokens.
type parser struct {
	scanner scanner.Scanner
	file    *token.File
	base    token.Pos
	sink    *diag.Sink

	pos token.Pos
	end token.Pos
	tok token.Token
	lit string
}

func (p *parser) init(src string, base token.Pos, sink *diag.Sink) {
	fset := token.NewFileSet()
	p.file = fset.AddFile("", fset.Base(), len(src))
	p.base = base
	p.sink = sink

	p.scanner.Init(p.file, []byte(src), p.scanError, 0)
	p.next()
}

func (p *parser) scanError(pos token.Position, msg string) {
	at := p.base + token.Pos(pos.Offset)
	p.sink.Warnf(diag.Span{Start: at, Stop: at}, diag.CodeOption, "Malformed trace configuration: %s", msg)
}

// next advances to the next token, translating positions to the enclosing file.
func (p *parser) next() {
	pos, tok, lit := p.scanner.Scan()
	offset := p.file.Offset(pos)

	p.pos, p.tok, p.lit = p.base+token.Pos(offset), tok, lit

	switch {
	case tok.IsLiteral(), tok == token.ILLEGAL:
		p.end = p.pos + token.Pos(len(lit))

	case tok == token.SEMICOLON || tok == token.EOF:
		p.end = p.pos

	default:
		p.end = p.pos + token.Pos(len(tok.String()))
	}
}

// atEnd reports whether the directive text is exhausted.
// The scanner reports line ends and trailing comments as automatic semicolons.
func (p *parser) atEnd() bool {
	return p.tok == token.EOF || p.tok == token.SEMICOLON
}

// parseEntries parses a comma-separated list up to the end of the text.
func (p *parser) parseEntries() []entry {
	return p.parseList(false)
}

// parseList parses comma-separated entries up to the end of the text or, when nested, a closing parenthesis.
func (p *parser) parseList(nested bool) []entry {
	var entries []entry

	for !p.atEnd() && (!nested || p.tok != token.RPAREN) {
		if e, ok := p.parseEntry(); ok {
			entries = append(entries, e)
		} else {
			p.skip(nested)
		}

		switch {
		case p.tok == token.COMMA:
			p.next()

		case p.atEnd(), nested && p.tok == token.RPAREN:

		default:
			p.unexpected()
			p.skip(nested)

			if p.tok == token.COMMA {
				p.next()
			}
		}
	}

	return entries
}

func (p *parser) parseEntry() (entry, bool) {
	if p.tok != token.IDENT {
		p.unexpected()

		return entry{}, false
	}

	e := entry{kind: flagEntry, name: p.lit, pos: p.pos, end: p.end}
	p.next()

	switch p.tok {
	case token.ASSIGN:
		p.next()

		if !p.tok.IsLiteral() {
			p.unexpected()

			return entry{}, false
		}

		e.kind, e.value, e.lit, e.end = valueEntry, p.tok, p.lit, p.end
		p.next()

	case token.LPAREN:
		p.next()

		e.kind, e.list = listEntry, p.parseList(true)

		if p.tok != token.RPAREN {
			p.unexpected()

			return entry{}, false
		}

		e.end = p.end
		p.next()
	}

	return e, true
}

// skip advances to the next comma outside of parentheses, the closing parenthesis of a nested list, or the end.
// A stray closing parenthesis on the top level is consumed.
func (p *parser) skip(nested bool) {
	depth := 0

	for !p.atEnd() {
		switch p.tok {
		case token.LPAREN:
			depth++

		case token.RPAREN:
			switch {
			case depth > 0:
				depth--

			case nested:
				return
			}

		case token.COMMA:
			if depth == 0 {
				return
			}
		}

		p.next()
	}
}

func (p *parser) unexpected() {
	var found string

	switch {
	case p.atEnd():
		found = "end of configuration"

	case p.tok.IsLiteral(), p.tok == token.ILLEGAL:
		found = p.lit

	default:
		found = p.tok.String()
	}

	p.sink.Warnf(diag.Span{Start: p.pos, Stop: p.end}, diag.CodeOption, "Malformed trace configuration: unexpected %s", found)
}
