// This file is part of llama - https://github.com/Renelvon/llama
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package script

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"

	"github.com/Renelvon/llama/lang/llama"
)

const maxErrors = 10

var declTypes = map[string]llama.Type{
	"int":   llama.Int,
	"float": llama.Float,
	"bool":  llama.Bool,
	"char":  llama.Char,
	"buf":   llama.String,
}

type parser struct {
	s    scanner.Scanner
	tok  rune
	prog *Program
	vars map[string]*Var
	errs ErrList
}

func (p *parser) next() {
	p.tok = p.s.Scan()
}

func (p *parser) pos() scanner.Position {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	return pos
}

func (p *parser) errorf(format string, args ...interface{}) *Error {
	return &Error{p.pos(), fmt.Sprintf(format, args...)}
}

func (p *parser) text() string {
	switch p.tok {
	case '\n':
		return "end of line"
	case scanner.EOF:
		return "end of file"
	}
	return p.s.TokenText()
}

func (p *parser) endOfStatement() bool {
	return p.tok == '\n' || p.tok == scanner.EOF
}

func (p *parser) arrow() bool {
	return p.tok == '-' && p.s.Peek() == '>'
}

// Parse parses the script read from r. The name parameter is used only in
// error messages to name the source of the error.
//
// The returned error, if not nil, is an ErrList.
func Parse(name string, r io.Reader) (*Program, error) {
	p := &parser{
		prog: &Program{Name: name},
		vars: make(map[string]*Var),
	}
	p.s.Init(r)
	p.s.Filename = name
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanChars | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	p.s.Whitespace = 1<<'\t' | 1<<'\r' | 1<<' '
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.errs = append(p.errs, p.errorf("%s", msg))
	}

	for p.next(); p.tok != scanner.EOF && len(p.errs) < maxErrors; {
		p.statement()
	}
	if len(p.errs) > maxErrors {
		p.errs = p.errs[:maxErrors]
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.prog, nil
}

func (p *parser) statement() {
	var err *Error
	pos := p.pos()
	switch {
	case p.tok == '\n':
	case p.tok != scanner.Ident:
		err = p.errorf("expected declaration or primitive name, got %s", p.text())
	default:
		name := p.s.TokenText()
		if t, ok := declTypes[name]; ok {
			err = p.declaration(pos, t)
		} else if sym, ok := llama.Lookup(name); ok {
			err = p.call(pos, sym)
		} else {
			err = p.errorf("unknown primitive %s", name)
		}
		if err == nil && !p.endOfStatement() {
			err = p.errorf("unexpected %s", p.text())
		}
	}
	if err != nil {
		p.errs = append(p.errs, err)
		for !p.endOfStatement() {
			p.next()
		}
	}
	if p.tok == '\n' {
		p.next()
	}
}

func (p *parser) declaration(pos scanner.Position, t llama.Type) *Error {
	p.next()
	if p.tok != scanner.Ident {
		return p.errorf("expected variable name, got %s", p.text())
	}
	v := &Var{Name: p.s.TokenText(), Type: t, Pos: p.pos()}
	if prev, ok := p.vars[v.Name]; ok {
		return p.errorf("redeclaration of %s, previous declaration here: %s", v.Name, prev.Pos)
	}
	if _, ok := declTypes[v.Name]; ok {
		return p.errorf("%s is a type name", v.Name)
	}
	p.next()
	if t == llama.String {
		capPos := p.pos()
		lt, lit, err := p.literal()
		if err != nil {
			return err
		}
		if lt != llama.Int || lit.i < 1 {
			return &Error{capPos, fmt.Sprintf("buffer %s: expected a positive capacity", v.Name)}
		}
		v.Cap = int(lit.i)
	}
	st := stmt{pos: pos, dst: v}
	if p.tok == '=' {
		p.next()
		lit, err := p.typedLiteral(t)
		if err != nil {
			return err
		}
		st.init = &operand{lit: lit}
	}
	v.idx = len(p.prog.vars)
	p.vars[v.Name] = v
	p.prog.vars = append(p.prog.vars, v)
	p.prog.stmts = append(p.prog.stmts, st)
	return nil
}

func (p *parser) call(pos scanner.Position, sym *llama.Symbol) *Error {
	st := stmt{pos: pos, sym: sym}
	p.next()
	for _, prm := range sym.Params {
		if p.endOfStatement() || p.arrow() {
			return p.errorf("%s expects %d arguments, got %d", sym.Name, len(sym.Params), len(st.args))
		}
		op, err := p.argument(sym, prm)
		if err != nil {
			return err
		}
		st.args = append(st.args, op)
	}
	if !p.endOfStatement() && !p.arrow() {
		return p.errorf("%s expects %d arguments, got extra %s", sym.Name, len(sym.Params), p.text())
	}
	if p.arrow() {
		p.next() // '>'
		p.next()
		if p.tok != scanner.Ident {
			return p.errorf("expected variable name after ->, got %s", p.text())
		}
		v, ok := p.vars[p.s.TokenText()]
		switch {
		case !ok:
			return p.errorf("undefined variable %s", p.s.TokenText())
		case sym.Result == llama.Unit:
			return p.errorf("%s returns unit", sym.Name)
		case v.Type != sym.Result:
			return p.errorf("cannot assign %s result of %s to %s %s", sym.Result, sym.Name, v.Type, v.Name)
		}
		st.dst = v
		p.next()
	}
	p.prog.stmts = append(p.prog.stmts, st)
	return nil
}

func (p *parser) argument(sym *llama.Symbol, prm llama.Param) (operand, *Error) {
	want := prm.Type
	if want == llama.IntRef {
		want = llama.Int
	}
	if p.tok == scanner.Ident && !isBool(p.s.TokenText()) {
		v, ok := p.vars[p.s.TokenText()]
		if !ok {
			return operand{}, p.errorf("undefined variable %s", p.s.TokenText())
		}
		if v.Type != want {
			return operand{}, p.errorf("%s: parameter %s has type %s, got %s %s", sym.Name, prm.Name, prm.Type, v.Type, v.Name)
		}
		p.next()
		return operand{v: v}, nil
	}
	switch {
	case prm.Type == llama.IntRef:
		return operand{}, p.errorf("%s: parameter %s needs an int variable", sym.Name, prm.Name)
	case prm.Type == llama.String && !prm.Const:
		return operand{}, p.errorf("%s: parameter %s needs a buffer variable", sym.Name, prm.Name)
	}
	lit, err := p.typedLiteral(want)
	if err != nil {
		return operand{}, err
	}
	return operand{lit: lit}, nil
}

func isBool(s string) bool { return s == "true" || s == "false" }

// literal parses a literal and returns its type.
func (p *parser) literal() (llama.Type, slot, *Error) {
	var v slot
	neg := ""
	if p.tok == '-' {
		neg = "-"
		p.next()
		if p.tok != scanner.Int && p.tok != scanner.Float {
			return 0, v, p.errorf("expected number after -, got %s", p.text())
		}
	}
	text := p.s.TokenText()
	t := llama.Unit
	switch p.tok {
	case scanner.Int:
		n, err := strconv.ParseInt(neg+text, 0, 32)
		if err != nil {
			return 0, v, p.errorf("invalid int literal %s%s", neg, text)
		}
		v.i, t = int32(n), llama.Int
	case scanner.Float:
		f, err := strconv.ParseFloat(neg+text, 64)
		if err != nil {
			return 0, v, p.errorf("invalid float literal %s%s", neg, text)
		}
		v.f, t = f, llama.Float
	case scanner.Char:
		s, err := strconv.Unquote(text)
		if err != nil || len(s) != 1 {
			return 0, v, p.errorf("invalid char literal %s", text)
		}
		v.c, t = s[0], llama.Char
	case scanner.String:
		s, err := strconv.Unquote(text)
		if err != nil {
			return 0, v, p.errorf("invalid string literal %s", text)
		}
		v.buf, t = []byte(s), llama.String
	case scanner.Ident:
		if !isBool(text) {
			return 0, v, p.errorf("expected literal, got %s", text)
		}
		v.b, t = text == "true", llama.Bool
	default:
		return 0, v, p.errorf("expected literal, got %s", p.text())
	}
	p.next()
	return t, v, nil
}

// typedLiteral parses a literal of type t. Int literals are converted to
// float.
func (p *parser) typedLiteral(t llama.Type) (slot, *Error) {
	pos := p.pos()
	lt, v, err := p.literal()
	switch {
	case err != nil:
		return v, err
	case lt == t:
		return v, nil
	case lt == llama.Int && t == llama.Float:
		v.f = float64(v.i)
		return v, nil
	}
	return v, &Error{pos, fmt.Sprintf("cannot use %s literal as %s", lt, t)}
}
