// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 The intcode Authors
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

package asm

import (
	"io"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

func isLabelName(s string) bool {
	if s == "" {
		return false
	}
	for k, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (k == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// mode digit weight of each operand in an instruction word.
var modeWeight = [...]vm.Cell{100, 1000, 10000}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type constant struct {
	pos   scanner.Position
	value vm.Cell
}

type parser struct {
	i      []vm.Cell
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]constant
	err    error

	// instruction being assembled
	op   opcode
	opPC int
	arg  int
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]constant)
	return p
}

func (p *parser) error(msg string) {
	if p.err != nil {
		return
	}
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.err = errors.Errorf("%s: %s", pos, msg)
}

func (p *parser) write(v vm.Cell) {
	p.i = append(p.i, v)
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, len(p.i)})
}

func (p *parser) defineLabel(name string) {
	if !isLabelName(name) {
		p.error("Invalid label name: " + strconv.Quote(name))
		return
	}
	if _, ok := opcodeIndex[name]; ok {
		p.error("Label name is a reserved mnemonic: " + name)
		return
	}
	if c, ok := p.consts[name]; ok {
		p.error("Label redefinition: " + name + ", previously defined as a constant here: " + c.pos.String())
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.error("Label redefinition: " + name + ", previous definition here: " + l.pos.String())
			return
		}
		l.address = len(p.i)
		l.pos = p.s.Position
		return
	}
	p.labels[name] = &label{labelSite{p.s.Position, len(p.i)}, nil}
}

// literal returns the value of the integer, char or constant s.
func (p *parser) literal(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error("Invalid char literal " + s)
			return 0, false
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return c.value, true
	}
	return 0, false
}

// value writes the value denoted by s: a literal or the address of a label.
func (p *parser) value(s string) {
	if v, ok := p.literal(s); ok {
		p.write(v)
		return
	}
	if p.err != nil {
		return
	}
	if !isLabelName(s) {
		p.error("Invalid value: " + s)
		return
	}
	p.useLabel(s)
	p.write(0)
}

// operand handles the next operand of the current instruction.
func (p *parser) operand(s string) {
	mode := vm.ModePosition
	v := s
	switch s[0] {
	case '#':
		mode, v = vm.ModeImmediate, s[1:]
	case '%':
		mode, v = vm.ModeRelative, s[1:]
	case ':':
		p.error("Unexpected label definition as argument: " + s)
		return
	case '.':
		p.error("Unexpected directive as argument: " + s)
		return
	}
	if _, ok := opcodeIndex[v]; ok {
		p.error("Unexpected opcode as argument: " + s)
		return
	}
	if v == "" {
		p.error("Missing operand value after " + s)
		return
	}
	if p.arg == p.op.out && mode == vm.ModeImmediate {
		p.error("Immediate operand used as write target: " + s)
		return
	}
	p.i[p.opPC] += mode * modeWeight[p.arg]
	p.value(v)
	p.arg++
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	var dat bool

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); p.err == nil && tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error("Unexpected character " + strconv.QuoteRune(tok))
			break
		}
		s := p.s.TokenText()

		switch {
		case s == "(":
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.error("Unterminated comment")
			}
		case p.arg < p.op.args:
			p.operand(s)
		case dat:
			if s[0] == ':' || s[0] == '.' {
				p.error(".dat: expected value, got " + s)
				break
			}
			p.value(s)
			dat = false
		case s[0] == ':':
			p.defineLabel(s[1:])
		case s == ".dat":
			dat = true
		case s == ".equ":
			p.equ()
		case s[0] == '.':
			p.error("Unknown dot directive: " + s)
		default:
			if op, ok := opcodeIndex[s]; ok {
				p.op, p.opPC, p.arg = opcodes[op], len(p.i), 0
				p.write(op)
				break
			}
			// bare integers, chars and constants are raw data
			if v, ok := p.literal(s); ok {
				p.write(v)
				break
			}
			p.error("Unknown mnemonic: " + s)
		}
	}
	if p.err != nil {
		return p.err
	}
	if p.arg < p.op.args {
		p.error("Missing operand for " + p.op.names[0] + " at end of input")
		return p.err
	}
	if dat {
		p.error(".dat: missing value at end of input")
		return p.err
	}

	// report the undefined label used first in the source
	var undef string
	for n, l := range p.labels {
		if l.address == -1 && (undef == "" || l.uses[0].pos.Offset < p.labels[undef].uses[0].pos.Offset) {
			undef = n
		}
	}
	if undef != "" {
		return errors.Errorf("%s: Undefined label %s", p.labels[undef].uses[0].pos, undef)
	}

	// write labels
	for _, l := range p.labels {
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}
	return nil
}

// equ handles a .equ NAME VALUE directive.
func (p *parser) equ() {
	if p.s.Scan() != scanner.Ident {
		p.error(".equ: expected identifier")
		return
	}
	n := p.s.TokenText()
	pos := p.s.Position
	if !isLabelName(n) {
		p.error(".equ: invalid constant name " + strconv.Quote(n))
		return
	}
	if l, ok := p.labels[n]; ok {
		p.error(".equ: redefinition of " + n + ", previously defined/used as a label here: " + l.pos.String())
		return
	}
	if p.s.Scan() != scanner.Ident {
		p.error(".equ: expected value for " + n)
		return
	}
	v, ok := p.literal(p.s.TokenText())
	if !ok {
		p.error(".equ: invalid value " + p.s.TokenText())
		return
	}
	p.consts[n] = constant{pos, v}
}
