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
	"fmt"
	"io"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type opcode struct {
	names []string
	args  int
	out   int // index of the write operand, -1 if none
}

var opcodes = map[vm.Cell]opcode{
	vm.OpAdd:         {[]string{"add"}, 3, 2},
	vm.OpMul:         {[]string{"mul"}, 3, 2},
	vm.OpIn:          {[]string{"in"}, 1, 0},
	vm.OpOut:         {[]string{"out"}, 1, -1},
	vm.OpJumpIfTrue:  {[]string{"jt", "jnz"}, 2, -1},
	vm.OpJumpIfFalse: {[]string{"jf", "jz"}, 2, -1},
	vm.OpLess:        {[]string{"lt"}, 3, 2},
	vm.OpEqual:       {[]string{"eq"}, 3, 2},
	vm.OpRelBase:     {[]string{"arb", "rel"}, 1, -1},
	vm.OpHalt:        {[]string{"hlt", "halt"}, 0, -1},
}

var opcodeIndex = make(map[string]vm.Cell)

func init() {
	for op, o := range opcodes {
		for _, n := range o.names {
			opcodeIndex[n] = op
		}
	}
}

var modePrefix = [...]string{vm.ModePosition: "", vm.ModeImmediate: "#", vm.ModeRelative: "%"}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (img []vm.Cell, err error) {
	p := newParser()
	if err = p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.i, nil
}

// decode returns the opcode and operand modes of the instruction word w, or
// ok == false if w is not a valid instruction.
func decode(w vm.Cell) (o opcode, modes []vm.Cell, ok bool) {
	if w < 0 {
		return o, nil, false
	}
	o, ok = opcodes[w%100]
	if !ok {
		return o, nil, false
	}
	m := w / 100
	modes = make([]vm.Cell, o.args)
	for k := range modes {
		modes[k] = m % 10
		m /= 10
		if modes[k] > vm.ModeRelative || k == o.out && modes[k] == vm.ModeImmediate {
			return o, nil, false
		}
	}
	// no stray mode digits
	return o, modes, m == 0
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not decode to a valid instruction, or instructions truncated
// by the end of the slice, are written as a .dat directive for a single cell.
// A pc outside of the slice is an error and nothing is written.
func Disassemble(i []vm.Cell, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(i) {
		return pc, errors.Errorf("Disassemble: address %d out of range [0, %d)", pc, len(i))
	}
	ew := ici.NewErrWriter(w)

	op := i[pc]
	o, modes, ok := decode(op)
	if !ok || pc+len(modes) >= len(i) {
		io.WriteString(ew, ".dat ")
		ew.WriteInt(int64(op))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, o.names[0])
	pc++
	for _, m := range modes {
		ew.Write([]byte{' '})
		io.WriteString(ew, modePrefix[m])
		ew.WriteInt(int64(i[pc]))
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (i[0]). It will return any write error.
func DisassembleAll(i []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(i); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(i, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
