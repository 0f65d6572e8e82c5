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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	Operands marked "out" are write targets and cannot use immediate mode.
//
//	opcode	asm		operands	description
//	------	---		--------	-------------------------------------------
//	1	add		a b out		out = a + b
//	2	mul		a b out		out = a * b
//	3	in		out		read the next input value into out
//	4	out		a		output a
//	5	jt, jnz		a t		jump to t if a != 0
//	6	jf, jz		a t		jump to t if a == 0
//	7	lt		a b out		out = 1 if a < b, else 0
//	8	eq		a b out		out = 1 if a == b, else 0
//	9	arb, rel	a		add a to the relative base
//	99	hlt, halt			stop
//
// Operands:
//
// An operand is a value with an optional addressing mode prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42 itself
//	%42	relative mode: the value at address relative base + 42
//
// Values are Go integer literals (see strconv.ParseInt with base 0), Go
// character literals between single quotes, constant names or label names. A
// label name stands for the address of the label, so that given a label
// "count", "count" reads or writes the cell at that address and "#count" is the
// address itself, as used in jump targets:
//
//	:loop	add count #1 count
//		jt #1 #loop
//	:count	.dat 0
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not: "(this" is read as a mnemonic )
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:). Label names are made
// of letters, digits and underscores and cannot start with a digit or be a
// mnemonic. Forward references are ok.
//
// Assembler directives:
//
// The assembler supports the following directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer value, named constant
// or character literal.
//
//	.dat <value>
//
// Will compile the specified value as-is. Integers, chars and constants found
// where an instruction is expected are compiled the same way, so that the
// following compile to the same two cells:
//
//	:table	.dat 65
//		.dat 'B'
//	:table2	65 'B'
//
// Disassembly:
//
// Disassemble and DisassembleAll produce text in the same syntax, with raw
// addresses in place of labels. Cells that do not decode to an instruction the
// assembler could have produced are written as ".dat <value>".
package asm
