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

package vm

// Intcode Virtual Machine Opcodes.
//
// An instruction word is opcode + 100*m1 + 1000*m2 + 10000*m3 where m1..m3 are
// the addressing modes of the operands, in order.
const (
	OpAdd         Cell = 1  // in, in, out: out = in1 + in2
	OpMul         Cell = 2  // in, in, out: out = in1 * in2
	OpIn          Cell = 3  // out: read the next input value
	OpOut         Cell = 4  // in: output a value
	OpJumpIfTrue  Cell = 5  // in, in: jump to in2 if in1 != 0
	OpJumpIfFalse Cell = 6  // in, in: jump to in2 if in1 == 0
	OpLess        Cell = 7  // in, in, out: out = in1 < in2
	OpEqual       Cell = 8  // in, in, out: out = in1 == in2
	OpRelBase     Cell = 9  // in: relative base += in
	OpHalt        Cell = 99 // stop execution for good
)

// Addressing modes.
const (
	ModePosition  Cell = 0 // operand is an address
	ModeImmediate Cell = 1 // operand is the value; never valid as a write target
	ModeRelative  Cell = 2 // operand is an address relative to the relative base
)
