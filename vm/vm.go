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

// Cell is the raw type stored in a memory location.
type Cell int64

// State describes an Instance between two calls to Run.
type State int

// Instance states.
const (
	Ready   State = iota // never run, or returned from Run without blocking
	Blocked              // suspended on an input instruction
	Halted               // the halt instruction has been executed
)

var stateNames = [...]string{"ready", "blocked", "halted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	Mem      []Cell // Memory
	rb       Cell
	halted   bool
	blocked  bool
	insCount int64
}

// New creates a new Intcode Virtual Machine instance.
//
// The program is copied into the instance memory which is initially exactly
// as large as the program. No validation is done on the program: malformed
// code is only detected when executed.
func New(program []Cell) *Instance {
	mem := make([]Cell, len(program))
	copy(mem, program)
	return &Instance{Mem: mem}
}

// Clone returns a deep copy of the instance. Running either the clone or the
// original has no effect on the other.
func (i *Instance) Clone() *Instance {
	c := *i
	c.Mem = make([]Cell, len(i.Mem))
	copy(c.Mem, i.Mem)
	return &c
}

// Halted returns true once the program has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// State returns the instance state.
func (i *Instance) State() State {
	switch {
	case i.halted:
		return Halted
	case i.blocked:
		return Blocked
	}
	return Ready
}

// RelativeBase returns the current value of the relative base register.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// InstructionCount returns the number of instructions executed during the last
// call to Run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Peek returns the value at address addr. Addresses past the end of memory
// read as 0 and do not grow memory. Peek panics if addr is negative.
func (i *Instance) Peek(addr int) Cell {
	if addr < len(i.Mem) {
		return i.Mem[addr]
	}
	return 0
}

// Poke sets the value at address addr, growing memory as needed. Poke panics if
// addr is negative. Addresses above MaxAddress cannot be reached by programs.
func (i *Instance) Poke(addr int, v Cell) {
	if addr >= len(i.Mem) {
		i.grow(addr + 1)
	}
	i.Mem[addr] = v
}
