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

// MaxAddress is the highest memory address a program can use. It fits an int
// on all platforms.
const MaxAddress = 1<<31 - 1

// grow extends memory to size cells. New cells are zero.
func (i *Instance) grow(size int) {
	if size <= len(i.Mem) {
		return
	}
	if size <= cap(i.Mem) {
		n := len(i.Mem)
		i.Mem = i.Mem[:size]
		clear(i.Mem[n:])
		return
	}
	c := 2 * cap(i.Mem)
	if c < size {
		c = size
	}
	m := make([]Cell, size, c)
	copy(m, i.Mem)
	i.Mem = m
}

// addr validates address a and makes sure that it is backed by memory. It
// faults with ErrAddress if a is negative or above MaxAddress.
//
// Callers must not hold on to i.Mem across a call to addr: it may be
// reallocated.
func (i *Instance) addr(a Cell) int {
	if a < 0 || a > MaxAddress {
		panic(&Fault{Err: ErrAddress, Value: a})
	}
	n := int(a)
	if n >= len(i.Mem) {
		i.grow(n + 1)
	}
	return n
}

// jump sets PC to target.
func (i *Instance) jump(target Cell) {
	if target < 0 || target > MaxAddress {
		panic(&Fault{Err: ErrAddress, Value: target})
	}
	i.PC = int(target)
}

// fetch reads the cell at PC and advances PC.
func (i *Instance) fetch() Cell {
	n := i.addr(Cell(i.PC))
	i.PC++
	return i.Mem[n]
}

// param decodes an input operand and returns its effective value.
func (i *Instance) param(modes *Cell) Cell {
	v := i.fetch()
	m := *modes % 10
	*modes /= 10
	switch m {
	case ModePosition:
		n := i.addr(v)
		return i.Mem[n]
	case ModeImmediate:
		return v
	case ModeRelative:
		n := i.addr(v + i.rb)
		return i.Mem[n]
	}
	panic(&Fault{Err: ErrMode, Value: m})
}

// out decodes a write operand and returns a pointer to the target cell. The
// pointer is only valid until the next memory access.
func (i *Instance) out(modes *Cell) *Cell {
	v := i.fetch()
	m := *modes % 10
	*modes /= 10
	switch m {
	case ModePosition:
		n := i.addr(v)
		return &i.Mem[n]
	case ModeRelative:
		n := i.addr(v + i.rb)
		return &i.Mem[n]
	case ModeImmediate:
		panic(&Fault{Err: ErrImmediate, Value: v})
	}
	panic(&Fault{Err: ErrMode, Value: m})
}
