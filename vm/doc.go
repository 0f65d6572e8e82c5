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

// Package vm implements a resumable Intcode virtual machine.
//
// An Instance is created from a program image and driven by repeated calls to
// Run. Each call is given a batch of input values and returns the values
// output during that call. When the program reaches an input instruction and
// the batch is exhausted, Run returns early and leaves the PC on that input
// instruction, so that the next call to Run resumes exactly there with a new
// batch. There is no goroutine or callback involved: all scheduling is up to
// the caller.
//
// Memory is a flat slice of Cells that grows on demand, with zero fill, when
// the program reads or writes past its end. Negative addresses are faults.
//
// Instances are plain values: Clone returns a fully independent copy that can
// be run down a different path than the original. Sharing a single Instance
// between goroutines is not supported; concurrent clients should own separate
// clones instead.
//
// Malformed programs (unknown opcodes, invalid addressing modes, writes
// through immediate operands, addresses out of range) make Run return a *Fault.
// A Fault is not recoverable: the PC is left on the faulting instruction and
// running again will fault again.
//
// Note that the PC is not advanced in a single place per instruction. Each
// operand advances it by one cell as it is decoded, and jumps overwrite it once
// their target has been decoded. Code hacking on the run loop must preserve
// this order, or suspension and jumps will break.
package vm
