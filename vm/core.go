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

// Run executes the program until it halts or blocks on an input instruction
// with no input left. It returns the values output during this call, in order.
//
// Input values are consumed in order, one per input instruction. Values left
// over when the program halts are discarded, they are not kept for the next
// call. When the program blocks, the PC is left on the blocking input
// instruction and the next call to Run resumes from there.
//
// Calling Run on a halted instance does nothing and returns no output.
//
// If the program is malformed, Run returns a *Fault and no output. The PC will
// point to the instruction that triggered the fault.
func (i *Instance) Run(input ...Cell) (output []Cell, err error) {
	if i.halted {
		return nil, nil
	}
	var pc int
	defer func() {
		if e := recover(); e != nil {
			f, ok := e.(*Fault)
			if !ok {
				panic(e)
			}
			f.PC = pc
			if pc >= 0 && pc < len(i.Mem) {
				f.Op = i.Mem[pc]
			}
			i.PC = pc
			output, err = nil, f
		}
	}()
	i.insCount = 0
	i.blocked = false
	for {
		pc = i.PC
		op := i.fetch()
		modes := op / 100
		switch op % 100 {
		case OpAdd:
			a, b := i.param(&modes), i.param(&modes)
			*i.out(&modes) = a + b
		case OpMul:
			a, b := i.param(&modes), i.param(&modes)
			*i.out(&modes) = a * b
		case OpIn:
			if len(input) == 0 {
				// rewind onto the opcode word so that execution can be resumed
				i.PC = pc
				i.blocked = true
				return output, nil
			}
			*i.out(&modes) = input[0]
			input = input[1:]
		case OpOut:
			output = append(output, i.param(&modes))
		case OpJumpIfTrue:
			if i.param(&modes) != 0 {
				i.jump(i.param(&modes))
			} else {
				i.PC++
			}
		case OpJumpIfFalse:
			if i.param(&modes) == 0 {
				i.jump(i.param(&modes))
			} else {
				i.PC++
			}
		case OpLess:
			a, b := i.param(&modes), i.param(&modes)
			*i.out(&modes) = bool2Cell(a < b)
		case OpEqual:
			a, b := i.param(&modes), i.param(&modes)
			*i.out(&modes) = bool2Cell(a == b)
		case OpRelBase:
			i.rb += i.param(&modes)
		case OpHalt:
			i.halted = true
			i.insCount++
			return output, nil
		default:
			panic(&Fault{Err: ErrOpcode, Value: op % 100})
		}
		i.insCount++
	}
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}
