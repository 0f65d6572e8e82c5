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

package vm_test

import (
	"fmt"
	"strings"

	"github.com/db47h/intcode/vm"
)

// Shows how to drive a program that asks for input several times, one value
// at a time.
func ExampleInstance_Run() {
	// adds two numbers: in 11, in 12, add 11 12 13, out 13, hlt
	prog, err := vm.Parse(strings.NewReader("3,11,3,12,1,11,12,13,4,13,99\n"))
	if err != nil {
		panic(err)
	}
	i := vm.New(prog)

	for _, v := range []vm.Cell{19, 23} {
		out, err := i.Run(v)
		if err != nil {
			panic(err)
		}
		fmt.Println(out, i.State())
	}

	// Output:
	// [] blocked
	// [42] halted
}

// Clone lets two runs explore different futures from the same past.
func ExampleInstance_Clone() {
	// :loop in 20, mul 20 #3 20, out 20, jt #1 #loop
	i := vm.New([]vm.Cell{3, 20, 1002, 20, 3, 20, 4, 20, 1105, 1, 0})
	if _, err := i.Run(); err != nil {
		panic(err)
	}
	c := i.Clone()

	a, _ := i.Run(1)
	b, _ := c.Run(2)
	fmt.Println(a, b)

	// Output:
	// [3] [6]
}

// Entry parameters can be patched before running and results read back from
// memory afterwards.
func ExampleInstance_Poke() {
	i := vm.New([]vm.Cell{1, 0, 0, 0, 99, 30, 40})
	i.Poke(1, 5)
	i.Poke(2, 6)
	if _, err := i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(i.Peek(0))

	// Output:
	// 70
}

func ExampleFault() {
	_, err := vm.New([]vm.Cell{1101, 1, 1, 5, 42, 0}).Run()
	fmt.Println(err)

	// Output:
	// unknown opcode 42 @pc=4 (instruction 42)
}
