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
	"testing"

	"github.com/db47h/intcode/vm"
)

type C []vm.Cell

type M map[int]vm.Cell

func same(a, b C) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// check runs i to completion with the given input and verifies its output and
// selected memory cells.
func check(t *testing.T, testName string, i *vm.Instance, input, output C, mem M) {
	t.Helper()
	out, err := i.Run(input...)
	if err != nil {
		t.Errorf("%s: %+v", testName, err)
		return
	}
	if !i.Halted() {
		t.Errorf("%s: not halted, PC=%d", testName, i.PC)
	}
	if !same(out, output) {
		t.Errorf("%s: Output error: expected %d, got %d", testName, output, out)
	}
	for addr, v := range mem {
		if got := i.Peek(addr); got != v {
			t.Errorf("%s: Memory error at %d: expected %d, got %d", testName, addr, v, got)
		}
	}
}

var (
	eqPos8  = C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}
	ltPos8  = C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}
	eqImm8  = C{3, 3, 1108, -1, 8, 3, 4, 3, 99}
	ltImm8  = C{3, 3, 1107, -1, 8, 3, 4, 3, 99}
	jumpPos = C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}
	jumpImm = C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}
	cmp8    = C{3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
		1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
		999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99}
	quine = C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
)

var tests = [...]struct {
	name   string
	code   C
	input  C
	output C
	mem    M
}{
	{"add", C{1, 0, 0, 0, 99}, nil, nil, M{0: 2}},
	{"mul", C{2, 3, 0, 3, 99}, nil, nil, M{3: 6}},
	{"mul far", C{2, 4, 4, 5, 99, 0}, nil, nil, M{5: 9801}},
	{"self modify", C{1, 1, 1, 4, 99, 5, 6, 0, 99}, nil, nil, M{0: 30, 4: 2}},
	{"arith", C{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, nil, nil, M{0: 3500, 3: 70}},
	{"io", C{3, 0, 4, 0, 99}, C{42}, C{42}, M{0: 42}},
	{"excess input", C{3, 0, 99}, C{1, 2, 3}, nil, M{0: 1}},
	{"modes", C{1002, 4, 3, 4, 33}, nil, nil, M{4: 99}},
	{"negative", C{1101, 100, -1, 4, 0}, nil, nil, M{4: 99}},
	{"=8 pos 8", eqPos8, C{8}, C{1}, nil},
	{"=8 pos 7", eqPos8, C{7}, C{0}, nil},
	{"=8 pos 9", eqPos8, C{9}, C{0}, nil},
	{"<8 pos 7", ltPos8, C{7}, C{1}, nil},
	{"<8 pos 8", ltPos8, C{8}, C{0}, nil},
	{"=8 imm 7", eqImm8, C{7}, C{0}, nil},
	{"=8 imm 8", eqImm8, C{8}, C{1}, nil},
	{"=8 imm 9", eqImm8, C{9}, C{0}, nil},
	{"<8 imm 7", ltImm8, C{7}, C{1}, nil},
	{"<8 imm 9", ltImm8, C{9}, C{0}, nil},
	{"jf pos 0", jumpPos, C{0}, C{0}, nil},
	{"jf pos 5", jumpPos, C{5}, C{1}, nil},
	{"jt imm 0", jumpImm, C{0}, C{0}, nil},
	{"jt imm 3", jumpImm, C{3}, C{1}, nil},
	{"cmp8 7", cmp8, C{7}, C{999}, nil},
	{"cmp8 8", cmp8, C{8}, C{1000}, nil},
	{"cmp8 9", cmp8, C{9}, C{1001}, nil},
	{"jf taken", C{1106, 0, 4, 99, 104, 2, 99}, nil, C{2}, nil},
	// the target of a jump not taken is skipped, not decoded: its mode is never checked
	{"jt not taken", C{3105, 0, 7777, 104, 1, 99}, nil, C{1}, nil},
	{"relative read", C{109, 5, 204, 1, 99, 0, 77}, nil, C{77}, nil},
	{"relative write", C{109, 10, 21101, 3, 4, 0, 204, 0, 99}, nil, C{7}, M{10: 7}},
	{"relative adjust", C{109, 6, 209, 1, 204, -1, 99, -3}, nil, C{209}, nil},
	{"grow on read", C{4, 1000, 99}, nil, C{0}, nil},
	{"quine", quine, nil, quine, nil},
	{"bignum mul", C{1102, 34915192, 34915192, 7, 4, 7, 99, 0}, nil, C{1219070632396864}, nil},
	{"bignum", C{104, 1125899906842624, 99}, nil, C{1125899906842624}, nil},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		check(t, test.name, vm.New(test.code), test.input, test.output, test.mem)
	}
}

// The quine writes past the original memory bound using relative addressing
// only.
func TestQuineGrowth(t *testing.T) {
	i := vm.New(quine)
	if len(i.Mem) != len(quine) {
		t.Fatalf("initial memory size: expected %d, got %d", len(quine), len(i.Mem))
	}
	check(t, "quine", i, nil, quine, M{100: 16, 101: 1})
	if len(i.Mem) <= 101 {
		t.Errorf("memory did not grow: %d cells", len(i.Mem))
	}
}

func TestInstructionCount(t *testing.T) {
	i := vm.New(C{1, 0, 0, 0, 99})
	if _, err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if c := i.InstructionCount(); c != 2 {
		t.Errorf("expected 2 instructions, got %d", c)
	}
}

func Benchmark_Quine(b *testing.B) {
	for c := 0; c < b.N; c++ {
		i := vm.New(quine)
		if _, err := i.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Cmp8(b *testing.B) {
	for c := 0; c < b.N; c++ {
		i := vm.New(cmp8)
		if _, err := i.Run(vm.Cell(c % 16)); err != nil {
			b.Fatal(err)
		}
	}
}
