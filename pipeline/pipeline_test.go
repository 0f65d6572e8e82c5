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

package pipeline_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/db47h/intcode/pipeline"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type C []vm.Cell

// out = in * 10 + phase, then halt
var serial = C{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}

// loops 5 times: out = in * 2 + phase - 4
var feedback = C{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
	27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5}

func TestChainRun(t *testing.T) {
	c, err := pipeline.NewChain(serial, 4, 3, 2, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Run(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != 43210 {
		t.Fatalf("expected [43210], got %d", out)
	}
	if !c.Halted() {
		t.Fatal("expected halted chain")
	}
}

func TestChainLoop(t *testing.T) {
	c, err := pipeline.NewChain(feedback, 9, 8, 7, 6, 5)
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Loop(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != 139629729 {
		t.Fatalf("expected [139629729], got %d", out)
	}
}

func TestChainErrors(t *testing.T) {
	if _, err := pipeline.NewChain(C{99}, 0); err == nil {
		t.Error("expected error on halt while priming")
	}
	_, err := pipeline.NewChain(C{42}, 0)
	if errors.Cause(err) != vm.ErrOpcode {
		t.Errorf("expected %v, got %v", vm.ErrOpcode, err)
	}

	// in 5, jt #1 #0: consumes input forever without output
	c, err := pipeline.NewChain(C{3, 5, 1105, 1, 0, 0}, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = c.Loop(0); err != pipeline.ErrStalled {
		t.Errorf("expected %v, got %v", pipeline.ErrStalled, err)
	}

	// the second stage faults once its phase is consumed
	c, err = pipeline.NewChain(C{3, 10, 3, 11, 4, 11, 3, 12, 1105, 1, 0, 0, 0}, 0)
	if err != nil {
		t.Fatal(err)
	}
	c = append(c, vm.New(C{3, 0, 42}))
	if _, err = c.Run(7); errors.Cause(err) != vm.ErrOpcode {
		t.Errorf("expected %v, got %v", vm.ErrOpcode, err)
	}
}

func TestPermutations(t *testing.T) {
	seen := make(map[[4]vm.Cell]bool)
	err := pipeline.Permutations(C{1, 2, 3, 4}, func(p []vm.Cell) error {
		var k [4]vm.Cell
		copy(k[:], p)
		if seen[k] {
			t.Errorf("duplicate permutation %d", p)
		}
		seen[k] = true
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 24 {
		t.Fatalf("expected 24 permutations, got %d", len(seen))
	}

	stop := errors.New("stop")
	n := 0
	err = pipeline.Permutations(C{1, 2, 3}, func([]vm.Cell) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if err != stop || n != 2 {
		t.Fatalf("expected stop after 2 calls, got %v after %d", err, n)
	}
}

func TestMaxSignal(t *testing.T) {
	data := []struct {
		name     string
		prog     C
		phases   C
		feedback bool
		signal   vm.Cell
		order    C
	}{
		{"serial", serial, C{0, 1, 2, 3, 4}, false, 43210, C{4, 3, 2, 1, 0}},
		{"feedback", feedback, C{5, 6, 7, 8, 9}, true, 139629729, C{9, 8, 7, 6, 5}},
	}
	for _, d := range data {
		r, err := pipeline.MaxSignal(context.Background(), d.prog, d.phases, d.feedback)
		if err != nil {
			t.Errorf("%s: %v", d.name, err)
			continue
		}
		if r.Signal != d.signal || fmt.Sprint(r.Phases) != fmt.Sprint(d.order) {
			t.Errorf("%s: expected %d %d, got %d %d", d.name, d.signal, d.order, r.Signal, r.Phases)
		}
	}
}

func TestMaxSignalErrors(t *testing.T) {
	// in 5, out 5, hlt: every stage halts while priming
	_, err := pipeline.MaxSignal(context.Background(), C{3, 5, 4, 5, 99, 0}, C{1, 2}, false)
	if err == nil {
		t.Error("expected error for a program halting while priming")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.MaxSignal(ctx, serial, C{0, 1, 2}, false)
	if errors.Cause(err) != context.Canceled {
		t.Errorf("expected %v, got %v", context.Canceled, err)
	}
}

func ExampleMaxSignal() {
	r, err := pipeline.MaxSignal(context.Background(), serial, []vm.Cell{0, 1, 2, 3, 4}, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Signal, r.Phases)

	// Output:
	// 43210 [4 3 2 1 0]
}
