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

// Package pipeline connects Intcode instances in series, the output of each
// stage being the input of the next.
//
// Each stage is a distinct instance of the same program, configured by a
// phase value that it reads before anything else. Chains are not safe for
// concurrent use, but independent chains may run in parallel since they share
// no state.
package pipeline

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrStalled is returned by Chain.Loop when a full pass produces no output
// while no stage halted.
var ErrStalled = errors.New("pipeline stalled")

// Chain is a series of VM instances.
type Chain []*vm.Instance

// NewChain returns a new chain with one instance of program per phase. Each
// instance is run once with its phase as sole input. It is an error for an
// instance to halt or fault at this point.
func NewChain(program []vm.Cell, phases ...vm.Cell) (Chain, error) {
	c := make(Chain, len(phases))
	for k, p := range phases {
		i := vm.New(program)
		if _, err := i.Run(p); err != nil {
			return nil, errors.Wrapf(err, "stage %d: phase %d", k, p)
		}
		if i.Halted() {
			return nil, errors.Errorf("stage %d: halted on phase %d", k, p)
		}
		c[k] = i
	}
	return c, nil
}

// Run does a single pass through the chain and returns the output of the last
// stage.
func (c Chain) Run(input ...vm.Cell) ([]vm.Cell, error) {
	var err error
	for k, i := range c {
		input, err = i.Run(input...)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", k)
		}
	}
	return input, nil
}

// Loop runs the chain in a feedback loop: the output of the last stage is fed
// back into the first until any stage halts. It returns the last non-empty
// output of the last stage.
func (c Chain) Loop(input ...vm.Cell) ([]vm.Cell, error) {
	var last []vm.Cell
	for {
		out, err := c.Run(input...)
		if err != nil {
			return nil, err
		}
		if len(out) > 0 {
			last = out
		}
		if c.Halted() {
			return last, nil
		}
		if len(out) == 0 {
			return nil, ErrStalled
		}
		input = out
	}
}

// Halted returns true if any stage in the chain has halted.
func (c Chain) Halted() bool {
	for _, i := range c {
		if i.Halted() {
			return true
		}
	}
	return false
}
