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

package pipeline

import (
	"context"
	"runtime"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Permutations calls fn for every permutation of values, using Heap's
// algorithm. The slice passed to fn is reused between calls; fn must copy it
// if it needs to keep it. Permutations stops and returns the first non-nil
// error returned by fn.
//
// The input slice is permuted in place.
func Permutations(values []vm.Cell, fn func([]vm.Cell) error) error {
	c := make([]int, len(values))
	if err := fn(values); err != nil {
		return err
	}
	for k := 1; k < len(values); {
		if c[k] >= k {
			c[k] = 0
			k++
			continue
		}
		if k&1 == 0 {
			values[0], values[k] = values[k], values[0]
		} else {
			values[c[k]], values[k] = values[k], values[c[k]]
		}
		if err := fn(values); err != nil {
			return err
		}
		c[k]++
		k = 1
	}
	return nil
}

// Result is the outcome of MaxSignal.
type Result struct {
	Signal vm.Cell
	Phases []vm.Cell
}

// MaxSignal tries every permutation of phases on a chain of program instances
// and returns the highest signal obtained at the end of the chain for an
// initial input of 0, along with the phase order that produced it. If
// feedback is true, chains are run with Loop instead of Run.
//
// Permutations are evaluated concurrently, each on its own chain. When several
// orders produce the same signal, the first one in enumeration order wins.
func MaxSignal(ctx context.Context, program []vm.Cell, phases []vm.Cell, feedback bool) (Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	// one slot per permutation, written by a single worker
	count := 1
	for k := 2; k <= len(phases); k++ {
		count *= k
	}
	orders := make([][]vm.Cell, count)
	signals := make([]vm.Cell, count)

	n := 0
	err := Permutations(append([]vm.Cell(nil), phases...), func(p []vm.Cell) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		k := n
		n++
		orders[k] = append([]vm.Cell(nil), p...)
		g.Go(func() error {
			s, err := signal(program, orders[k], feedback)
			if err != nil {
				return errors.Wrapf(err, "phases %d", orders[k])
			}
			signals[k] = s
			return nil
		})
		return nil
	})
	if gerr := g.Wait(); gerr != nil {
		return Result{}, gerr
	}
	if err != nil {
		return Result{}, err
	}

	var r Result
	for k, s := range signals {
		if k == 0 || s > r.Signal {
			r = Result{s, orders[k]}
		}
	}
	return r, nil
}

func signal(program []vm.Cell, phases []vm.Cell, feedback bool) (vm.Cell, error) {
	c, err := NewChain(program, phases...)
	if err != nil {
		return 0, err
	}
	var out []vm.Cell
	if feedback {
		out, err = c.Loop(0)
	} else {
		out, err = c.Run(0)
	}
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, errors.New("no output")
	}
	return out[len(out)-1], nil
}
