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

// Package explore searches the state space of interactive Intcode programs.
//
// Programs that read a move and answer with a status, like a robot probing a
// maze, can be explored without replaying moves from the start: every state
// is kept as a clone of the VM and each move is tried on a fresh copy of it.
// Two states are the same when their fingerprints match.
package explore

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Node is a state reached during a search.
type Node struct {
	VM   *vm.Instance
	Path []vm.Cell // moves from the start state
	Out  []vm.Cell // output of the last move
}

// BFS does a breadth first search from start, trying every move in turn on
// each state. States already seen are skipped. The visit function is called
// once for every new state; its children are expanded only if visit returns
// true and the VM did not halt.
//
// The start instance is not modified. BFS returns the first fault, if any,
// along with the path that caused it.
func BFS(start *vm.Instance, moves []vm.Cell, visit func(n *Node) bool) error {
	return search(start, moves, func(n *Node) (bool, bool) {
		return visit(n), false
	})
}

// search is BFS with a visit function that can also end the search.
func search(start *vm.Instance, moves []vm.Cell, visit func(n *Node) (expand, stop bool)) error {
	seen := map[[32]byte]bool{start.Fingerprint(): true}
	queue := []*Node{{VM: start}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, m := range moves {
			c := n.VM.Clone()
			path := append(n.Path[:len(n.Path):len(n.Path)], m)
			out, err := c.Run(m)
			if err != nil {
				return errors.Wrapf(err, "moves %d", path)
			}
			fp := c.Fingerprint()
			if seen[fp] {
				continue
			}
			seen[fp] = true
			child := &Node{VM: c, Path: path, Out: out}
			expand, stop := visit(child)
			if stop {
				return nil
			}
			if expand && !c.Halted() {
				queue = append(queue, child)
			}
		}
	}
	return nil
}

// Find returns the first state, in breadth first order, for which goal
// returns true. It returns nil if the search space is exhausted before. The
// search ends as soon as the goal is found: moves not tried yet are not run.
func Find(start *vm.Instance, moves []vm.Cell, goal func(n *Node) bool) (*Node, error) {
	var found *Node
	err := search(start, moves, func(n *Node) (bool, bool) {
		if goal(n) {
			found = n
			return false, true
		}
		return true, false
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
