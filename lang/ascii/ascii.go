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

// Package ascii provides utility functions to talk to Intcode programs that
// use ASCII text for input and output.
//
// Such programs read one character code per input instruction and terminate
// each command with a newline. Their output is text, possibly mixed with
// values outside of the ASCII range that carry a result.
package ascii

import (
	"strings"

	"github.com/db47h/intcode/vm"
)

// MaxChar is the largest value treated as a character by Decode.
const MaxChar = 127

// Encode returns the character codes of the given lines, each followed by a
// '\n'.
func Encode(lines ...string) []vm.Cell {
	var in []vm.Cell
	for _, l := range lines {
		for _, r := range l {
			in = append(in, vm.Cell(r))
		}
		in = append(in, '\n')
	}
	return in
}

// Decode splits program output into text and non-ASCII values. Values in the
// range [0, MaxChar] are appended to text, all others are returned in rest, in
// order.
func Decode(out []vm.Cell) (text string, rest []vm.Cell) {
	var sb strings.Builder
	for _, v := range out {
		if v < 0 || v > MaxChar {
			rest = append(rest, v)
			continue
		}
		sb.WriteByte(byte(v))
	}
	return sb.String(), rest
}
