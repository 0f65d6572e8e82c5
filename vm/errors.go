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

import (
	"fmt"

	"github.com/pkg/errors"
)

// Fault causes.
var (
	ErrOpcode    = errors.New("unknown opcode")
	ErrMode      = errors.New("invalid addressing mode")
	ErrImmediate = errors.New("write through immediate operand")
	ErrAddress   = errors.New("address out of range")
)

// Fault is the error returned by Run when the program is malformed. It is the
// equivalent of an illegal instruction trap and cannot be recovered from.
type Fault struct {
	Err   error // one of ErrOpcode, ErrMode, ErrImmediate or ErrAddress
	PC    int   // address of the faulting instruction
	Op    Cell  // instruction word at PC
	Value Cell  // offending opcode, mode, operand or address
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v %d @pc=%d (instruction %d)", f.Err, f.Value, f.PC, f.Op)
}

// Cause returns the fault cause, for use with errors.Cause.
func (f *Fault) Cause() error { return f.Err }

// Unwrap returns the fault cause, for use with errors.Is.
func (f *Fault) Unwrap() error { return f.Err }
