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

package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// source supplies input to a blocked VM. Next returns io.EOF when no more
// input is available.
type source interface {
	Next() ([]vm.Cell, error)
}

// lineSource reads one line per call, either as comma separated values or as
// ASCII text.
type lineSource struct {
	s     *bufio.Scanner
	ascii bool
}

func (l *lineSource) Next() ([]vm.Cell, error) {
	if !l.s.Scan() {
		if err := l.s.Err(); err != nil {
			return nil, errors.Wrap(err, "read failed")
		}
		return nil, io.EOF
	}
	if l.ascii {
		return ascii.Encode(l.s.Text()), nil
	}
	return vm.Parse(strings.NewReader(l.s.Text()))
}

// keySource reads one byte per call from a terminal in raw mode. CTRL-D is
// handled as end of input and carriage returns are sent as newlines.
type keySource struct {
	r     io.Reader
	flush func() error
	buf   [1]byte
}

func (k *keySource) Next() ([]vm.Cell, error) {
	if k.flush != nil {
		if err := k.flush(); err != nil {
			return nil, errors.Wrap(err, "write failed")
		}
	}
	if _, err := io.ReadFull(k.r, k.buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "read failed")
	}
	switch c := k.buf[0]; c {
	case 4:
		return nil, io.EOF
	case '\r':
		return []vm.Cell{'\n'}, nil
	default:
		return []vm.Cell{vm.Cell(c)}, nil
	}
}
