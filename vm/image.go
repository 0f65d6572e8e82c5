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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Parse reads a program in text form: comma separated decimal integers,
// optionally surrounded by white space. A trailing comma is accepted.
func Parse(r io.Reader) ([]Cell, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	fields := strings.Split(string(b), ",")
	prog := make([]Cell, 0, len(fields))
	for n, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			if n == len(fields)-1 {
				break
			}
			return nil, errors.Errorf("Parse: missing value at position %d", n)
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse: value at position %d", n)
		}
		prog = append(prog, Cell(v))
	}
	return prog, nil
}

// Load loads a program in text form from file fileName.
func Load(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	prog, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return prog, nil
}

// Format writes mem to w in the text form accepted by Parse.
func Format(w io.Writer, mem []Cell) error {
	ew := ici.NewErrWriter(w)
	for k, v := range mem {
		if k > 0 {
			ew.Write([]byte{','})
		}
		if ew.WriteInt(int64(v)) != nil {
			break
		}
	}
	return ew.Err
}

// Save saves mem in text form to file fileName, followed by a newline. The
// file is removed if an error occurs.
func Save(fileName string, mem []Cell) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if err = Format(w, mem); err != nil {
		return errors.Wrap(err, "save failed")
	}
	_, err = w.WriteString("\n")
	return errors.Wrap(err, "save failed")
}
