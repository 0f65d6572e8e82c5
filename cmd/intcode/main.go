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
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type cellList []vm.Cell

func (l *cellList) String() string { return fmt.Sprint(*l) }
func (l *cellList) Set(s string) error {
	c, err := vm.Parse(strings.NewReader(s))
	if err != nil {
		return err
	}
	*l = append(*l, c...)
	return nil
}
func (l *cellList) Get() interface{} { return *l }

type patch struct {
	addr int
	v    vm.Cell
}

type patchList []patch

func (l *patchList) String() string { return "" }
func (l *patchList) Set(s string) error {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 {
		return errors.Errorf("expected addr=value, got %q", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(kv[0]))
	if err != nil {
		return errors.Wrap(err, "invalid address")
	}
	if a < 0 {
		return errors.Errorf("negative address %d", a)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(kv[1]), 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid value")
	}
	*l = append(*l, patch{a, vm.Cell(v)})
	return nil
}
func (l *patchList) Get() interface{} { return *l }

type addrList []int

func (l *addrList) String() string { return fmt.Sprint(*l) }
func (l *addrList) Set(s string) error {
	a, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if a < 0 {
		return errors.Errorf("negative address %d", a)
	}
	*l = append(*l, a)
	return nil
}
func (l *addrList) Get() interface{} { return *l }

var (
	debug    bool
	asciiIO  bool
	rawIO    bool
	dump     bool
	disasm   bool
	saveName string
	outName  string
	inputs   cellList
	patches  patchList
	peeks    addrList
)

func newVM(imageName, resumeName string) (*vm.Instance, error) {
	if resumeName == "" {
		prog, err := vm.Load(imageName)
		if err != nil {
			return nil, err
		}
		return vm.New(prog), nil
	}
	f, err := os.Open(resumeName)
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot failed")
	}
	defer f.Close()
	return vm.ReadSnapshot(f)
}

func saveSnapshot(i *vm.Instance, fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create snapshot failed")
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = errors.Wrap(e, "close snapshot failed")
		}
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return i.WriteSnapshot(f)
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		log.Fatalf("%v", err)
	}
	log.Printf("%+v", err)
	if i != nil {
		log.Printf("PC: %d (%d), relative base: %d, state: %v, memory: %d cells",
			i.PC, i.Peek(i.PC), i.RelativeBase(), i.State(), len(i.Mem))
	}
	os.Exit(1)
}

// run drives i until it halts, faults or runs out of input.
func run(i *vm.Instance, src source, w io.Writer) error {
	out, err := i.Run(inputs...)
	for {
		if werr := printOutput(w, out); werr != nil {
			return werr
		}
		if err != nil || i.Halted() {
			return err
		}
		var in []vm.Cell
		in, err = src.Next()
		if err == io.EOF {
			if saveName != "" {
				return saveSnapshot(i, saveName)
			}
			return nil
		}
		if err != nil {
			return err
		}
		out, err = i.Run(in...)
	}
}

func printOutput(w io.Writer, out []vm.Cell) error {
	if !asciiIO {
		for _, v := range out {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return errors.Wrap(err, "write failed")
			}
		}
		return nil
	}
	text, rest := ascii.Decode(out)
	if _, err := io.WriteString(w, text); err != nil {
		return errors.Wrap(err, "write failed")
	}
	for _, v := range rest {
		if _, err := fmt.Fprintf(w, "\n%d\n", v); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return nil
}

func main() {
	var err error
	var i *vm.Instance

	log.SetFlags(0)
	log.SetPrefix("intcode: ")

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if e := stdout.Flush(); e != nil && err == nil {
			err = errors.Wrap(e, "write failed")
		}
		atExit(i, err)
	}()

	var imageName = flag.String("image", "input.txt", "Load program from file `filename`")
	var resumeName = flag.String("resume", "", "resume from snapshot `filename` instead of loading a program")
	flag.Var(&patches, "set", "patch memory with `addr=value` before running (can be specified multiple times)")
	flag.Var(&inputs, "in", "comma separated initial input `values` (can be specified multiple times)")
	flag.BoolVar(&asciiIO, "ascii", false, "ASCII text input and output")
	flag.BoolVar(&rawIO, "raw", false, "raw terminal input, one keystroke per input value")
	flag.StringVar(&saveName, "save", "", "save a snapshot to `filename` when input runs out")
	flag.BoolVar(&dump, "dump", false, "dump memory upon exit")
	flag.Var(&peeks, "peek", "print memory cell at `addr` upon exit (can be specified multiple times)")
	flag.StringVar(&outName, "o", "", "save memory to program `filename` upon exit")
	flag.BoolVar(&disasm, "disasm", false, "disassemble program and exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	i, err = newVM(*imageName, *resumeName)
	if err != nil {
		return
	}
	for _, p := range patches {
		i.Poke(p.addr, p.v)
	}

	if disasm {
		err = asm.DisassembleAll(i.Mem, 0, stdout)
		return
	}

	var src source = &lineSource{s: bufio.NewScanner(os.Stdin), ascii: asciiIO}
	if rawIO {
		var tearDown func()
		tearDown, err = setRawIO()
		if err != nil {
			return
		}
		defer tearDown()
		// keystrokes must show up as soon as the program answers
		src = &keySource{r: os.Stdin, flush: stdout.Flush}
	}

	if err = run(i, src, stdout); err != nil {
		return
	}

	if dump {
		if err = vm.Format(stdout, i.Mem); err != nil {
			return
		}
		stdout.WriteByte('\n')
	}
	for _, a := range peeks {
		fmt.Fprintf(stdout, "%d: %d\n", a, i.Peek(a))
	}
	if outName != "" {
		err = vm.Save(outName, i.Mem)
	}
}
