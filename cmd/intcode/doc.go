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

// The intcode command line tool runs Intcode programs interactively and is a
// showcase for the package github.com/db47h/intcode/vm.
//
// Usage:
//
//	-ascii
//		  ASCII text input and output
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  disassemble program and exit
//	-dump
//		  dump memory upon exit
//	-image filename
//		  Load program from file filename (default "input.txt")
//	-in values
//		  comma separated initial input values (can be specified multiple times)
//	-o filename
//		  save memory to program filename upon exit
//	-peek addr
//		  print memory cell at addr upon exit (can be specified multiple times)
//	-raw
//		  raw terminal input, one keystroke per input value
//	-resume filename
//		  resume from snapshot filename instead of loading a program
//	-save filename
//		  save a snapshot to filename when input runs out
//	-set addr=value
//		  patch memory with addr=value before running (can be specified multiple times)
//
// The program is first run with the values given by -in. Each time it blocks
// waiting for input, the next line is read from stdin and fed to the program:
// comma separated values by default, or the character codes of the line
// followed by a newline with -ascii. Output values are printed one per line.
// With -ascii, output in the ASCII range is printed as text. The run stops
// when the program halts or faults, or at the end of stdin.
//
// -debug: prints a full stacktrace and the VM registers should the VM fault.
//
// -raw: switches the terminal to raw mode (linux only) and sends each
// keystroke as soon as it is typed. CTRL-D ends input.
//
// -save, -resume: when stdin runs out while the program is still waiting for
// input, -save writes a compressed snapshot of the whole VM state. -resume
// starts from such a snapshot, so that a session can be continued later:
//
//	intcode -image day25.txt -ascii -save game.icvm < moves.txt
//	intcode -resume game.icvm -ascii
//
// -set: patches memory after loading, before running. This is typically used
// to set entry parameters:
//
//	intcode -image day2.txt -set 1=12 -set 2=2 -peek 0
//
// -dump, -peek, -o: inspect or save the final memory, in program text form.
package main
