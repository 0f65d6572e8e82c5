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
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// Snapshot layout, all values little endian:
//
//	magic   [4]byte "ICVM"
//	version byte
//	flags   byte    bit 0: halted, bit 1: blocked
//	pc      int64
//	rb      int64
//	n       uint64  number of memory cells
//	mem     [n]int64
const (
	snapMagic   = "ICVM"
	snapVersion = 1
	snapHeader  = len(snapMagic) + 2 + 3*8

	flagHalted  = 1 << 0
	flagBlocked = 1 << 1
)

func (i *Instance) flags() byte {
	var f byte
	if i.halted {
		f |= flagHalted
	}
	if i.blocked {
		f |= flagBlocked
	}
	return f
}

// appendState appends the registers and the first n memory cells to b.
func (i *Instance) appendState(b []byte, n int) []byte {
	b = append(b, i.flags())
	b = binary.LittleEndian.AppendUint64(b, uint64(i.PC))
	b = binary.LittleEndian.AppendUint64(b, uint64(i.rb))
	b = binary.LittleEndian.AppendUint64(b, uint64(n))
	for _, v := range i.Mem[:n] {
		b = binary.LittleEndian.AppendUint64(b, uint64(v))
	}
	return b
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding captures the
// complete machine state, including a pending input instruction.
func (i *Instance) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, snapHeader+8*len(i.Mem))
	b = append(b, snapMagic...)
	b = append(b, snapVersion)
	return i.appendState(b, len(i.Mem)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *Instance) UnmarshalBinary(data []byte) error {
	if len(data) < snapHeader || string(data[:len(snapMagic)]) != snapMagic {
		return errors.New("UnmarshalBinary: not an intcode snapshot")
	}
	p := data[len(snapMagic):]
	if p[0] != snapVersion {
		return errors.Errorf("UnmarshalBinary: unsupported snapshot version %d", p[0])
	}
	flags := p[1]
	p = p[2:]
	next := func() uint64 {
		v := binary.LittleEndian.Uint64(p)
		p = p[8:]
		return v
	}
	pc, rb, n := int64(next()), Cell(next()), next()
	if pc < 0 {
		return errors.Errorf("UnmarshalBinary: invalid pc %d", pc)
	}
	if n > uint64(len(p))/8 || uint64(len(p)) != n*8 {
		return errors.Errorf("UnmarshalBinary: expected %d cells, got %d bytes", n, len(p))
	}
	mem := make([]Cell, n)
	for k := range mem {
		mem[k] = Cell(next())
	}
	*i = Instance{
		PC:      int(pc),
		Mem:     mem,
		rb:      rb,
		halted:  flags&flagHalted != 0,
		blocked: flags&flagBlocked != 0,
	}
	return nil
}

// WriteSnapshot writes a zstd compressed snapshot of the instance to w.
func (i *Instance) WriteSnapshot(w io.Writer) error {
	data, err := i.MarshalBinary()
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return errors.Wrap(err, "WriteSnapshot")
	}
	if _, err = enc.Write(data); err != nil {
		enc.Close()
		return errors.Wrap(err, "WriteSnapshot")
	}
	return errors.Wrap(enc.Close(), "WriteSnapshot")
}

// ReadSnapshot reads a snapshot written by WriteSnapshot and returns a new
// instance ready to resume from the saved state.
func ReadSnapshot(r io.Reader) (*Instance, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "ReadSnapshot")
	}
	defer dec.Close()
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Wrap(err, "ReadSnapshot")
	}
	i := new(Instance)
	if err = i.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return i, nil
}

// Fingerprint returns a BLAKE3 digest of the machine state: PC, relative base,
// flags and memory. Trailing zero cells are ignored, so that two instances
// that only differ by how far their memory has grown have the same
// fingerprint.
func (i *Instance) Fingerprint() [32]byte {
	n := len(i.Mem)
	for n > 0 && i.Mem[n-1] == 0 {
		n--
	}
	h := blake3.New()
	h.Write(i.appendState(make([]byte, 0, 25+8*n), n))
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
