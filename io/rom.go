// Package io provides program image and machine state I/O for the
// LISC-16 emulator.
package io

import (
	"bufio"
	"encoding/binary"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/lisc/cpu"
)

// Rom is a program image: a sequence of instruction words, stored
// as big-endian 16-bit values.
type Rom struct {
	Data []cpu.Code
}

var _ io.ReaderFrom = (*Rom)(nil)
var _ io.WriterTo = (*Rom)(nil)

// Codes iterates over the image, yielding program store index and code.
func (rc *Rom) Codes() iter.Seq2[uint16, cpu.Code] {
	return func(yield func(ip uint16, code cpu.Code) bool) {
		for n, code := range rc.Data {
			if !yield(uint16(n), code) {
				return
			}
		}
	}
}

// Program returns a listing of the image, one opcode per word.
// Line numbers are the word index plus one.
func (rc *Rom) Program() (prog *cpu.Program) {
	prog = &cpu.Program{}

	for ip, code := range rc.Codes() {
		prog.Opcodes = append(prog.Opcodes, cpu.Opcode{
			LineNo: int(ip) + 1,
			Ip:     int(ip),
			Words:  strings.Fields(code.String()),
			Codes:  []cpu.Code{code},
		})
	}

	return
}

// ReadFrom replaces the image with the words read from r.
func (rc *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	in := bufio.NewReader(r)

	rc.Data = rc.Data[:0]

	var word [2]byte
	for {
		var got int
		got, err = io.ReadFull(in, word[:])
		n += int64(got)
		if err == io.EOF {
			err = nil
			return
		}
		if err == io.ErrUnexpectedEOF {
			err = ErrRomPartial
			return
		}
		if err != nil {
			return
		}
		if len(rc.Data) == cpu.PROGRAM_SIZE {
			err = ErrRomSize
			return
		}
		rc.Data = append(rc.Data, cpu.Code(binary.BigEndian.Uint16(word[:])))
	}
}

// WriteTo writes the image to w.
func (rc *Rom) WriteTo(w io.Writer) (n int64, err error) {
	buf := make([]byte, 0, 2*len(rc.Data))
	for _, code := range rc.Data {
		buf = binary.BigEndian.AppendUint16(buf, uint16(code))
	}

	wrote, err := w.Write(buf)
	n = int64(wrote)

	return
}
