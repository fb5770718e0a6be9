package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location and generated instructions.
type Opcode struct {
	LineNo    int
	Ip        int
	Words     []string
	Codes     []Code
	LinkLabel string
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the listing entry that generated the code at ip.
func (prog *Program) Debug(ip uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(ip) >= op.Ip && int(ip) < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(ip) - op.Ip,
			}
			break
		}
	}

	return
}

// Binary returns the flat program image, suitable for Cpu.LoadProgram.
// Slots not covered by the listing are filled with CODE_HALT.
// A listing past the end of the program store yields an image longer
// than PROGRAM_SIZE, which Cpu.LoadProgram rejects.
func (prog *Program) Binary() (codes []Code) {
	for _, op := range prog.Opcodes {
		for n, code := range op.Codes {
			ip := op.Ip + n
			for len(codes) <= ip {
				codes = append(codes, CODE_HALT)
			}
			codes[ip] = code
		}
	}

	return
}

// Codes iterates over every generated code and its program store index.
// Codes past the end of the program store are not yielded.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(ip uint16, code Code) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				ip := op.Ip + n
				if ip < 0 || ip >= PROGRAM_SIZE {
					continue
				}
				if !yield(uint16(ip), code) {
					return
				}
			}
		}
	}
}
