package cpu

import (
	"fmt"
)

// CodeOp is the 4-bit operation field of an instruction.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_STP = CodeOp(0x0) // stp
	OP_JAL = CodeOp(0x1) // jal
	OP_JIE = CodeOp(0x2) // jie
	OP_JIL = CodeOp(0x3) // jil
	OP_STR = CodeOp(0x4) // str
	OP_LOD = CodeOp(0x5) // lod
	OP_SHB = CodeOp(0x6) // shb
	OP_SLB = CodeOp(0x7) // slb
	OP_AND = CodeOp(0x8) // and
	OP_NND = CodeOp(0x9) // nnd
	OP_IOR = CodeOp(0xa) // ior
	OP_XOR = CodeOp(0xb) // xor
	OP_ADD = CodeOp(0xc) // add
	OP_SUB = CodeOp(0xd) // sub
	OP_MUL = CodeOp(0xe) // mul
	OP_DIV = CodeOp(0xf) // div
)

// OP_COUNT is the number of distinct opcodes.
const OP_COUNT = 16

// CodeReg is a register index.
type CodeReg int

//go:generate go tool stringer -linecomment -type=CodeReg
const (
	REG_R0  = CodeReg(0)  // r0
	REG_R1  = CodeReg(1)  // r1
	REG_R2  = CodeReg(2)  // r2
	REG_R3  = CodeReg(3)  // r3
	REG_R4  = CodeReg(4)  // r4
	REG_R5  = CodeReg(5)  // r5
	REG_R6  = CodeReg(6)  // r6
	REG_R7  = CodeReg(7)  // r7
	REG_R8  = CodeReg(8)  // r8
	REG_R9  = CodeReg(9)  // r9
	REG_R10 = CodeReg(10) // r10
	REG_R11 = CodeReg(11) // r11
	REG_R12 = CodeReg(12) // r12
	REG_R13 = CodeReg(13) // r13
	REG_R14 = CodeReg(14) // r14
	REG_R15 = CodeReg(15) // r15
)

// CodeForm selects how the low byte of an instruction is interpreted.
type CodeForm int

const (
	FORM_REG = CodeForm(0) // Three register indices: A, B, C.
	FORM_IMM = CodeForm(1) // Register A plus an 8-bit immediate.
)

// Code is a single 16-bit instruction word.
//
//	15..12  opcode
//	11..8   register A
//	 7..4   register B, or immediate bits 7..4
//	 3..0   register C, or immediate bits 3..0
type Code uint16

// MakeCode creates a register-triple instruction.
// Each field is masked to its width; excess bits are discarded.
func MakeCode(op CodeOp, a, b, c CodeReg) Code {
	return Code((uint16(op)&0xf)<<12 |
		(uint16(a)&0xf)<<8 |
		(uint16(b)&0xf)<<4 |
		(uint16(c)&0xf)<<0)
}

// MakeCodeImm creates a register plus immediate instruction.
// Each field is masked to its width; excess bits are discarded.
func MakeCodeImm(op CodeOp, a CodeReg, imm uint16) Code {
	return Code((uint16(op)&0xf)<<12 |
		(uint16(a)&0xf)<<8 |
		(imm&0xff)<<0)
}

// Op returns the opcode field.
func (code Code) Op() CodeOp {
	return CodeOp((code >> 12) & 0xf)
}

// A returns the register A field.
func (code Code) A() CodeReg {
	return CodeReg((code >> 8) & 0xf)
}

// B returns the register B field.
func (code Code) B() CodeReg {
	return CodeReg((code >> 4) & 0xf)
}

// C returns the register C field.
func (code Code) C() CodeReg {
	return CodeReg((code >> 0) & 0xf)
}

// Imm returns the 8-bit immediate field, which aliases B and C.
func (code Code) Imm() uint8 {
	return uint8(code & 0xff)
}

// Decode decodes and returns the opcode and its three register fields.
func (code Code) Decode() (op CodeOp, a, b, c CodeReg) {
	return code.Op(), code.A(), code.B(), code.C()
}

// ImmDecode decodes and returns the opcode, register A, and the immediate.
func (code Code) ImmDecode() (op CodeOp, a CodeReg, imm uint8) {
	return code.Op(), code.A(), code.Imm()
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	op := code.Op()

	switch op.Form() {
	case FORM_IMM:
		out = fmt.Sprintf("%v %v 0x%02x", op, code.A(), code.Imm())
		return
	}

	out = op.String()
	regs := []CodeReg{code.A(), code.B(), code.C()}
	for _, reg := range regs[:op.Args()] {
		out += " " + reg.String()
	}

	return
}
