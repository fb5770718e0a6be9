package cpu

// opEntry describes the semantics and cost of a single opcode.
type opEntry struct {
	execute func(cpu *Cpu, code Code) error // Handler; nil is a zero cost no-op.
	ticks   int                             // Fixed tick cost.
	form    CodeForm                        // Operand interpretation.
	args    int                             // Register operands used.
}

var opTable = [OP_COUNT]opEntry{
	OP_STP: {(*Cpu).opStp, 2, FORM_REG, 0},
	OP_JAL: {(*Cpu).opJal, 4, FORM_REG, 2},
	OP_JIE: {(*Cpu).opJie, 6, FORM_REG, 3},
	OP_JIL: {(*Cpu).opJil, 6, FORM_REG, 3},
	OP_STR: {(*Cpu).opStr, 12, FORM_REG, 2},
	OP_LOD: {(*Cpu).opLod, 8, FORM_REG, 2},
	OP_SHB: {(*Cpu).opShb, 4, FORM_IMM, 1},
	OP_SLB: {(*Cpu).opSlb, 4, FORM_IMM, 1},
	OP_AND: {(*Cpu).opAnd, 4, FORM_REG, 3},
	OP_NND: {(*Cpu).opNnd, 4, FORM_REG, 3},
	OP_IOR: {(*Cpu).opIor, 4, FORM_REG, 3},
	OP_XOR: {(*Cpu).opXor, 4, FORM_REG, 3},
	OP_ADD: {(*Cpu).opAdd, 8, FORM_REG, 3},
	OP_SUB: {(*Cpu).opSub, 8, FORM_REG, 3},
	OP_MUL: {(*Cpu).opMul, 16, FORM_REG, 3},
	OP_DIV: {(*Cpu).opDiv, 32, FORM_REG, 3},
}

// lookup returns the table entry for an opcode, or the zero entry
// for opcodes outside the table.
func lookup(op CodeOp) (entry opEntry) {
	if op >= 0 && int(op) < len(opTable) {
		entry = opTable[op]
	}
	return
}

// Ticks returns the fixed tick cost of the opcode.
func (op CodeOp) Ticks() int {
	return lookup(op).ticks
}

// Form returns how the low byte of the opcode's instruction is interpreted.
func (op CodeOp) Form() CodeForm {
	return lookup(op).form
}

// Args returns the number of register operands the opcode uses.
func (op CodeOp) Args() int {
	return lookup(op).args
}

func (cpu *Cpu) opStp(code Code) error {
	cpu.Status = STATUS_STOPPED
	return nil
}

// opJal links then jumps. The PC has already been advanced past the
// instruction by fetch; the link value is advanced once more.
func (cpu *Cpu) opJal(code Code) error {
	_, a, b, _ := code.Decode()
	cpu.Register[a] = cpu.Pc + 1
	cpu.Pc = cpu.Register[b]
	return nil
}

func (cpu *Cpu) opJie(code Code) error {
	_, a, b, c := code.Decode()
	if cpu.Register[a] == cpu.Register[b] {
		cpu.Pc = cpu.Register[c]
	}
	return nil
}

func (cpu *Cpu) opJil(code Code) error {
	_, a, b, c := code.Decode()
	if cpu.Register[a] < cpu.Register[b] {
		cpu.Pc = cpu.Register[c]
	}
	return nil
}

func (cpu *Cpu) opStr(code Code) error {
	_, a, b, _ := code.Decode()
	cpu.Memory[cpu.Register[b]] = cpu.Register[a]
	return nil
}

func (cpu *Cpu) opLod(code Code) error {
	_, a, b, _ := code.Decode()
	cpu.Register[a] = cpu.Memory[cpu.Register[b]]
	return nil
}

func (cpu *Cpu) opShb(code Code) error {
	_, a, imm := code.ImmDecode()
	cpu.Register[a] = (cpu.Register[a] & 0x00ff) | (uint16(imm) << 8)
	return nil
}

func (cpu *Cpu) opSlb(code Code) error {
	_, a, imm := code.ImmDecode()
	cpu.Register[a] = (cpu.Register[a] & 0xff00) | uint16(imm)
	return nil
}

func (cpu *Cpu) opAnd(code Code) error {
	_, a, b, c := code.Decode()
	cpu.Register[a] = cpu.Register[b] & cpu.Register[c]
	return nil
}

func (cpu *Cpu) opNnd(code Code) error {
	_, a, b, c := code.Decode()
	cpu.Register[a] = ^(cpu.Register[b] & cpu.Register[c])
	return nil
}

func (cpu *Cpu) opIor(code Code) error {
	_, a, b, c := code.Decode()
	cpu.Register[a] = cpu.Register[b] | cpu.Register[c]
	return nil
}

func (cpu *Cpu) opXor(code Code) error {
	_, a, b, c := code.Decode()
	cpu.Register[a] = cpu.Register[b] ^ cpu.Register[c]
	return nil
}

func (cpu *Cpu) opAdd(code Code) error {
	_, a, b, c := code.Decode()
	cpu.Register[a] = cpu.Register[b] + cpu.Register[c]
	return nil
}

func (cpu *Cpu) opSub(code Code) error {
	_, a, b, c := code.Decode()
	cpu.Register[a] = cpu.Register[b] - cpu.Register[c]
	return nil
}

func (cpu *Cpu) opMul(code Code) error {
	_, a, b, c := code.Decode()
	cpu.Register[a] = cpu.Register[b] * cpu.Register[c]
	return nil
}

// opDiv faults on a zero divisor, leaving the target register unchanged.
func (cpu *Cpu) opDiv(code Code) error {
	_, a, b, c := code.Decode()
	if cpu.Register[c] == 0 {
		return ErrDivideByZero
	}
	cpu.Register[a] = cpu.Register[b] / cpu.Register[c]
	return nil
}
