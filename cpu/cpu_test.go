package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	cpu.Register[3] = 0x1234
	cpu.Memory[0x100] = 0
	cpu.Store[7] = MakeCode(OP_ADD, REG_R0, REG_R1, REG_R2)
	cpu.Pc = 0x55
	cpu.Ticks = 99
	cpu.Status = STATUS_RUNNING

	cpu.Reset()

	assert.Equal([REGISTER_COUNT]uint16{}, cpu.Register)
	assert.Equal(uint16(MEMORY_SENTINEL), cpu.Memory[0x100])
	assert.Equal(uint16(MEMORY_SENTINEL), cpu.Memory[0])
	assert.Equal(uint16(MEMORY_SENTINEL), cpu.Memory[MEMORY_SIZE-1])
	assert.Equal(CODE_HALT, cpu.Store[7])
	assert.Equal(uint16(0), cpu.Pc)
	assert.Equal(uint64(0), cpu.Ticks)
	assert.Equal(STATUS_STOPPED, cpu.Status)
	assert.NoError(cpu.Fault)
}

func TestCpuIsolated(t *testing.T) {
	assert := assert.New(t)

	a := NewCpu()
	b := NewCpu()

	a.Memory[10] = 1
	a.Store[10] = MakeCode(OP_ADD, REG_R0, REG_R0, REG_R0)

	assert.Equal(uint16(MEMORY_SENTINEL), b.Memory[10])
	assert.Equal(CODE_HALT, b.Store[10])
}

func TestCpuLoadProgram(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	// Leave junk past the end of the next program.
	for n := range 8 {
		cpu.Store[n] = MakeCode(OP_XOR, REG_R1, REG_R1, REG_R1)
	}

	program := []Code{
		MakeCode(OP_ADD, REG_R0, REG_R1, REG_R2),
		MakeCode(OP_SUB, REG_R0, REG_R1, REG_R2),
	}
	err := cpu.LoadProgram(program)
	assert.NoError(err)

	assert.Equal(program[0], cpu.Store[0])
	assert.Equal(program[1], cpu.Store[1])
	for n := len(program); n < PROGRAM_SIZE; n++ {
		if cpu.Store[n] != CODE_HALT {
			t.Fatalf("slot %d is %v, not halt", n, cpu.Store[n])
		}
	}

	full := make([]Code, PROGRAM_SIZE)
	assert.NoError(cpu.LoadProgram(full))

	cpu.Store[0] = MakeCode(OP_MUL, REG_R1, REG_R1, REG_R1)
	err = cpu.LoadProgram(make([]Code, PROGRAM_SIZE+1))
	assert.ErrorIs(err, ErrProgramTooLong)
	assert.Equal(MakeCode(OP_MUL, REG_R1, REG_R1, REG_R1), cpu.Store[0])
}

func TestCpuStartAddHalt(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.LoadProgram([]Code{
		MakeCode(OP_ADD, REG_R0, REG_R1, REG_R2),
		MakeCode(OP_STP, REG_R0, REG_R0, REG_R0),
	})
	assert.NoError(err)

	cpu.Register[1] = 5
	cpu.Register[2] = 7

	err = cpu.Start(0)
	assert.NoError(err)

	assert.Equal(uint16(12), cpu.Register[0])
	assert.Equal(uint64(10), cpu.Ticks)
	assert.Equal(STATUS_STOPPED, cpu.Status)
	assert.Equal(uint16(2), cpu.Pc)
}

func TestCpuCycle(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	// Stopped CPU does nothing.
	ticks, err := cpu.Cycle()
	assert.ErrorIs(err, ErrStopped)
	assert.Equal(0, ticks)
	assert.Equal(uint16(0), cpu.Pc)
	assert.Equal(uint64(0), cpu.Ticks)

	err = cpu.LoadProgram([]Code{
		MakeCodeImm(OP_SLB, REG_R1, 3),
		MakeCode(OP_MUL, REG_R2, REG_R1, REG_R1),
		MakeCode(OP_STP, REG_R0, REG_R0, REG_R0),
	})
	assert.NoError(err)

	cpu.Enter(0)
	assert.Equal(STATUS_RUNNING, cpu.Status)

	expected := []int{4, 16, 2}
	for n, cost := range expected {
		ticks, err = cpu.Cycle()
		assert.NoError(err)
		assert.Equal(cost, ticks)
		assert.Equal(uint16(n+1), cpu.Pc)
	}

	assert.Equal(uint16(9), cpu.Register[2])
	assert.Equal(uint64(22), cpu.Ticks)
	assert.Equal(STATUS_STOPPED, cpu.Status)

	_, err = cpu.Cycle()
	assert.ErrorIs(err, ErrStopped)
}

func TestCpuStpOperands(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	for word := range 0x1000 {
		cpu.Store[0x40] = Code(word)
		cpu.Enter(0x40)

		ticks, err := cpu.Cycle()
		assert.NoError(err)
		assert.Equal(2, ticks)
		assert.Equal(STATUS_STOPPED, cpu.Status)
		assert.Equal(uint16(0x41), cpu.Pc)
	}
}

func TestCpuPcWrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Store[0xffff] = MakeCode(OP_XOR, REG_R0, REG_R0, REG_R0)

	err := cpu.Start(0xffff)
	assert.NoError(err)

	// Wrapped to slot 0, which is halt.
	assert.Equal(uint16(1), cpu.Pc)
	assert.Equal(uint64(4+2), cpu.Ticks)
}

func TestCpuDivideByZero(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.LoadProgram([]Code{
		MakeCode(OP_DIV, REG_R0, REG_R1, REG_R2),
		MakeCode(OP_ADD, REG_R3, REG_R1, REG_R1),
	})
	assert.NoError(err)

	cpu.Register[0] = 0xbeef
	cpu.Register[1] = 7

	err = cpu.Start(0)
	assert.ErrorIs(err, ErrDivideByZero)

	var eo ErrOpcode
	assert.True(errors.As(err, &eo))
	assert.Equal(MakeCode(OP_DIV, REG_R0, REG_R1, REG_R2), Code(eo))

	assert.Equal(STATUS_STOPPED, cpu.Status)
	assert.ErrorIs(cpu.Fault, ErrDivideByZero)
	assert.Equal(uint16(0xbeef), cpu.Register[0])
	assert.Equal(uint16(0), cpu.Register[3])
	assert.Equal(uint16(1), cpu.Pc)
	assert.Equal(uint64(32), cpu.Ticks)

	// Re-entering clears the fault.
	cpu.Register[2] = 2
	err = cpu.Start(0)
	assert.NoError(err)
	assert.NoError(cpu.Fault)
	assert.Equal(uint16(3), cpu.Register[0])
	assert.Equal(uint16(14), cpu.Register[3])
}

func TestCpuTickSum(t *testing.T) {
	assert := assert.New(t)

	program := []Code{
		MakeCodeImm(OP_SLB, REG_R1, 1),           // 4
		MakeCodeImm(OP_SLB, REG_R2, 2),           // 4
		MakeCode(OP_JIE, REG_R1, REG_R2, REG_R0), // 6, not taken
		MakeCode(OP_JIL, REG_R2, REG_R1, REG_R0), // 6, not taken
		MakeCode(OP_STR, REG_R1, REG_R2, REG_R0), // 12
		MakeCode(OP_LOD, REG_R3, REG_R2, REG_R0), // 8
		MakeCode(OP_NND, REG_R4, REG_R3, REG_R3), // 4
		MakeCode(OP_DIV, REG_R5, REG_R4, REG_R2), // 32
		MakeCode(OP_STP, REG_R0, REG_R0, REG_R0), // 2
	}

	cpu := NewCpu()
	assert.NoError(cpu.LoadProgram(program))
	assert.NoError(cpu.Start(0))

	var sum uint64
	for _, code := range program {
		sum += uint64(code.Op().Ticks())
	}

	assert.Equal(sum, cpu.Ticks)
	assert.Equal(uint64(78), cpu.Ticks)
	assert.Equal(uint16(1), cpu.Memory[2])
	assert.Equal(uint16(0xfffe), cpu.Register[4])
	assert.Equal(uint16(0x7fff), cpu.Register[5])
}

func TestCpuExecuteNoop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	defer func(entry opEntry) { opTable[OP_XOR] = entry }(opTable[OP_XOR])

	// An opcode without a handler is a zero cost no-op.
	opTable[OP_XOR] = opEntry{}
	cpu.Register[1] = 0x5555

	ticks, err := cpu.Execute(MakeCode(OP_XOR, REG_R1, REG_R1, REG_R1))
	assert.NoError(err)
	assert.Equal(0, ticks)
	assert.Equal(uint16(0x5555), cpu.Register[1])
	assert.Equal(uint64(0), cpu.Ticks)
}

func TestCpuDefines(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	defines := map[string]string{}
	for key, value := range cpu.Defines() {
		defines[key] = value
	}

	assert.Equal("16", defines["REGISTER_COUNT"])
	assert.Equal("0x10000", defines["MEMORY_SIZE"])
	assert.Equal("0xffff", defines["MEMORY_SENTINEL"])
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[15] = 0xabcd

	text := cpu.String()
	assert.Contains(text, "    pc: 0000\n")
	assert.Contains(text, "status: stopped\n")
	assert.Contains(text, "   r15: ABCD\n")
}

func TestCpuFaultMessage(t *testing.T) {
	assert := assert.New(t)

	err := ErrOpcode(MakeCode(OP_DIV, REG_R0, REG_R1, REG_R2))
	assert.Equal("fault in 0xf012 div r0 r1 r2", err.Error())
	assert.NotContains(err.Error(), "bad opcode")
}
