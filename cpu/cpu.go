package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

// Status is the run state of the CPU.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_STOPPED = Status(0) // stopped
	STATUS_RUNNING = Status(1) // running
)

var _cpu_defines = map[string]string{
	"REGISTER_COUNT":  fmt.Sprintf("%d", REGISTER_COUNT),
	"MEMORY_SIZE":     fmt.Sprintf("0x%x", MEMORY_SIZE),
	"PROGRAM_SIZE":    fmt.Sprintf("0x%x", PROGRAM_SIZE),
	"MEMORY_SENTINEL": fmt.Sprintf("0x%x", MEMORY_SENTINEL),
}

// Cpu is the simulation context for a single LISC-16 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       uint16                 // Program counter, an index into Store.
	Register [REGISTER_COUNT]uint16 // Register file.
	Memory   *[MEMORY_SIZE]uint16   // Data memory.
	Store    *[PROGRAM_SIZE]Code    // Program store.
	Status   Status                 // Run state.
	Fault    error                  // Error that stopped the CPU, if any.

	Ticks uint64 // CPU ticks counter.
}

// NewCpu creates a new CPU with its own memory and program store,
// in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Memory: new([MEMORY_SIZE]uint16),
		Store:  new([PROGRAM_SIZE]Code),
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("%6s: %04X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("%6s: %v\n", "status", cpu.Status)
	text += fmt.Sprintf("%6s: %d\n", "ticks", cpu.Ticks)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("%6s: %04X\n", CodeReg(n).String(), val)
	}

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Fills memory with MEMORY_SENTINEL.
// - Fills the program store with CODE_HALT.
// - Zeros the program counter and tick counter.
// - Stops the CPU.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	for n := range cpu.Memory {
		cpu.Memory[n] = MEMORY_SENTINEL
	}
	for n := range cpu.Store {
		cpu.Store[n] = CODE_HALT
	}

	cpu.Pc = 0
	cpu.Ticks = 0
	cpu.Status = STATUS_STOPPED
	cpu.Fault = nil
}

// LoadProgram copies codes into the program store starting at slot 0,
// and fills the remaining slots with CODE_HALT.
// A program larger than the store is rejected, and the store is unchanged.
func (cpu *Cpu) LoadProgram(codes []Code) (err error) {
	if len(codes) > len(cpu.Store) {
		err = ErrProgramTooLong
		return
	}

	n := copy(cpu.Store[:], codes)
	for ; n < len(cpu.Store); n++ {
		cpu.Store[n] = CODE_HALT
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d codes", len(codes))
	}

	return
}

// Enter sets the program counter and marks the CPU as running,
// without executing any instructions.
func (cpu *Cpu) Enter(pc uint16) {
	if cpu.Verbose {
		log.Printf("cpu: enter at %04x", pc)
	}

	cpu.Pc = pc
	cpu.Status = STATUS_RUNNING
	cpu.Fault = nil
}

// Start enters at pc, and runs until the CPU stops.
// There is no limit on the number of instructions executed; hosts
// needing one should drive Cycle() directly.
func (cpu *Cpu) Start(pc uint16) (err error) {
	cpu.Enter(pc)

	for cpu.Status == STATUS_RUNNING {
		_, err = cpu.Cycle()
		if err != nil {
			return
		}
	}

	return
}

// FetchCode fetches the instruction at the program counter,
// and advances the program counter.
func (cpu *Cpu) FetchCode() (code Code) {
	code = cpu.Store[cpu.Pc]
	cpu.Pc++

	return
}

// Cycle fetches, decodes and executes a single instruction,
// returning the ticks charged for it.
func (cpu *Cpu) Cycle() (ticks int, err error) {
	if cpu.Status != STATUS_RUNNING {
		err = ErrStopped
		return
	}

	code := cpu.FetchCode()

	ticks, err = cpu.Execute(code)

	return
}

// Execute executes a single decoded instruction, and charges its ticks.
// If the instruction faults, the CPU is stopped and the fault recorded.
func (cpu *Cpu) Execute(code Code) (ticks int, err error) {
	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.Pc-1, code)
	}

	entry := lookup(code.Op())
	if entry.execute == nil {
		return
	}

	err = entry.execute(cpu, code)

	ticks = entry.ticks
	cpu.Ticks += uint64(ticks)

	if err != nil {
		err = errors.Join(ErrOpcode(code), err)
		cpu.Status = STATUS_STOPPED
		cpu.Fault = err
		if cpu.Verbose {
			log.Printf("cpu: fault %v", err)
		}
	}

	return
}
