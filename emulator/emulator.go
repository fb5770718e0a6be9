// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/lisc/cpu"
	"github.com/ezrec/lisc/internal"
)

const (
	DEFAULT_LIMIT = 10_000_000 // Default instruction limit for command line runs.
)

var _emulator_defines = map[string]string{
	"DEFAULT_LIMIT": fmt.Sprintf("%v", DEFAULT_LIMIT),
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
	Limit    int          // Maximum instructions per Run(), or 0 for no limit.

	steps int
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the CPU, and load the current program into its store.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()
	emu.steps = 0

	err = emu.Cpu.LoadProgram(emu.Program.Binary())
	if err != nil {
		return
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() uint64 {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc)
}

// Code returns the current instruction code.
func (emu *Emulator) Code() cpu.Code {
	return emu.Cpu.Store[emu.Cpu.Pc]
}

// LineNo returns the current line number for the executing opcode,
// or 0 if the program counter is outside of the program listing.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.Opcode.LineNo
}

// Enter prepares the emulator to run from the entry point.
func (emu *Emulator) Enter(entry uint16) {
	emu.Cpu.Verbose = emu.Verbose
	emu.steps = 0
	emu.Cpu.Enter(entry)
}

// Tick performs a single instruction cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Cpu.Status != cpu.STATUS_RUNNING {
		done = true
		return
	}

	if emu.Limit > 0 && emu.steps >= emu.Limit {
		err = ErrStepLimit(emu.Limit)
		return
	}

	_, err = emu.Cpu.Cycle()
	emu.steps++
	if err != nil {
		return
	}

	done = emu.Cpu.Status != cpu.STATUS_RUNNING

	return
}

// Run enters the program at entry, and ticks until the CPU stops,
// faults, exceeds the step limit, or ctx is cancelled.
func (emu *Emulator) Run(ctx context.Context, entry uint16) (err error) {
	emu.Enter(entry)

	for {
		err = ctx.Err()
		if err != nil {
			if emu.Verbose {
				log.Printf("emulator: %v", err)
			}
			emu.Cpu.Status = cpu.STATUS_STOPPED
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil {
			if emu.Verbose {
				log.Printf("emulator: %v", err)
			}
			return
		}
		if done {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: stopped at %04x after %d ticks", emu.Cpu.Pc, emu.Cpu.Ticks)
	}

	return
}
