package io

import (
	"fmt"
	"io"

	"github.com/ezrec/lisc/cpu"
	"github.com/ezrec/lisc/translate"
)

// Dump writes a human readable report of the CPU state.
type Dump struct {
	Output io.Writer
	Memory bool // If set, also list memory words that differ from the sentinel.
}

// Write reports the state of cp to the output.
func (dc *Dump) Write(cp *cpu.Cpu) (err error) {
	_, err = io.WriteString(dc.Output, cp.String())
	if err != nil {
		return
	}

	if cp.Fault != nil {
		_, err = fmt.Fprintf(dc.Output, "%6s: %v\n", "fault", cp.Fault)
		if err != nil {
			return
		}
	}

	if !dc.Memory {
		return
	}

	var used int
	for _, word := range cp.Memory {
		if word != cpu.MEMORY_SENTINEL {
			used++
		}
	}

	_, err = translate.Printer().Fprintf(dc.Output, "memory: %d words written\n", used)
	if err != nil {
		return
	}

	for addr, word := range cp.Memory {
		if word == cpu.MEMORY_SENTINEL {
			continue
		}
		_, err = fmt.Fprintf(dc.Output, "  %04X: %04X\n", addr, word)
		if err != nil {
			return
		}
	}

	return
}
