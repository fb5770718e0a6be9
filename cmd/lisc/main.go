// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/ezrec/lisc/cpu"
	"github.com/ezrec/lisc/emulator"
	"github.com/ezrec/lisc/io"
)

func main() {
	var compile string
	var rom string
	var write string
	var entry string
	var limit int
	var timeout time.Duration
	var dump bool
	var memory bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&rom, "r", "", ".rom image to load")
	flag.StringVar(&write, "w", "", "Write program to .rom image, do not execute")
	flag.StringVar(&entry, "e", "0", "Entry point, as an address or a label")
	flag.IntVar(&limit, "n", emulator.DEFAULT_LIMIT, "Instruction limit (0 for none)")
	flag.DurationVar(&timeout, "t", 0, "Run timeout (0 for none)")
	flag.BoolVar(&dump, "d", false, "Dump CPU state after the run")
	flag.BoolVar(&memory, "m", false, "Include written memory in the dump")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 && len(rom) != 0 {
		log.Fatalf("%v: -c and -r are mutually exclusive", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Limit = limit

	labels := map[string]int{}

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		labels = asm.Label
	}

	// Load an existing image.
	if len(rom) != 0 {
		inf, err := os.Open(rom)
		if err != nil {
			log.Fatalf("%v: %v", rom, err)
		}
		defer inf.Close()

		image := &io.Rom{}
		_, err = image.ReadFrom(inf)
		if err != nil {
			log.Fatalf("%v: %v", rom, err)
		}
		emu.Program = image.Program()
	}

	if len(write) != 0 {
		ouf, err := os.Create(write)
		if err != nil {
			log.Fatalf("%v: %v", write, err)
		}
		defer ouf.Close()

		image := &io.Rom{Data: emu.Program.Binary()}
		_, err = image.WriteTo(ouf)
		if err != nil {
			log.Fatalf("%v: %v", write, err)
		}
		return
	}

	pc, ok := labels[entry]
	if !ok {
		value, err := strconv.ParseUint(entry, 0, 16)
		if err != nil {
			log.Fatalf("%v: -e %v: %v", os.Args[0], entry, err)
		}
		pc = int(value)
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err = emu.Run(ctx, uint16(pc))

	if dump {
		dumper := &io.Dump{Output: os.Stdout, Memory: memory}
		if derr := dumper.Write(emu.Cpu); derr != nil {
			log.Print(derr)
		}
	}

	if err != nil {
		log.Fatal(err)
	}
}
