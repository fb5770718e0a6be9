// Package cpu implements the execution engine and assembler for the LISC-16
// system.
//
// The machine consists of a 16-bit program counter (PC), sixteen 16-bit
// general-purpose registers (r0-r15), a flat memory of 65536 words addressed
// through register contents, and a separate 65536-slot program store. Each
// instruction is a single 16-bit word with a 4-bit opcode; every opcode has
// a fixed tick cost that is accumulated as the program runs.
//
// The assembler provides a small assembly language for the instruction set,
// supporting labels, equates, macros, and compile-time expression evaluation.
package cpu
