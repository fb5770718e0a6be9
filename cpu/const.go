package cpu

const (
	REGISTER_COUNT  = 16      // Number of general purpose registers.
	MEMORY_SIZE     = 0x10000 // Words of data memory.
	PROGRAM_SIZE    = 0x10000 // Slots in the program store.
	MEMORY_SENTINEL = 0xffff  // Fill value of memory after reset.
)

// CODE_HALT fills the program store beyond the end of a loaded program.
const CODE_HALT = Code(0x0000)
