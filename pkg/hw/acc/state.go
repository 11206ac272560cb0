package acc

// State is the complete processor state: accumulator, program counter
// and linear memory. It is pure data; instructions mutate it and the
// Emulator owns it. Copying the struct copies the memory array, so a
// plain assignment produces a fully independent duplicate.
type State struct {
	// Acc is the single general purpose register.
	Acc Word
	// PC is the address of the next instruction to fetch.
	PC Word
	// Memory is the byte-addressed memory, one word per address.
	Memory [MemorySize]Word
}

// InstructionData is the raw (opcode, operand address) pair fetched from
// memory. Decode turns it into a typed Instruction.
type InstructionData struct {
	Opcode  Word
	Address Word
}

// Fetch reads the two cells at PC as raw instruction data. There is no
// bounds check beyond the fixed memory length: an out-of-range PC is a
// fatal indexing panic, distinct from the odd-PC halt condition which
// the run loop checks before fetching.
func (s *State) Fetch() InstructionData {
	return InstructionData{
		Opcode:  s.Memory[s.PC],
		Address: s.Memory[s.PC+1],
	}
}
