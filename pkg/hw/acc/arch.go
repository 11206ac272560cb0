// Package acc implements an emulator for a minimal educational
// accumulator machine: one accumulator register, one program counter,
// a linear byte-addressed memory and an 8-instruction set.
package acc

// Word holds any value the machine manipulates. It is wider than the
// architecture word so that intermediate results (e.g. an ADD overflow)
// survive until the architecture mask is applied; every value at rest
// is canonical, i.e. <= MaxValue.
type Word uint16

const (
	// WordBits is the fixed word width of the architecture.
	WordBits = 8

	// WordMask truncates a value to the architecture word width.
	WordMask Word = 1<<WordBits - 1

	// MaxValue is the largest value any register or memory cell can hold.
	MaxValue = WordMask

	// MemorySize is the number of addressable memory cells.
	MemorySize = 1 << WordBits

	// InstructionSize is the span consumed per instruction:
	// one opcode cell plus one operand address cell.
	InstructionSize = 2

	// MaxInstructions is the number of distinct instruction addresses,
	// and therefore the breakpoint table capacity.
	MaxInstructions = MemorySize / InstructionSize
)
