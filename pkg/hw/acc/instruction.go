package acc

import "fmt"

// Opcode identifies one of the 8 machine instructions. Opcode 0 is
// reserved: decoding it fails, and an all-zero (opcode, address) pair is
// treated as empty memory by the program listing.
type Opcode Word

const (
	OpAdd Opcode = iota + 1
	OpAnd
	OpOrr
	OpXor
	OpLdr
	OpStr
	OpJmp
	OpJne
)

// String returns the instruction mnemonic.
func (op Opcode) String() string {
	switch op {
	case OpAdd:
		return "ADD"
	case OpAnd:
		return "AND"
	case OpOrr:
		return "ORR"
	case OpXor:
		return "XOR"
	case OpLdr:
		return "LDR"
	case OpStr:
		return "STR"
	case OpJmp:
		return "JMP"
	case OpJne:
		return "JNE"
	default:
		return fmt.Sprintf("unknown(%d)", Word(op))
	}
}

// Instruction is a decoded instruction: an opcode and its single
// address-width operand. Immutable once constructed by Decode; it is
// rebuilt from memory every cycle and never stored.
type Instruction struct {
	Op   Opcode
	Addr Word
}

// Decode maps raw instruction data to a typed Instruction. This is the
// single construction point for instructions. The operand address is
// masked to the architecture width; an opcode outside the instruction
// set fails with ErrUnknownOpcode.
func Decode(data InstructionData) (Instruction, error) {
	op := Opcode(data.Opcode)

	switch op {
	case OpAdd, OpAnd, OpOrr, OpXor, OpLdr, OpStr, OpJmp, OpJne:
		return Instruction{Op: op, Addr: data.Address & WordMask}, nil
	}

	return Instruction{}, makeError(ErrUnknownOpcode, "%d", data.Opcode)
}

// Execute applies the instruction's effect to the state. The program
// counter advances by InstructionSize unless a branch was taken, and
// both the accumulator and the program counter are masked to the
// architecture width afterwards.
func (in Instruction) Execute(s *State) {
	jumped := false

	switch in.Op {
	case OpAdd:
		s.Acc += s.Memory[in.Addr]
	case OpAnd:
		s.Acc &= s.Memory[in.Addr]
	case OpOrr:
		s.Acc |= s.Memory[in.Addr]
	case OpXor:
		s.Acc ^= s.Memory[in.Addr]
	case OpLdr:
		s.Acc = s.Memory[in.Addr]
	case OpStr:
		s.Memory[in.Addr] = s.Acc
	case OpJmp:
		s.PC = in.Addr
		jumped = true
	case OpJne:
		if s.Acc != 0 {
			s.PC = in.Addr
			jumped = true
		}
	}

	if !jumped {
		s.PC += InstructionSize
	}

	s.Acc &= WordMask
	s.PC &= WordMask
}

// String returns the human readable form of the instruction, e.g.
// "ADD: ACC <- ACC + [10]". Used by the program listing only.
func (in Instruction) String() string {
	switch in.Op {
	case OpAdd:
		return fmt.Sprintf("ADD: ACC <- ACC + [%d]", in.Addr)
	case OpAnd:
		return fmt.Sprintf("AND: ACC <- ACC & [%d]", in.Addr)
	case OpOrr:
		return fmt.Sprintf("ORR: ACC <- ACC | [%d]", in.Addr)
	case OpXor:
		return fmt.Sprintf("XOR: ACC <- ACC ^ [%d]", in.Addr)
	case OpLdr:
		return fmt.Sprintf("LDR: ACC <- [%d]", in.Addr)
	case OpStr:
		return fmt.Sprintf("STR: ACC -> [%d]", in.Addr)
	case OpJmp:
		return fmt.Sprintf("JMP: PC  <- %d", in.Addr)
	case OpJne:
		return fmt.Sprintf("JNE: PC  <- %d if ACC != 0", in.Addr)
	default:
		return fmt.Sprintf("???: opcode %d", Word(in.Op))
	}
}
