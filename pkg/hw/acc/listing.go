package acc

import (
	"fmt"
	"io"
)

// WriteProgram writes a program listing of the full memory to w: one
// line per instruction-aligned offset with the raw opcode and address
// cells, followed by the decoded mnemonic when the pair decodes and is
// not the all-zero empty-memory sentinel.
func (e *Emulator) WriteProgram(w io.Writer) error {
	for offset := 0; offset < MemorySize; offset += InstructionSize {
		data := InstructionData{
			Opcode:  e.state.Memory[offset],
			Address: e.state.Memory[offset+1],
		}

		in, err := Decode(data)
		if err != nil || (data.Opcode == 0 && data.Address == 0) {
			if _, err := fmt.Fprintf(w, "%d:\t%d\t%d\n", offset, data.Opcode, data.Address); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%d:\t%d\t%d\t:\t%s\n", offset, data.Opcode, data.Address, in); err != nil {
			return err
		}
	}

	return nil
}
