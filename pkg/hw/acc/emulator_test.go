package acc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInstruction stores an (opcode, address) pair at an
// instruction-aligned offset.
func writeInstruction(e *Emulator, offset Word, op Opcode, addr Word) {
	e.state.Memory[offset] = Word(op)
	e.state.Memory[offset+1] = addr
}

func TestNewEmulator(t *testing.T) {
	e := NewEmulator()

	assert.Equal(t, Word(0), e.ReadAcc())
	assert.Equal(t, Word(0), e.ReadPC())
	assert.Equal(t, uint64(0), e.Cycles())
	assert.Equal(t, 0, e.NumBreakpoints())
	assert.True(t, e.IsZero())
	assert.False(t, e.IsBreakpoint())
}

func TestEmulator_Run(t *testing.T) {
	t.Run("zero steps succeeds with no effect", func(t *testing.T) {
		e := NewEmulator()

		result := e.Run(0)

		assert.True(t, result.Ok())
		assert.Equal(t, StopCompleted, result.Reason)
		assert.Equal(t, 0, result.StepsExecuted)
		assert.Equal(t, uint64(0), e.Cycles())
	})

	t.Run("single ADD", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpAdd, 10)
		e.state.Memory[10] = 5

		result := e.Run(1)

		assert.True(t, result.Ok())
		assert.Equal(t, StopCompleted, result.Reason)
		assert.Equal(t, 1, result.StepsExecuted)
		assert.Equal(t, Word(5), e.ReadAcc())
		assert.Equal(t, Word(2), e.ReadPC())
		assert.Equal(t, uint64(1), e.Cycles())
	})

	t.Run("odd pc halts with an alignment fault", func(t *testing.T) {
		e := NewEmulator()
		e.state.PC = 1

		result := e.Run(1)

		assert.False(t, result.Ok())
		assert.Equal(t, StopAlignment, result.Reason)
		assert.ErrorIs(t, result.Err, ErrUnalignedPC)
		assert.Equal(t, 0, result.StepsExecuted)
		assert.Equal(t, uint64(0), e.Cycles())
	})

	t.Run("all-zero memory halts with a decode fault", func(t *testing.T) {
		e := NewEmulator()

		result := e.Run(1)

		assert.False(t, result.Ok())
		assert.Equal(t, StopDecode, result.Reason)
		assert.ErrorIs(t, result.Err, ErrUnknownOpcode)
		assert.Equal(t, uint64(0), e.Cycles())
	})

	t.Run("decode fault keeps the cycles of earlier steps", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpLdr, 10)
		// offset 2 holds no instruction

		result := e.Run(5)

		assert.Equal(t, StopDecode, result.Reason)
		assert.Equal(t, 1, result.StepsExecuted)
		assert.Equal(t, uint64(1), e.Cycles())
	})

	t.Run("JMP lands on the operand address", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpJmp, 40)

		result := e.Run(1)

		assert.True(t, result.Ok())
		assert.Equal(t, Word(40), e.ReadPC())
	})

	t.Run("loop executes until the counter reaches zero", func(t *testing.T) {
		e := NewEmulator()
		e.state.Memory[100] = 1
		writeInstruction(e, 0, OpLdr, 100) // acc <- mem[100]
		writeInstruction(e, 2, OpXor, 100) // acc <- acc ^ mem[100] = 0
		writeInstruction(e, 4, OpJne, 0)   // not taken once acc == 0
		writeInstruction(e, 6, OpJmp, 6)   // spin

		result := e.Run(3)

		assert.True(t, result.Ok())
		assert.Equal(t, Word(0), e.ReadAcc())
		assert.Equal(t, Word(6), e.ReadPC())
		assert.Equal(t, uint64(3), e.Cycles())
		assert.Equal(t, 3, result.StepsExecuted)
	})

	t.Run("cycles accumulate across runs", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpJmp, 0)

		e.Run(4)
		result := e.Run(3)

		assert.True(t, result.Ok())
		assert.Equal(t, uint64(7), e.Cycles())
	})
}

func TestEmulator_RunBreakpoints(t *testing.T) {
	t.Run("halts exactly at the step that lands on the breakpoint", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpAdd, 16)
		writeInstruction(e, 2, OpAdd, 16)
		writeInstruction(e, 4, OpAdd, 16)
		require.NoError(t, e.InsertBreakpoint(4, "loop"))

		result := e.Run(10)

		assert.True(t, result.Ok())
		assert.Equal(t, StopBreakpoint, result.Reason)
		assert.Equal(t, 2, result.StepsExecuted)
		assert.Equal(t, Word(4), e.ReadPC())
		require.NotNil(t, result.Breakpoint)
		assert.Equal(t, "loop", result.Breakpoint.Name)
		assert.True(t, e.IsBreakpoint())
	})

	t.Run("breakpoint at the initial pc is not a pre-execution trap", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpAdd, 16)
		require.NoError(t, e.InsertBreakpoint(0, "entry"))

		result := e.Run(1)

		assert.Equal(t, StopCompleted, result.Reason)
		assert.Equal(t, 1, result.StepsExecuted)
		assert.Equal(t, Word(2), e.ReadPC())
	})

	t.Run("jump back onto the initial pc does trigger", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpJmp, 0)
		require.NoError(t, e.InsertBreakpoint(0, "entry"))

		result := e.Run(5)

		assert.Equal(t, StopBreakpoint, result.Reason)
		assert.Equal(t, 1, result.StepsExecuted)
	})

	t.Run("odd breakpoint address never triggers", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpJmp, 0)
		require.NoError(t, e.InsertBreakpoint(3, "unreachable"))

		result := e.Run(8)

		assert.Equal(t, StopCompleted, result.Reason)
		assert.Equal(t, 8, result.StepsExecuted)
	})
}

func TestEmulator_RunWithTrace(t *testing.T) {
	t.Run("observes every executed instruction", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpLdr, 100)
		writeInstruction(e, 2, OpStr, 101)

		var ops []Opcode
		result := e.RunWithTrace(2, func(step int, pc Word, in Instruction) bool {
			ops = append(ops, in.Op)
			return true
		})

		assert.True(t, result.Ok())
		assert.Equal(t, []Opcode{OpLdr, OpStr}, ops)
	})

	t.Run("callback can stop the run", func(t *testing.T) {
		e := NewEmulator()
		writeInstruction(e, 0, OpJmp, 0)

		result := e.RunWithTrace(10, func(step int, pc Word, in Instruction) bool {
			return step < 2
		})

		assert.True(t, result.Ok())
		assert.Equal(t, StopInterrupted, result.Reason)
		assert.Equal(t, 3, result.StepsExecuted)
	})
}

func TestEmulator_Inspection(t *testing.T) {
	e := NewEmulator()
	e.state.Acc = 7
	e.state.PC = 4
	e.state.Memory[0xFF] = 9

	assert.Equal(t, Word(7), e.ReadAcc())
	assert.Equal(t, Word(4), e.ReadPC())
	assert.False(t, e.IsZero())

	t.Run("ReadMem masks the address", func(t *testing.T) {
		assert.Equal(t, Word(9), e.ReadMem(0xFF))
		assert.Equal(t, Word(9), e.ReadMem(0x1FF))
	})
}

func TestEmulator_Clone(t *testing.T) {
	e := NewEmulator()
	e.state.Acc = 42
	e.state.Memory[10] = 5
	require.NoError(t, e.InsertBreakpoint(4, "loop"))

	clone := e.Clone()

	t.Run("copies the full state", func(t *testing.T) {
		assert.Equal(t, Word(42), clone.ReadAcc())
		assert.Equal(t, Word(5), clone.ReadMem(10))
		assert.Equal(t, 1, clone.NumBreakpoints())
	})

	t.Run("no aliasing of memory", func(t *testing.T) {
		clone.state.Memory[10] = 99
		assert.Equal(t, Word(5), e.ReadMem(10))
	})

	t.Run("no aliasing of breakpoints", func(t *testing.T) {
		require.NoError(t, clone.InsertBreakpoint(8, "end"))
		require.NoError(t, clone.DeleteBreakpoint(4))

		assert.Equal(t, 1, e.NumBreakpoints())
		_, found := e.FindBreakpoint(4)
		assert.True(t, found)
	})
}
