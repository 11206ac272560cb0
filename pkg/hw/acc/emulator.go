package acc

import "fmt"

// StopReason indicates why a run stopped.
type StopReason int

const (
	// StopNone indicates the emulator has not run yet.
	StopNone StopReason = iota
	// StopCompleted indicates all requested steps executed.
	StopCompleted
	// StopBreakpoint indicates the run halted at a breakpoint.
	StopBreakpoint
	// StopAlignment indicates an odd program counter at the start of a cycle.
	StopAlignment
	// StopDecode indicates a fetched opcode outside the instruction set.
	StopDecode
	// StopInterrupted indicates a trace callback requested the stop.
	StopInterrupted
)

// String returns the string representation of a StopReason.
func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopCompleted:
		return "completed"
	case StopBreakpoint:
		return "breakpoint"
	case StopAlignment:
		return "alignment"
	case StopDecode:
		return "decode"
	case StopInterrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// RunResult contains the outcome of one Run invocation.
type RunResult struct {
	// Reason indicates why the run stopped.
	Reason StopReason
	// StepsExecuted is the number of instructions executed.
	StepsExecuted int
	// PC is the program counter when the run stopped.
	PC Word
	// Breakpoint is the breakpoint that halted the run, if any.
	Breakpoint *Breakpoint
	// Err is the fault that halted the run, if any.
	Err error
}

// Ok reports whether the run stopped without a fault. Halting at a
// breakpoint or on a trace callback is a success; alignment and decode
// faults are not.
func (r *RunResult) Ok() bool {
	return r.Err == nil
}

// TraceCallback observes each executed instruction: the step index
// within the run, the post-execution program counter and the decoded
// instruction. Return false to stop the run.
type TraceCallback func(step int, pc Word, in Instruction) bool

// Emulator owns one processor state, one breakpoint table and the cycle
// counter. All mutation of the machine flows through its methods; it is
// exclusively owned and not safe for concurrent use.
type Emulator struct {
	state       State
	breakpoints BreakpointTable
	totalCycles uint64
}

// NewEmulator creates an emulator with zeroed state and no breakpoints.
func NewEmulator() *Emulator {
	return &Emulator{}
}

// Clone returns a fully independent duplicate of the emulator. The
// memory array and the breakpoint table are copied, never aliased.
func (e *Emulator) Clone() *Emulator {
	return &Emulator{
		state:       e.state,
		breakpoints: BreakpointTable{entries: e.breakpoints.All()},
		totalCycles: e.totalCycles,
	}
}

// Run executes up to steps instructions. Each cycle checks alignment,
// fetches and decodes the instruction at PC, executes it, increments the
// cycle counter and then consults the breakpoint table at the new PC.
// Breakpoints are post-execution traps only: a breakpoint at the initial
// PC does not halt the run before the first instruction.
func (e *Emulator) Run(steps int) *RunResult {
	return e.run(steps, nil)
}

// RunWithTrace executes like Run, invoking the callback after every
// executed instruction. A false return stops the run with reason
// StopInterrupted.
func (e *Emulator) RunWithTrace(steps int, trace TraceCallback) *RunResult {
	return e.run(steps, trace)
}

func (e *Emulator) run(steps int, trace TraceCallback) *RunResult {
	result := &RunResult{Reason: StopCompleted, PC: e.state.PC}

	for step := 0; step < steps; step++ {
		if e.state.PC%2 != 0 {
			result.Reason = StopAlignment
			result.Err = makeError(ErrUnalignedPC, "pc=%d", e.state.PC)
			break
		}

		in, err := Decode(e.state.Fetch())
		if err != nil {
			result.Reason = StopDecode
			result.Err = makeError(err, "at address %d", e.state.PC)
			break
		}

		in.Execute(&e.state)
		e.totalCycles++
		result.StepsExecuted++

		if trace != nil && !trace(step, e.state.PC, in) {
			result.Reason = StopInterrupted
			break
		}

		if idx, found := e.breakpoints.FindByAddress(e.state.PC); found {
			bp := e.breakpoints.At(idx)
			result.Reason = StopBreakpoint
			result.Breakpoint = &bp
			break
		}
	}

	result.PC = e.state.PC
	return result
}

// --- Breakpoint management ---

// InsertBreakpoint adds a named breakpoint at the given address.
func (e *Emulator) InsertBreakpoint(address Word, name string) error {
	return e.breakpoints.Insert(address, name)
}

// DeleteBreakpoint removes the breakpoint at the given address.
func (e *Emulator) DeleteBreakpoint(address Word) error {
	return e.breakpoints.DeleteByAddress(address)
}

// DeleteBreakpointByName removes the breakpoint with the given name.
func (e *Emulator) DeleteBreakpointByName(name string) error {
	return e.breakpoints.DeleteByName(name)
}

// FindBreakpoint returns the breakpoint at the given address, if any.
func (e *Emulator) FindBreakpoint(address Word) (Breakpoint, bool) {
	idx, found := e.breakpoints.FindByAddress(address)
	if !found {
		return Breakpoint{}, false
	}
	return e.breakpoints.At(idx), true
}

// FindBreakpointByName returns the breakpoint with the given name, if any.
func (e *Emulator) FindBreakpointByName(name string) (Breakpoint, bool) {
	idx, found := e.breakpoints.FindByName(name)
	if !found {
		return Breakpoint{}, false
	}
	return e.breakpoints.At(idx), true
}

// Breakpoints returns the live breakpoints in table order.
func (e *Emulator) Breakpoints() []Breakpoint {
	return e.breakpoints.All()
}

// NumBreakpoints returns the number of live breakpoints.
func (e *Emulator) NumBreakpoints() int {
	return e.breakpoints.Count()
}

// --- Inspection ---

// ReadAcc returns the accumulator.
func (e *Emulator) ReadAcc() Word {
	return e.state.Acc
}

// ReadPC returns the program counter.
func (e *Emulator) ReadPC() Word {
	return e.state.PC
}

// ReadMem returns the memory cell at the given address. The address is
// masked to the architecture width first.
func (e *Emulator) ReadMem(address Word) Word {
	return e.state.Memory[address&WordMask]
}

// Cycles returns the number of successfully executed instructions.
func (e *Emulator) Cycles() uint64 {
	return e.totalCycles
}

// IsZero reports whether the accumulator is zero.
func (e *Emulator) IsZero() bool {
	return e.state.Acc == 0
}

// IsBreakpoint reports whether the current PC has a live breakpoint.
func (e *Emulator) IsBreakpoint() bool {
	_, found := e.breakpoints.FindByAddress(e.state.PC)
	return found
}
