package acc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnalignedPC reports an odd program counter at the start of a cycle.
	ErrUnalignedPC = errors.New("unaligned program counter")

	// ErrUnknownOpcode reports a fetched opcode outside the instruction set.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrBreakpointsFull reports an insert into a full breakpoint table.
	ErrBreakpointsFull = errors.New("breakpoint table full")

	// ErrDuplicateBreakpoint reports an insert at an address that already
	// has a breakpoint.
	ErrDuplicateBreakpoint = errors.New("breakpoint address already in use")

	// ErrDuplicateName reports an insert with a name that already names
	// another breakpoint.
	ErrDuplicateName = errors.New("breakpoint name already in use")

	// ErrNoSuchBreakpoint reports a delete of a breakpoint that does not exist.
	ErrNoSuchBreakpoint = errors.New("no such breakpoint")

	// ErrBadStateFile reports a malformed or out-of-range persisted state.
	ErrBadStateFile = errors.New("malformed state file")
)

func makeError(err error, message string, args ...interface{}) error {
	return fmt.Errorf("%w: "+message, append([]any{err}, args...)...)
}
