package acc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// The persisted state format is line oriented:
//
//	<total_cycles>
//	<acc>
//	<pc>
//	<memory[0]>
//	...
//	<memory[MemorySize-1]>
//	[<breakpoint_addr> <breakpoint_name>]*
//
// Memory lines hold exactly one integer each; the trailing breakpoint
// pairs are whitespace separated and run to end of input.

// LoadState replaces the emulator's state with the one read from r.
// All breakpoints are cleared first. On any malformed line, out-of-range
// value or breakpoint that violates the table invariants, the load fails
// and the emulator's state is undefined for fields already written: the
// caller must not rely on the previous state surviving a failed load.
func (e *Emulator) LoadState(r io.Reader) error {
	e.breakpoints.Clear()

	br := bufio.NewReader(r)

	cycles, err := readHeaderValue(br, "total cycles", ^uint64(0))
	if err != nil {
		return err
	}
	e.totalCycles = cycles

	acc, err := readHeaderValue(br, "acc", uint64(MaxValue))
	if err != nil {
		return err
	}
	e.state.Acc = Word(acc)

	pc, err := readHeaderValue(br, "pc", MemorySize-1)
	if err != nil {
		return err
	}
	e.state.PC = Word(pc)

	for offset := 0; offset < MemorySize; offset++ {
		cell, err := readMemoryCell(br, offset)
		if err != nil {
			return err
		}
		e.state.Memory[offset] = cell
	}

	return e.loadBreakpoints(br)
}

// readHeaderValue reads one line and parses its first field as an
// unsigned integer no greater than max.
func readHeaderValue(br *bufio.Reader, what string, max uint64) (uint64, error) {
	line, err := readLine(br)
	if err != nil {
		return 0, makeError(ErrBadStateFile, "missing %s line", what)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, makeError(ErrBadStateFile, "empty %s line", what)
	}

	value, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil || value > max {
		return 0, makeError(ErrBadStateFile, "bad %s value '%s'", what, fields[0])
	}

	return value, nil
}

// readMemoryCell reads one memory line: exactly one integer in
// [0, MaxValue], nothing else on the line.
func readMemoryCell(br *bufio.Reader, offset int) (Word, error) {
	line, err := readLine(br)
	if err != nil {
		return 0, makeError(ErrBadStateFile, "missing memory line for address %d", offset)
	}

	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, makeError(ErrBadStateFile, "memory line for address %d holds %d values, want 1", offset, len(fields))
	}

	value, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil || value > uint64(MaxValue) {
		return 0, makeError(ErrBadStateFile, "bad memory value '%s' at address %d", fields[0], offset)
	}

	return Word(value), nil
}

// loadBreakpoints parses whitespace-separated (address, name) pairs until
// end of input, funnelling each through the breakpoint table so that its
// uniqueness and capacity invariants fail the whole load.
func (e *Emulator) loadBreakpoints(br *bufio.Reader) error {
	for {
		var addrField, name string

		n, err := fmt.Fscan(br, &addrField, &name)
		if n == 0 && errors.Is(err, io.EOF) {
			return nil
		}
		if n != 2 {
			return makeError(ErrBadStateFile, "truncated breakpoint entry")
		}

		address, err := strconv.ParseUint(addrField, 10, 64)
		if err != nil || address >= MemorySize {
			return makeError(ErrBadStateFile, "bad breakpoint address '%s'", addrField)
		}

		if err := e.breakpoints.Insert(Word(address), name); err != nil {
			return makeError(ErrBadStateFile, "breakpoint %d '%s': %v", address, name, err)
		}
	}
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && (len(line) == 0 || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// SaveState writes the emulator's state to w in the persisted format:
// the three header lines, every memory cell in address order, then every
// live breakpoint in table order. It fails only on writer errors.
func (e *Emulator) SaveState(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, e.totalCycles)
	fmt.Fprintln(bw, e.state.Acc)
	fmt.Fprintln(bw, e.state.PC)

	for offset := 0; offset < MemorySize; offset++ {
		fmt.Fprintln(bw, e.state.Memory[offset])
	}

	for idx := 0; idx < e.breakpoints.Count(); idx++ {
		bp := e.breakpoints.At(idx)
		fmt.Fprintf(bw, "%d %s\n", bp.Address, bp.Name)
	}

	return bw.Flush()
}

// LoadStateFile loads the emulator's state from the named file.
func (e *Emulator) LoadStateFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return e.LoadState(file)
}

// SaveStateFile writes the emulator's state to the named file.
func (e *Emulator) SaveStateFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := e.SaveState(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
