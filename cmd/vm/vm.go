package vm

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/hormigalabs/hormiga/pkg/hw/acc"
	"github.com/spf13/cobra"
)

// Color palette for CLI output
var (
	colorAddr    = color.New(color.FgCyan)
	colorValue   = color.New(color.FgWhite, color.Bold)
	colorInstr   = color.New(color.FgYellow)
	colorError   = color.New(color.FgRed, color.Bold)
	colorSuccess = color.New(color.FgGreen)
	colorBreak   = color.New(color.FgRed, color.Bold)
	colorHeader  = color.New(color.FgWhite, color.Bold, color.Underline)
)

// VmCmd is the parent command for all emulator operations.
var VmCmd = &cobra.Command{
	Use:   "vm",
	Short: "Run and inspect hormiga machine states",
	Long: `Commands operating on persisted machine state files: execute a
machine for a number of cycles, list the program held in its memory,
inspect its registers and manage its breakpoints.`,
}

// loadEmulator loads a persisted machine state or exits with status 1.
func loadEmulator(path string) *acc.Emulator {
	emu := acc.NewEmulator()
	if err := emu.LoadStateFile(path); err != nil {
		colorError.Fprintf(os.Stderr, "Error loading state file %s: %v\n", path, err)
		os.Exit(1)
	}
	return emu
}

// parseAddress parses a breakpoint or memory address argument.
func parseAddress(arg string) (acc.Word, error) {
	value, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s': %w", arg, err)
	}
	if value >= acc.MemorySize {
		return 0, fmt.Errorf("address %d out of range [0, %d)", value, acc.MemorySize)
	}
	return acc.Word(value), nil
}
