package vm

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hormigalabs/hormiga/pkg/hw/acc"
	"github.com/spf13/cobra"
)

var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Manage the breakpoints of a machine state",
	Long: `Adds, removes and lists the named breakpoints persisted in a
machine state file. Changes are written back to the same file.`,
}

var breakAddCmd = &cobra.Command{
	Use:   "add <state-file> <address> <name>",
	Short: "Add a named breakpoint",
	Args:  cobra.ExactArgs(3),
	Run:   runBreakAdd,
}

var breakRmCmd = &cobra.Command{
	Use:   "rm <state-file> <address|name>",
	Short: "Remove a breakpoint by address or name",
	Args:  cobra.ExactArgs(2),
	Run:   runBreakRm,
}

var breakLsCmd = &cobra.Command{
	Use:   "ls <state-file>",
	Short: "List breakpoints in table order",
	Args:  cobra.ExactArgs(1),
	Run:   runBreakLs,
}

func init() {
	VmCmd.AddCommand(breakCmd)
	breakCmd.AddCommand(breakAddCmd, breakRmCmd, breakLsCmd)
}

func saveEmulatorOrDie(path string, emu *acc.Emulator) {
	if err := emu.SaveStateFile(path); err != nil {
		colorError.Fprintf(os.Stderr, "Error saving state file %s: %v\n", path, err)
		os.Exit(1)
	}
}

func runBreakAdd(cmd *cobra.Command, args []string) {
	emu := loadEmulator(args[0])

	address, err := parseAddress(args[1])
	if err != nil {
		colorError.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := emu.InsertBreakpoint(address, args[2]); err != nil {
		colorError.Fprintf(os.Stderr, "Error adding breakpoint: %v\n", err)
		os.Exit(1)
	}

	saveEmulatorOrDie(args[0], emu)
	slog.Debug("breakpoint added", "address", address, "name", args[2])
	colorSuccess.Printf("Added breakpoint '%s' at address %d\n", args[2], address)
}

func runBreakRm(cmd *cobra.Command, args []string) {
	emu := loadEmulator(args[0])

	// The argument is an address when it parses as one, a name otherwise.
	var err error
	if address, addrErr := parseAddress(args[1]); addrErr == nil {
		err = emu.DeleteBreakpoint(address)
	} else {
		err = emu.DeleteBreakpointByName(args[1])
	}
	if err != nil {
		colorError.Fprintf(os.Stderr, "Error removing breakpoint: %v\n", err)
		os.Exit(1)
	}

	saveEmulatorOrDie(args[0], emu)
	colorSuccess.Printf("Removed breakpoint '%s'\n", args[1])
}

func runBreakLs(cmd *cobra.Command, args []string) {
	emu := loadEmulator(args[0])

	for _, bp := range emu.Breakpoints() {
		colorAddr.Printf("%3d  ", bp.Address)
		fmt.Println(bp.Name)
	}
}
