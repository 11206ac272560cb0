package vm

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state <state-file>",
	Short: "Inspect the registers and breakpoints of a machine state",
	Args:  cobra.ExactArgs(1),
	Run:   runState,
}

func init() {
	VmCmd.AddCommand(stateCmd)
}

func runState(cmd *cobra.Command, args []string) {
	emu := loadEmulator(args[0])

	colorHeader.Println("Registers")
	fmt.Print("  acc    = ")
	colorValue.Printf("%d\n", emu.ReadAcc())
	fmt.Print("  pc     = ")
	colorValue.Printf("%d\n", emu.ReadPC())
	fmt.Print("  cycles = ")
	colorValue.Printf("%d\n", emu.Cycles())

	fmt.Println()
	colorHeader.Printf("Breakpoints (%d)\n", emu.NumBreakpoints())
	for _, bp := range emu.Breakpoints() {
		fmt.Print("  ")
		colorAddr.Printf("%3d  ", bp.Address)
		colorBreak.Println(bp.Name)
	}
	if emu.IsBreakpoint() {
		colorBreak.Println("The machine is stopped on a breakpoint")
	}
}
