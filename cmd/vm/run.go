package vm

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hormigalabs/hormiga/pkg/hw/acc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	runSteps int
	runTrace bool
	runSave  string
)

var runCmd = &cobra.Command{
	Use:   "run <state-file>",
	Short: "Execute a persisted machine state",
	Long: `Loads a machine state file and executes up to the requested number
of cycles. Execution halts early on an alignment fault (odd program
counter), a decode fault (unknown opcode) or a breakpoint hit.

The exit status is 0 when the run succeeded (all cycles executed, a
breakpoint hit, or an interrupted trace) and 2 on a fault.

Example:
  hormiga vm run machine.state -n 100 --trace --save machine.state`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	VmCmd.AddCommand(runCmd)
	runCmd.Flags().IntVarP(&runSteps, "steps", "n", 0, "Number of cycles to execute (default: run.steps config value)")
	runCmd.Flags().BoolVarP(&runTrace, "trace", "t", false, "Print each executed instruction")
	runCmd.Flags().StringVarP(&runSave, "save", "s", "", "Save the machine state to this file after the run")
}

func runRun(cmd *cobra.Command, args []string) {
	emu := loadEmulator(args[0])

	steps := runSteps
	if !cmd.Flags().Changed("steps") {
		steps = viper.GetInt("run.steps")
	}

	slog.Debug("starting run", "file", args[0], "steps", steps, "pc", emu.ReadPC())

	var result *acc.RunResult
	if runTrace {
		result = emu.RunWithTrace(steps, func(step int, pc acc.Word, in acc.Instruction) bool {
			colorAddr.Printf("%5d  ", step)
			colorInstr.Printf("%s", in)
			fmt.Printf("  ")
			colorValue.Printf("acc=%d pc=%d\n", emu.ReadAcc(), pc)
			return true
		})
	} else {
		result = emu.Run(steps)
	}

	slog.Debug("run stopped",
		"reason", result.Reason.String(),
		"steps", result.StepsExecuted,
		"pc", result.PC,
		"cycles", emu.Cycles())

	switch result.Reason {
	case acc.StopCompleted:
		colorSuccess.Printf("Completed %d cycles\n", result.StepsExecuted)
	case acc.StopBreakpoint:
		colorBreak.Printf("Breakpoint '%s' hit at address %d after %d cycles\n",
			result.Breakpoint.Name, result.Breakpoint.Address, result.StepsExecuted)
	default:
		colorError.Fprintf(os.Stderr, "Halted (%s) after %d cycles: %v\n",
			result.Reason, result.StepsExecuted, result.Err)
	}

	fmt.Printf("acc=%d pc=%d total cycles=%d\n", emu.ReadAcc(), emu.ReadPC(), emu.Cycles())

	if runSave != "" {
		if err := emu.SaveStateFile(runSave); err != nil {
			colorError.Fprintf(os.Stderr, "Error saving state file %s: %v\n", runSave, err)
			os.Exit(1)
		}
		slog.Debug("state saved", "file", runSave)
	}

	if !result.Ok() {
		os.Exit(2)
	}
}
