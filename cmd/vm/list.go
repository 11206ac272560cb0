package vm

import (
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <state-file>",
	Short: "List the program held in a machine state's memory",
	Long: `Prints one line per instruction-aligned offset of the machine's
memory: the offset, the raw opcode and address cells, and the decoded
mnemonic when the pair is a valid, non-empty instruction.`,
	Args: cobra.ExactArgs(1),
	Run:  runList,
}

func init() {
	VmCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	emu := loadEmulator(args[0])

	if err := emu.WriteProgram(os.Stdout); err != nil {
		colorError.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
		os.Exit(1)
	}
}
