package cmd

import (
	"fmt"
	"os"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm path/ROM",
	Short: "print the instructions of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE:  Disasm,
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}

// Disasm prints a listing of every instruction word of the ROM.
func Disasm(cmd *cobra.Command, args []string) error {
	program, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cpu.ErrRomUnreadable, err)
	}
	if len(program) > memory.MaxRomSize {
		return fmt.Errorf("%w: %d bytes, can't cross %d bytes", memory.ErrRomTooLarge, len(program), memory.MaxRomSize)
	}
	return cpu.Disassemble(cmd.OutOrStdout(), program)
}
