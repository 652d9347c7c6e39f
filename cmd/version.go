package cmd

import (
	"fmt"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/spf13/cobra"
)

// set by the linker
var (
	version = "dev"
	commit  = ""
	date    = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chyp8 version: %s\n", buildinfo.Version(version, commit, date))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
