package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TinyTaru/VintagestoryModmaker/internal/version"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of modmaker",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
