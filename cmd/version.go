package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosteel",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gosteel v%s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		fmt.Fprintln(out, "Steel I-Section Properties and Classification Tool")
		fmt.Fprintln(out, "Based on EN 1993-1-1 and EN 1993-1-5, S355")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
