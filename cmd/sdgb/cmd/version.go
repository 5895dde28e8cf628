package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// version не требует конфигурации
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sdgb %s\nbuild date: %s\ncommit: %s\n", Version, BuildDate, GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
