package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "billctl",
		Short: "Offline invoice computations",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newWordsCommand())
	rootCmd.AddCommand(newTotalsCommand())
	rootCmd.AddCommand(newScheduleCommand())

	return rootCmd
}
