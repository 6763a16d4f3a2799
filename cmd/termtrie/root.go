package main

import "github.com/spf13/cobra"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "termtrie",
		Short:        "Count occurrences of multi-word terms in text files",
		SilenceUsage: true,
	}
	cmd.AddCommand(newSearchCommand(), newBenchCommand())
	return cmd
}
