package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/padmap/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "padmap %s\n", version.ProgramVersion)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
			fmt.Fprintf(out, "  profile schema: %d\n", version.ConfigFileVersion)
			return nil
		},
	}
}
