package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/cardgrid/internal/app"
)

func newLogsCmd(flags *rootFlags) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of the cardgrid log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Logs(cmd.OutOrStdout(), flags.options(), lines)
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of entries, 0 for all")
	return cmd
}
