package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/cardgrid/internal/app"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the cards once and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.ParseFormat(format)
			if err != nil {
				return err
			}
			return app.List(cmd.Context(), cmd.OutOrStdout(), flags.options(), f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(app.FormatText), "output format: text, json, or yaml")
	return cmd
}
