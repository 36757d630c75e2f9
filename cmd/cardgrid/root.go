package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/cardgrid/internal/app"
)

// rootFlags are shared by every subcommand that talks to the cards endpoint.
type rootFlags struct {
	configPath string
	prefsPath  string
	url        string
	logFile    string
	verbose    bool
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		URL:        f.url,
		LogFile:    f.logFile,
		Verbose:    f.verbose,
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "cardgrid",
		Short: "Browse content cards in a terminal grid",
		Long: `cardgrid fetches content cards from a single REST endpoint and shows them
as a scrollable grid. Failed loads show a message with a "Try again" action.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/cardgrid/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/cardgrid/prefs.toml)")
	pf.StringVar(&flags.url, "url", "", "cards endpoint, overrides cards_url")
	pf.StringVar(&flags.logFile, "log-file", "", "log file, overrides log_file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newListCmd(flags), newLogsCmd(flags), newServeFixtureCmd())
	return cmd
}
