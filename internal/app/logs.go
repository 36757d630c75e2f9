package app

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/five82/cardgrid/internal/logtail"
)

// Logs prints the last n entries of the configured log file.
func Logs(w io.Writer, opts Options, n int) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if cfg.LogFile == "" {
		return fmt.Errorf("no log file configured")
	}

	lines, err := logtail.Read(cfg.LogFile, n)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, colorize.YellowString("No log entries in %s", cfg.LogFile))
		return err
	}
	_, err = io.WriteString(w, strings.Join(logtail.FormatLines(lines), "\n")+"\n")
	return err
}
