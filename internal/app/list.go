package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/five82/cardgrid/internal/cards"
	"github.com/five82/cardgrid/internal/logging"
)

// Format selects how List prints cards.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, or yaml)", s)
	}
}

// List fetches the cards once and writes them to w.
func List(ctx context.Context, w io.Writer, opts Options, format Format) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogFile, opts.Verbose)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	items, err := newClient(cfg, logger).FetchCards(ctx, cfg.CardsURL)
	if err != nil {
		logger.Warn("list failed", zap.Error(err))
		return err
	}
	logger.Info("fetched cards", zap.Int("cards", len(items)), zap.String("format", string(format)))
	return writeCards(w, items, format, terminalWidth())
}

// writeCards renders items in the requested format.
func writeCards(w io.Writer, items []cards.Card, format Format, width int) error {
	if items == nil {
		items = []cards.Card{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cards.Collection{CardItems: items}); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][]cards.Card{"cards": items}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return writeText(w, items, width)
	}
}

func writeText(w io.Writer, items []cards.Card, width int) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, colorize.YellowString("No cards."))
		return err
	}

	textWidth := max(width-4, 20)
	var b strings.Builder
	for i, c := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		head := colorize.CyanString("#%d", c.CardID)
		if c.Type != "" {
			head += " " + colorize.MagentaString("%s", c.Type)
		}
		b.WriteString(head + "\n")
		for _, line := range wrapText(c.Title, textWidth) {
			b.WriteString("  " + colorize.HiWhiteString("%s", line) + "\n")
		}
		if c.Label != "" {
			b.WriteString("  " + colorize.New(colorize.Faint).Sprint(c.Label) + "\n")
		}
		if c.Text != "" {
			for _, line := range wrapText(c.Text, textWidth) {
				b.WriteString("  " + line + "\n")
			}
		}
		if c.HasVideo() {
			b.WriteString("  " + colorize.CyanString("Video: ") + c.VideoID + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// terminalWidth returns the stdout width, or 80 when it is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText breaks text into lines no wider than width.
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var result []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		result = append(result, current)
		current = word
	}
	return append(result, current)
}
