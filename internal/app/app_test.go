package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/five82/cardgrid/internal/cards"
	"github.com/five82/cardgrid/internal/config"
	"github.com/five82/cardgrid/internal/fixture"
)

func init() {
	colorize.NoColor = true
}

func isolatedOptions(t *testing.T) Options {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return Options{
		ConfigPath: filepath.Join(home, "missing.toml"),
		PrefsPath:  filepath.Join(home, "prefs.toml"),
		LogFile:    filepath.Join(home, "cardgrid.log"),
	}
}

func fixtureURL(t *testing.T) string {
	t.Helper()
	s, err := fixture.New(cards.Examples())
	if err != nil {
		t.Fatalf("fixture.New: %v", err)
	}
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts.URL + fixture.CardsPath
}

func TestLoadConfigOverrides(t *testing.T) {
	opts := isolatedOptions(t)

	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.CardsURL != config.DefaultCardsURL {
		t.Fatalf("CardsURL = %q, want default", cfg.CardsURL)
	}
	if cfg.LogFile != opts.LogFile {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, opts.LogFile)
	}

	opts.URL = "  http://localhost:9/api/p/cards "
	cfg, err = loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.CardsURL != "http://localhost:9/api/p/cards" {
		t.Fatalf("CardsURL = %q, want override", cfg.CardsURL)
	}

	opts.LogFile = "~/logs/cardgrid.log"
	cfg, err = loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if want := filepath.Join(os.Getenv("HOME"), "logs", "cardgrid.log"); cfg.LogFile != want {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, want)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":      FormatText,
		"text":  FormatText,
		" JSON": FormatJSON,
		"yaml":  FormatYAML,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("ParseFormat(xml) should fail")
	}
}

func TestListJSON(t *testing.T) {
	opts := isolatedOptions(t)
	opts.URL = fixtureURL(t)

	var buf bytes.Buffer
	if err := List(context.Background(), &buf, opts, FormatJSON); err != nil {
		t.Fatalf("List: %v", err)
	}

	var out struct {
		Cards []struct {
			CardID int    `json:"card_id"`
			Type   string `json:"type"`
		} `json:"cards"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	var ids []int
	for _, c := range out.Cards {
		ids = append(ids, c.CardID)
	}
	if diff := cmp.Diff([]int{5, 4}, ids); diff != "" {
		t.Fatalf("card ids mismatch (-want +got):\n%s", diff)
	}
	// Fetched cards never carry audio_url, so none is printed.
	if strings.Contains(buf.String(), "audio_url") {
		t.Fatalf("unexpected audio_url in output:\n%s", buf.String())
	}
}

func TestListReturnsTaxonomyError(t *testing.T) {
	opts := isolatedOptions(t)
	opts.URL = fixtureURL(t) + "?status=500"

	err := List(context.Background(), &bytes.Buffer{}, opts, FormatText)
	var fetchErr *cards.Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("List error = %v, want *cards.Error", err)
	}
	if fetchErr.Kind != cards.KindBadResponse || fetchErr.StatusCode != 500 {
		t.Fatalf("error = %+v, want bad response 500", fetchErr)
	}
}

func TestWriteCardsYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCards(&buf, []cards.Card{{CardID: 1, Title: "t"}}, FormatYAML, 80); err != nil {
		t.Fatalf("writeCards: %v", err)
	}
	var out map[string][]map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	want := map[string][]map[string]any{"cards": {{"card_id": 1, "title": "t"}}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCardsText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCards(&buf, cards.Examples(), FormatText, 40); err != nil {
		t.Fatalf("writeCards: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"#5 audio", "#4 opt_text", "get ahead", "Lorem ipsum"} {
		if !strings.Contains(out, want) {
			t.Fatalf("text output missing %q:\n%s", want, out)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 40 {
			t.Fatalf("line wider than 40: %q", line)
		}
	}

	buf.Reset()
	if err := writeCards(&buf, nil, FormatText, 80); err != nil {
		t.Fatalf("writeCards empty: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "No cards." {
		t.Fatalf("empty output = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 10)
	if diff := cmp.Diff([]string{"one two", "three four"}, got); diff != "" {
		t.Fatalf("wrapText mismatch (-want +got):\n%s", diff)
	}
	if got := wrapText("   ", 10); got != nil {
		t.Fatalf("wrapText blank = %v, want nil", got)
	}
}

func TestLogsShowsTail(t *testing.T) {
	opts := isolatedOptions(t)
	opts.URL = fixtureURL(t)
	if err := List(context.Background(), &bytes.Buffer{}, opts, FormatJSON); err != nil {
		t.Fatalf("List: %v", err)
	}

	var buf bytes.Buffer
	if err := Logs(&buf, opts, 0); err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if !strings.Contains(buf.String(), "fetched cards") {
		t.Fatalf("log tail missing fetch entry:\n%s", buf.String())
	}
}

func TestLogsEmpty(t *testing.T) {
	opts := isolatedOptions(t)
	var buf bytes.Buffer
	if err := Logs(&buf, opts, 10); err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if !strings.Contains(buf.String(), "No log entries") {
		t.Fatalf("output = %q", buf.String())
	}
}
