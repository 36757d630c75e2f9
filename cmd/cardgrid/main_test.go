package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/five82/cardgrid/internal/cards"
	"github.com/five82/cardgrid/internal/fixture"
)

func TestListCommandPrintsJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := fixture.New(cards.Examples())
	if err != nil {
		t.Fatalf("fixture.New: %v", err)
	}
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"list",
		"--format", "json",
		"--url", ts.URL + fixture.CardsPath,
		"--config", filepath.Join(home, "none.toml"),
		"--log-file", filepath.Join(home, "cardgrid.log"),
	})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out.String(), `"card_id": 5`) {
		t.Fatalf("list output missing card 5:\n%s", out.String())
	}
}

func TestListCommandRejectsFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--format", "xml"})
	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v, want unknown format", err)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	s, err := fixture.New(nil)
	if err != nil {
		t.Fatalf("fixture.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, "127.0.0.1:0", s.Router(), zap.NewNop())
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not stop after cancel")
	}
}

func TestServeReportsListenError(t *testing.T) {
	ln := httptest.NewServer(http.NotFoundHandler())
	defer ln.Close()

	addr := strings.TrimPrefix(ln.URL, "http://")
	err := serve(context.Background(), addr, http.NotFoundHandler(), zap.NewNop())
	if err == nil || !strings.Contains(err.Error(), "listen") {
		t.Fatalf("err = %v, want listen error", err)
	}
}
