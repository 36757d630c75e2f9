package state

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/cardgrid/internal/cards"
)

func TestStore_ZeroValue(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.Loading || snap.HasError() || len(snap.Items) != 0 {
		t.Fatalf("zero snapshot = %#v, want empty non-loading", snap)
	}
	if snap.Mode() != ModeList {
		t.Fatalf("Mode() = %v, want ModeList", snap.Mode())
	}
}

func TestStore_CompleteSuccessAndSnapshotClone(t *testing.T) {
	var s Store

	gen := s.beginLoad("req-1")
	if snap := s.Snapshot(); !snap.Loading || snap.Mode() != ModeLoading {
		t.Fatalf("snapshot after beginLoad = %#v, want loading", snap)
	}

	before := time.Now()
	if !s.complete(gen, cards.Examples(), nil) {
		t.Fatal("complete returned false for current generation")
	}

	snap := s.Snapshot()
	if diff := cmp.Diff(cards.Examples(), snap.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if snap.Loading || snap.HasError() || snap.Err != nil {
		t.Fatalf("snapshot = %#v, want loaded without error", snap)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.RequestID != "req-1" {
		t.Fatalf("RequestID = %q, want req-1", snap.RequestID)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Items[0].Title = "mutated"
	if s.Snapshot().Items[0].Title == "mutated" {
		t.Fatal("Snapshot should clone items")
	}
}

func TestStore_FailureKeepsPreviousItems(t *testing.T) {
	var s Store
	s.complete(s.beginLoad("a"), []cards.Card{{CardID: 1}}, nil)

	gen := s.beginLoad("b")
	fetchErr := cards.TransportError(errors.New("not connected"))
	s.complete(gen, nil, fetchErr)

	snap := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].CardID != 1 {
		t.Fatalf("items changed on error: %#v", snap.Items)
	}
	if snap.ErrorMessage != cards.MessageTransportFallback {
		t.Fatalf("ErrorMessage = %q, want %q", snap.ErrorMessage, cards.MessageTransportFallback)
	}
	if snap.Err != fetchErr {
		t.Fatalf("Err = %v, want the fetch error", snap.Err)
	}
	if snap.Mode() != ModeError {
		t.Fatalf("Mode() = %v, want ModeError", snap.Mode())
	}
}

func TestStore_BeginLoadClearsErrorKeepsItems(t *testing.T) {
	var s Store
	s.complete(s.beginLoad("a"), []cards.Card{{CardID: 1}}, nil)
	s.complete(s.beginLoad("b"), nil, cards.BadResponse(500))

	s.beginLoad("c")
	snap := s.Snapshot()
	if snap.HasError() || !snap.Loading {
		t.Fatalf("snapshot = %#v, want loading without message", snap)
	}
	if len(snap.Items) != 1 {
		t.Fatalf("items = %#v, want stale item kept", snap.Items)
	}
}

func TestStore_StaleGenerationDropped(t *testing.T) {
	var s Store
	first := s.beginLoad("first")
	second := s.beginLoad("second")

	if !s.complete(second, []cards.Card{{CardID: 2}}, nil) {
		t.Fatal("complete(second) = false, want true")
	}
	if s.complete(first, []cards.Card{{CardID: 1}}, nil) {
		t.Fatal("complete(first) = true, want stale result dropped")
	}
	snap := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].CardID != 2 {
		t.Fatalf("items = %#v, want second result", snap.Items)
	}
}

func TestStore_SubscribeDeliversCurrentAndLatest(t *testing.T) {
	var s Store
	s.complete(s.beginLoad("a"), []cards.Card{{CardID: 1}}, nil)

	ch, cancel := s.Subscribe()
	defer cancel()

	first := <-ch
	if len(first.Items) != 1 {
		t.Fatalf("initial snapshot items = %#v, want 1", first.Items)
	}

	// Two updates without reading: only the latest is kept.
	gen := s.beginLoad("b")
	s.complete(gen, []cards.Card{{CardID: 7}, {CardID: 8}}, nil)

	got := <-ch
	want := s.Snapshot()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("coalesced snapshot mismatch (-want +got):\n%s", diff)
	}
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot: %#v", extra)
	default:
	}
}

func TestStore_CancelClosesChannel(t *testing.T) {
	var s Store
	ch, cancel := s.Subscribe()
	<-ch
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("channel still open after cancel")
	}
	// Publishing after cancel must not panic.
	s.beginLoad("x")
}
