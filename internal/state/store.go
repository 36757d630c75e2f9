package state

import (
	"sync"
	"time"

	"github.com/five82/cardgrid/internal/cards"
)

// Snapshot is the presentation state the UI renders from.
type Snapshot struct {
	Items        []cards.Card
	Loading      bool
	ErrorMessage string // empty when no error is shown

	// Diagnostics, not shown in the main view.
	Err         *cards.Error
	LastUpdated time.Time
	RequestID   string
	Generation  uint64
}

// HasError reports whether an error message is present.
func (s Snapshot) HasError() bool {
	return s.ErrorMessage != ""
}

// Mode is the view the presentation layer should select.
type Mode int

const (
	ModeList Mode = iota
	ModeLoading
	ModeError
)

// Mode picks the view for this snapshot. Loading wins over a stale error.
func (s Snapshot) Mode() Mode {
	switch {
	case s.Loading:
		return ModeLoading
	case s.HasError():
		return ModeError
	default:
		return ModeList
	}
}

// Store owns the current snapshot and fans out changes to subscribers.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	subs     map[int]chan Snapshot
	nextSub  int
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSnapshot(s.snapshot)
}

// Subscribe registers an observer. The current snapshot is delivered right
// away; later snapshots replace any value the observer has not yet read. The
// returned cancel func closes the channel and is safe to call more than once.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]chan Snapshot)
	}
	id := s.nextSub
	s.nextSub++
	ch := make(chan Snapshot, 1)
	ch <- cloneSnapshot(s.snapshot)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// beginLoad marks a new request in flight and returns its generation.
func (s *Store) beginLoad(requestID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Generation++
	s.snapshot.Loading = true
	s.snapshot.ErrorMessage = ""
	s.snapshot.RequestID = requestID
	s.publishLocked()
	return s.snapshot.Generation
}

// complete applies a fetch outcome. It returns false when gen is no longer the
// latest request, in which case nothing changes.
func (s *Store) complete(gen uint64, items []cards.Card, fetchErr *cards.Error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
	if fetchErr != nil {
		s.snapshot.ErrorMessage = fetchErr.Message()
		s.snapshot.Err = fetchErr
	} else {
		s.snapshot.Items = cloneItems(items)
		s.snapshot.ErrorMessage = ""
		s.snapshot.Err = nil
	}
	s.publishLocked()
	return true
}

func (s *Store) publishLocked() {
	for _, ch := range s.subs {
		snap := cloneSnapshot(s.snapshot)
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func cloneSnapshot(in Snapshot) Snapshot {
	out := in
	out.Items = cloneItems(in.Items)
	return out
}

func cloneItems(items []cards.Card) []cards.Card {
	if items == nil {
		return nil
	}
	dup := make([]cards.Card, len(items))
	copy(dup, items)
	return dup
}
