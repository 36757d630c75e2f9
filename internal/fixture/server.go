// Package fixture serves a static cards envelope for local development, so
// the grid and its error states can be exercised without the real endpoint.
package fixture

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/five82/cardgrid/internal/cards"
)

// CardsPath is the route the fixture serves, matching the production path.
const CardsPath = "/api/p/cards"

// Server holds the payload served on CardsPath.
type Server struct {
	payload []byte
	delay   time.Duration
	logger  *zap.Logger
}

// Option customises a Server.
type Option func(*Server)

// WithDelay holds every response for d, which makes the loading view visible.
func WithDelay(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New serves items as a cards envelope.
func New(items []cards.Card, opts ...Option) (*Server, error) {
	if items == nil {
		items = []cards.Card{}
	}
	payload, err := json.Marshal(cards.Collection{CardItems: items})
	if err != nil {
		return nil, fmt.Errorf("encode fixture: %w", err)
	}
	return newServer(payload, opts...), nil
}

// FromFile serves the envelope stored at path verbatim after checking that it
// decodes.
func FromFile(path string, opts ...Option) (*Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	if _, err := cards.DecodeCollection(data); err != nil {
		return nil, fmt.Errorf("validate fixture %s: %w", path, err)
	}
	return newServer(data, opts...), nil
}

func newServer(payload []byte, opts ...Option) *Server {
	s := &Server{payload: payload, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc(CardsPath, s.handleCards).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)
	return r
}

// handleCards serves the payload. ?status=NNN forces that status with a small
// body, and ?malformed=1 returns a body that does not decode.
func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-r.Context().Done():
			return
		}
	}

	q := r.URL.Query()
	if raw := q.Get("status"); raw != "" {
		code, err := strconv.Atoi(raw)
		if err != nil || code < 100 || code > 599 {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		s.logger.Debug("fixture forced status", zap.Int("status", code))
		http.Error(w, http.StatusText(code), code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if q.Get("malformed") == "1" {
		_, _ = w.Write([]byte(`{"cards":[{"title":"missing id"}]}`))
		return
	}
	_, _ = w.Write(s.payload)
	s.logger.Debug("fixture served cards", zap.String("remote", r.RemoteAddr))
}
