package state

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/cardgrid/internal/cards"
)

// Controller drives the Store from a Fetcher.
type Controller struct {
	store   *Store
	fetcher cards.Fetcher
	url     string
	logger  *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex // guards closed and wg.Add
	closed bool
	wg     sync.WaitGroup
}

// ControllerOption customises a Controller.
type ControllerOption func(*Controller)

// WithStore shares an existing Store instead of creating one.
func WithStore(s *Store) ControllerOption {
	return func(c *Controller) {
		if s != nil {
			c.store = s
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController builds a controller and starts the first refresh.
func NewController(fetcher cards.Fetcher, url string, opts ...ControllerOption) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		store:   &Store{},
		fetcher: fetcher,
		url:     url,
		logger:  zap.NewNop(),
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Refresh()
	return c
}

// Store exposes the presentation state.
func (c *Controller) Store() *Store {
	return c.store
}

// Snapshot is a shortcut for Store().Snapshot().
func (c *Controller) Snapshot() Snapshot {
	return c.store.Snapshot()
}

// Subscribe is a shortcut for Store().Subscribe().
func (c *Controller) Subscribe() (<-chan Snapshot, func()) {
	return c.store.Subscribe()
}

// Refresh starts a fetch and returns immediately. If another refresh is still
// running, its result is discarded when it arrives.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	requestID := uuid.NewString()
	gen := c.store.beginLoad(requestID)
	log := c.logger.With(zap.String("request_id", requestID), zap.Uint64("generation", gen))
	log.Debug("refresh started", zap.String("url", c.url))

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		res := <-cards.FetchAsync(c.ctx, c.fetcher, c.url)
		if !c.store.complete(gen, res.Cards, res.Err) {
			log.Debug("stale refresh dropped")
			return
		}
		if res.Err != nil {
			log.Warn("refresh failed",
				zap.String("kind", res.Err.Kind.String()),
				zap.String("detail", res.Err.Error()))
			return
		}
		log.Info("refresh complete", zap.Int("cards", len(res.Cards)))
	}()
}

// Wait blocks until every refresh started so far has completed.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight requests and waits for them to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
	c.wg.Wait()
}
