// Package state owns the presentation state for the card grid and the
// controller that refreshes it.
//
// # Overview
//
// The UI never talks to the network. It subscribes to a Store and renders
// whatever Snapshot it receives. A Controller is the only writer: it asks a
// cards.Fetcher for the collection and applies the outcome to the Store.
//
// # Architecture
//
//	Controller.Refresh()              UI (Bubble Tea)
//	┌──────────────────────┐         ┌────────────────────┐
//	│ beginLoad (loading)  │────────→│ <-Subscribe()      │
//	│ go FetchAsync(...)   │ (chan)  │ render mode        │
//	│ complete(gen, ...)   │────────→│ <-Subscribe()      │
//	└──────────────────────┘         └────────────────────┘
//
// # Core Types
//
// Snapshot:
//   - Items, Loading, ErrorMessage: what the view needs
//   - Err, RequestID, LastUpdated, Generation: diagnostics
//   - Mode(): loading, error, or list
//
// Store:
//   - sync.RWMutex around the current Snapshot
//   - Subscribe() hands out buffered channels of snapshots
//
// Controller:
//   - Refresh() starts one request per call and returns immediately
//   - Close() cancels in-flight requests and waits for them
//
// # Update Semantics
//
//	Refresh():
//	→ Loading = true, ErrorMessage = "" (Items untouched)
//
//	Success:
//	→ Loading = false, Items = fetched cards, ErrorMessage = ""
//
//	Failure:
//	→ Loading = false, ErrorMessage = err.Message(), Items untouched
//
// Stale data stays visible after a failure so the user keeps what they had.
//
// # Overlapping Refreshes
//
// Each Refresh bumps a generation counter. A completion whose generation is no
// longer current is dropped, so the state always reflects the most recently
// issued refresh rather than whichever response arrived last.
//
// # Subscriptions
//
// A new subscriber immediately receives the current snapshot. Each channel
// holds at most one pending snapshot; a newer one replaces it. Slow observers
// therefore see the latest state and never block the controller.
//
// # Testing Considerations
//
// The zero Store is ready to use. Use cards.MockFetcher (or any Fetcher) with
// NewController, then Wait() for the refresh to settle.
package state
