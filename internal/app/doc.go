// Package app provides the orchestration layer for the cardgrid application.
//
// # Overview
//
// This package wires together configuration, logging, the cards client, the
// state controller, and the UI. It is the composition root: every dependency
// is built and connected here and nowhere else.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/cardgrid/config.toml and apply flag
//     overrides (--url, --log-file)
//  2. Open the zap logger on the log file (the TUI owns stdout)
//  3. Load preferences (theme, columns)
//  4. Build cards.Client with the configured timeout
//  5. Build state.Controller, which issues the first refresh immediately
//  6. Run the TUI and a shutdown watcher in one errgroup
//
// # Components
//
//   - app.go: Run and config overrides
//   - list.go: List, the one-shot fetch-and-print path behind `cardgrid list`
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read config, apply overrides
//	       ├─────> logging.New()          File-backed zap logger
//	       ├─────> cards.NewClient()      HTTP fetch client
//	       ├─────> state.NewController()  Store + first Refresh
//	       └─────> errgroup
//	                 ├─> ui.Run()         TUI (blocks until quit)
//	                 └─> <-ctx.Done()     controller.Close()
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Log file cannot be opened
//   - The Bubble Tea program fails
//
// Fetch failures are never fatal in the TUI. They surface as the error view
// with a retry action. List returns them as *cards.Error so the command can
// print the user-facing message.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{URL: "http://localhost:8080/api/p/cards"}); err != nil {
//		log.Fatalf("cardgrid failed: %v", err)
//	}
//
// # Design Rationale
//
// There is no background refresh loop. Cards load once at startup and again
// only when the user asks, so the controller is the only thing that talks to
// the network.
package app
