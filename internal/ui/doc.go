// Package ui provides the terminal user interface for cardgrid.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds everything the screen needs and
// never touches the network: it drives a Controller (Refresh) and renders the
// state.Snapshot values the controller publishes through Subscribe.
//
// # Package Structure
//
//   - app.go: Model, Update loop, snapshot subscription, and Run
//   - grid.go: grid geometry, selection movement, and card rendering
//   - views.go: header, footer, loading, and error views
//   - detail.go: glamour-rendered card detail in a scrolling viewport
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: color palettes and lipgloss styles
//   - layout.go: geometry constants
//
// # View Selection
//
// The body follows Snapshot.Mode:
//
//   - Loading: a spinner fills the body
//   - Error: the user-facing message, the diagnostic text in faint type, and
//     a "Try again (r)" action
//   - List: the card grid, or the detail pane when a card is open
//
// # Event Flow
//
//  1. New subscribes to the controller; the current snapshot arrives at once
//  2. waitForSnapshot turns each snapshot into a snapshotMsg and re-arms
//  3. Key presses move the selection, open cards, or call Refresh
//  4. Theme and column changes are written back to prefs
//
// # Key Bindings
//
//   - j/k, h/l, arrows: move through the grid
//   - enter: open or close the selected card
//   - r: try again after an error, or refresh
//   - c: cycle grid columns (auto, 1..6)
//   - T: cycle theme
//   - ?: toggle help
//   - e/ctrl+c: quit
package ui
