// Package config loads cardgrid's TOML configuration.
//
// # Resolution
//
//  1. An explicit path (the --config flag) wins
//  2. Otherwise ~/.config/cardgrid/config.toml is read
//  3. A missing file is not an error; defaults are used
//  4. Empty fields keep their defaults
//
// # Fields
//
//	cards_url = "https://bff.goodinside.dev/api/p/cards"
//	request_timeout = "60s"
//	log_file = "~/.local/state/cardgrid/cardgrid.log"
//
// request_timeout is a Go duration string and must be positive. Tilde
// expansion applies to log_file.
//
// The --url flag overrides cards_url after loading; see internal/app.
package config
