package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/cardgrid/internal/cards"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		printError(err)
		return 1
	}
	return 0
}

// printError shows fetch failures the way the grid does: the user-facing
// message first, the diagnostic underneath.
func printError(err error) {
	var fetchErr *cards.Error
	if errors.As(err, &fetchErr) {
		fmt.Fprintf(os.Stderr, "cardgrid: %s\n  %v\n", fetchErr.Message(), fetchErr)
		return
	}
	fmt.Fprintf(os.Stderr, "cardgrid: %v\n", err)
}
