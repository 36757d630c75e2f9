package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/cardgrid/internal/cards"
	"github.com/five82/cardgrid/internal/fixture"
)

const shutdownTimeout = 5 * time.Second

func newServeFixtureCmd() *cobra.Command {
	var (
		file  string
		addr  string
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve-fixture",
		Short: "Serve a cards envelope locally for development",
		Long: `serve-fixture serves GET /api/p/cards from --file, or the built-in example
cards when no file is given. Append ?status=503 to force an error status, or
?malformed=1 for a body that does not decode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			opts := []fixture.Option{fixture.WithDelay(delay), fixture.WithLogger(logger)}
			var srv *fixture.Server
			if file != "" {
				srv, err = fixture.FromFile(file, opts...)
			} else {
				srv, err = fixture.New(cards.Examples(), opts...)
			}
			if err != nil {
				return err
			}
			return serve(cmd.Context(), addr, srv.Router(), logger)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file holding a cards envelope")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().DurationVar(&delay, "delay", 0, "hold each response this long")
	return cmd
}

// serve runs handler on addr until ctx is cancelled.
func serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()
	logger.Info("fixture listening", zap.String("url", "http://"+ln.Addr().String()+fixture.CardsPath))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
