package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/contribgo/internal/api"
)

func serveCmd(a *app) *cobra.Command {
	var (
		addr string
		opts = api.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := a.engine()
			handler := api.NewHandler(engine, api.NewMetrics(), a.log)

			server := &http.Server{
				Addr:         addr,
				Handler:      api.NewRouter(handler, opts),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.Info().Str("addr", addr).Msg("server starting")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			a.log.Info().Msg("server stopped")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr, "addr", ":8080", "Listen address")
	f.StringSliceVar(&opts.AllowedOrigins, "cors-origin", opts.AllowedOrigins, "Allowed CORS origins")
	f.Float64Var(&opts.RateLimit, "rate-limit", opts.RateLimit, "Requests per second across all clients, 0 disables")
	f.IntVar(&opts.RateBurst, "rate-burst", opts.RateBurst, "Rate limiter burst size")
	return cmd
}
