package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/branxiety/gameplan-ai/internal/web"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the GamePlan form as a web page",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = ":8080"
			}

			srv := web.New(web.ServerOptions{
				Planner: app.Planner,
				Logger:  app.Logger,
			})

			httpServer := &http.Server{
				Addr:         addr,
				Handler:      srv.Router,
				IdleTimeout:  time.Minute,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 60 * time.Second,
			}

			done := make(chan bool, 1)
			go gracefulShutdown(httpServer, app.Logger, done)

			app.Logger.Info().Str("addr", addr).Msg("starting server")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server error: %w", err)
			}

			<-done
			app.Logger.Info().Msg("graceful shutdown complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Addr, "Listen address, e.g. :8080")

	return cmd
}

// gracefulShutdown waits for an interrupt and drains in-flight requests
// before signalling done.
func gracefulShutdown(server *http.Server, log zerolog.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	done <- true
}
