package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/gosonic/gosonic/pkg/cli/config"
	controller "github.com/gosonic/gosonic/pkg/controller/http"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Subsonic
		proxyCfg  config.Proxy
		sentryCfg config.Sentry
	)

	flags := append(serverCfg.Flags(), proxyCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run a local streaming proxy that injects credentials",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			sentryEnabled, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			if sentryEnabled {
				defer sentry.Flush(2 * time.Second)
			}

			client, err := serverCfg.NewClient()
			if err != nil {
				return err
			}

			logger.Info("Starting gosonic proxy",
				slog.String("addr", proxyCfg.Addr),
				slog.String("server", serverCfg.Server),
				slog.Bool("scrobble", !proxyCfg.NoScrobble),
			)

			server, err := controller.NewServer(
				ctx,
				client,
				controller.WithAddr(proxyCfg.Addr),
				controller.WithScrobble(!proxyCfg.NoScrobble),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
					if sentryEnabled {
						sentry.CaptureException(err)
					}
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
