package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/spf13/cobra"

	"github.com/mcorpas/podarc/internal/api"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the archive: feed, index page, audio and a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer appCtx.Store.Close()

			if port == "" {
				port = appCtx.Config.Port
			}

			e := echo.New()
			api.RegisterRoutes(e, appCtx)

			srv := &http.Server{
				Addr:     ":" + port,
				Handler:  e,
				ErrorLog: log.New(appCtx.Logger, "", 0),
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				appCtx.Logger.Info("Serving archive on :%s", port)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				appCtx.Logger.Info("Shutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default from config)")

	return cmd
}
