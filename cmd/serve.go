package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/devroad/devroad/internal/api"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local catalog over HTTP",
	Long: `Serve courses, lessons and exercises from the local database with the
same REST shape the client reads with --remote-url.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		log := d.log.With("service", "api")
		server := &http.Server{
			Addr: d.cfg.Serve.Addr,
			Handler: api.NewRouter(d.st.CatalogRepo(), api.Options{
				APIKey: d.cfg.Serve.APIKey,
				Logger: log,
			}),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info("starting server", "address", server.Addr, "auth", d.cfg.Serve.APIKey != "")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen on %s: %w", server.Addr, err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			log.Info("shutting down server")
			return server.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default 127.0.0.1:8787)")
}
