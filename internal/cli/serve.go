package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/internal/server"
)

// serveCommand creates the serve command for the HTTP board service.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose boards over HTTP",
		Long: `Expose boards over HTTP.

The service reads and writes full board documents per board ID:

  GET    /v1/boards/{boardID}          fetch a board (defaults if unsaved)
  PUT    /v1/boards/{boardID}          replace a board document
  DELETE /v1/boards/{boardID}          delete a board
  POST   /v1/boards/{boardID}/arrange  repack and persist a board
  GET    /healthz                      liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			gw, closeGW, err := c.openGateway(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeGW()

			srv := server.New(gw, cfg.ArrangeOptions(), c.Logger)
			httpSrv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- httpSrv.ListenAndServe()
			}()
			c.Logger.Info("board service listening", "addr", cfg.Server.Addr, "backend", cfg.Storage.Backend)

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := httpSrv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				c.Logger.Info("board service stopped")
				return nil
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
