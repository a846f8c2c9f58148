package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/floorforge/floorforge/internal/api"
)

// serveShutdownTimeout bounds graceful shutdown on interrupt.
const serveShutdownTimeout = 10 * time.Second

// serveCommand creates the serve command running the REST API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		codes string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		Long: `Run the FloorForge REST API server.

Endpoints:
  GET  /api/health            service status
  POST /api/generate          generate a floor plan
  POST /api/validate          validate a plan against building codes
  POST /api/analyze           full plan analysis
  POST /api/export/svg        render a plan as SVG
  POST /api/export/adjacency  render a plan's adjacency diagram

Examples:
  floorforge serve
  floorforge serve --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, codes)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&codes, "codes", "", "building codes TOML file (defaults to IRC-based values)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, codes string) error {
	runner, err := c.newRunner(codes)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(runner, c.Logger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving API", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
