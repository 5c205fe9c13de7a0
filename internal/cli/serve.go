package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/northhaven/kinship/internal/web"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// serve command is interrupted.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for running the web site.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the genealogy site over HTTP",
		Long: `Serve the genealogy site over HTTP.

The data files are read once at startup; edits to people.json or
events.json require a restart. Missing or malformed data files do not
prevent startup — the affected pages render a notice instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "bind address (overrides config, default :8080)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, listen string) error {
	cfg, st, err := c.loadSite()
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           web.New(cfg, st, c.Logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving", "addr", cfg.Listen, "people", len(st.People), "events", len(st.Events))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}
