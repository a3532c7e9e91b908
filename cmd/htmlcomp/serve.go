package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/justinyaodu/htmlcomp/internal/config"
	"github.com/justinyaodu/htmlcomp/internal/preview"
)

func serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview pages locally with live reload",
		Long: `Start the preview server.

Pages are parsed and rendered on every request, so edits show up on
the next refresh. Connected browsers reload automatically when a
source page changes. Prometheus metrics are exposed at /metrics.

Examples:
  htmlcomp serve
  htmlcomp serve --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Serve.Host = host
			}
			if port != 0 {
				cfg.Serve.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to bind (default from htmlcomp.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from htmlcomp.json)")

	return cmd
}

func runServe(cfg *config.Config) error {
	server := preview.New(cfg)
	if err := server.CheckSource(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		info("Shutting down...")
		cancel()
	}()

	success("Preview server running at %s", cfg.ServeURL())
	info("Serving pages from %s", cfg.SourcePath())
	info("Press Ctrl+C to stop")

	err := server.Run(ctx)
	if errors.Is(err, http.ErrServerClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
