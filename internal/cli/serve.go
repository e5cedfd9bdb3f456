package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/familytree/internal/api"
	"github.com/matzehuels/familytree/pkg/config"
	"github.com/matzehuels/familytree/pkg/observability"
	"github.com/matzehuels/familytree/pkg/observability/metrics"
	"github.com/matzehuels/familytree/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [source]",
		Short: "Serve reports over HTTP",
		Long: `Load a record set once and serve reports over HTTP.

  GET /v1/individuals
  GET /v1/trees/{rootID}?format=html&sort=true&order=youngest
  GET /metrics

Report defaults come from the config file. Restart the server to pick up
changed records.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg, reportSource(cfg, args), noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg config.Config, source string, noCache bool) error {
	logger := loggerFromContext(ctx)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	observability.SetPipelineHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
	defer observability.Reset()

	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	store, err := runner.Load(ctx, pipeline.Options{Source: source, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}

	defaults := pipeline.Options{
		Title:     cfg.Report.Title,
		Format:    cfg.Report.Format,
		Sort:      cfg.Report.Sort,
		Order:     cfg.Report.Order,
		MaxDepth:  cfg.Build.MaxDepth,
		Print:     cfg.RenderOptions(),
		CSVLevels: cfg.Print.CSVLevels,
		Detailed:  cfg.Print.Detailed,
	}
	s, err := api.New(runner, store, api.WithDefaults(defaults), api.WithGatherer(reg))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	n, f := store.Len()
	printSuccess("Serving %d individuals, %d families", n, f)
	printDetail("%s/v1/individuals", baseURL(cfg.Server.Addr))

	select {
	case err := <-errc:
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}

// baseURL returns the URL of a listen address, localhost for an empty host.
func baseURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
