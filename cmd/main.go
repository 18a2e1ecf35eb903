// Package main provides the CLI entrypoint for the jellyfront service.
// It wires subcommands (serve, home, downloads, link), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"jellyfront/internal/config"
	"jellyfront/pkg/logger"
	"jellyfront/pkg/mediaserver/jellyfin"
	"jellyfront/pkg/metrics"
)

// configLoader reads the config file the first time a command asks for it, so
// commands that need no settings run without one.
type configLoader struct {
	path string
	once sync.Once
	cfg  *config.Config
}

// Get loads the config and sets the logger up on first use. A missing or
// invalid file is fatal.
func (l *configLoader) Get() *config.Config {
	l.once.Do(func() {
		log.Println("loading config ...")
		cfg, err := config.Load(l.path)
		if err != nil {
			log.Fatal("could not load config file", err)
		}

		logger.Setup(cfg.Environment)
		l.cfg = cfg
	})

	return l.cfg
}

// newHTTPClient returns the client used for media server requests. Requests
// are traced, carry the W3C trace context and are counted both by the
// Prometheus collectors and by mp. Nil providers mean the global ones.
func newHTTPClient(timeout time.Duration, tp trace.TracerProvider, mp metric.MeterProvider) *http.Client {
	opts := []otelhttp.Option{otelhttp.WithPropagators(propagation.TraceContext{})}
	if tp != nil {
		opts = append(opts, otelhttp.WithTracerProvider(tp))
	}
	if mp != nil {
		opts = append(opts, otelhttp.WithMeterProvider(mp))
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(metrics.InstrumentTransport(http.DefaultTransport), opts...),
	}
}

// getMediaServer creates a Jellyfin client using configuration values. Upstream
// requests are traced and counted.
func getMediaServer(
	ctx context.Context,
	cfg *config.Config,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
) *jellyfin.Client {
	if err := cfg.Validate(); err != nil {
		logger.Fatal(ctx, "invalid media server config", zap.Error(err))
	}

	client, err := jellyfin.New(newHTTPClient(cfg.Jellyfin.Timeout, tp, mp), jellyfin.Options{
		BaseURL:  cfg.Jellyfin.BaseURL,
		Token:    cfg.Jellyfin.Token,
		UserID:   cfg.Jellyfin.UserID,
		Client:   cfg.Jellyfin.Client,
		Device:   cfg.Jellyfin.Device,
		DeviceID: cfg.Jellyfin.DeviceID,
		Version:  cfg.Jellyfin.Version,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create media server client", zap.Error(err))
	}

	return client
}

func newRootCommand(loader *configLoader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jellyfront",
		Short: "Home page, download and link helpers for a Jellyfin server",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath is parsed using the standard flags package in main.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		serveCommand(loader),
		homeCommand(loader),
		downloadsCommand(loader),
		linkCommand(),
	)

	return rootCmd
}

// main sets up the root Cobra command and registers subcommands before
// executing the CLI. Configuration and logging are set up by the first
// subcommand that needs them.
func main() {
	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	rootCmd := newRootCommand(&configLoader{path: *configPath})

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
