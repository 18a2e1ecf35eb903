// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the jellyfront service.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"jellyfront/internal/api/handler/v1handler"
	"jellyfront/internal/api/specs"
	"jellyfront/internal/api/specs/v1specs"
	"jellyfront/internal/config"
	"jellyfront/internal/home"
	"jellyfront/internal/telemetry"
	"jellyfront/pkg/controller"
	"jellyfront/pkg/mediaserver"
	"jellyfront/pkg/routes"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Home configures the home page aggregation.
	Home home.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Home: home.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps are the external collaborators of the server.
type Deps struct {
	// Client reaches the media server.
	Client mediaserver.Client
	// Registerer receives the OpenTelemetry exporter's collectors. Nil means
	// prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	// Gatherer backs the metrics endpoint. Nil means prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// MeterProvider receives the server and home service instruments. Nil
	// means a provider exporting through Registerer.
	MeterProvider metric.MeterProvider
	// TracerProvider receives the server and home service spans. Nil means
	// the global provider.
	TracerProvider trace.TracerProvider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus) feeding the server and home service meters
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes backed by generated server and handlers
// - pprof endpoints for profiling
// It also wraps the router with recovery, CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	registerer, gatherer := deps.Registerer, deps.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := mux.NewRouter()

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// otel
	mp, tp := deps.MeterProvider, deps.TracerProvider
	if mp == nil {
		var err error
		if mp, err = telemetry.NewMeterProvider(registerer); err != nil {
			return nil, err
		}
	}
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	// v1 specs file
	r.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(specs.V1)
	}).Methods(http.MethodGet)
	// v1 api swagger playground
	r.PathPrefix("/v1/docs/").Handler(v5emb.New(
		"Jellyfront",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	homeSvc, err := home.New(home.Deps{
		Client:         deps.Client,
		MeterProvider:  mp,
		TracerProvider: tp,
	}, opts.Home)
	if err != nil {
		return nil, fmt.Errorf("could not create home service: %w", err)
	}
	h := v1handler.New(v1handler.Deps{
		Home:   homeSvc,
		Routes: routes.New(),
	})
	v1Srv, err := v1specs.NewServer(h, append(h.ServerOptions(),
		v1specs.WithMeterProvider(mp),
		v1specs.WithTracerProvider(tp),
		v1specs.WithPathPrefix("/v1"))...)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	r.PathPrefix("/v1/").Handler(v1Srv)

	// pprof
	r.PathPrefix(controller.PprofPrefix).Handler(controller.PprofMux())

	// recovery
	handler := controller.WithRecovery(r)

	// cors
	handler = controller.WithCORS(handler)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
