package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jellyfront/internal/api"
	"jellyfront/internal/config"
	"jellyfront/internal/telemetry"
	"jellyfront/pkg/logger"
)

func setupServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	tp, err := telemetry.NewTracerProvider(ctx, telemetry.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create tracer provider", zap.Error(err))
	}
	mp, err := telemetry.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}

	server, err := api.NewServer(api.Deps{
		Client:         getMediaServer(ctx, cfg, tp, mp),
		MeterProvider:  mp,
		TracerProvider: tp,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not flush spans", zap.Error(err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop meter provider", zap.Error(err))
		}
	}
}

func serveCommand(loader *configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loader.Get()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopWebserver := setupServer(ctx, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
