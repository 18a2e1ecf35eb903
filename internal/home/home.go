// Package home aggregates the item collections shown on the home page and
// resolves episode download links from the media server.
package home

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jellyfront/internal/config"
	"jellyfront/pkg/domain"
	"jellyfront/pkg/logger"
	"jellyfront/pkg/mediaserver"
)

const instrumentationName = "jellyfront/internal/home"

// Options configure how many items the home page rows request.
type Options struct {
	// LatestLimit caps every "latest" row, including the carousel. Zero leaves
	// the server default.
	LatestLimit int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LatestLimit: cfg.Jellyfin.LatestLimit,
	}
}

// Deps are the collaborators of the service. Nil providers fall back to no-op
// implementations.
type Deps struct {
	Client         mediaserver.Client
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// service is the concrete implementation of the Service interface.
type service struct {
	options Options
	client  mediaserver.Client
	tracer  trace.Tracer
	// duration records how long each aggregate call takes, tagged by operation
	// and outcome.
	duration metric.Float64Histogram
}

// IndexPage fetches the user's libraries first and then, concurrently, the
// latest items of every library, the resume row, the carousel and the next-up
// row. The first failing request cancels the others and fails the page.
func (s service) IndexPage(ctx context.Context) (page *IndexPage, err error) {
	ctx, done := s.observe(ctx, "IndexPage")
	defer func() { done(err) }()

	views, err := s.client.UserViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user views: %w", err)
	}

	page = &IndexPage{
		Views:            views,
		LatestPerLibrary: make(map[string][]domain.Item, len(views)),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for _, view := range views {
		g.Go(func() error {
			latest, err := s.client.LatestMedia(ctx, mediaserver.LatestMediaQuery{
				ParentID: view.ID,
				Limit:    s.options.LatestLimit,
			})
			if err != nil {
				return fmt.Errorf("could not get latest items of library %s: %w", view.ID, err)
			}

			mu.Lock()
			page.LatestPerLibrary[view.ID] = latest
			mu.Unlock()

			return nil
		})
	}

	g.Go(func() error {
		resume, err := s.client.ResumeItems(ctx, mediaserver.ResumeQuery{
			MediaTypes: []domain.MediaType{domain.MediaTypeVideo},
		})
		if err != nil {
			return fmt.Errorf("could not get resume items: %w", err)
		}
		page.ResumeVideo = resume

		return nil
	})

	g.Go(func() error {
		carousel, err := s.client.LatestMedia(ctx, mediaserver.LatestMediaQuery{
			IncludeItemTypes: []domain.ItemKind{domain.ItemKindSeries, domain.ItemKindMovie},
			Limit:            s.options.LatestLimit,
		})
		if err != nil {
			return fmt.Errorf("could not get carousel items: %w", err)
		}
		page.Carousel = carousel

		return nil
	})

	g.Go(func() error {
		nextUp, err := s.client.NextUp(ctx, mediaserver.NextUpQuery{})
		if err != nil {
			return fmt.Errorf("could not get next up items: %w", err)
		}
		page.NextUp = nextUp

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug(ctx, "index page fetched",
		zap.Int("views", len(page.Views)),
		zap.Int("resume", len(page.ResumeVideo)),
		zap.Int("carousel", len(page.Carousel)),
		zap.Int("nextUp", len(page.NextUp)))

	return page, nil
}

// Viewer returns the user the media-server client acts for.
func (s service) Viewer(ctx context.Context) (user *domain.User, err error) {
	ctx, done := s.observe(ctx, "Viewer")
	defer func() { done(err) }()

	user, err = s.client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get current user: %w", err)
	}

	return user, nil
}

// observe starts a span for op and returns a function that ends it and
// records the call duration.
func (s service) observe(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "home."+op)

	return ctx, func(err error) {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		s.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("outcome", outcome),
		))
	}
}

// New constructs a home Service that reads from deps.Client.
func New(deps Deps, opts Options) (Service, error) {
	if deps.Client == nil {
		return nil, fmt.Errorf("media server client is required")
	}

	mp := deps.MeterProvider
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}
	tp := deps.TracerProvider
	if tp == nil {
		tp = tracenoop.NewTracerProvider()
	}

	duration, err := mp.Meter(instrumentationName).Float64Histogram(
		"home.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of home page aggregate requests."),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return service{
		options:  opts,
		client:   deps.Client,
		tracer:   tp.Tracer(instrumentationName),
		duration: duration,
	}, nil
}
