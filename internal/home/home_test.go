package home_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"jellyfront/internal/config"
	"jellyfront/internal/home"
	"jellyfront/pkg/domain"
	"jellyfront/pkg/mediaserver"
	mockmediaserver "jellyfront/pkg/mediaserver/mock"
	"jellyfront/pkg/serrors"
)

func newTestService(t *testing.T, opts home.Options) (*mockmediaserver.MockClient, home.Service, *sdkmetric.ManualReader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockmediaserver.NewMockClient(ctrl)
	reader := sdkmetric.NewManualReader()

	s, err := home.New(home.Deps{
		Client:        client,
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	}, opts)
	require.NoError(t, err)

	return client, s, reader
}

func TestNew_requiresClient(t *testing.T) {
	_, err := home.New(home.Deps{}, home.Options{})
	require.Error(t, err)
}

func TestIndexPage_success(t *testing.T) {
	client, s, reader := newTestService(t, home.Options{LatestLimit: 16})
	ctx := context.Background()

	views := []domain.Item{
		{ID: "movies", Name: "Movies", Type: domain.ItemKindCollectionFolder},
		{ID: "shows", Name: "Shows", Type: domain.ItemKindCollectionFolder},
	}
	client.EXPECT().UserViews(gomock.Any()).Return(views, nil)
	client.EXPECT().LatestMedia(gomock.Any(), mediaserver.LatestMediaQuery{ParentID: "movies", Limit: 16}).
		Return([]domain.Item{{ID: "m1"}}, nil)
	client.EXPECT().LatestMedia(gomock.Any(), mediaserver.LatestMediaQuery{ParentID: "shows", Limit: 16}).
		Return([]domain.Item{{ID: "s1"}, {ID: "s2"}}, nil)
	client.EXPECT().LatestMedia(gomock.Any(), mediaserver.LatestMediaQuery{
		IncludeItemTypes: []domain.ItemKind{domain.ItemKindSeries, domain.ItemKindMovie},
		Limit:            16,
	}).Return([]domain.Item{{ID: "c1"}}, nil)
	client.EXPECT().ResumeItems(gomock.Any(), mediaserver.ResumeQuery{
		MediaTypes: []domain.MediaType{domain.MediaTypeVideo},
	}).Return([]domain.Item{{ID: "r1"}}, nil)
	client.EXPECT().NextUp(gomock.Any(), mediaserver.NextUpQuery{}).Return([]domain.Item{{ID: "n1"}}, nil)

	page, err := s.IndexPage(ctx)
	require.NoError(t, err)
	require.Equal(t, views, page.Views)
	require.Equal(t, []domain.Item{{ID: "r1"}}, page.ResumeVideo)
	require.Equal(t, []domain.Item{{ID: "c1"}}, page.Carousel)
	require.Equal(t, []domain.Item{{ID: "n1"}}, page.NextUp)
	require.Len(t, page.LatestPerLibrary, 2)
	require.Len(t, page.LatestPerLibrary["shows"], 2)
	require.Equal(t, "m1", page.LatestPerLibrary["movies"][0].ID)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Equal(t, "home.request.duration", rm.ScopeMetrics[0].Metrics[0].Name)
}

func newTracedService(t *testing.T) (*mockmediaserver.MockClient, home.Service, *tracetest.SpanRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockmediaserver.NewMockClient(ctrl)
	rec := tracetest.NewSpanRecorder()

	s, err := home.New(home.Deps{
		Client:         client,
		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)),
	}, home.Options{})
	require.NoError(t, err)

	return client, s, rec
}

func TestIndexPage_span(t *testing.T) {
	client, s, rec := newTracedService(t)

	client.EXPECT().UserViews(gomock.Any()).Return(nil, nil)
	client.EXPECT().LatestMedia(gomock.Any(), gomock.Any()).Return(nil, nil)
	client.EXPECT().ResumeItems(gomock.Any(), gomock.Any()).Return(nil, nil)
	client.EXPECT().NextUp(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.IndexPage(context.Background())
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "home.IndexPage", spans[0].Name())
	require.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestIndexPage_spanRecordsError(t *testing.T) {
	client, s, rec := newTracedService(t)

	client.EXPECT().UserViews(gomock.Any()).Return(nil, serrors.KindOnly(serrors.ErrUnavailable))

	_, err := s.IndexPage(context.Background())
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "home.IndexPage", spans[0].Name())
	require.Equal(t, codes.Error, spans[0].Status().Code)
	require.Equal(t, err.Error(), spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	require.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestIndexPage_noViews(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})

	client.EXPECT().UserViews(gomock.Any()).Return(nil, nil)
	client.EXPECT().LatestMedia(gomock.Any(), gomock.Any()).Return(nil, nil)
	client.EXPECT().ResumeItems(gomock.Any(), gomock.Any()).Return(nil, nil)
	client.EXPECT().NextUp(gomock.Any(), gomock.Any()).Return(nil, nil)

	page, err := s.IndexPage(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page.LatestPerLibrary)
	require.Empty(t, page.LatestPerLibrary)
}

func TestIndexPage_viewsError(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})

	client.EXPECT().UserViews(gomock.Any()).Return(nil, serrors.KindOnly(serrors.ErrUnauthorized))

	_, err := s.IndexPage(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestIndexPage_oneFailureFailsAggregate(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})
	boom := errors.New("boom")

	client.EXPECT().UserViews(gomock.Any()).Return([]domain.Item{{ID: "v1"}}, nil)
	// siblings may or may not run before the group is cancelled
	client.EXPECT().LatestMedia(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	client.EXPECT().ResumeItems(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	client.EXPECT().NextUp(gomock.Any(), gomock.Any()).Return(nil, boom)

	page, err := s.IndexPage(context.Background())
	require.ErrorIs(t, err, boom)
	require.Nil(t, page)
}

func TestIndexPage_siblingsObserveCancellation(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})

	client.EXPECT().UserViews(gomock.Any()).Return([]domain.Item{{ID: "v1"}}, nil)
	client.EXPECT().ResumeItems(gomock.Any(), gomock.Any()).Return(nil, errors.New("resume failed"))
	client.EXPECT().LatestMedia(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ mediaserver.LatestMediaQuery) ([]domain.Item, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		}).Times(2)
	client.EXPECT().NextUp(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ mediaserver.NextUpQuery) ([]domain.Item, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	_, err := s.IndexPage(context.Background())
	require.ErrorContains(t, err, "resume failed")
}

func TestViewer(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})
	user := &domain.User{ID: "u1", Policy: &domain.UserPolicy{IsAdministrator: true}}

	client.EXPECT().CurrentUser(gomock.Any()).Return(user, nil)

	got, err := s.Viewer(context.Background())
	require.NoError(t, err)
	require.Same(t, user, got)
}

func TestViewer_error(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})

	client.EXPECT().CurrentUser(gomock.Any()).Return(nil, serrors.KindOnly(serrors.ErrForbidden))

	_, err := s.Viewer(context.Background())
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestNewOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Jellyfin.LatestLimit = 7

	require.Equal(t, home.Options{LatestLimit: 7}, home.NewOptions(cfg))
}
