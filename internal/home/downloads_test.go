package home_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jellyfront/internal/home"
	"jellyfront/pkg/domain"
	"jellyfront/pkg/mediaserver"
	"jellyfront/pkg/serrors"
)

func episodesQuery(seasonID string) mediaserver.ItemsQuery {
	return mediaserver.ItemsQuery{
		ParentID: seasonID,
		Fields: []domain.ItemField{
			domain.ItemFieldOverview,
			domain.ItemFieldCanDownload,
			domain.ItemFieldPath,
		},
	}
}

func downloadURL(id string) string {
	return "https://media.example.com/Items/" + id + "/Download?api_key=t"
}

func TestSeasonDownloads(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})

	client.EXPECT().Items(gomock.Any(), episodesQuery("season-1")).Return([]domain.Item{
		{ID: "e1", Name: "Pilot"},
		{ID: "", Name: "No ID"},
		{ID: "e3", Name: ""},
		{ID: "e4", Name: "Second"},
	}, nil)
	client.EXPECT().DownloadURL("e1").Return(downloadURL("e1"), true)
	client.EXPECT().DownloadURL("e3").Return(downloadURL("e3"), true)
	client.EXPECT().DownloadURL("e4").Return(downloadURL("e4"), true)

	got, err := s.SeasonDownloads(context.Background(), "season-1")
	require.NoError(t, err)
	require.Equal(t, []home.Download{
		{Name: "Pilot", URL: downloadURL("e1")},
		{Name: "", URL: downloadURL("e3")},
		{Name: "Second", URL: downloadURL("e4")},
	}, got)
}

func TestSeasonDownloads_noURL(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})

	client.EXPECT().Items(gomock.Any(), gomock.Any()).Return([]domain.Item{{ID: "e1", Name: "Pilot"}}, nil)
	client.EXPECT().DownloadURL("e1").Return("", false)

	got, err := s.SeasonDownloads(context.Background(), "season-1")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSeasonDownloads_emptyID(t *testing.T) {
	_, s, _ := newTestService(t, home.Options{})

	_, err := s.SeasonDownloads(context.Background(), "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestSeasonDownloads_upstreamError(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})

	client.EXPECT().Items(gomock.Any(), gomock.Any()).Return(nil, serrors.KindOnly(serrors.ErrNotFound))

	_, err := s.SeasonDownloads(context.Background(), "season-1")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestSeriesDownloads_laterSeasonWins(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})

	client.EXPECT().Seasons(gomock.Any(), "series-1").Return([]domain.Item{
		{ID: "s1"},
		{ID: ""},
		{ID: "s2"},
	}, nil)
	gomock.InOrder(
		client.EXPECT().Items(gomock.Any(), episodesQuery("s1")).Return([]domain.Item{
			{ID: "a", Name: "Pilot"},
			{ID: "b", Name: "Finale"},
		}, nil),
		client.EXPECT().Items(gomock.Any(), episodesQuery("s2")).Return([]domain.Item{
			{ID: "c", Name: "Pilot"},
			{ID: "d", Name: "Return"},
		}, nil),
	)
	client.EXPECT().DownloadURL(gomock.Any()).DoAndReturn(func(id string) (string, bool) {
		return downloadURL(id), true
	}).Times(4)

	got, err := s.SeriesDownloads(context.Background(), "series-1")
	require.NoError(t, err)
	require.Equal(t, []home.Download{
		{Name: "Pilot", URL: downloadURL("c")},
		{Name: "Finale", URL: downloadURL("b")},
		{Name: "Return", URL: downloadURL("d")},
	}, got)
}

func TestSeriesDownloads_seasonError(t *testing.T) {
	client, s, _ := newTestService(t, home.Options{})

	client.EXPECT().Seasons(gomock.Any(), "series-1").Return([]domain.Item{{ID: "s1"}, {ID: "s2"}}, nil)
	client.EXPECT().Items(gomock.Any(), episodesQuery("s1")).Return(nil, serrors.KindOnly(serrors.ErrUnavailable))

	_, err := s.SeriesDownloads(context.Background(), "series-1")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestSeriesDownloads_emptyID(t *testing.T) {
	_, s, _ := newTestService(t, home.Options{})

	_, err := s.SeriesDownloads(context.Background(), "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
