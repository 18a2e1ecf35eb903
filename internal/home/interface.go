package home

import (
	"context"

	"jellyfront/pkg/domain"
)

// IndexPage holds every item collection needed to render the home page.
type IndexPage struct {
	// Views are the user's libraries.
	Views []domain.Item
	// ResumeVideo are video items with a saved playback position.
	ResumeVideo []domain.Item
	// Carousel are the most recently added series and movies.
	Carousel []domain.Item
	// NextUp are the next episodes of the series in progress.
	NextUp []domain.Item
	// LatestPerLibrary maps a view ID to its recently added items.
	LatestPerLibrary map[string][]domain.Item
}

// Download is an episode name paired with its direct download URL.
type Download struct {
	Name string
	URL  string
}

//go:generate mockgen -package mockhome -source=interface.go -destination=mock/mockhome.go *
type Service interface {
	IndexPage(ctx context.Context) (*IndexPage, error)
	SeasonDownloads(ctx context.Context, seasonID string) ([]Download, error)
	SeriesDownloads(ctx context.Context, seriesID string) ([]Download, error)
	Viewer(ctx context.Context) (*domain.User, error)
}
