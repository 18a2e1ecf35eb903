package home

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jellyfront/pkg/domain"
	"jellyfront/pkg/logger"
	"jellyfront/pkg/mediaserver"
	"jellyfront/pkg/serrors"
)

// episodeFields are the optional fields requested for downloadable episodes.
//
//nolint: gochecknoglobals
var episodeFields = []domain.ItemField{
	domain.ItemFieldOverview,
	domain.ItemFieldCanDownload,
	domain.ItemFieldPath,
}

// downloadSet keeps downloads in insertion order. Adding a name again replaces
// its URL but keeps its position.
type downloadSet struct {
	list  []Download
	index map[string]int
}

func (d *downloadSet) add(name, url string) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[name]; ok {
		d.list[i].URL = url

		return
	}
	d.index[name] = len(d.list)
	d.list = append(d.list, Download{Name: name, URL: url})
}

// SeasonDownloads returns the download link of every episode in the season.
// Episodes without ID or without a download URL are skipped.
func (s service) SeasonDownloads(ctx context.Context, seasonID string) (downloads []Download, err error) {
	ctx, done := s.observe(ctx, "SeasonDownloads")
	defer func() { done(err) }()

	var set downloadSet
	if err := s.seasonDownloads(ctx, seasonID, &set); err != nil {
		return nil, err
	}

	return set.list, nil
}

// SeriesDownloads merges the downloads of every season of the series, in
// season order. A name seen in a later season overrides the earlier URL.
func (s service) SeriesDownloads(ctx context.Context, seriesID string) (downloads []Download, err error) {
	ctx, done := s.observe(ctx, "SeriesDownloads")
	defer func() { done(err) }()

	if seriesID == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "series ID is required")
	}

	seasons, err := s.client.Seasons(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("could not get seasons of %s: %w", seriesID, err)
	}

	var set downloadSet
	for _, season := range seasons {
		if season.ID == "" {
			continue
		}
		if err := s.seasonDownloads(ctx, season.ID, &set); err != nil {
			return nil, err
		}
	}

	return set.list, nil
}

func (s service) seasonDownloads(ctx context.Context, seasonID string, set *downloadSet) error {
	if seasonID == "" {
		return serrors.With(serrors.ErrBadRequest, "season ID is required")
	}

	episodes, err := s.client.Items(ctx, mediaserver.ItemsQuery{
		ParentID: seasonID,
		Fields:   episodeFields,
	})
	if err != nil {
		return fmt.Errorf("could not get episodes of season %s: %w", seasonID, err)
	}

	for _, episode := range episodes {
		// an unnamed episode is still listed, under the empty name
		if episode.ID == "" {
			continue
		}

		url, ok := s.client.DownloadURL(episode.ID)
		if !ok {
			logger.Debug(ctx, "no download URL for episode", zap.String("itemId", episode.ID))

			continue
		}
		set.add(episode.Name, url)
	}

	return nil
}
