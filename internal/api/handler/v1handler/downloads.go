package v1handler

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"jellyfront/internal/api/specs/v1specs"
	"jellyfront/internal/home"
	"jellyfront/pkg/serrors"
)

// ParseItemID validates an item ID. The media server uses GUIDs, usually
// written without dashes.
func ParseItemID(raw string) (string, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid item ID %q", raw)
	}

	return raw, nil
}

// GetSeasonDownloads lists the download links of the episodes of a season.
func (h *Handler) GetSeasonDownloads(
	ctx context.Context,
	params v1specs.GetSeasonDownloadsParams,
) (*v1specs.DownloadList, error) {
	return h.downloads(ctx, params.ItemID, h.deps.Home.SeasonDownloads)
}

// GetSeriesDownloads lists the download links of the episodes of every season
// of a series.
func (h *Handler) GetSeriesDownloads(
	ctx context.Context,
	params v1specs.GetSeriesDownloadsParams,
) (*v1specs.DownloadList, error) {
	return h.downloads(ctx, params.ItemID, h.deps.Home.SeriesDownloads)
}

func (h *Handler) downloads(
	ctx context.Context,
	rawID string,
	fetch func(ctx context.Context, id string) ([]home.Download, error),
) (*v1specs.DownloadList, error) {
	id, err := ParseItemID(rawID)
	if err != nil {
		return nil, err
	}

	downloads, err := fetch(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "downloads of %s", id)
	}

	out := &v1specs.DownloadList{
		ItemID:    id,
		Downloads: make([]v1specs.Download, 0, len(downloads)),
	}
	for _, d := range downloads {
		out.Downloads = append(out.Downloads, v1specs.Download{Name: d.Name, URL: d.URL})
	}

	return out, nil
}
