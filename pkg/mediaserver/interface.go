// Package mediaserver defines the client abstraction over the remote media
// server's REST API and the query types its operations accept.
package mediaserver

import (
	"context"

	"jellyfront/pkg/domain"
)

// LatestMediaQuery selects recently added items.
type LatestMediaQuery struct {
	// ParentID restricts the result to a single library. Empty means all libraries.
	ParentID string
	// IncludeItemTypes restricts the result to the given kinds.
	IncludeItemTypes []domain.ItemKind
	// Fields requests optional item fields.
	Fields []domain.ItemField
	// Limit caps the number of items; zero leaves the server default.
	Limit int
}

// ResumeQuery selects items with a saved playback position.
type ResumeQuery struct {
	MediaTypes []domain.MediaType
	Fields     []domain.ItemField
	Limit      int
}

// NextUpQuery selects the next episodes to watch.
type NextUpQuery struct {
	// SeriesID restricts the result to one series.
	SeriesID string
	Fields   []domain.ItemField
	Limit    int
}

// ItemsQuery is a generic item listing.
type ItemsQuery struct {
	ParentID         string
	IncludeItemTypes []domain.ItemKind
	Fields           []domain.ItemField
	SortBy           []domain.ItemSortBy
	Recursive        bool
	Limit            int
}

// Client is the abstraction for media-server API clients. All item queries are
// issued on behalf of the client's configured user.
//
//go:generate mockgen -package mockmediaserver -source=interface.go -destination=mock/mockmediaserver.go *
type Client interface {
	// UserViews returns the libraries visible to the user.
	UserViews(ctx context.Context) ([]domain.Item, error)
	// LatestMedia returns recently added items.
	LatestMedia(ctx context.Context, q LatestMediaQuery) ([]domain.Item, error)
	// ResumeItems returns partially played items.
	ResumeItems(ctx context.Context, q ResumeQuery) ([]domain.Item, error)
	// NextUp returns the next episode of every series in progress.
	NextUp(ctx context.Context, q NextUpQuery) ([]domain.Item, error)
	// Items runs a generic item query.
	Items(ctx context.Context, q ItemsQuery) ([]domain.Item, error)
	// Seasons returns the seasons of a series.
	Seasons(ctx context.Context, seriesID string) ([]domain.Item, error)
	// CurrentUser returns the user the client acts for, including its policy.
	CurrentUser(ctx context.Context) (*domain.User, error)
	// DownloadURL returns the direct download URL of an item. ok is false when
	// the client has no server address or access token to build it from.
	DownloadURL(itemID string) (string, bool)
}
