package v1handler

import (
	"jellyfront/internal/api/specs/v1specs"
	"jellyfront/pkg/domain"
	"jellyfront/pkg/items"
	"jellyfront/pkg/routes"
)

// NewCard decorates item with everything a client needs to render it. viewer
// may be nil, in which case admin-only capabilities are off.
func NewCard(table *routes.Table, item domain.Item, viewer *domain.User) v1specs.Card {
	// a link can only fail for an empty ID, which the card reports without one
	link, _ := table.DetailsLink(item, "")

	card := v1specs.Card{
		ID:                 item.ID,
		Name:               item.Name,
		Type:               string(item.Type),
		Shape:              string(items.ShapeFromItemType(item.Type)),
		Link:               link,
		CanPlay:            items.CanPlay(&item),
		CanResume:          items.CanResume(item),
		CanMarkWatched:     items.CanMarkWatched(item),
		CanInstantMix:      items.CanInstantMix(item),
		CanIdentify:        items.CanIdentify(item),
		CanRefreshMetadata: items.CanRefreshMetadata(item, viewer),
	}
	if icon := items.ItemIcon(item); icon != "" {
		card.Icon = v1specs.NewOptString(icon)
	}
	if runtime := items.ItemRuntime(item).Milliseconds(); runtime > 0 {
		card.RuntimeMs = v1specs.NewOptInt64(runtime)
	}

	if len(item.MediaSources) > 0 {
		card.Media = v1specs.NewOptCardMedia(newCardMedia(item))
	}

	return card
}

// newCardMedia summarizes the first media source of item.
func newCardMedia(item domain.Item) v1specs.CardMedia {
	src := item.MediaSources[0]
	streams := src.MediaStreams
	if len(streams) == 0 {
		streams = item.MediaStreams
	}

	media := v1specs.CardMedia{
		SourceID:        items.ItemIDFromSourceIndex(item, new(int)),
		VideoStreams:    len(items.MediaStreams(streams, domain.StreamTypeVideo)),
		AudioStreams:    len(items.MediaStreams(streams, domain.StreamTypeAudio)),
		SubtitleStreams: len(items.MediaStreams(streams, domain.StreamTypeSubtitle)),
	}
	if src.Container != "" {
		media.Container = v1specs.NewOptString(src.Container)
	}
	if src.Size > 0 {
		media.Size = v1specs.NewOptString(items.FormatFileSize(src.Size))
	}
	if src.Bitrate > 0 {
		media.Bitrate = v1specs.NewOptString(items.FormatBitRate(src.Bitrate))
	}

	return media
}

// NewLibraryCard decorates a user view for the library row and the drawer.
func NewLibraryCard(table *routes.Table, view domain.Item) v1specs.LibraryCard {
	link, _ := table.DetailsLink(view, "")

	card := v1specs.LibraryCard{
		ID:    view.ID,
		Name:  view.Name,
		Icon:  items.LibraryIcon(string(view.CollectionType)),
		Shape: string(items.ShapeFromCollectionType(string(view.CollectionType))),
		Link:  link,
	}
	if view.CollectionType != "" {
		card.CollectionType = v1specs.NewOptString(string(view.CollectionType))
	}

	return card
}

func newCards(table *routes.Table, list []domain.Item, viewer *domain.User) []v1specs.Card {
	cards := make([]v1specs.Card, 0, len(list))
	for _, item := range list {
		cards = append(cards, NewCard(table, item, viewer))
	}

	return cards
}
