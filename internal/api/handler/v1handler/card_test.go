package v1handler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jellyfront/internal/api/handler/v1handler"
	"jellyfront/internal/api/specs/v1specs"
	"jellyfront/pkg/domain"
	"jellyfront/pkg/items"
	"jellyfront/pkg/routes"
)

func TestNewCard_Movie(t *testing.T) {
	movie := domain.Item{
		ID:           "m1",
		Name:         "Movie",
		Type:         domain.ItemKindMovie,
		MediaType:    domain.MediaTypeVideo,
		RunTimeTicks: 72_000_000_000, // 2h
		MediaSources: []domain.MediaSource{{
			ID:        "src1",
			Container: "mkv",
			Size:      1 << 30,
			Bitrate:   18_112_270,
			MediaStreams: []domain.MediaStream{
				{Index: 0, Type: domain.StreamTypeVideo},
				{Index: 1, Type: domain.StreamTypeAudio},
				{Index: 2, Type: domain.StreamTypeAudio},
				{Index: 3, Type: domain.StreamTypeSubtitle},
			},
		}},
	}
	admin := &domain.User{ID: "u1", Policy: &domain.UserPolicy{IsAdministrator: true}}

	card := v1handler.NewCard(routes.New(), movie, admin)
	require.Equal(t, "/item/m1", card.Link)
	require.Equal(t, string(items.CardShapePortrait), card.Shape)
	require.Equal(t, items.IconFilmstrip, card.Icon.Or(""))
	require.EqualValues(t, 2*60*60*1000, card.RuntimeMs.Or(0))
	require.True(t, card.CanPlay)
	require.True(t, card.CanIdentify)
	require.True(t, card.CanRefreshMetadata)
	require.False(t, card.CanInstantMix)

	media, ok := card.Media.Get()
	require.True(t, ok)
	require.Equal(t, "src1", media.SourceID)
	require.Equal(t, "1.00 GiB", media.Size.Or(""))
	require.Equal(t, "18112.27 kbps", media.Bitrate.Or(""))
	require.Equal(t, 1, media.VideoStreams)
	require.Equal(t, 2, media.AudioStreams)
	require.Equal(t, 1, media.SubtitleStreams)

	body, err := card.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"id":"m1","name":"Movie","type":"Movie","shape":"portrait-card","icon":"i-mdi:filmstrip",
		"link":"/item/m1","runtimeMs":7200000,
		"canPlay":true,"canResume":false,"canMarkWatched":true,"canInstantMix":false,
		"canIdentify":true,"canRefreshMetadata":true,
		"media":{"sourceId":"src1","container":"mkv","size":"1.00 GiB","bitrate":"18112.27 kbps",
			"videoStreams":1,"audioStreams":2,"subtitleStreams":1}
	}`, string(body))
}

func TestNewCard_NoIDHasNoLink(t *testing.T) {
	card := v1handler.NewCard(routes.New(), domain.Item{Name: "orphan"}, nil)
	require.Empty(t, card.Link)
	require.False(t, card.Media.IsSet())
	require.False(t, card.RuntimeMs.IsSet())
	require.False(t, card.CanRefreshMetadata)

	body, err := card.MarshalJSON()
	require.NoError(t, err)
	require.NotContains(t, string(body), "media")
	require.Contains(t, string(body), `"link":""`)
}

func TestNewLibraryCard(t *testing.T) {
	view := domain.Item{
		ID:             "lib",
		Name:           "Music",
		Type:           domain.ItemKindCollectionFolder,
		CollectionType: domain.CollectionTypeMusic,
	}

	card := v1handler.NewLibraryCard(routes.New(), view)
	require.Equal(t, v1specs.LibraryCard{
		ID:             "lib",
		Name:           "Music",
		CollectionType: v1specs.NewOptString(string(domain.CollectionTypeMusic)),
		Icon:           items.IconMusic,
		Shape:          string(items.CardShapeSquare),
		Link:           "/library/lib",
	}, card)
}
