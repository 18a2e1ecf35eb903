package items_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jellyfront/pkg/domain"
	"jellyfront/pkg/items"
)

func TestLibraryIcon(t *testing.T) {
	cases := map[string]string{
		"movies":      items.IconMovie,
		"MOVIES":      items.IconMovie,
		"music":       items.IconMusic,
		"photos":      items.IconImage,
		"livetv":      items.IconLiveTV,
		"tvshows":     items.IconTelevision,
		"homevideos":  items.IconImageMultiple,
		"musicvideos": items.IconMusicBox,
		"books":       items.IconBookOpen,
		"channels":    items.IconChannels,
		"playlists":   items.IconPlaylist,
		"boxsets":     items.IconFolder,
		"":            items.IconFolder,
		"unknown":     items.IconFolder,
	}

	for in, want := range cases {
		require.Equal(t, want, items.LibraryIcon(in), "collection type %q", in)
	}
}

func TestShapeFromCollectionType(t *testing.T) {
	cases := map[string]items.CardShape{
		"livetv":      items.CardShapeThumb,
		"MusicVideos": items.CardShapeThumb,
		"folders":     items.CardShapeSquare,
		"playlists":   items.CardShapeSquare,
		"music":       items.CardShapeSquare,
		"movies":      items.CardShapePortrait,
		"":            items.CardShapePortrait,
	}

	for in, want := range cases {
		require.Equal(t, want, items.ShapeFromCollectionType(in), "collection type %q", in)
	}
}

func TestShapeFromItemType(t *testing.T) {
	cases := map[domain.ItemKind]items.CardShape{
		domain.ItemKindAudio:            items.CardShapeSquare,
		domain.ItemKindPlaylist:         items.CardShapeSquare,
		domain.ItemKindVideo:            items.CardShapeSquare,
		domain.ItemKindEpisode:          items.CardShapeThumb,
		domain.ItemKindCollectionFolder: items.CardShapeThumb,
		domain.ItemKindStudio:           items.CardShapeThumb,
		domain.ItemKindMovie:            items.CardShapePortrait,
		domain.ItemKindSeries:           items.CardShapePortrait,
		"":                              items.CardShapePortrait,
		"SomethingNew":                  items.CardShapePortrait,
	}

	for in, want := range cases {
		require.Equal(t, want, items.ShapeFromItemType(in), "item kind %q", in)
	}
}

func TestItemIcon(t *testing.T) {
	cases := []struct {
		name  string
		entry domain.Entry
		want  string
	}{
		{name: "person record", entry: domain.Person{Type: domain.PersonKindComposer}, want: items.IconAccount},
		{name: "item typed as person kind", entry: domain.Item{Type: "Actor"}, want: items.IconAccount},
		{name: "audio", entry: domain.Item{Type: domain.ItemKindAudio}, want: items.IconMusicNote},
		{name: "collection folder", entry: domain.Item{Type: domain.ItemKindCollectionFolder}, want: items.IconBookmarkBox},
		{name: "movie", entry: domain.Item{Type: domain.ItemKindMovie}, want: items.IconFilmstrip},
		{name: "episode", entry: domain.Item{Type: domain.ItemKindEpisode}, want: items.IconTelevision},
		{name: "artist", entry: domain.Item{Type: domain.ItemKindMusicArtist}, want: items.IconAccount},
		{name: "no dedicated icon", entry: domain.Item{Type: domain.ItemKindTrailer}, want: ""},
		{name: "nil", entry: nil, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, items.ItemIcon(tc.entry))
		})
	}
}
