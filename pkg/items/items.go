// Package items classifies media-server records for the UI: type predicates,
// capability flags, card shapes, icons and human-readable formatting.
// Every function is pure and total; unknown or empty input yields a default.
package items

import (
	"slices"
	"time"

	"jellyfront/pkg/domain"
)

// ValidLibraryTypes lists the item kinds that are treated as folders (libraries).
var ValidLibraryTypes = []domain.ItemKind{ //nolint: gochecknoglobals
	domain.ItemKindCollectionFolder,
	domain.ItemKindFolder,
	domain.ItemKindUserView,
	domain.ItemKindPlaylist,
	domain.ItemKindPhotoAlbum,
}

// ValidPersonTypes lists the type tags that identify a person record.
var ValidPersonTypes = []domain.PersonKind{ //nolint: gochecknoglobals
	domain.PersonKindActor,
	domain.PersonKindDirector,
	domain.PersonKindComposer,
	domain.PersonKindWriter,
	domain.PersonKindGuestStar,
	domain.PersonKindProducer,
	domain.PersonKindConductor,
	domain.PersonKindLyricist,
}

// DefaultSortOrder is the sort order shared by most item listing requests.
var DefaultSortOrder = []domain.ItemSortBy{ //nolint: gochecknoglobals
	domain.ItemSortByPremiereDate,
	domain.ItemSortByProductionYear,
	domain.ItemSortBySortName,
}

var (
	identifiableKinds = []domain.ItemKind{ //nolint: gochecknoglobals
		domain.ItemKindBook,
		domain.ItemKindBoxSet,
		domain.ItemKindMovie,
		domain.ItemKindMusicAlbum,
		domain.ItemKindMusicArtist,
		domain.ItemKindMusicVideo,
		domain.ItemKindPerson,
		domain.ItemKindSeries,
		domain.ItemKindTrailer,
	}
	playableKinds = []domain.ItemKind{ //nolint: gochecknoglobals
		domain.ItemKindAudio,
		domain.ItemKindAudioBook,
		domain.ItemKindBoxSet,
		domain.ItemKindEpisode,
		domain.ItemKindMovie,
		domain.ItemKindMusicAlbum,
		domain.ItemKindMusicArtist,
		domain.ItemKindMusicGenre,
		domain.ItemKindMusicVideo,
		domain.ItemKindPlaylist,
		domain.ItemKindSeason,
		domain.ItemKindSeries,
		domain.ItemKindTrailer,
		domain.ItemKindVideo,
	}
	markableKinds = []domain.ItemKind{ //nolint: gochecknoglobals
		domain.ItemKindSeries,
		domain.ItemKindSeason,
		domain.ItemKindBoxSet,
		domain.ItemKindAudioPodcast,
		domain.ItemKindAudioBook,
	}
	instantMixKinds = []domain.ItemKind{ //nolint: gochecknoglobals
		domain.ItemKindAudio,
		domain.ItemKindMusicAlbum,
		domain.ItemKindMusicArtist,
		domain.ItemKindMusicGenre,
	}
	// metadata of live TV entities is owned by the tuner/guide provider
	unrefreshableKinds = []domain.ItemKind{ //nolint: gochecknoglobals
		domain.ItemKindTimer,
		domain.ItemKindSeriesTimer,
		domain.ItemKindProgram,
		domain.ItemKindTvChannel,
	}
)

// tick is the server's time unit.
const tick = 100 * time.Nanosecond

// IsPerson reports whether the entry is a person. Person records always are;
// items are when their type tag is one of ValidPersonTypes.
func IsPerson(e domain.Entry) bool {
	switch v := e.(type) {
	case domain.Person, *domain.Person:
		return true
	default:
		t, ok := entryType(v)

		return ok && slices.Contains(ValidPersonTypes, domain.PersonKind(t))
	}
}

// entryType returns the type tag of e; ok is false for nil entries.
func entryType(e domain.Entry) (string, bool) {
	switch v := e.(type) {
	case nil:
		return "", false
	case *domain.Item:
		if v == nil {
			return "", false
		}

		return string(v.Type), true
	default:
		return v.EntryType(), true
	}
}

// IsLibrary reports whether the item is a library-like folder.
func IsLibrary(item domain.Item) bool {
	if item.Type == "" {
		return false
	}

	return slices.Contains(ValidLibraryTypes, item.Type)
}

// CanIdentify reports whether the server can run remote identification for the item.
func CanIdentify(item domain.Item) bool {
	return slices.Contains(identifiableKinds, item.Type)
}

// CanPlay reports whether one of the client's players can play the item.
func CanPlay(item *domain.Item) bool {
	if item == nil {
		return false
	}

	return slices.Contains(playableKinds, item.Type) ||
		item.MediaType == domain.MediaTypeVideo ||
		item.MediaType == domain.MediaTypeAudio ||
		item.IsFolder
}

// CanResume reports whether the user has a saved playback position for the item.
func CanResume(item domain.Item) bool {
	return item.UserData != nil && item.UserData.PlaybackPositionTicks > 0
}

// CanMarkWatched reports whether the item can be marked as played.
func CanMarkWatched(item domain.Item) bool {
	if slices.Contains(markableKinds, item.Type) {
		return true
	}

	return item.MediaType == domain.MediaTypeVideo && item.Type != domain.ItemKindTvChannel
}

// CanInstantMix reports whether an instant mix can be generated from the item.
func CanInstantMix(item domain.Item) bool {
	return slices.Contains(instantMixKinds, item.Type)
}

// CanRefreshMetadata reports whether the given user may refresh the item's metadata.
// Only administrators can; live TV entities and unfinished recordings never can.
func CanRefreshMetadata(item domain.Item, user *domain.User) bool {
	if item.CollectionType == domain.CollectionTypeLiveTV {
		return false
	}

	incompleteRecording := item.Type == domain.ItemKindRecording && item.Status != domain.RecordingStatusCompleted

	return user.IsAdministrator() &&
		!incompleteRecording &&
		!slices.Contains(unrefreshableKinds, item.Type)
}

// TicksToDuration converts server ticks (100ns units) to a time.Duration.
func TicksToDuration(ticks int64) time.Duration {
	return time.Duration(ticks) * tick
}

// ItemRuntime returns the runtime of the item. Items without a runtime return 0.
func ItemRuntime(item domain.Item) time.Duration {
	return TicksToDuration(item.RunTimeTicks)
}

// ItemIDFromSourceIndex returns the identifier to request playback for: the
// item's own ID when sourceIndex is nil or out of range, otherwise the ID of
// the selected media source.
func ItemIDFromSourceIndex(item domain.Item, sourceIndex *int) string {
	if sourceIndex == nil {
		return item.ID
	}

	idx := *sourceIndex
	if idx < 0 || idx >= len(item.MediaSources) {
		return item.ID
	}

	return item.MediaSources[idx].ID
}
