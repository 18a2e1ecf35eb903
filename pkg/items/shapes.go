package items

import (
	"strings"

	"jellyfront/pkg/domain"
)

// CardShape is the CSS class that sets the aspect ratio of a UI card.
type CardShape string

const (
	CardShapePortrait CardShape = "portrait-card"
	CardShapeThumb    CardShape = "thumb-card"
	CardShapeSquare   CardShape = "square-card"
	CardShapeBanner   CardShape = "banner-card"
)

// Icon names are Material Design Icons in the client's icon-set notation.
const (
	IconFolder         = "i-mdi:folder"
	IconMovie          = "i-mdi:movie"
	IconMusic          = "i-mdi-music"
	IconImage          = "i-mdi:image"
	IconLiveTV         = "i-mdi:youtube-tv"
	IconTelevision     = "i-mdi:television-classic"
	IconImageMultiple  = "i-mdi:image-multiple"
	IconMusicBox       = "i-mdi:music-box"
	IconBookOpen       = "i-mdi:book-open-page-variant"
	IconChannels       = "i-mdi:youtube"
	IconPlaylist       = "i-mdi:playlist-play"
	IconAccount        = "i-mdi:account"
	IconMusicNote      = "i-mdi:music-note"
	IconBookMusic      = "i-mdi:book-music"
	IconFolderMultiple = "i-mdi:folder-multiple"
	IconBookmarkBox    = "i-mdi:bookmark-box-multiple"
	IconFilmstrip      = "i-mdi:filmstrip"
	IconAlbum          = "i-mdi:album"
)

//nolint: gochecknoglobals
var (
	libraryIcons = map[domain.CollectionType]string{
		domain.CollectionTypeMovies:      IconMovie,
		domain.CollectionTypeMusic:       IconMusic,
		domain.CollectionTypePhotos:      IconImage,
		domain.CollectionTypeLiveTV:      IconLiveTV,
		domain.CollectionTypeTVShows:     IconTelevision,
		domain.CollectionTypeHomeVideos:  IconImageMultiple,
		domain.CollectionTypeMusicVideos: IconMusicBox,
		domain.CollectionTypeBooks:       IconBookOpen,
		domain.CollectionTypeChannels:    IconChannels,
		domain.CollectionTypePlaylists:   IconPlaylist,
	}

	collectionShapes = map[domain.CollectionType]CardShape{
		domain.CollectionTypeLiveTV:      CardShapeThumb,
		domain.CollectionTypeMusicVideos: CardShapeThumb,
		domain.CollectionTypeFolders:     CardShapeSquare,
		domain.CollectionTypePlaylists:   CardShapeSquare,
		domain.CollectionTypeMusic:       CardShapeSquare,
	}

	itemShapes = map[domain.ItemKind]CardShape{
		domain.ItemKindAudio:            CardShapeSquare,
		domain.ItemKindFolder:           CardShapeSquare,
		domain.ItemKindMusicAlbum:       CardShapeSquare,
		domain.ItemKindMusicArtist:      CardShapeSquare,
		domain.ItemKindMusicGenre:       CardShapeSquare,
		domain.ItemKindPhotoAlbum:       CardShapeSquare,
		domain.ItemKindPlaylist:         CardShapeSquare,
		domain.ItemKindVideo:            CardShapeSquare,
		domain.ItemKindEpisode:          CardShapeThumb,
		domain.ItemKindMusicVideo:       CardShapeThumb,
		domain.ItemKindCollectionFolder: CardShapeThumb,
		domain.ItemKindStudio:           CardShapeThumb,
	}

	itemIcons = map[domain.ItemKind]string{
		domain.ItemKindAudio:            IconMusicNote,
		domain.ItemKindAudioBook:        IconBookMusic,
		domain.ItemKindBook:             IconBookOpen,
		domain.ItemKindBoxSet:           IconFolderMultiple,
		domain.ItemKindFolder:           IconBookmarkBox,
		domain.ItemKindCollectionFolder: IconBookmarkBox,
		domain.ItemKindMovie:            IconFilmstrip,
		domain.ItemKindMusicAlbum:       IconAlbum,
		domain.ItemKindMusicArtist:      IconAccount,
		domain.ItemKindPerson:           IconAccount,
		domain.ItemKindPhotoAlbum:       IconImageMultiple,
		domain.ItemKindPlaylist:         IconPlaylist,
		domain.ItemKindSeries:           IconTelevision,
		domain.ItemKindEpisode:          IconTelevision,
	}
)

// LibraryIcon returns the icon of a library with the given collection type.
// The lookup is case-insensitive; unknown and empty types get the folder icon.
func LibraryIcon(collectionType string) string {
	if icon, ok := libraryIcons[domain.CollectionType(strings.ToLower(collectionType))]; ok {
		return icon
	}

	return IconFolder
}

// ShapeFromCollectionType returns the card shape for items of a library with
// the given collection type. The lookup is case-insensitive.
func ShapeFromCollectionType(collectionType string) CardShape {
	if shape, ok := collectionShapes[domain.CollectionType(strings.ToLower(collectionType))]; ok {
		return shape
	}

	return CardShapePortrait
}

// ShapeFromItemType returns the card shape for an item of the given kind.
func ShapeFromItemType(kind domain.ItemKind) CardShape {
	if shape, ok := itemShapes[kind]; ok {
		return shape
	}

	return CardShapePortrait
}

// ItemIcon returns the icon for the entry, or an empty string when the entry's
// type has no dedicated icon.
func ItemIcon(e domain.Entry) string {
	if IsPerson(e) {
		return IconAccount
	}

	t, _ := entryType(e)

	return itemIcons[domain.ItemKind(t)]
}
