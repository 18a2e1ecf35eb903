package domain

// ItemKind is the type tag the media server attaches to every item
// (the "Type" field of an item record).
type ItemKind string

const (
	ItemKindAggregateFolder  ItemKind = "AggregateFolder"
	ItemKindAudio            ItemKind = "Audio"
	ItemKindAudioBook        ItemKind = "AudioBook"
	ItemKindAudioPodcast     ItemKind = "AudioPodcast"
	ItemKindBook             ItemKind = "Book"
	ItemKindBoxSet           ItemKind = "BoxSet"
	ItemKindChannel          ItemKind = "Channel"
	ItemKindCollectionFolder ItemKind = "CollectionFolder"
	ItemKindEpisode          ItemKind = "Episode"
	ItemKindFolder           ItemKind = "Folder"
	ItemKindGenre            ItemKind = "Genre"
	ItemKindMovie            ItemKind = "Movie"
	ItemKindMusicAlbum       ItemKind = "MusicAlbum"
	ItemKindMusicArtist      ItemKind = "MusicArtist"
	ItemKindMusicGenre       ItemKind = "MusicGenre"
	ItemKindMusicVideo       ItemKind = "MusicVideo"
	ItemKindPerson           ItemKind = "Person"
	ItemKindPhoto            ItemKind = "Photo"
	ItemKindPhotoAlbum       ItemKind = "PhotoAlbum"
	ItemKindPlaylist         ItemKind = "Playlist"
	ItemKindProgram          ItemKind = "Program"
	ItemKindRecording        ItemKind = "Recording"
	ItemKindSeason           ItemKind = "Season"
	ItemKindSeries           ItemKind = "Series"
	ItemKindSeriesTimer      ItemKind = "SeriesTimer"
	ItemKindStudio           ItemKind = "Studio"
	ItemKindTimer            ItemKind = "Timer"
	ItemKindTrailer          ItemKind = "Trailer"
	ItemKindTvChannel        ItemKind = "TvChannel"
	ItemKindUserView         ItemKind = "UserView"
	ItemKindVideo            ItemKind = "Video"
)

// PersonKind is the role of a person in a cast or crew listing.
type PersonKind string

const (
	PersonKindActor     PersonKind = "Actor"
	PersonKindDirector  PersonKind = "Director"
	PersonKindComposer  PersonKind = "Composer"
	PersonKindWriter    PersonKind = "Writer"
	PersonKindGuestStar PersonKind = "GuestStar"
	PersonKindProducer  PersonKind = "Producer"
	PersonKindConductor PersonKind = "Conductor"
	PersonKindLyricist  PersonKind = "Lyricist"
)

// CollectionType is the content type of a library (user view).
// The server reports it in lower case.
type CollectionType string

const (
	CollectionTypeMovies      CollectionType = "movies"
	CollectionTypeMusic       CollectionType = "music"
	CollectionTypePhotos      CollectionType = "photos"
	CollectionTypeLiveTV      CollectionType = "livetv"
	CollectionTypeTVShows     CollectionType = "tvshows"
	CollectionTypeHomeVideos  CollectionType = "homevideos"
	CollectionTypeMusicVideos CollectionType = "musicvideos"
	CollectionTypeBooks       CollectionType = "books"
	CollectionTypeChannels    CollectionType = "channels"
	CollectionTypePlaylists   CollectionType = "playlists"
	CollectionTypeFolders     CollectionType = "folders"
	CollectionTypeBoxSets     CollectionType = "boxsets"
)

// MediaType is the broad media category of a playable item.
type MediaType string

const (
	MediaTypeVideo   MediaType = "Video"
	MediaTypeAudio   MediaType = "Audio"
	MediaTypePhoto   MediaType = "Photo"
	MediaTypeBook    MediaType = "Book"
	MediaTypeUnknown MediaType = "Unknown"
)

// ItemSortBy names a sort field accepted by the item query endpoints.
type ItemSortBy string

const (
	ItemSortByPremiereDate   ItemSortBy = "PremiereDate"
	ItemSortByProductionYear ItemSortBy = "ProductionYear"
	ItemSortBySortName       ItemSortBy = "SortName"
	ItemSortByDateCreated    ItemSortBy = "DateCreated"
)

// ItemField names an optional field the server only returns when asked for.
type ItemField string

const (
	ItemFieldOverview     ItemField = "Overview"
	ItemFieldCanDownload  ItemField = "CanDownload"
	ItemFieldPath         ItemField = "Path"
	ItemFieldMediaSources ItemField = "MediaSources"
	ItemFieldMediaStreams ItemField = "MediaStreams"
)

// RecordingStatusCompleted is the Status of a recording that finished.
const RecordingStatusCompleted = "Completed"

// Stream types as reported in MediaStream.Type.
const (
	StreamTypeAudio    = "Audio"
	StreamTypeVideo    = "Video"
	StreamTypeSubtitle = "Subtitle"
	StreamTypeEmbedded = "EmbeddedImage"
	StreamTypeLyric    = "Lyric"
)
