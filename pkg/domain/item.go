package domain

// Entry is anything the client can render as a card: an Item or a Person.
type Entry interface {
	// EntryID returns the server identifier of the record.
	EntryID() string
	// EntryType returns the raw type tag of the record. For items this is an
	// ItemKind, for people it is a PersonKind.
	EntryType() string
}

// UserData holds the per-user state the server keeps for an item.
type UserData struct {
	PlaybackPositionTicks int64   `json:"PlaybackPositionTicks,omitempty"`
	PlayCount             int     `json:"PlayCount,omitempty"`
	IsFavorite            bool    `json:"IsFavorite,omitempty"`
	Played                bool    `json:"Played,omitempty"`
	PlayedPercentage      float64 `json:"PlayedPercentage,omitempty"`
	UnplayedItemCount     int     `json:"UnplayedItemCount,omitempty"`
	LastPlayedDate        string  `json:"LastPlayedDate,omitempty"`
}

// MediaStream describes a single audio, video or subtitle stream of a media source.
type MediaStream struct {
	Index        int    `json:"Index"`
	Type         string `json:"Type,omitempty"`
	Codec        string `json:"Codec,omitempty"`
	Language     string `json:"Language,omitempty"`
	DisplayTitle string `json:"DisplayTitle,omitempty"`
	BitRate      int64  `json:"BitRate,omitempty"`
	Channels     int    `json:"Channels,omitempty"`
	Width        int    `json:"Width,omitempty"`
	Height       int    `json:"Height,omitempty"`
	IsDefault    bool   `json:"IsDefault,omitempty"`
	IsExternal   bool   `json:"IsExternal,omitempty"`
}

// MediaSource is one playable version of an item (a file or a stream).
type MediaSource struct {
	ID           string        `json:"Id,omitempty"`
	Name         string        `json:"Name,omitempty"`
	Container    string        `json:"Container,omitempty"`
	Path         string        `json:"Path,omitempty"`
	Size         int64         `json:"Size,omitempty"`
	Bitrate      int64         `json:"Bitrate,omitempty"`
	RunTimeTicks int64         `json:"RunTimeTicks,omitempty"`
	MediaStreams []MediaStream `json:"MediaStreams,omitempty"`
}

// Item is the media-metadata record owned by the remote server. Only the fields
// read by this module are mapped; unknown fields are ignored on decode.
type Item struct {
	ID             string            `json:"Id"`
	Name           string            `json:"Name,omitempty"`
	ServerID       string            `json:"ServerId,omitempty"`
	Type           ItemKind          `json:"Type,omitempty"`
	MediaType      MediaType         `json:"MediaType,omitempty"`
	CollectionType CollectionType    `json:"CollectionType,omitempty"`
	IsFolder       bool              `json:"IsFolder,omitempty"`
	Status         string            `json:"Status,omitempty"`
	Overview       string            `json:"Overview,omitempty"`
	Path           string            `json:"Path,omitempty"`
	CanDownload    bool              `json:"CanDownload,omitempty"`
	ParentID       string            `json:"ParentId,omitempty"`
	SeriesID       string            `json:"SeriesId,omitempty"`
	SeriesName     string            `json:"SeriesName,omitempty"`
	SeasonID       string            `json:"SeasonId,omitempty"`
	IndexNumber    int               `json:"IndexNumber,omitempty"`
	ProductionYear int               `json:"ProductionYear,omitempty"`
	PremiereDate   string            `json:"PremiereDate,omitempty"`
	RunTimeTicks   int64             `json:"RunTimeTicks,omitempty"`
	ImageTags      map[string]string `json:"ImageTags,omitempty"`
	UserData       *UserData         `json:"UserData,omitempty"`
	MediaStreams   []MediaStream     `json:"MediaStreams,omitempty"`
	MediaSources   []MediaSource     `json:"MediaSources,omitempty"`
	People         []Person          `json:"People,omitempty"`
}

// EntryID implements Entry.
func (i Item) EntryID() string { return i.ID }

// EntryType implements Entry.
func (i Item) EntryType() string { return string(i.Type) }

// Person is the narrower record used in cast and crew listings.
type Person struct {
	ID              string     `json:"Id"`
	Name            string     `json:"Name,omitempty"`
	Role            string     `json:"Role,omitempty"`
	Type            PersonKind `json:"Type,omitempty"`
	PrimaryImageTag string     `json:"PrimaryImageTag,omitempty"`
}

// EntryID implements Entry.
func (p Person) EntryID() string { return p.ID }

// EntryType implements Entry.
func (p Person) EntryType() string { return string(p.Type) }

var (
	_ Entry = Item{}
	_ Entry = Person{}
)

// ItemsResult is the envelope the server wraps list responses in.
type ItemsResult struct {
	Items            []Item `json:"Items"`
	TotalRecordCount int    `json:"TotalRecordCount"`
	StartIndex       int    `json:"StartIndex"`
}
