// Package routes holds the client's named-route table for item detail pages
// and builds links to them from an item's type tag.
//
// The table is a gorilla/mux router used only for building and matching paths;
// it never serves requests.
package routes

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	"github.com/gorilla/mux"

	"jellyfront/pkg/domain"
	"jellyfront/pkg/items"
	"jellyfront/pkg/serrors"
)

// Name identifies a route in the table.
type Name string

const (
	Library    Name = "library"
	Series     Name = "series"
	Person     Name = "person"
	Artist     Name = "artist"
	MusicAlbum Name = "musicalbum"
	Genre      Name = "genre"
	Item       Name = "item"
)

// ItemIDParam is the path variable every detail route carries.
const ItemIDParam = "itemId"

//nolint: gochecknoglobals
var definitions = []struct {
	name Name
	path string
}{
	{Library, "/library/{itemId}"},
	{Series, "/series/{itemId}"},
	{Person, "/person/{itemId}"},
	{Artist, "/artist/{itemId}"},
	{MusicAlbum, "/musicalbum/{itemId}"},
	{Genre, "/genre/{itemId}"},
	{Item, "/item/{itemId}"},
}

//nolint: gochecknoglobals
var routeByKind = map[domain.ItemKind]Name{
	domain.ItemKindSeries:      Series,
	domain.ItemKindPerson:      Person,
	domain.ItemKindMusicArtist: Artist,
	domain.ItemKindMusicAlbum:  MusicAlbum,
	domain.ItemKindGenre:       Genre,
}

// Names returns every route name in the table, in declaration order.
func Names() []Name {
	out := make([]Name, 0, len(definitions))
	for _, d := range definitions {
		out = append(out, d.name)
	}

	return out
}

// Table resolves route names to paths and paths back to route names.
// It is safe for concurrent use once built.
type Table struct {
	router *mux.Router
}

// New builds the route table.
func New() *Table {
	r := mux.NewRouter()
	for _, d := range definitions {
		r.NewRoute().Name(string(d.name)).Path(d.path)
	}

	return &Table{router: r}
}

// Resolve returns the path of the named route for the given item ID.
func (t *Table) Resolve(name Name, itemID string) (string, error) {
	route := t.router.Get(string(name))
	if route == nil {
		return "", serrors.With(serrors.ErrBadRequest, "unknown route %q", name)
	}

	u, err := route.URLPath(ItemIDParam, itemID)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid item ID %q", itemID)
	}

	return u.String(), nil
}

// Match returns the route name and item ID encoded in path. ok is false when
// the path does not belong to any route of the table.
func (t *Table) Match(path string) (Name, string, bool) {
	req := &http.Request{Method: http.MethodGet, URL: &url.URL{Path: path}}

	var m mux.RouteMatch
	if !t.router.Match(req, &m) || m.Route == nil {
		return "", "", false
	}

	return Name(m.Route.GetName()), m.Vars[ItemIDParam], true
}

// NameFor returns the route of the entry's details page. Libraries always open
// the library view; otherwise the route is picked from override when set, or
// from the entry's own type tag. Only the Person tag opens the person page, so
// cast members keep their item route unless the caller overrides it.
func NameFor(e domain.Entry, override domain.ItemKind) Name {
	if isNil(e) {
		return Item
	}

	item, isItem := asItem(e)
	if isItem && !items.IsPerson(e) && items.IsLibrary(item) {
		return Library
	}

	kind := override
	if kind == "" {
		kind = domain.ItemKind(e.EntryType())
	}

	if name, ok := routeByKind[kind]; ok {
		return name
	}

	return Item
}

// DetailsLink returns the path of the entry's details page.
func (t *Table) DetailsLink(e domain.Entry, override domain.ItemKind) (string, error) {
	if isNil(e) {
		return "", serrors.With(serrors.ErrBadRequest, "no entry to link to")
	}

	link, err := t.Resolve(NameFor(e, override), e.EntryID())
	if err != nil {
		return "", fmt.Errorf("could not build details link: %w", err)
	}

	return link, nil
}

// isNil reports whether e is nil or a nil pointer to a record.
func isNil(e domain.Entry) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

func asItem(e domain.Entry) (domain.Item, bool) {
	switch v := e.(type) {
	case domain.Item:
		return v, true
	case *domain.Item:
		if v != nil {
			return *v, true
		}
	}

	return domain.Item{}, false
}
