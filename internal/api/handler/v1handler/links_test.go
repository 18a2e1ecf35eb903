package v1handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"jellyfront/internal/api/handler/v1handler"
	"jellyfront/internal/api/specs/v1specs"
	"jellyfront/pkg/serrors"
)

func TestGetLink(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "series", query: "type=Series", want: `{"route":"series","link":"/series/` + itemID + `"}`},
		{name: "library", query: "type=CollectionFolder", want: `{"route":"library","link":"/library/` + itemID + `"}`},
		{name: "person", query: "type=Person", want: `{"route":"person","link":"/person/` + itemID + `"}`},
		{name: "cast member", query: "type=Actor", want: `{"route":"item","link":"/item/` + itemID + `"}`},
		{name: "cast member to person page", query: "type=Actor&override=Person", want: `{"route":"person","link":"/person/` + itemID + `"}`},
		{name: "artist", query: "type=MusicArtist", want: `{"route":"artist","link":"/artist/` + itemID + `"}`},
		{name: "album", query: "type=MusicAlbum", want: `{"route":"musicalbum","link":"/musicalbum/` + itemID + `"}`},
		{name: "genre", query: "type=Genre", want: `{"route":"genre","link":"/genre/` + itemID + `"}`},
		{name: "unknown", query: "type=Episode", want: `{"route":"item","link":"/item/` + itemID + `"}`},
		{name: "override", query: "type=Episode&override=Series", want: `{"route":"series","link":"/series/` + itemID + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := newTestServer(t)

			rec := serve(srv, http.MethodGet, "/v1/links?id="+itemID+"&"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestGetLink_BadRequest(t *testing.T) {
	for _, query := range []string{"id=" + itemID, "type=Series", "type=Series&id=nope", "type=+&id=" + itemID} {
		_, srv := newTestServer(t)

		rec := serve(srv, http.MethodGet, "/v1/links?"+query)
		require.Equal(t, http.StatusBadRequest, rec.Code, query)
		require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`, query)
	}
}

func TestGetLink_Direct(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res, err := h.GetLink(context.Background(), v1specs.GetLinkParams{
		Type:     "Actor",
		ID:       itemID,
		Override: v1specs.NewOptString("Person"),
	})
	require.NoError(t, err)
	require.Equal(t, "person", res.Route)
	require.Equal(t, "/person/"+itemID, res.Link)

	_, err = h.GetLink(context.Background(), v1specs.GetLinkParams{Type: "Series", ID: "nope"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
