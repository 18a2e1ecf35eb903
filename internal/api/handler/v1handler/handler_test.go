package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jellyfront/internal/api/handler/v1handler"
	"jellyfront/internal/api/specs/v1specs"
	mockhome "jellyfront/internal/home/mock"
	"jellyfront/pkg/logger"
	"jellyfront/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// newTestServer serves a handler backed by a mocked home service under /v1.
func newTestServer(t *testing.T) (*mockhome.MockService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mockhome.NewMockService(ctrl)

	h := v1handler.New(v1handler.Deps{Home: svc})
	srv, err := v1specs.NewServer(h, append(h.ServerOptions(), v1specs.WithPathPrefix("/v1"))...)
	require.NoError(t, err)

	return svc, srv
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.With(serrors.ErrBadRequest, "invalid item ID")
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid item ID", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_UpstreamUnavailable(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrUnavailable))
	require.Equal(t, http.StatusBadGateway, res.StatusCode)
	require.Equal(t, "media server is unavailable", res.Response.Message)
}

func TestNewError_InternalKind_HidesMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "db password is hunter2"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestServer_UnknownPath(t *testing.T) {
	_, srv := newTestServer(t)

	for _, target := range []string{"/v1/nope", "/v1/seasons/abc", "/other/home"} {
		rec := serve(srv, http.MethodGet, target)
		require.Equal(t, http.StatusNotFound, rec.Code, target)
		require.JSONEq(t, `{"code":"NOT_FOUND","message":"resource not found"}`, rec.Body.String())
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	_, srv := newTestServer(t)

	rec := serve(srv, http.MethodPost, "/v1/home")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "GET", rec.Header().Get("Allow"))
	require.Contains(t, rec.Body.String(), "method POST not allowed")
}

func TestServer_UnimplementedIsInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	srv, err := v1specs.NewServer(v1specs.UnimplementedHandler{}, v1specs.WithErrorHandler(h.HandleError))
	require.NoError(t, err)

	rec := serve(srv, http.MethodGet, "/home")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"code":"INTERNAL","message":"internal error"}`, rec.Body.String())
}
