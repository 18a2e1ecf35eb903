package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"jellyfront/pkg/serrors"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("server down")

	e1 := serrors.With(serrors.ErrNotFound, "item %d not found", 42)
	require.Equal(t, "item 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting item")
	require.Equal(t, "getting item: server down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestFromHTTPStatus(t *testing.T) {
	cases := map[int]serrors.Kind{
		http.StatusUnauthorized:        serrors.ErrUnauthorized,
		http.StatusForbidden:           serrors.ErrForbidden,
		http.StatusNotFound:            serrors.ErrNotFound,
		http.StatusConflict:            serrors.ErrConflict,
		http.StatusTooManyRequests:     serrors.ErrRateLimited,
		http.StatusGatewayTimeout:      serrors.ErrTimeout,
		http.StatusUnprocessableEntity: serrors.ErrBadRequest,
		http.StatusBadGateway:          serrors.ErrUnavailable,
		http.StatusServiceUnavailable:  serrors.ErrUnavailable,
		http.StatusFound:               serrors.ErrInternal,
	}

	for code, want := range cases {
		require.Equal(t, want, serrors.FromHTTPStatus(code), "status %d", code)
	}
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, http.StatusNotFound, serrors.HTTPStatus(serrors.KindOnly(serrors.ErrNotFound)))
	require.Equal(t, http.StatusBadRequest,
		serrors.HTTPStatus(fmt.Errorf("wrapped: %w", serrors.With(serrors.ErrBadRequest, "bad id"))))
	require.Equal(t, http.StatusBadGateway, serrors.HTTPStatus(serrors.KindOnly(serrors.ErrUnavailable)))
	require.Equal(t, http.StatusInternalServerError, serrors.HTTPStatus(errors.New("boom")))
	require.Equal(t, http.StatusInternalServerError, serrors.HTTPStatus(nil))
}
