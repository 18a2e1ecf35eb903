// Package v1handler implements the v1 HTTP API: the decorated home page, the
// episode download lists and details-link resolution.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"jellyfront/internal/api/specs/v1specs"
	"jellyfront/internal/home"
	"jellyfront/pkg/logger"
	"jellyfront/pkg/routes"
	"jellyfront/pkg/serrors"
)

// Deps are the services the v1 handlers read from.
type Deps struct {
	Home   home.Service
	Routes *routes.Table
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	if deps.Routes == nil {
		deps.Routes = routes.New()
	}

	return &Handler{deps: deps}
}

// defaultMessages are reported for kinds that carry no message of their own.
//
//nolint: gochecknoglobals
var defaultMessages = map[serrors.Kind]string{
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "media server rejected the credentials",
	serrors.ErrForbidden:    "access to the resource is forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrTimeout:      "media server timed out",
	serrors.ErrUnavailable:  "media server is unavailable",
	serrors.ErrRateLimited:  "too many requests",
	serrors.ErrInternal:     "internal error",
}

// NewError maps err to the status code and body the API reports. Internal
// errors never expose their message.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	status := serrors.HTTPStatus(err)

	var kind serrors.Kind = serrors.ErrInternal
	var message string
	var semantic *serrors.Error
	switch {
	case errors.As(err, &semantic) && semantic.Kind() != nil:
		kind = semantic.Kind()
		message = semantic.Message()
	case errors.As(err, &kind):
	}
	if status == http.StatusInternalServerError {
		kind = serrors.ErrInternal
		message = ""
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Warn(ctx, "request rejected", zap.Error(err))
	}
	if message == "" {
		message = defaultMessages[kind]
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

// WriteError writes err as a JSON error response.
func (h Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	body, _ := res.Response.MarshalJSON()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(body)
}

// HandleError reports failures raised by the generated server before a handler
// runs. Undecodable parameters are the client's fault.
func (h Handler) HandleError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	var paramsErr *ogenerrors.DecodeParamsError
	if errors.As(err, &paramsErr) {
		h.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "%s", paramsErr.Err.Error()))

		return
	}

	h.WriteError(w, r.WithContext(ctx), err)
}

// ServerOptions routes the generated server's own failures through the API's
// error format.
func (h *Handler) ServerOptions() []v1specs.ServerOption {
	return []v1specs.ServerOption{
		v1specs.WithErrorHandler(h.HandleError),
		v1specs.WithNotFound(func(w http.ResponseWriter, r *http.Request) {
			h.WriteError(w, r, serrors.KindOnly(serrors.ErrNotFound))
		}),
		v1specs.WithMethodNotAllowed(func(w http.ResponseWriter, r *http.Request, allowed string) {
			w.Header().Set("Allow", allowed)
			h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "method %s not allowed", r.Method))
		}),
	}
}
