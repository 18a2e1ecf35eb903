package v1handler

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"jellyfront/internal/api/specs/v1specs"
	"jellyfront/pkg/domain"
	"jellyfront/pkg/routes"
	"jellyfront/pkg/serrors"
)

// GetLink resolves the details page link of an item given its type tag. The
// optional override replaces the type when picking the route.
func (h *Handler) GetLink(ctx context.Context, params v1specs.GetLinkParams) (*v1specs.Link, error) {
	kind := strings.TrimSpace(params.Type)
	if kind == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "type is required")
	}
	id, err := ParseItemID(params.ID)
	if err != nil {
		return nil, err
	}
	override := domain.ItemKind(strings.TrimSpace(params.Override.Or("")))

	entry := domain.Item{ID: id, Type: domain.ItemKind(kind)}
	link, err := h.deps.Routes.DetailsLink(entry, override)
	if err != nil {
		return nil, errors.Wrap(err, "details link")
	}

	return &v1specs.Link{
		Route: string(routes.NameFor(entry, override)),
		Link:  link,
	}, nil
}
