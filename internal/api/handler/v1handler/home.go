package v1handler

import (
	"context"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"jellyfront/internal/api/specs/v1specs"
	"jellyfront/internal/home"
	"jellyfront/pkg/domain"
)

// GetHome serves the decorated index page.
func (h *Handler) GetHome(ctx context.Context) (*v1specs.HomePage, error) {
	var (
		page   *home.IndexPage
		viewer *domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if page, err = h.deps.Home.IndexPage(gctx); err != nil {
			return errors.Wrap(err, "index page")
		}

		return nil
	})
	g.Go(func() error {
		var err error
		if viewer, err = h.deps.Home.Viewer(gctx); err != nil {
			return errors.Wrap(err, "viewer")
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return h.newHomePage(page, viewer), nil
}

func (h *Handler) newHomePage(page *home.IndexPage, viewer *domain.User) *v1specs.HomePage {
	table := h.deps.Routes

	out := &v1specs.HomePage{
		Libraries: make([]v1specs.LibraryCard, 0, len(page.Views)),
		Resume:    newCards(table, page.ResumeVideo, viewer),
		Carousel:  newCards(table, page.Carousel, viewer),
		NextUp:    newCards(table, page.NextUp, viewer),
		Latest:    make([]v1specs.LatestRow, 0, len(page.Views)),
	}
	// rows follow the order of the libraries
	for _, view := range page.Views {
		library := NewLibraryCard(table, view)
		out.Libraries = append(out.Libraries, library)
		out.Latest = append(out.Latest, v1specs.LatestRow{
			Library: library,
			Items:   newCards(table, page.LatestPerLibrary[view.ID], viewer),
		})
	}

	return out
}
