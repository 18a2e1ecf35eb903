package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jellyfront/internal/config"
	"jellyfront/internal/home"
	"jellyfront/internal/telemetry"
	"jellyfront/pkg/domain"
	"jellyfront/pkg/items"
	"jellyfront/pkg/logger"
)

func homeCommand(loader *configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Fetches the home page rows once and prints them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loader.Get()
			ctx := cmd.Context()

			svc, shutdown, err := newHomeService(ctx, cfg)
			if err != nil {
				return err
			}
			defer shutdown()

			page, err := svc.IndexPage(ctx)
			if err != nil {
				return fmt.Errorf("could not fetch home page: %w", err)
			}

			return printIndexPage(cmd.OutOrStdout(), page)
		},
	}

	return cmd
}

// newHomeService builds a one-shot home service whose spans are flushed by the
// returned shutdown function.
func newHomeService(ctx context.Context, cfg *config.Config) (home.Service, func(), error) {
	tp, err := telemetry.NewTracerProvider(ctx, telemetry.NewOptions(cfg))
	if err != nil {
		return nil, nil, err
	}
	shutdown := func() {
		if err := tp.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error(ctx, "could not flush spans", zap.Error(err))
		}
	}

	svc, err := home.New(home.Deps{
		Client:         getMediaServer(ctx, cfg, tp, nil),
		TracerProvider: tp,
	}, home.NewOptions(cfg))
	if err != nil {
		shutdown()

		return nil, nil, err
	}

	return svc, shutdown, nil
}

func printIndexPage(out io.Writer, page *home.IndexPage) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "ROW\tID\tTYPE\tNAME\tRUNTIME")
	printRow(w, "resume", page.ResumeVideo)
	printRow(w, "carousel", page.Carousel)
	printRow(w, "next up", page.NextUp)
	for _, view := range page.Views {
		printRow(w, "latest in "+view.Name, page.LatestPerLibrary[view.ID])
	}

	return w.Flush()
}

func printRow(w io.Writer, row string, list []domain.Item) {
	for _, item := range list {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			row, item.ID, item.Type, item.Name, items.ItemRuntime(item))
	}
}
