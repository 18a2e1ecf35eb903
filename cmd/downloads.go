package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jellyfront/internal/home"
)

func downloadsCommand(loader *configLoader) *cobra.Command {
	var seasonID, seriesID string

	cmd := &cobra.Command{
		Use:   "downloads",
		Short: "Prints the download links of the episodes of a season or series",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (seasonID == "") == (seriesID == "") {
				return errors.New("exactly one of --season and --series is required")
			}

			cfg := loader.Get()
			ctx := cmd.Context()

			svc, shutdown, err := newHomeService(ctx, cfg)
			if err != nil {
				return err
			}
			defer shutdown()

			var downloads []home.Download
			if seasonID != "" {
				downloads, err = svc.SeasonDownloads(ctx, seasonID)
			} else {
				downloads, err = svc.SeriesDownloads(ctx, seriesID)
			}
			if err != nil {
				return fmt.Errorf("could not fetch downloads: %w", err)
			}

			for _, d := range downloads {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.Name, d.URL)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&seasonID, "season", "", "Season ID")
	cmd.Flags().StringVar(&seriesID, "series", "", "Series ID")

	return cmd
}
