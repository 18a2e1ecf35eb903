package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jellyfront/pkg/domain"
	"jellyfront/pkg/routes"
)

func linkCommand() *cobra.Command {
	var kind, id, override string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Prints the details page link of an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == "" || id == "" {
				return errors.New("--type and --id are required")
			}

			link, err := routes.New().DetailsLink(
				domain.Item{ID: id, Type: domain.ItemKind(kind)},
				domain.ItemKind(override),
			)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), link)

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Item type tag, e.g. Series or Actor")
	cmd.Flags().StringVar(&id, "id", "", "Item ID")
	cmd.Flags().StringVar(&override, "override", "", "Type tag used instead of --type to pick the route")

	return cmd
}
