package commands

import (
	"github.com/spf13/cobra"

	"github.com/georgemunganga/printa-closet/internal/modules/catalog"
	"github.com/georgemunganga/printa-closet/internal/modules/menu"
)

func listCmd() *cobra.Command {
	var (
		q     catalog.ListQuery
		table bool
	)
	cmd := &cobra.Command{
		Use:      "list",
		Short:    "Filter and sort the catalog and print the result",
		PreRunE:  loadApp,
		PostRunE: closeApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.Service.ListProducts(cmd.Context(), q)
			if err != nil {
				return err
			}
			if table {
				return menu.WriteTable(cmd.OutOrStdout(), list.Products)
			}
			return menu.WriteLines(cmd.OutOrStdout(), list.Products)
		},
	}
	cmd.Flags().StringVar(&q.FilterKey, "filter-key", "", "filter dimension: category or season")
	cmd.Flags().StringVar(&q.FilterValue, "filter-value", "", "value the filter dimension must match")
	cmd.Flags().StringVar(&q.SortKey, "sort-key", "", "name_asc, name_desc, price_asc or price_desc")
	cmd.Flags().BoolVar(&table, "table", false, "print results as a fixed-width table")
	return cmd
}
