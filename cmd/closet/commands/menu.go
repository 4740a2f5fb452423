package commands

import (
	"github.com/spf13/cobra"

	"github.com/georgemunganga/printa-closet/internal/modules/menu"
)

func menuCmd() *cobra.Command {
	var table bool
	cmd := &cobra.Command{
		Use:      "menu",
		Short:    "Run the interactive catalog menu",
		PreRunE:  loadApp,
		PostRunE: closeApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := menu.New(appCtx.Store, cmd.InOrStdin(), cmd.OutOrStdout(), menu.Options{Table: table})
			return m.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&table, "table", false, "print results as a fixed-width table")
	return cmd
}
