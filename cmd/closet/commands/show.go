package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:      "show <id>",
		Short:    "Print one product as JSON",
		Args:     cobra.ExactArgs(1),
		PreRunE:  loadApp,
		PostRunE: closeApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be an integer: %w", err)
			}
			p, err := appCtx.Service.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}
	return cmd
}
