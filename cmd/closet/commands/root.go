package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/georgemunganga/printa-closet/internal/app"
	"github.com/georgemunganga/printa-closet/internal/config"
)

var (
	catalogFile string
	databaseURL string
	appCtx      *app.App
)

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "closet",
		Short:        "Browse the closet product catalog",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&catalogFile, "catalog-file", "", "JSON catalog file (default: CATALOG_FILE or the embedded seed)")
	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres URL to read the catalog from (default: DATABASE_URL)")

	root.AddCommand(menuCmd(), listCmd(), showCmd(), hashPasswordCmd())
	return root
}

func Execute() error {
	return newRoot().Execute()
}

// loadApp is the PreRunE of every command that reads the catalog.
func loadApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if catalogFile != "" {
		cfg.CatalogFile = catalogFile
		cfg.DatabaseURL = ""
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	// the CLI never uses the view cache
	cfg.RedisAddr = ""

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	appCtx, err = app.New(ctx, cfg)
	return err
}

func closeApp(cmd *cobra.Command, args []string) error {
	if appCtx == nil {
		return nil
	}
	return appCtx.Close()
}
