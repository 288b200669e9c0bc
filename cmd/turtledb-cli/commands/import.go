package commands

import (
	"log/slog"
	"turtledb-backend/lib/scrapers/turtlewow"
	"turtledb-backend/lib/serviceutil"
	"turtledb-backend/lib/sqliteutil"
	"turtledb-backend/services/catalog/db"
	"turtledb-backend/services/importer"

	"github.com/spf13/cobra"
)

var skipRecipes *bool

func init() {
	skipRecipes = importCmd.Flags().Bool("skip-recipes", false, "Import only the item, no crafting recipes.")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(sourcesCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Imports an item (and its recipes) from a supported database URL.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database, err := sqliteutil.OpenDB(db.Schema, *dbPath)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		scraper := turtlewow.NewClient(turtlewow.ClientOptions{})
		defer scraper.Close()

		service := importer.NewService(database, scraper)
		result, err := service.ImportItemFromURL(cmd.Context(), args[0], !*skipRecipes)
		if err != nil {
			serviceutil.Fatal("import failed", err)
		}

		slog.Info("imported item",
			"name", result.ItemName,
			"id", result.ItemID,
			"recipes", result.RecipesImported)
		for _, warning := range result.Warnings {
			slog.Warn(warning)
		}
	},
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Lists the supported import sources.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, source := range turtlewow.Sources() {
			cmd.Printf("%s\n", source.Name)
			cmd.Printf("  base url: %s\n", source.BaseURL)
			cmd.Printf("  formats:  %v\n", source.SupportedFormats)
			for _, example := range source.ExampleURLs {
				cmd.Printf("  example:  %s\n", example)
			}
		}
	},
}
