package commands

import (
	"log/slog"
	"turtledb-backend/lib/serviceutil"
	"turtledb-backend/lib/sqliteutil"
	"turtledb-backend/services/catalog"
	"turtledb-backend/services/catalog/db"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(checkCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Creates the database file and applies the schema.",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := sqliteutil.OpenDB(db.Schema, *dbPath)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		slog.Info("database ready", "path", *dbPath)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seeds reference data and sample items. Safe to run twice.",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := sqliteutil.OpenDB(db.Schema, *dbPath)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		if err := catalog.Seed(cmd.Context(), database); err != nil {
			serviceutil.Fatal("failed to seed db", err)
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Prints row counts for the main tables.",
	Run: func(cmd *cobra.Command, args []string) {
		database, err := sqliteutil.OpenDB(db.Schema, *dbPath)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		counts, err := catalog.NewService(database).CountAll(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to count rows", err)
		}

		cmd.Printf("items:         %d\n", counts.Items)
		cmd.Printf("recipes:       %d\n", counts.Recipes)
		cmd.Printf("item types:    %d\n", counts.ItemTypes)
		cmd.Printf("item subtypes: %d\n", counts.ItemSubtypes)
		cmd.Printf("item slots:    %d\n", counts.ItemSlots)
		cmd.Printf("professions:   %d\n", counts.Professions)
	},
}
