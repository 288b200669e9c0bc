package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath *string

var rootCmd = &cobra.Command{
	Use:   "turtledb-cli",
	Short: "turtledb-cli manages the item database and runs imports.",
}

func init() {
	dbPath = rootCmd.PersistentFlags().String("db", "turtledb.db", "The sqlite database to operate on.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
