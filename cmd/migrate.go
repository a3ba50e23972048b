package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emberwatch/emberwatch/internal/repository"
	"github.com/emberwatch/emberwatch/pkg/output"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	Long:  "Apply all pending schema migrations to the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.HasPrefix(cfg.Database.URL, "memory://") {
			return fmt.Errorf("cannot migrate a memory:// store")
		}

		if err := repository.Migrate(cfg.Database.URL); err != nil {
			return err
		}

		output.Success("Database schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
