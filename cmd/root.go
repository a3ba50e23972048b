package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emberwatch/emberwatch/internal/config"
	"github.com/emberwatch/emberwatch/internal/repository"
	"github.com/emberwatch/emberwatch/pkg/logging"
)

var (
	cfgFile      string
	databaseURL  string
	outputFormat string

	cfg *config.Config
	log *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "emberctl",
	Short: "Emberwatch admin CLI",
	Long: `emberctl is the administrative command-line interface for Emberwatch.

Create sample events, inspect projects and manage the backing schema
without going through the API.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $EMBERWATCH_CONFIG_DIR/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table, json")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
		cfg = config.Default()
	}

	if databaseURL != "" {
		cfg.Database.URL = databaseURL
	}

	log = logging.New(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	logging.SetDefault(log)
}

// openRepository connects the configured data store. A memory:// URL
// yields an empty in-memory store, useful for dry runs.
func openRepository(ctx context.Context) (repository.Repository, error) {
	if strings.HasPrefix(cfg.Database.URL, "memory://") {
		return repository.NewInMemoryRepository(), nil
	}
	return repository.NewPostgresRepository(ctx, cfg.Database.URL)
}

// splitProjectPath parses an "org_slug/project_slug" argument.
func splitProjectPath(path string) (orgSlug, projectSlug string, err error) {
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid project %q: expected org_slug/project_slug", path)
	}
	return parts[0], parts[1], nil
}
