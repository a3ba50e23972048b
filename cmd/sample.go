package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberwatch/emberwatch/internal/messaging"
	"github.com/emberwatch/emberwatch/internal/sample"
	"github.com/emberwatch/emberwatch/internal/service"
	"github.com/emberwatch/emberwatch/pkg/output"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample event commands",
	Long:  "Create and inspect synthetic sample events for projects",
}

var sampleCreateCmd = &cobra.Command{
	Use:   "create <org_slug/project_slug> [platform]",
	Short: "Create a sample event for a project",
	Long: `Create a synthetic sample event for the given project.

The project is resolved by organization and project slug. The platform
argument selects the sample template; when omitted, the project's own
platform is used. Creating a project's first event also records its
first-event timestamp.

Examples:
  emberctl sample create acme/web python
  emberctl sample create acme/mobile`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSampleCreate,
}

var samplePlatformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported sample platforms",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator()
		if err != nil {
			return err
		}
		for _, name := range gen.Platforms() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.AddCommand(sampleCreateCmd)
	sampleCmd.AddCommand(samplePlatformsCmd)
}

func newGenerator() (*sample.Generator, error) {
	gen, err := sample.NewGenerator(sample.Options{
		Environment: cfg.Sample.Environment,
		Release:     cfg.Sample.Release,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sample generator: %w", err)
	}
	return gen, nil
}

func runSampleCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	orgSlug, projectSlug, err := splitProjectPath(args[0])
	if err != nil {
		return err
	}

	platform := ""
	if len(args) > 1 {
		platform = args[1]
	}

	repo, err := openRepository(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	gen, err := newGenerator()
	if err != nil {
		return err
	}

	var pub service.Publisher
	if cfg.NATS.Enabled {
		natsCfg := messaging.DefaultConfig()
		natsCfg.URL = cfg.NATS.URL
		natsCfg.MaxReconnects = cfg.NATS.MaxReconnects
		natsCfg.ReconnectWait = cfg.NATS.ReconnectWait

		publisher, err := messaging.Connect(natsCfg)
		if err != nil {
			// The event is still stored; publication is advisory.
			output.Warn("NATS unavailable, skipping event publication: %v", err)
		} else {
			defer publisher.Close()
			pub = publisher
		}
	}

	svc := service.NewSampleService(repo, gen, pub, log)

	result, err := svc.Create(ctx, orgSlug, projectSlug, platform)
	if err != nil {
		if errors.Is(err, sample.ErrUnknownPlatform) || errors.Is(err, service.ErrNoEvent) {
			output.Error("Unable to create an event")
			cmd.SilenceErrors = true
			return err
		}
		return err
	}

	output.Success("Created sample event %s for %s/%s", result.Event.ID, orgSlug, projectSlug)
	if result.FirstEvent {
		output.Info("Recorded first event for project %s", projectSlug)
	}

	if outputFormat == "json" {
		return output.JSON(result.Event)
	}
	return nil
}
