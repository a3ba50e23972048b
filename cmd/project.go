package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberwatch/emberwatch/internal/models"
	"github.com/emberwatch/emberwatch/pkg/output"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project commands",
	Long:  "Inspect projects and their onboarding state",
}

var projectListCmd = &cobra.Command{
	Use:   "list <org_slug>",
	Short: "List an organization's projects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		repo, err := openRepository(ctx)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer repo.Close()

		projects, err := repo.ListProjects(ctx, args[0])
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return output.JSON(projects)
		}

		table := output.NewTable([]string{"SLUG", "NAME", "PLATFORM", "FIRST EVENT"})
		for _, p := range projects {
			table.AddRow([]string{p.Slug, p.Name, p.Platform, formatFirstEvent(p)})
		}
		table.Render()
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <org_slug/project_slug>",
	Short: "Show a single project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		orgSlug, projectSlug, err := splitProjectPath(args[0])
		if err != nil {
			return err
		}

		repo, err := openRepository(ctx)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer repo.Close()

		project, err := repo.GetProjectBySlug(ctx, orgSlug, projectSlug)
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return output.JSON(project)
		}

		fmt.Printf("Slug:        %s\n", project.Slug)
		fmt.Printf("Name:        %s\n", project.Name)
		fmt.Printf("Platform:    %s\n", project.Platform)
		fmt.Printf("First event: %s\n", formatFirstEvent(project))
		fmt.Printf("Created:     %s\n", project.CreatedAt.Format("2006-01-02 15:04:05 MST"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
}

func formatFirstEvent(p *models.Project) string {
	if p.FirstEvent == nil {
		return "-"
	}
	return p.FirstEvent.Format("2006-01-02 15:04:05 MST")
}
