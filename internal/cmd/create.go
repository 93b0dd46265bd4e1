package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/planner/internal/errors"
	"github.com/Iron-Ham/planner/internal/project"
	"github.com/Iron-Ham/planner/internal/render"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a plan for a new project",
	Long: `Submit a project to the planning service and print the generated plan,
schedule and review.

Input can come from a YAML file, from flags, or both; flags override the
file's scalar fields and add to its lists.

Examples:
  planner create --type "Mobile App" --industry Healthcare \
    --objectives "Let patients book visits" --member "Ana (PM)" --member "Raj (iOS)"

  planner create --file project.yaml --tab schedule

  # project.yaml
  project_type: Website
  objectives: Sell handmade goods online
  industry: Retail
  team_members: [Alice, Bob]
  requirements: [Stripe checkout]`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

var (
	createFile         string
	createType         string
	createObjectives   string
	createIndustry     string
	createMembers      []string
	createRequirements []string
	createTab          string
	createSave         bool
)

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "YAML file with the project input")
	createCmd.Flags().StringVar(&createType, "type", "", "Project type (e.g., Website, Mobile App)")
	createCmd.Flags().StringVar(&createObjectives, "objectives", "", "Main goals and objectives")
	createCmd.Flags().StringVar(&createIndustry, "industry", "", "Industry (e.g., Technology, Healthcare)")
	createCmd.Flags().StringArrayVar(&createMembers, "member", nil, "Team member (repeatable)")
	createCmd.Flags().StringArrayVar(&createRequirements, "requirement", nil, "Project requirement (repeatable)")
	createCmd.Flags().StringVar(&createTab, "tab", tabAll, "What to print: all, plan, schedule, review, html")
	createCmd.Flags().BoolVar(&createSave, "save", false, "Also save the HTML document to the export directory")
}

// loadInput reads path (if set) and applies the flag values on top.
func loadInput(path string, flags project.Input) (project.Input, error) {
	var in project.Input
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return project.Input{}, fmt.Errorf("failed to read input file: %w", err)
		}
		if err := yaml.Unmarshal(data, &in); err != nil {
			return project.Input{}, fmt.Errorf("failed to parse input file: %w", err)
		}
	}

	if flags.ProjectType != "" {
		in.ProjectType = flags.ProjectType
	}
	if flags.Objectives != "" {
		in.Objectives = flags.Objectives
	}
	if flags.Industry != "" {
		in.Industry = flags.Industry
	}
	in.TeamMembers = append(in.TeamMembers, flags.TeamMembers...)
	in.Requirements = append(in.Requirements, flags.Requirements...)
	return in, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := checkTab(createTab); err != nil {
		return err
	}

	in, err := loadInput(createFile, project.Input{
		ProjectType:  createType,
		Objectives:   createObjectives,
		Industry:     createIndustry,
		TeamMembers:  createMembers,
		Requirements: createRequirements,
	})
	if err != nil {
		return err
	}

	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	// The controller starts in history; the form is where submissions come from.
	svc.ctrl.StartNewProject()

	fmt.Fprintln(cmd.ErrOrStderr(), "Generating project plan...")
	if err := svc.ctrl.Submit(context.Background(), in); err != nil {
		return errors.New(svc.ctrl.Snapshot().Error)
	}

	result := svc.ctrl.Snapshot().Result
	if result == nil {
		return fmt.Errorf("no result returned")
	}
	if result.ID != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Created project %s\n\n", result.ID)
	}

	if err := printResult(cmd.OutOrStdout(), *result, createTab); err != nil {
		return err
	}

	if createSave {
		a, err := render.Download(svc.sink, result.HTMLOutput)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", a.Name, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", svc.sink.Path(a.Name))
	}
	return nil
}
