package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/planner/internal/artifact"
	"github.com/Iron-Ham/planner/internal/catalog"
	"github.com/Iron-Ham/planner/internal/config"
	"github.com/Iron-Ham/planner/internal/errors"
	"github.com/Iron-Ham/planner/internal/project"
	"github.com/Iron-Ham/planner/internal/render"
)

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Aliases: []string{"history"},
	Short:   "List, show, export and delete generated projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated projects",
	Long: `List every project stored by the planning service, newest as the service
orders them. --filter keeps projects whose type, objectives or industry
contain the text (case-insensitive).`,
	Args: cobra.NoArgs,
	RunE: runProjectsList,
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a generated project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsShow,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a generated project",
	Long: `Delete a project from the planning service. You are asked to confirm
unless --yes is given. Deletion cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectsDelete,
}

var projectsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Save a project's HTML document",
	Long: `Save the project's HTML document as project-plan.html in the export
directory (export.dir, or --out).`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectsExport,
}

var projectsPreviewCmd = &cobra.Command{
	Use:   "preview <id>",
	Short: "Open a project's HTML document in the browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsPreview,
}

var (
	projectsFilter string
	projectsTab    string
	projectsYes    bool
	projectsOut    string
)

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	projectsCmd.AddCommand(projectsExportCmd)
	projectsCmd.AddCommand(projectsPreviewCmd)

	projectsListCmd.Flags().StringVar(&projectsFilter, "filter", "", "Only show projects matching this text")
	projectsShowCmd.Flags().StringVar(&projectsTab, "tab", tabAll, "What to print: all, plan, schedule, review, html")
	projectsDeleteCmd.Flags().BoolVarP(&projectsYes, "yes", "y", false, "Skip confirmation prompt")
	projectsExportCmd.Flags().StringVarP(&projectsOut, "out", "o", "", "Directory to save into (default: export.dir)")
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.catalog.Refresh(context.Background()); err != nil {
		return errors.New(svc.catalog.Snapshot().Error)
	}

	visible := svc.catalog.SetFilter(projectsFilter)
	out := cmd.OutOrStdout()
	if len(visible) == 0 {
		if strings.TrimSpace(projectsFilter) != "" {
			fmt.Fprintln(out, "No projects found matching your search.")
		} else {
			fmt.Fprintln(out, "No projects found. Create your first project with 'planner create'.")
		}
		return nil
	}

	printSummaries(out, visible)
	return nil
}

// fetch loads the full result for id through the catalog.
func fetch(svc *services, id string) (project.Result, error) {
	result, err := svc.catalog.FetchDetail(context.Background(), id)
	if err != nil {
		return project.Result{}, errors.New(svc.catalog.Snapshot().Error)
	}
	return result, nil
}

func runProjectsShow(cmd *cobra.Command, args []string) error {
	if err := checkTab(projectsTab); err != nil {
		return err
	}

	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := fetch(svc, args[0])
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), result, projectsTab)
}

// promptConfirmer asks on out and reads the answer from in. Only "y" or
// "yes" approves.
func promptConfirmer(in io.Reader, out io.Writer) catalog.Confirmer {
	return catalog.ConfirmFunc(func(ctx context.Context, s project.Summary) (bool, error) {
		name := s.ProjectType
		if name == "" {
			name = s.ID
		}
		fmt.Fprintf(out, "Are you sure you want to delete %q (%s)? This cannot be undone. [y/N] ", name, s.ID)

		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	})
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	// Load the listing so the prompt can name the project.
	ctx := context.Background()
	_ = svc.catalog.Refresh(ctx)

	confirmer := promptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	if projectsYes {
		confirmer = catalog.Approved
	}

	err = svc.catalog.Remove(ctx, id, confirmer)
	switch {
	case errors.Is(err, errors.ErrNotConfirmed):
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	case err != nil:
		if msg := svc.catalog.Snapshot().Error; msg != "" {
			return errors.New(msg)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", id)
	if msg := svc.catalog.Snapshot().Error; msg != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not refresh the project list: %s\n", msg)
	}
	return nil
}

func runProjectsExport(cmd *cobra.Command, args []string) error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := fetch(svc, args[0])
	if err != nil {
		return err
	}

	sink := svc.sink
	if projectsOut != "" {
		sink = artifact.NewSink(config.ExportConfig{Dir: projectsOut, OpenCommand: svc.cfg.Export.OpenCommand}, svc.logger)
	}

	a, err := render.Download(sink, result.HTMLOutput)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", a.Name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s, %d bytes)\n", sink.Path(a.Name), a.ContentType, len(a.Data))
	return nil
}

func runProjectsPreview(cmd *cobra.Command, args []string) error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := fetch(svc, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Opening preview...")
	render.OpenPreview(svc.sink, result.HTMLOutput, svc.logger)
	return nil
}
