package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"appstarter/internal/config"
	"appstarter/internal/features/generation/domain"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var (
		dir        string
		push       bool
		refine     bool
		complexity string
	)

	cmd := &cobra.Command{
		Use:   "generate <idea>",
		Short: "Generate the starter files for an idea",
		Long: `Generate writes backend/main.py, the frontend files and README.md into the
workspace directory. With --push the workspace is committed and force-pushed
to GIT_REPO_URL.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(func(s *config.Settings) {
				if dir != "" {
					s.WorkspaceDir = dir
				}
			})
			if err != nil {
				return err
			}
			defer app.Close()

			req := domain.GenerateRequest{
				Idea:       ideaArg(args),
				Complexity: complexity,
				Refine:     refine,
			}
			if cmd.Flags().Changed("push") {
				req.Push = &push
			}

			result, err := app.Generation.Generate(context.Background(), req)
			if err != nil {
				return err
			}
			printResult(cmd, result)
			if result.Status == domain.StatusFailed {
				return fmt.Errorf("generation %s failed", result.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Workspace directory (overrides WORKSPACE_DIR)")
	cmd.Flags().BoolVar(&push, "push", false, "Commit and force-push the workspace")
	cmd.Flags().BoolVar(&refine, "refine", false, "Rewrite the idea with the AI client before analysis")
	cmd.Flags().StringVar(&complexity, "complexity", "", "simple, medium or complex")

	return cmd
}

func printResult(cmd *cobra.Command, result *domain.GenerationResult) {
	w := cmd.OutOrStdout()
	meta := result.Metadata

	fmt.Fprintf(w, "%s %s\n", color.New(color.Bold).Sprint(meta.AppName), statusColor(result.Status).Sprintf("[%s]", result.Status))
	fmt.Fprintf(w, "  Category: %s\n", meta.AppCategory)
	fmt.Fprintf(w, "  Frontend: %s\n", meta.FrontendStyle)
	if result.RefinedIdea != "" {
		fmt.Fprintf(w, "  Refined:  %s\n", result.RefinedIdea)
	}
	fmt.Fprintln(w)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s %s\n", f.Path, color.New(color.FgHiBlack).Sprintf("(%s)", f.FileType))
	}
	if result.CommitHash != "" {
		fmt.Fprintf(w, "\n  Commit: %s\n", color.New(color.FgCyan).Sprint(result.CommitHash))
	}
	for _, d := range result.Diagnostics {
		fmt.Fprintf(w, "  %s %s\n", color.New(color.FgYellow).Sprint("!"), d)
	}
	fmt.Fprintf(w, "\n%s\n", result.Summary)
}
