package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// projectResult is the structured project output.
type projectResult struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

// newProjectCommand creates the "project" cobra command.
func newProjectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Print the CodeBuild project name and build ID",
		Long: `Print the project name and build ID taken from CODEBUILD_BUILD_ID
("<project>:<id>"). Outside CodeBuild the name is "local_test" and the ID "0".

Examples:
  codebuild-env project
  codebuild-env project -o json`,
		// No positional arguments are accepted.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd.OutOrStdout(), a)
		},
	}
}

// runProject prints the project name and build ID. Neither lookup can
// fail; unset variables fall back to their local defaults.
func runProject(w io.Writer, a *app) error {
	result := projectResult{
		Name: a.accessor.ProjectName(),
		ID:   a.accessor.ProjectID(),
	}

	return printResult(w, a.flags.output, result, func(w io.Writer) {
		printFields(w, [][2]string{
			{"Project", result.Name},
			{"Build ID", result.ID},
		})
	})
}
