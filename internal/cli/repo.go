package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/codebuild-env/internal/model"
)

// repoResult is the structured repo output. URL is the unmodified
// CODEBUILD_SOURCE_REPO_URL value.
type repoResult struct {
	URL   string `json:"url" yaml:"url"`
	Owner string `json:"owner" yaml:"owner"`
	Name  string `json:"name" yaml:"name"`
}

// newRepoCommand creates the "repo" cobra command.
func newRepoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repo",
		Short: "Print the repository owner and name",
		Long: `Print the owner and name of the repository being built, derived from
CODEBUILD_SOURCE_REPO_URL. Text output is "owner/name".

Exit code 2 means the URL is not set; exit code 3 means it has too few
"/"-separated segments.

Examples:
  codebuild-env repo
  codebuild-env repo -o json`,
		// No positional arguments are accepted.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepo(cmd.OutOrStdout(), a)
		},
	}
}

// runRepo prints the repository owner and name. Errors are returned
// unwrapped so Execute can map them to exit codes 2 and 3.
func runRepo(w io.Writer, a *app) error {
	owner, name, err := a.accessor.UserAndRepoName()
	if err != nil {
		return err
	}

	url, _ := a.accessor.RepoURL()
	result := repoResult{URL: url, Owner: owner, Name: name}

	return printResult(w, a.flags.output, result, func(w io.Writer) {
		fmt.Fprintln(w, model.RepoRef{Owner: owner, Name: name}.String())
	})
}
