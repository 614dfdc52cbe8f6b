// Package cli: info.go implements the "codebuild-env info" command.
//
// The info command prints every value the accessor can derive in one go:
// build ARN and its components, repository, project, cloned folder and the
// CloudWatch log link. Lookups that fail are reported inline instead of
// aborting the command, so info is safe to run in any environment.
//
// With --git, the HEAD commit, branch and origin URL of the cloned folder
// are added; this requires the folder to resolve and git to be installed.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/codebuild-env/internal/gitrepo"
	"github.com/shinji-kodama/codebuild-env/internal/model"
)

type infoFlags struct {
	// git adds checkout details from the cloned folder.
	git bool
}

// gitJSON is the checkout section of the info output.
type gitJSON struct {
	Head      string `json:"head" yaml:"head"`
	Branch    string `json:"branch" yaml:"branch"`
	RemoteURL string `json:"remoteUrl" yaml:"remoteUrl"`
}

// infoResult is the structured info output.
type infoResult struct {
	model.BuildInfo `json:",inline" yaml:",inline"`
	Git             *gitJSON `json:"git,omitempty" yaml:"git,omitempty"`
}

func newInfoCommand(a *app) *cobra.Command {
	flags := &infoFlags{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show all build metadata",
		Long: `Show every value derived from the CodeBuild environment.

Examples:
  codebuild-env info
  codebuild-env info --git -o json`,
		// No positional arguments are accepted.
		Args: cobra.NoArgs,

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), a, flags)
		},
	}

	// --git is off by default because it needs the git binary, which some
	// custom build images do not ship.
	cmd.Flags().BoolVar(&flags.git, "git", false, "Include HEAD commit, branch and origin of the cloned folder")

	return cmd
}

// runInfo is the main logic function for the info command. It takes a
// snapshot of the build environment, optionally adds git details, and
// prints the result in the selected format.
func runInfo(w io.Writer, a *app, flags *infoFlags) error {
	result := infoResult{BuildInfo: a.accessor.Snapshot()}
	a.VerboseLog("Project %s, build %s", result.ProjectName, result.ProjectID)

	if flags.git {
		if result.ClonedFolderPath == "" {
			return model.NewCLIError(model.ExitPathResolution,
				fmt.Sprintf("cannot inspect checkout: %s", result.ClonedFolderError))
		}

		gitInfo, err := inspectCheckout(a, result.ClonedFolderPath)
		if err != nil {
			return err
		}
		result.Git = gitInfo
	}

	return printResult(w, a.flags.output, result, func(w io.Writer) {
		printInfoText(w, result)
	})
}

// inspectCheckout queries git for the checkout at path. A missing origin
// remote is not an error; CodeBuild checkouts from S3 sources have none.
func inspectCheckout(a *app, path string) (*gitJSON, error) {
	a.VerboseLog("Inspecting git checkout at %s", path)

	// Fail early with a clear message instead of surfacing git's own
	// "not a git repository" stderr from the first query.
	if !a.git.IsRepository(path) {
		return nil, model.NewCLIError(model.ExitGitError,
			fmt.Sprintf("cloned folder %s is not a git checkout", path))
	}

	head, err := a.git.Head(path)
	if err != nil {
		return nil, err
	}
	branch, err := a.git.CurrentBranch(path)
	if err != nil {
		return nil, err
	}
	remote, err := a.git.RemoteURL(path, gitrepo.DefaultRemote)
	if err != nil {
		a.VerboseLog("No %s remote: %v", gitrepo.DefaultRemote, err)
		remote = ""
	}

	return &gitJSON{Head: head, Branch: branch, RemoteURL: remote}, nil
}

// printInfoText renders the info result as aligned "key: value" lines.
// Failed lookups show their error message in place of the value.
func printInfoText(w io.Writer, r infoResult) {
	repo := r.RepoError
	if r.Repo != nil {
		repo = r.Repo.String()
	}
	folder := r.ClonedFolderPath
	if folder == "" {
		folder = r.ClonedFolderError
	}

	fields := [][2]string{
		{"Build ARN", r.BuildARN},
	}
	if r.ARN != nil {
		fields = append(fields,
			[2]string{"Account", r.ARN.AccountID},
			[2]string{"ARN region", r.ARN.Region},
		)
	}
	fields = append(fields,
		[2]string{"Repository URL", r.RepoURL},
		[2]string{"Repository", repo},
		[2]string{"Project", r.ProjectName},
		[2]string{"Build ID", r.ProjectID},
		[2]string{"Cloned folder", folder},
		[2]string{"Region", r.Region},
		[2]string{"Log path", r.LogPath},
		[2]string{"CloudWatch URL", r.CloudWatchURL},
	)
	if r.Git != nil {
		fields = append(fields,
			[2]string{"Git HEAD", r.Git.Head},
			[2]string{"Git branch", r.Git.Branch},
			[2]string{"Git remote", r.Git.RemoteURL},
		)
	}

	printFields(w, fields)
}
