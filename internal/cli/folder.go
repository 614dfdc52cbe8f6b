package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// folderResult is the structured folder output.
type folderResult struct {
	Path string `json:"path" yaml:"path"`
}

// newFolderCommand creates the "folder" cobra command.
func newFolderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "folder",
		Short: "Print the root folder of the checked-out repository",
		Long: `Print CODEBUILD_SRC_DIR, or when it is not set, the part of the current
directory up to and including "deep-learning-containers".

Exit code 4 means neither source yields a folder.

Examples:
  cd "$(codebuild-env folder)"`,
		// No positional arguments are accepted.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFolder(cmd.OutOrStdout(), a)
		},
	}
}

// runFolder prints the cloned folder path. Text output is the bare path so
// it can be used directly in shell substitution.
func runFolder(w io.Writer, a *app) error {
	path, err := a.accessor.ClonedFolderPath()
	if err != nil {
		return err
	}
	a.VerboseLog("Resolved cloned folder %s", path)

	return printResult(w, a.flags.output, folderResult{Path: path}, func(w io.Writer) {
		fmt.Fprintln(w, path)
	})
}
