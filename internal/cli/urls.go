// Package cli: urls.go implements the "pipeline-url" and "logs-url"
// commands, which format AWS console links for build notifications.
//
// Neither command validates its input: an unset AWS_REGION or
// CODEBUILD_LOG_PATH is embedded as an empty string, matching the accessor.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type urlResult struct {
	URL string `json:"url" yaml:"url"`
}

func newPipelineURLCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pipeline-url <pipeline-name>",
		Short: "Print the CodePipeline console URL of a pipeline",
		Long: `Print the AWS console URL of the named CodePipeline pipeline in AWS_REGION.

Examples:
  codebuild-env pipeline-url dlc-release`,
		// Exactly one positional argument (pipeline name) is required.
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printURL(cmd.OutOrStdout(), a, a.accessor.CodePipelineURL(args[0]))
		},
	}
}

func newLogsURLCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logs-url [project]",
		Short: "Print the CloudWatch log viewer URL of the build",
		Long: `Print the CloudWatch log viewer URL for the build log stream in
CODEBUILD_LOG_PATH. The project defaults to the one in CODEBUILD_BUILD_ID.

Examples:
  codebuild-env logs-url
  codebuild-env logs-url dlc-pr-mxnet`,
		// The project argument is optional; see Long above.
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := a.accessor.ProjectName()
			if len(args) == 1 {
				project = args[0]
			}
			return printURL(cmd.OutOrStdout(), a, a.accessor.CloudWatchURL(project))
		},
	}
}

// printURL prints a single URL as a bare line or as {"url": ...}.
func printURL(w io.Writer, a *app, url string) error {
	return printResult(w, a.flags.output, urlResult{URL: url}, func(w io.Writer) {
		fmt.Fprintln(w, url)
	})
}
