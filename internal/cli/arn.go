package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/codebuild-env/internal/model"
)

type arnFlags struct {
	// parse splits the ARN into its components and fails if it is unset.
	parse bool
}

type arnResult struct {
	ARN    string              `json:"arn" yaml:"arn"`
	Parsed *model.BuildARNInfo `json:"parsed,omitempty" yaml:"parsed,omitempty"`
}

// newARNCommand creates the "arn" cobra command.
func newARNCommand(a *app) *cobra.Command {
	flags := &arnFlags{}

	cmd := &cobra.Command{
		Use:   "arn",
		Short: "Print the build ARN",
		Long: `Print CODEBUILD_BUILD_ARN. An unset ARN prints an empty line.

With --parse the ARN is split into partition, region, account and resource,
and an unset or invalid ARN is an error.

Examples:
  codebuild-env arn
  codebuild-env arn --parse -o yaml`,
		// No positional arguments are accepted.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runARN(cmd.OutOrStdout(), a, flags)
		},
	}

	// Without --parse an unset ARN is not an error, so scripts can check
	// for it; with --parse the ARN is required.
	cmd.Flags().BoolVar(&flags.parse, "parse", false, "Split the ARN into its components")

	return cmd
}

func runARN(w io.Writer, a *app, flags *arnFlags) error {
	result := arnResult{ARN: a.accessor.BuildARN()}

	if flags.parse {
		parsed, err := a.accessor.ParseBuildARN()
		if err != nil {
			return err
		}
		result.Parsed = &parsed
	}

	return printResult(w, a.flags.output, result, func(w io.Writer) {
		if result.Parsed == nil {
			fmt.Fprintln(w, result.ARN)
			return
		}
		printFields(w, [][2]string{
			{"Partition", result.Parsed.Partition},
			{"Region", result.Parsed.Region},
			{"Account", result.Parsed.AccountID},
			{"Resource", result.Parsed.Resource},
		})
	})
}
