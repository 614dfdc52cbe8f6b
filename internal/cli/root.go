// Package cli implements the cobra-based CLI commands for codebuild-env.
//
// Each subcommand (info, arn, repo, project, folder, pipeline-url, logs-url)
// is defined in its own file within this package and wraps one operation of
// codebuild.Accessor. This file defines the root command, its global flags,
// and the error-to-exit-code handling.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/codebuild-env/internal/codebuild"
	"github.com/shinji-kodama/codebuild-env/internal/environment"
	"github.com/shinji-kodama/codebuild-env/internal/gitrepo"
	"github.com/shinji-kodama/codebuild-env/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// globalFlags holds the values of the root command's persistent flags.
type globalFlags struct {
	// output selects the result format: text, json or yaml.
	output string

	// verbose enables debug logging to stderr.
	verbose bool

	// envFile is an optional JSONC/YAML file of variables layered beneath
	// the process environment.
	envFile string
}

// app carries the per-invocation state shared by all subcommands. It is
// populated by the root command's PersistentPreRunE once flags are parsed.
type app struct {
	baseEnv  environment.Provider
	options  []codebuild.Option
	flags    globalFlags
	logger   *zap.Logger
	accessor *codebuild.Accessor
	git      *gitrepo.Inspector
}

// NewRootCommand creates the root command reading the live process
// environment and working directory.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(environment.OS{})
}

// NewRootCommandWith creates the root command over the given environment.
// Accessor options (e.g., codebuild.WithWorkingDir) are passed through to
// every subcommand's Accessor.
func NewRootCommandWith(env environment.Provider, opts ...codebuild.Option) *cobra.Command {
	a := &app{
		baseEnv: env,
		options: opts,
		logger:  zap.NewNop(),
		git:     gitrepo.NewInspector(),
	}

	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "codebuild-env",
		Short: "Read build metadata from the AWS CodeBuild environment",
		Long: `codebuild-env reads the variables AWS CodeBuild sets for a running build
and derives the values build scripts commonly need: repository owner and name,
project name and build ID, the checked-out folder, and console links for the
CodePipeline pipeline and the CloudWatch build log.

Outside CodeBuild the same variables can be supplied with --env-file; the
process environment always takes precedence over the file.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors lets Execute format errors (text or JSON).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// PersistentPreRunE runs before every subcommand, after flags are
		// parsed, so the logger and Accessor see the final flag values.
		// Subcommands must not define their own PreRunE or this is skipped.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		// Flush any buffered log entries once the subcommand returns.
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	// PersistentFlags are inherited by all subcommands, so every command
	// accepts -o, -v and --env-file without re-declaring them.
	rootCmd.PersistentFlags().StringVarP(&a.flags.output, "output", "o", formatText,
		"Output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&a.flags.envFile, "env-file", "",
		"JSONC or YAML file of fallback environment variables")

	// Register subcommands. Each is defined in its own file and shares the
	// app so it can reach the Accessor built in setup.
	rootCmd.AddCommand(newInfoCommand(a))
	rootCmd.AddCommand(newARNCommand(a))
	rootCmd.AddCommand(newRepoCommand(a))
	rootCmd.AddCommand(newProjectCommand(a))
	rootCmd.AddCommand(newFolderCommand(a))
	rootCmd.AddCommand(newPipelineURLCommand(a))
	rootCmd.AddCommand(newLogsURLCommand(a))

	return rootCmd
}

// setup validates global flags, sets up logging and builds the Accessor.
func (a *app) setup(cmd *cobra.Command) error {
	if err := validateFormat(a.flags.output); err != nil {
		return err
	}

	// Logs go to stderr so stdout stays parseable in JSON/YAML mode.
	a.logger = newLogger(a.flags.verbose, cmd.ErrOrStderr())

	env := a.baseEnv
	if a.flags.envFile != "" {
		overlay, err := environment.LoadFile(a.flags.envFile)
		if err != nil {
			return model.WrapCLIError(model.ExitEnvFileError,
				fmt.Sprintf("failed to load environment file %s", a.flags.envFile), err)
		}
		a.VerboseLog("Loaded %d variables from %s", len(overlay), a.flags.envFile)
		// The process environment comes first: a variable CodeBuild sets
		// always wins over the same variable in the file.
		env = environment.Layered{a.baseEnv, overlay}
	}

	a.accessor = codebuild.New(env, a.options...)
	return nil
}

// VerboseLog writes a debug message when --verbose is set.
func (a *app) VerboseLog(format string, args ...interface{}) {
	a.logger.Sugar().Debugf(format, args...)
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// The flag is read back from the command because the app that owns
	// the parsed value is private to NewRootCommandWith.
	format, _ := rootCmd.PersistentFlags().GetString("output")
	cliErr := toCLIError(err)
	printError(os.Stderr, format, cliErr.Message, cliErr.Err)
	os.Exit(int(cliErr.Code))
}

// toCLIError maps domain errors to a CLIError with the matching exit code.
// Errors that already are CLIErrors keep their code.
func toCLIError(err error) *model.CLIError {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var malformed *model.MalformedRepositoryURLError
	var pathErr *model.PathResolutionError

	switch {
	case errors.Is(err, model.ErrRepositoryURLNotFound):
		return model.WrapCLIError(model.ExitRepoURLNotFound, "repository URL not found", err)
	case errors.As(err, &malformed):
		return model.WrapCLIError(model.ExitMalformedRepoURL, "malformed repository URL", err)
	case errors.As(err, &pathErr):
		return model.WrapCLIError(model.ExitPathResolution, "cloned folder path not found", err)
	default:
		return model.NewCLIError(model.ExitGeneralError, err.Error())
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --output flag.
func printError(w io.Writer, format, message string, underlying error) {
	if format == formatJSON {
		errObj := errorJSON{Message: message}
		if underlying != nil {
			errObj.Detail = underlying.Error()
		}
		_ = writeJSON(w, map[string]errorJSON{"error": errObj})
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// errorJSON is the JSON error object written to stderr with -o json.
type errorJSON struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
