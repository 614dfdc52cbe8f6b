package model

import (
	"fmt"
)

// RepoRef identifies a source repository by its owner (user or organization)
// and repository name, as derived from the clone URL.
type RepoRef struct {
	// Owner is the user or organization segment of the repository URL.
	Owner string `json:"owner" yaml:"owner"`

	// Name is the repository name with any ".git" suffix removed.
	Name string `json:"name" yaml:"name"`
}

// String returns the "owner/name" form of the reference.
func (r RepoRef) String() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// BuildARNInfo holds the components of a parsed CodeBuild build ARN.
//
// Example ARN:
//
//	arn:aws:codebuild:us-west-2:123456789012:build/dlc-pr-mxnet:0b5d9c3e
type BuildARNInfo struct {
	Partition string `json:"partition" yaml:"partition"`
	Region    string `json:"region" yaml:"region"`
	AccountID string `json:"accountId" yaml:"accountId"`
	Resource  string `json:"resource" yaml:"resource"`
}

// BuildInfo is a point-in-time snapshot of every value the accessor can
// derive from the build environment.
//
// Fallible lookups do not abort the snapshot: their failure is recorded in
// the matching *Error field and the value is left empty.
type BuildInfo struct {
	BuildARN string        `json:"buildArn" yaml:"buildArn"`
	ARN      *BuildARNInfo `json:"arn,omitempty" yaml:"arn,omitempty"`

	// RepoURL is empty and RepoURLSet false when CODEBUILD_SOURCE_REPO_URL
	// is not present in the environment at all.
	RepoURL    string `json:"repoUrl" yaml:"repoUrl"`
	RepoURLSet bool   `json:"repoUrlSet" yaml:"repoUrlSet"`

	Repo      *RepoRef `json:"repo,omitempty" yaml:"repo,omitempty"`
	RepoError string   `json:"repoError,omitempty" yaml:"repoError,omitempty"`

	ProjectName string `json:"projectName" yaml:"projectName"`
	ProjectID   string `json:"projectId" yaml:"projectId"`

	ClonedFolderPath  string `json:"clonedFolderPath" yaml:"clonedFolderPath"`
	ClonedFolderError string `json:"clonedFolderError,omitempty" yaml:"clonedFolderError,omitempty"`

	Region  string `json:"region" yaml:"region"`
	LogPath string `json:"logPath" yaml:"logPath"`

	// CloudWatchURL is built for the project name in this snapshot.
	CloudWatchURL string `json:"cloudWatchUrl" yaml:"cloudWatchUrl"`
}

// ExitCode defines the CLI exit codes. Scripts calling codebuild-env from a
// buildspec can branch on these to tell a misconfigured environment apart
// from a general failure.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitRepoURLNotFound indicates CODEBUILD_SOURCE_REPO_URL was required
	// but not set.
	ExitRepoURLNotFound ExitCode = 2

	// ExitMalformedRepoURL indicates the repository URL did not contain
	// enough "/"-separated segments to yield an owner and a name.
	ExitMalformedRepoURL ExitCode = 3

	// ExitPathResolution indicates the cloned folder could not be located.
	ExitPathResolution ExitCode = 4

	// ExitGitError indicates a git command failed.
	ExitGitError ExitCode = 5

	// ExitEnvFileError indicates the --env-file overlay could not be loaded.
	ExitEnvFileError ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
