// Package model defines the domain types and error kinds for the
// codebuild-env library and CLI.
//
// This package contains pure data structures with no external dependencies.
// BuildInfo and RepoRef are transient values derived from the CI build
// environment on every call; nothing here is persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
