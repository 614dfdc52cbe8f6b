package model

import (
	"errors"
	"fmt"
)

var (
	// ErrRepositoryURLNotFound is returned when the repository URL is required
	// but CODEBUILD_SOURCE_REPO_URL is unset or empty.
	ErrRepositoryURLNotFound = errors.New("environment did not contain GitHub repository URL")

	// ErrBuildARNNotFound is returned when CODEBUILD_BUILD_ARN is required
	// for parsing but is unset or empty.
	ErrBuildARNNotFound = errors.New("environment did not contain CodeBuild build ARN")

	// ErrRootDirNotFound is the cause wrapped by PathResolutionError when the
	// working directory contains no repository root directory.
	ErrRootDirNotFound = errors.New("repository root directory not found in path")
)

// MalformedRepositoryURLError reports a repository URL that has too few
// "/"-separated segments to yield an owner and a repository name.
type MalformedRepositoryURLError struct {
	URL string
}

// Error satisfies the error interface.
func (e *MalformedRepositoryURLError) Error() string {
	return fmt.Sprintf("malformed repository URL %q: expected .../<owner>/<name>", e.URL)
}

// PathResolutionError reports that the cloned folder path could not be
// derived from the working directory and no CODEBUILD_SRC_DIR was set.
type PathResolutionError struct {
	// Dir is the working directory that was inspected. Empty when the
	// working directory itself could not be read.
	Dir string

	// Err is the underlying cause.
	Err error
}

// Error satisfies the error interface.
func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("unable to find repository root directory in path %q, and no CODEBUILD_SRC_DIR set: %v", e.Dir, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PathResolutionError) Unwrap() error {
	return e.Err
}
