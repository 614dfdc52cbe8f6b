package cli

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/codebuild-env/internal/codebuild"
	"github.com/shinji-kodama/codebuild-env/internal/environment"
	"github.com/shinji-kodama/codebuild-env/internal/model"
)

// setupCheckout creates a temporary Git repository with a single commit on
// branch "main", standing in for the folder CodeBuild clones the source into.
// When origin is non-empty it is added as the "origin" remote.
func setupCheckout(t *testing.T, origin string) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()

	runTestGit(t, dir, "init")
	runTestGit(t, dir, "config", "user.email", "test@example.com")
	runTestGit(t, dir, "config", "user.name", "Test User")
	runTestGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")

	err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test Repo\n"), 0644)
	require.NoError(t, err, "failed to create initial file")

	runTestGit(t, dir, "add", ".")
	runTestGit(t, dir, "commit", "-m", "initial commit")

	if origin != "" {
		runTestGit(t, dir, "remote", "add", "origin", origin)
	}

	return dir
}

// runTestGit runs a git command in dir and fails the test on a non-zero exit.
func runTestGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, string(output))
	return string(output)
}

// TestInfoCommand_Git verifies that --git adds the HEAD commit, branch and
// origin URL of the folder named by CODEBUILD_SRC_DIR to the JSON output.
func TestInfoCommand_Git(t *testing.T) {
	origin := "https://github.com/aws/deep-learning-containers.git"
	checkout := setupCheckout(t, origin)
	expectedHead := runTestGit(t, checkout, "rev-parse", "HEAD")[:40]

	out, _, err := runCommand(t, environment.Map{codebuild.EnvSrcDir: checkout}, "/", "info", "--git", "-o", "json")
	require.NoError(t, err)

	var result infoResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotNil(t, result.Git, "git section should be present with --git")
	assert.Equal(t, expectedHead, result.Git.Head)
	assert.Equal(t, "main", result.Git.Branch)
	assert.Equal(t, origin, result.Git.RemoteURL)
	assert.Equal(t, checkout, result.ClonedFolderPath)
}

// TestInfoCommand_GitWithoutOrigin verifies that a checkout without an
// origin remote (e.g., an S3 source) is reported with an empty remote URL
// rather than failing the command.
func TestInfoCommand_GitWithoutOrigin(t *testing.T) {
	checkout := setupCheckout(t, "")

	out, stderr, err := runCommand(t, environment.Map{codebuild.EnvSrcDir: checkout}, "/", "info", "--git", "-o", "json", "-v")
	require.NoError(t, err)

	var result infoResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotNil(t, result.Git)
	assert.NotEmpty(t, result.Git.Head)
	assert.Equal(t, "main", result.Git.Branch)
	assert.Equal(t, "", result.Git.RemoteURL)

	// The missing remote is only mentioned in the verbose log.
	assert.Contains(t, stderr, "No origin remote")
}

// TestInfoCommand_GitText checks that the git fields appear in text output.
func TestInfoCommand_GitText(t *testing.T) {
	checkout := setupCheckout(t, "")

	out, _, err := runCommand(t, environment.Map{codebuild.EnvSrcDir: checkout}, "/", "info", "--git")
	require.NoError(t, err)
	assert.Contains(t, out, "Git HEAD:")
	assert.Contains(t, out, "Git branch:")
	assert.Regexp(t, `Git branch:\s+main\n`, out)
	assert.Regexp(t, `Git remote:\s+-\n`, out)
}

// TestInfoCommand_GitNotACheckout verifies that a cloned folder which is not
// a git repository fails with the git exit code and a clear message.
func TestInfoCommand_GitNotACheckout(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	dir := t.TempDir()

	_, _, err := runCommand(t, environment.Map{codebuild.EnvSrcDir: dir}, "/", "info", "--git")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGitError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "is not a git checkout")
}
