package gitrepo

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/shinji-kodama/codebuild-env/internal/model"
)

// DefaultRemote is the remote CodeBuild configures for the primary source.
const DefaultRemote = "origin"

// detachedHEAD is what `git rev-parse --abbrev-ref HEAD` prints when no
// branch is checked out. CodeBuild checks out PR builds this way.
const detachedHEAD = "HEAD"

// Inspector runs read-only git queries against a checkout.
type Inspector struct {
	// gitBinary is the git executable to run. Tests may point it elsewhere.
	gitBinary string
}

// NewInspector creates an Inspector that runs the git found on PATH.
func NewInspector() *Inspector {
	return &Inspector{gitBinary: "git"}
}

// IsRepository reports whether path is inside a Git working tree.
func (i *Inspector) IsRepository(path string) bool {
	out, err := i.run(path, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// Head returns the full commit SHA HEAD points to.
func (i *Inspector) Head(path string) (string, error) {
	out, err := i.run(path, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the short name of the checked-out branch
// (e.g., "master"), or "" when HEAD is detached.
func (i *Inspector) CurrentBranch(path string) (string, error) {
	out, err := i.run(path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}

	branch := strings.TrimSpace(out)
	if branch == detachedHEAD {
		return "", nil
	}
	return branch, nil
}

// RemoteURL returns the fetch URL configured for remote. Its value has the
// same shape as CODEBUILD_SOURCE_REPO_URL and can be fed to
// codebuild.SplitRepoURL.
func (i *Inspector) RemoteURL(path, remote string) (string, error) {
	out, err := i.run(path, "remote", "get-url", remote)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// run executes git with args against the repository at path.
//
// The path is passed via -C so the process working directory is never
// changed. On failure the stderr output is folded into a model.CLIError
// with ExitGitError.
func (i *Inspector) run(path string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", path}, args...)

	// #nosec G204: args are constructed internally, not from user input
	cmd := exec.Command(i.gitBinary, fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.ExitGitError, message, err)
	}

	return stdout.String(), nil
}
