// Package gitrepo inspects the Git checkout a CodeBuild build runs in.
//
// All Git operations are performed via os/exec calls to the git binary,
// rather than using a Git library like go-git. This approach:
//   - Uses the exact same Git behavior the build's own scripts see
//   - Works with the shallow clones CodeBuild creates by default
//   - Requires only the git binary already present in CodeBuild images
//
// The Inspector struct provides read-only queries: HEAD commit, current
// branch, remote URL and whether a path is inside a repository at all.
package gitrepo
