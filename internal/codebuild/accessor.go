package codebuild

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws/arn"

	"github.com/shinji-kodama/codebuild-env/internal/environment"
	"github.com/shinji-kodama/codebuild-env/internal/model"
)

// Environment variable names read by the Accessor.
const (
	EnvBuildARN      = "CODEBUILD_BUILD_ARN"
	EnvSourceRepoURL = "CODEBUILD_SOURCE_REPO_URL"
	EnvBuildID       = "CODEBUILD_BUILD_ID"
	EnvSrcDir        = "CODEBUILD_SRC_DIR"
	EnvLogPath       = "CODEBUILD_LOG_PATH"
	EnvRegion        = "AWS_REGION"
)

const (
	// DefaultRootDirName is the checkout directory name searched for in the
	// working directory when CODEBUILD_SRC_DIR is not set.
	DefaultRootDirName = "deep-learning-containers"

	// defaultProjectName is reported when the build runs outside CodeBuild.
	defaultProjectName = "local_test"
	defaultProjectID   = "0"

	buildIDSeparator = ":"
	gitSuffix        = ".git"
)

const (
	codePipelineURLFormat = "https://%[1]s.console.aws.amazon.com/codesuite/codepipeline/pipelines/%[2]s/view?region=%[1]s"
	cloudWatchURLFormat   = "https://%[1]s.console.aws.amazon.com/cloudwatch/home?region=%[1]s#logEventViewer:group=/aws/codebuild/%[2]s;stream=%[3]s"
)

// Accessor reads CodeBuild metadata from an environment.Provider.
// It holds no state besides its dependencies and is safe for concurrent use
// as long as the provider and working-directory function are.
type Accessor struct {
	env         environment.Provider
	getwd       func() (string, error)
	rootDirName string
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithWorkingDir replaces os.Getwd as the source of the working directory
// used by ClonedFolderPath.
func WithWorkingDir(getwd func() (string, error)) Option {
	return func(a *Accessor) {
		a.getwd = getwd
	}
}

// WithRootDirName changes the checkout directory name ClonedFolderPath
// looks for in the working directory.
func WithRootDirName(name string) Option {
	return func(a *Accessor) {
		a.rootDirName = name
	}
}

// New creates an Accessor over env.
func New(env environment.Provider, opts ...Option) *Accessor {
	a := &Accessor{
		env:         env,
		getwd:       os.Getwd,
		rootDirName: DefaultRootDirName,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BuildARN returns CODEBUILD_BUILD_ARN, or "" if it is not set.
func (a *Accessor) BuildARN() string {
	return environment.Getenv(a.env, EnvBuildARN, "")
}

// ParseBuildARN parses CODEBUILD_BUILD_ARN into its components.
// It returns model.ErrBuildARNNotFound when the variable is unset or empty.
func (a *Accessor) ParseBuildARN() (model.BuildARNInfo, error) {
	raw := a.BuildARN()
	if raw == "" {
		return model.BuildARNInfo{}, model.ErrBuildARNNotFound
	}

	parsed, err := arn.Parse(raw)
	if err != nil {
		return model.BuildARNInfo{}, fmt.Errorf("failed to parse %s %q: %w", EnvBuildARN, raw, err)
	}

	return model.BuildARNInfo{
		Partition: parsed.Partition,
		Region:    parsed.Region,
		AccountID: parsed.AccountID,
		Resource:  parsed.Resource,
	}, nil
}

// RepoURL returns CODEBUILD_SOURCE_REPO_URL. The boolean is false when the
// variable is not set at all, which callers can tell apart from an empty value.
//
// Example value: "https://github.com/aws/deep-learning-containers.git"
func (a *Accessor) RepoURL() (string, bool) {
	return a.env.LookupEnv(EnvSourceRepoURL)
}

// UserAndRepoName returns the owner and repository name of the cloned
// repository, taken from the last two "/"-separated segments of the
// repository URL after a trailing ".git" is removed.
//
// It returns model.ErrRepositoryURLNotFound when the URL is unset or empty,
// and *model.MalformedRepositoryURLError when the URL has fewer than two "/".
func (a *Accessor) UserAndRepoName() (string, string, error) {
	repoURL, _ := a.RepoURL()
	if repoURL == "" {
		return "", "", model.ErrRepositoryURLNotFound
	}
	return SplitRepoURL(repoURL)
}

// SplitRepoURL splits a repository URL into owner and name. Only an exact
// ".git" suffix is removed, so names ending in 'g', 'i' or 't' stay intact.
func SplitRepoURL(repoURL string) (string, string, error) {
	trimmed := strings.TrimSuffix(repoURL, gitSuffix)

	nameSep := strings.LastIndex(trimmed, "/")
	if nameSep < 0 {
		return "", "", &model.MalformedRepositoryURLError{URL: repoURL}
	}
	ownerSep := strings.LastIndex(trimmed[:nameSep], "/")
	if ownerSep < 0 {
		return "", "", &model.MalformedRepositoryURLError{URL: repoURL}
	}

	return trimmed[ownerSep+1 : nameSep], trimmed[nameSep+1:], nil
}

// ProjectName returns the part of CODEBUILD_BUILD_ID before the first ":".
// Outside CodeBuild the variable is unset and "local_test" is returned.
func (a *Accessor) ProjectName() string {
	buildID := environment.Getenv(a.env, EnvBuildID, defaultProjectName)
	name, _, _ := strings.Cut(buildID, buildIDSeparator)
	return name
}

// ProjectID returns the part of CODEBUILD_BUILD_ID after the last ":",
// or "0" when the variable is unset. An ID without ":" is returned whole.
func (a *Accessor) ProjectID() string {
	buildID := environment.Getenv(a.env, EnvBuildID, defaultProjectID)
	return buildID[strings.LastIndex(buildID, buildIDSeparator)+1:]
}

// ClonedFolderPath returns the root folder of the checked-out repository.
//
// CODEBUILD_SRC_DIR is returned verbatim when it is non-empty. Otherwise the
// working directory must contain the root directory name (by default
// "deep-learning-containers") within its leading run of non-whitespace
// characters, preceded by at least one character; the path up to and
// including the last such occurrence is returned.
//
//	/home/user/deep-learning-containers/build -> /home/user/deep-learning-containers
func (a *Accessor) ClonedFolderPath() (string, error) {
	if srcDir, _ := a.env.LookupEnv(EnvSrcDir); srcDir != "" {
		return srcDir, nil
	}

	pwd, err := a.getwd()
	if err != nil {
		return "", &model.PathResolutionError{Err: err}
	}

	root, ok := matchRootDir(pwd, a.rootDirName)
	if !ok {
		return "", &model.PathResolutionError{Dir: pwd, Err: model.ErrRootDirNotFound}
	}
	return root, nil
}

// matchRootDir finds the longest prefix of dir's leading non-whitespace run
// that ends in rootName and has at least one character before rootName.
func matchRootDir(dir, rootName string) (string, bool) {
	if rootName == "" {
		return "", false
	}

	run := dir
	if i := strings.IndexFunc(dir, isSpace); i >= 0 {
		run = dir[:i]
	}

	idx := strings.LastIndex(run, rootName)
	if idx < 1 {
		return "", false
	}
	return run[:idx+len(rootName)], true
}

// isSpace reports whether r is whitespace. It extends unicode.IsSpace with
// the information separators U+001C..U+001F, which Python's str.isspace
// (and so a "\S" regular expression) also treats as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// CodePipelineURL returns the AWS console URL of the named pipeline in the
// region given by AWS_REGION. Inputs are not validated; an unset region
// yields a URL with an empty host label. The empty string is embedded in
// place of an unset marker such as "None"; no placeholder text is added.
func (a *Accessor) CodePipelineURL(pipelineName string) string {
	region := environment.Getenv(a.env, EnvRegion, "")
	return fmt.Sprintf(codePipelineURLFormat, region, pipelineName)
}

// CloudWatchURL returns the CloudWatch log viewer URL for the CodeBuild log
// group of project and the stream in CODEBUILD_LOG_PATH. Like
// CodePipelineURL it embeds unset variables as empty strings in place of an
// unset marker.
func (a *Accessor) CloudWatchURL(project string) string {
	region := environment.Getenv(a.env, EnvRegion, "")
	logPath := environment.Getenv(a.env, EnvLogPath, "")
	return fmt.Sprintf(cloudWatchURLFormat, region, project, logPath)
}

// Snapshot collects every derivable value into a model.BuildInfo.
// Failures of the fallible lookups are recorded on the snapshot rather than
// returned.
func (a *Accessor) Snapshot() model.BuildInfo {
	info := model.BuildInfo{
		BuildARN:    a.BuildARN(),
		ProjectName: a.ProjectName(),
		ProjectID:   a.ProjectID(),
		Region:      environment.Getenv(a.env, EnvRegion, ""),
		LogPath:     environment.Getenv(a.env, EnvLogPath, ""),
	}

	if parsed, err := a.ParseBuildARN(); err == nil {
		info.ARN = &parsed
	}

	info.RepoURL, info.RepoURLSet = a.RepoURL()
	if owner, name, err := a.UserAndRepoName(); err != nil {
		info.RepoError = err.Error()
	} else {
		info.Repo = &model.RepoRef{Owner: owner, Name: name}
	}

	if path, err := a.ClonedFolderPath(); err != nil {
		info.ClonedFolderError = err.Error()
	} else {
		info.ClonedFolderPath = path
	}

	info.CloudWatchURL = a.CloudWatchURL(info.ProjectName)
	return info
}
