package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/codebuild-env/internal/model"
)

// writeEnvFile creates an --env-file fixture and returns its path.
func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPrintFields(t *testing.T) {
	var buf bytes.Buffer
	printFields(&buf, [][2]string{
		{"Project", "dlc-pr-mxnet"},
		{"Region", ""},
	})
	assert.Equal(t,
		"Project:             dlc-pr-mxnet\n"+
			"Region:              -\n",
		buf.String())
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, validateFormat(f), f)
	}
	assert.Error(t, validateFormat(""))
	assert.Error(t, validateFormat("JSON"))
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		message    string
		underlying error
		want       string
	}{
		{
			name:    "text without detail",
			format:  formatText,
			message: "something failed",
			want:    "Error: something failed\n",
		},
		{
			name:       "text with detail",
			format:     formatText,
			message:    "repository URL not found",
			underlying: model.ErrRepositoryURLNotFound,
			want:       "Error: repository URL not found: environment did not contain GitHub repository URL\n",
		},
		{
			name:       "json with detail",
			format:     formatJSON,
			message:    "git failed",
			underlying: errors.New("exit status 128"),
			want:       "{\n  \"error\": {\n    \"message\": \"git failed\",\n    \"detail\": \"exit status 128\"\n  }\n}\n",
		},
		{
			name:    "json without detail",
			format:  formatJSON,
			message: "bad flag",
			want:    "{\n  \"error\": {\n    \"message\": \"bad flag\"\n  }\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.format, tt.message, tt.underlying)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// TestToCLIError verifies every domain error kind maps to its exit code.
func TestToCLIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want model.ExitCode
	}{
		{"repository URL not found", model.ErrRepositoryURLNotFound, model.ExitRepoURLNotFound},
		{"malformed repository URL", &model.MalformedRepositoryURLError{URL: "x"}, model.ExitMalformedRepoURL},
		{"path resolution", &model.PathResolutionError{Dir: "/tmp", Err: model.ErrRootDirNotFound}, model.ExitPathResolution},
		{"existing CLIError keeps its code", model.NewCLIError(model.ExitGitError, "git failed"), model.ExitGitError},
		{"anything else", errors.New("boom"), model.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toCLIError(tt.err).Code)
		})
	}
}
