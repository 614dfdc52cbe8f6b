package environment

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a fixture file under a fresh temp directory and
// returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadFile_JSONC verifies that comments and trailing commas are accepted.
func TestLoadFile_JSONC(t *testing.T) {
	path := writeFile(t, "env.jsonc", `{
  // local run of the PR build
  "CODEBUILD_BUILD_ID": "dlc-pr-mxnet:local",
  /* region for console links */
  "AWS_REGION": "us-west-2",
  "CODEBUILD_SRC_DIR": "",
}`)

	vars, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Map{
		"CODEBUILD_BUILD_ID": "dlc-pr-mxnet:local",
		"AWS_REGION":         "us-west-2",
		"CODEBUILD_SRC_DIR":  "",
	}, vars)
}

// TestLoadFile_JSONExtension checks that plain .json files go through the
// same JSONC path.
func TestLoadFile_JSONExtension(t *testing.T) {
	path := writeFile(t, "env.json", `{"AWS_REGION": "ap-northeast-1"}`)

	vars, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Map{"AWS_REGION": "ap-northeast-1"}, vars)
}

func TestLoadFile_YAML(t *testing.T) {
	for _, name := range []string{"env.yaml", "env.yml", "ENV.YAML"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, `# local overrides
CODEBUILD_SOURCE_REPO_URL: https://github.com/aws/deep-learning-containers.git
CODEBUILD_LOG_PATH: "0b5d9c3e"
`)

			vars, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "https://github.com/aws/deep-learning-containers.git", vars["CODEBUILD_SOURCE_REPO_URL"])
			assert.Equal(t, "0b5d9c3e", vars["CODEBUILD_LOG_PATH"])
		})
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json not an object", "env.json", `["AWS_REGION"]`},
		{"json non-string value", "env.jsonc", `{"CODEBUILD_BUILD_ID": 42}`},
		{"json truncated", "env.json", `{"AWS_REGION": `},
		{"yaml sequence", "env.yaml", "- AWS_REGION\n- us-east-1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse environment file")
		})
	}
}
