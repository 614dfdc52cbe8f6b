package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOS_LookupEnv(t *testing.T) {
	t.Setenv("CODEBUILD_ENV_TEST_VAR", "value")
	t.Setenv("CODEBUILD_ENV_TEST_EMPTY", "")

	v, ok := OS{}.LookupEnv("CODEBUILD_ENV_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	// Set-but-empty must be reported as present.
	v, ok = OS{}.LookupEnv("CODEBUILD_ENV_TEST_EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = OS{}.LookupEnv("CODEBUILD_ENV_TEST_DEFINITELY_UNSET")
	assert.False(t, ok)
}

func TestMap_Keys(t *testing.T) {
	m := Map{"B": "2", "A": "1", "C": ""}
	assert.Equal(t, []string{"A", "B", "C"}, m.Keys())
	assert.Empty(t, Map{}.Keys())
}

// TestLayered_LookupEnv verifies first-hit-wins ordering across layers,
// including that an empty value shadows later layers.
func TestLayered_LookupEnv(t *testing.T) {
	top := Map{"AWS_REGION": "us-east-1", "CODEBUILD_SRC_DIR": ""}
	bottom := Map{"AWS_REGION": "eu-west-1", "CODEBUILD_SRC_DIR": "/src", "CODEBUILD_LOG_PATH": "abc"}
	layered := Layered{top, nil, bottom}

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"AWS_REGION", "us-east-1", true},
		{"CODEBUILD_SRC_DIR", "", true},
		{"CODEBUILD_LOG_PATH", "abc", true},
		{"CODEBUILD_BUILD_ID", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := layered.LookupEnv(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Layered{}.LookupEnv("AWS_REGION")
	assert.False(t, ok, "empty layer list has no variables")
}

func TestGetenv(t *testing.T) {
	env := Map{"SET": "x", "EMPTY": ""}
	assert.Equal(t, "x", Getenv(env, "SET", "def"))
	assert.Equal(t, "", Getenv(env, "EMPTY", "def"), "default applies only when unset")
	assert.Equal(t, "def", Getenv(env, "UNSET", "def"))
}
