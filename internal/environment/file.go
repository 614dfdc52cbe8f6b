package environment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadFile reads an overlay file of variable assignments and returns them as
// a Map. The file is a single object whose keys are variable names and whose
// values are strings:
//
//	{
//	  // local run of the PR build
//	  "CODEBUILD_BUILD_ID": "dlc-pr-mxnet:local",
//	  "AWS_REGION": "us-west-2",
//	}
//
// Files ending in .yaml or .yml are decoded as YAML. Everything else is
// treated as JSONC: comments and trailing commas are stripped with
// github.com/tidwall/jsonc before decoding with encoding/json.
//
// A missing file returns an error that satisfies errors.Is(err, fs.ErrNotExist).
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file: %w", err)
	}

	vars := Map{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &vars); err != nil {
			return nil, fmt.Errorf("failed to parse environment file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &vars); err != nil {
			return nil, fmt.Errorf("failed to parse environment file %s: %w", path, err)
		}
	}

	return vars, nil
}
