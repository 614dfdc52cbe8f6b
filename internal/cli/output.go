package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Supported values of the --output flag.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: valid values are text, json, yaml", format)
	}
}

// printResult writes v as JSON or YAML, or calls text for the human-readable
// form. Results go to stdout; stderr is reserved for logs and errors.
func printResult(w io.Writer, format string, v interface{}, text func(io.Writer)) error {
	switch format {
	case formatJSON:
		return writeJSON(w, v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printFields writes aligned "key: value" lines. Empty values print as "-".
func printFields(w io.Writer, fields [][2]string) {
	for _, f := range fields {
		value := f[1]
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%-20s %s\n", f[0]+":", value)
	}
}
