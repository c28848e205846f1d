package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Supported values for --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// writeStructured encodes v as JSON or YAML. Text output is handled by callers.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML output: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q: supported formats are %q, %q and %q", format, outputText, outputJSON, outputYAML)
	}
}
