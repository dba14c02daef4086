package cliutil

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// HandleOutput writes v to the command's output according to the template or
// format flag. Templates and YAML see v through its JSON field names.
func HandleOutput(cmd *cobra.Command, v any) error {
	templateFlag, _ := cmd.Flags().GetString("template")
	formatFlag, _ := cmd.Flags().GetString("format")

	result, err := toMap(v)
	if err != nil {
		return err
	}

	if templateFlag != "" {
		tmpl, err := template.New("output").Parse(templateFlag)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}

		if err := tmpl.Execute(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	var output []byte

	switch formatFlag {
	case "yaml":
		output, err = yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	default:
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// AddOutputFlags registers the --template and --format flags read by
// HandleOutput.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("template", "", "Template for output format. Accepts Go template format (e.g. --template='{{.ymax}}')")
	cmd.Flags().String("format", "json", "Output format. Accepts 'json' or 'yaml'")
}

// ValidateOutputFlags rejects a template combined with a non-default format.
func ValidateOutputFlags(cmd *cobra.Command) error {
	templateFlag, _ := cmd.Flags().GetString("template")
	formatFlag, _ := cmd.Flags().GetString("format")

	if templateFlag != "" && formatFlag != "json" {
		return fmt.Errorf("--template and --format flags cannot be used together")
	}
	switch formatFlag {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid format: %s. Valid formats are: json, yaml", formatFlag)
	}
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode output: %w", err)
	}
	return result, nil
}
