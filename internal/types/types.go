package types

import (
	"fmt"
	"strings"
)

// OutputFormat is the serialization of a synthesized template.
type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatJSON, OutputFormatYAML:
		return true
	default:
		return false
	}
}

// Extension returns the file extension written for the format.
func (f OutputFormat) Extension() string {
	if f == OutputFormatYAML {
		return "yaml"
	}
	return "json"
}

// AllOutputFormats returns all possible OutputFormat values as strings
func AllOutputFormats() []string {
	return []string{string(OutputFormatJSON), string(OutputFormatYAML)}
}

func ToOutputFormat(input string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(input)))
	if f == "" {
		return OutputFormatJSON, nil
	}
	if !f.IsValid() {
		return "", fmt.Errorf("invalid output format %q: must be one of %s", input, strings.Join(AllOutputFormats(), ", "))
	}
	return f, nil
}

// TerraformFiles holds the rendered files of a Terraform export.
type TerraformFiles struct {
	MainTf      string `json:"main_tf"`
	ProvidersTf string `json:"providers_tf"`
	VariablesTf string `json:"variables_tf"`
	OutputsTf   string `json:"outputs_tf"`
}

// Files maps each non-empty file to its name on disk.
func (f TerraformFiles) Files() map[string]string {
	files := map[string]string{}
	for name, content := range map[string]string{
		"main.tf":      f.MainTf,
		"providers.tf": f.ProvidersTf,
		"variables.tf": f.VariablesTf,
		"outputs.tf":   f.OutputsTf,
	} {
		if content != "" {
			files[name] = content
		}
	}
	return files
}

// TerraformOutputValue is one entry of `terraform output -json`.
type TerraformOutputValue struct {
	Sensitive bool `json:"sensitive"`
	Type      any  `json:"type"`
	Value     any  `json:"value"`
}

// BuildInfo identifies the cfnkit binary that produced an artifact.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}
