package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/confluentinc/cfnkit/pkg/cfn"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var pathSeparators = regexp.MustCompile(`(/|\\|\.)+`)

// LoadTemplate reads a JSON or YAML template from path, or from stdin when
// path is "-".
func LoadTemplate(path string) (*cfn.Template, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	tmpl, err := cfn.ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	return tmpl, nil
}

// CleanPathName turns a file path into a flat name usable as a directory or
// stack name, e.g. "templates/app.yaml" -> "templates--app--yaml". Paths under
// the working directory are made relative first.
func CleanPathName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, abs); err == nil && !strings.HasPrefix(rel, "..") {
				path = rel
			}
		}
	}
	return pathSeparators.ReplaceAllString(strings.TrimLeft(filepath.ToSlash(path), "/"), "--")
}

// SetGroupedUsage prints the command's flags grouped by flag set, in order.
func SetGroupedUsage(cmd *cobra.Command, flagSets []*pflag.FlagSet, groupNames []string) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		fmt.Printf("%s\n\n", c.Short)
		fmt.Printf("Usage:\n  %s\n\n", c.UseLine())

		for i, fs := range flagSets {
			usage := fs.FlagUsages()
			if usage != "" {
				fmt.Printf("%s:\n%s\n", groupNames[i], usage)
			}
		}

		fmt.Println("All flags can be provided via environment variables (uppercase, with underscores).")

		return nil
	})
}
