package utils

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ParseKeyValuePairs validates and parses parameter overrides given as
// "Key=Value" items. Expected format: "Env=prod,BucketName=my-bucket"
func ParseKeyValuePairs(items []string) (map[string]string, error) {
	pairs := map[string]string{}

	for _, item := range items {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid parameter override: %s. Expected format: 'Key=Value' (e.g., 'Env=prod')", item)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid parameter override: %s. Key must not be empty", item)
		}
		if _, exists := pairs[key]; exists {
			return nil, fmt.Errorf("parameter %s is overridden more than once", key)
		}

		pairs[key] = value
	}

	return pairs, nil
}

// sets flag values from corresponding environment variables if flags weren't explicitly provided
func BindEnvToFlags(cmd *cobra.Command) error {
	v := viper.New()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// e.g., "out-dir" -> "OUT_DIR"
		envVarName := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		if err := v.BindEnv(f.Name, envVarName); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("failed to bind %s: %w", envVarName, err)
			return
		}

		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil && bindErr == nil {
				bindErr = fmt.Errorf("invalid value for %s from %s: %w", f.Name, envVarName, err)
			}
		}
	})

	return bindErr
}
