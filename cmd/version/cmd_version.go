package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confluentinc/cfnkit/internal/build_info"
)

var asJSON bool

func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version, commit, and build date information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				out, err := json.Marshal(map[string]string{
					"version": build_info.Version,
					"commit":  build_info.Commit,
					"date":    build_info.Date,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", build_info.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit:  %s\n", build_info.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Date:    %s\n", build_info.Date)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the build information as JSON")
	return cmd
}
