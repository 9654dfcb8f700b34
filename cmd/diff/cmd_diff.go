package diff

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/utils"
)

var (
	before   string
	after    string
	asJSON   bool
	exitCode bool
)

func NewDiffCmd() *cobra.Command {
	diffCmd := &cobra.Command{
		Use:           "diff",
		Short:         "Show the differences between two templates",
		Long:          "Compare two CloudFormation templates section by section and list every added, removed and modified entry with its changed properties.",
		SilenceErrors: true,
		PreRunE:       preRunDiff,
		RunE:          runDiff,
	}

	requiredFlags := pflag.NewFlagSet("required", pflag.ExitOnError)
	requiredFlags.SortFlags = false
	requiredFlags.StringVar(&after, "after", "", "The new template, JSON or YAML. Use - for stdin.")
	diffCmd.Flags().AddFlagSet(requiredFlags)

	optionalFlags := pflag.NewFlagSet("optional", pflag.ExitOnError)
	optionalFlags.SortFlags = false
	optionalFlags.StringVar(&before, "before", "", "The current template. When omitted every entry of --after is an addition.")
	optionalFlags.BoolVar(&asJSON, "json", false, "Print the changes as JSON.")
	optionalFlags.BoolVar(&exitCode, "exit-code", false, "Exit with an error when the templates differ.")
	diffCmd.Flags().AddFlagSet(optionalFlags)

	utils.SetGroupedUsage(diffCmd,
		[]*pflag.FlagSet{requiredFlags, optionalFlags},
		[]string{"Required Flags", "Optional Flags"},
	)

	diffCmd.MarkFlagRequired("after")

	return diffCmd
}

func preRunDiff(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	return NewDiffer(DifferOpts{Before: before, After: after, JSON: asJSON, ExitCode: exitCode}, cmd.OutOrStdout()).Run()
}
