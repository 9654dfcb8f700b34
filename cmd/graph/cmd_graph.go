package graph

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/utils"
)

var (
	template string
	format   string
)

func NewGraphCmd() *cobra.Command {
	graphCmd := &cobra.Command{
		Use:           "graph",
		Short:         "Print the resource dependency graph of a template",
		Long:          "Build the dependency graph of a template from DependsOn, Ref, GetAtt and Sub references and print it as Graphviz DOT, as a deploy order or as JSON.",
		SilenceErrors: true,
		PreRunE:       preRunGraph,
		RunE:          runGraph,
	}

	requiredFlags := pflag.NewFlagSet("required", pflag.ExitOnError)
	requiredFlags.SortFlags = false
	requiredFlags.StringVar(&template, "template", "", "The template to graph, JSON or YAML. Use - for stdin.")
	graphCmd.Flags().AddFlagSet(requiredFlags)

	optionalFlags := pflag.NewFlagSet("optional", pflag.ExitOnError)
	optionalFlags.SortFlags = false
	optionalFlags.StringVar(&format, "format", FormatDOT, "Output format: dot, order or json.")
	graphCmd.Flags().AddFlagSet(optionalFlags)

	utils.SetGroupedUsage(graphCmd,
		[]*pflag.FlagSet{requiredFlags, optionalFlags},
		[]string{"Required Flags", "Optional Flags"},
	)

	graphCmd.MarkFlagRequired("template")

	return graphCmd
}

func preRunGraph(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	return NewGrapher(GrapherOpts{Template: template, Format: format}, cmd.OutOrStdout()).Run()
}
