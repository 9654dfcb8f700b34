package export

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/utils"
)

var (
	template  string
	stackName string
	region    string
	outDir    string
)

func NewExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:           "export",
		Short:         "Export a template as a Terraform configuration",
		Long:          "Convert a CloudFormation template into main.tf, variables.tf, outputs.tf and providers.tf using the awscc and aws providers.",
		SilenceErrors: true,
		PreRunE:       preRunExport,
		RunE:          runExport,
	}

	requiredFlags := pflag.NewFlagSet("required", pflag.ExitOnError)
	requiredFlags.SortFlags = false
	requiredFlags.StringVar(&template, "template", "", "The template to export, JSON or YAML. Use - for stdin.")
	exportCmd.Flags().AddFlagSet(requiredFlags)

	optionalFlags := pflag.NewFlagSet("optional", pflag.ExitOnError)
	optionalFlags.SortFlags = false
	optionalFlags.StringVar(&region, "region", "us-east-1", "The default AWS region of the generated providers.")
	optionalFlags.StringVar(&stackName, "stack-name", "", "The value AWS::StackName resolves to. Defaults to the template file name.")
	optionalFlags.StringVar(&outDir, "out-dir", "terraform", "The directory the Terraform files are written to.")
	exportCmd.Flags().AddFlagSet(optionalFlags)

	utils.SetGroupedUsage(exportCmd,
		[]*pflag.FlagSet{requiredFlags, optionalFlags},
		[]string{"Required Flags", "Optional Flags"},
	)

	exportCmd.MarkFlagRequired("template")

	return exportCmd
}

func preRunExport(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	exporter := NewExporter(ExporterOpts{Template: template, StackName: stackName, Region: region, OutDir: outDir})
	files, err := exporter.Run()
	if err != nil {
		return fmt.Errorf("❌ failed to export template: %w", err)
	}
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
