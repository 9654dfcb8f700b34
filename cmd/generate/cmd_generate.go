package generate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/generators/codegen"
	"github.com/confluentinc/cfnkit/internal/utils"
)

var (
	specFile    string
	service     string
	packageName string
	outDir      string
	list        bool
)

func NewGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:           "generate",
		Short:         "Generate resource bindings from the CloudFormation resource specification",
		Long:          "Generate a Go package of typed resource bindings for one AWS service from a CloudFormation Resource Specification JSON file.",
		SilenceErrors: true,
		PreRunE:       preRunGenerate,
		RunE:          runGenerate,
	}

	requiredFlags := pflag.NewFlagSet("required", pflag.ExitOnError)
	requiredFlags.SortFlags = false
	requiredFlags.StringVar(&specFile, "spec-file", "", "The CloudFormation Resource Specification JSON file.")
	requiredFlags.StringVar(&service, "service", "", "The service to generate, e.g. SQS for AWS::SQS::* resources.")
	generateCmd.Flags().AddFlagSet(requiredFlags)

	optionalFlags := pflag.NewFlagSet("optional", pflag.ExitOnError)
	optionalFlags.SortFlags = false
	optionalFlags.StringVar(&packageName, "package", "", "The Go package name. Defaults to the lower cased service.")
	optionalFlags.StringVar(&outDir, "out-dir", "", "The output directory. Defaults to pkg/cfn/<package>.")
	optionalFlags.BoolVar(&list, "list", false, "List the services in the specification and exit.")
	generateCmd.Flags().AddFlagSet(optionalFlags)

	utils.SetGroupedUsage(generateCmd,
		[]*pflag.FlagSet{requiredFlags, optionalFlags},
		[]string{"Required Flags", "Optional Flags"},
	)

	generateCmd.MarkFlagRequired("spec-file")

	return generateCmd
}

func preRunGenerate(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(specFile); err != nil {
		return fmt.Errorf("❌ resource specification does not exist: %s", specFile)
	}

	if list {
		spec, err := codegen.LoadSpecification(specFile)
		if err != nil {
			return err
		}
		for _, s := range spec.Services() {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	}

	if service == "" {
		return fmt.Errorf("❌ --service is required")
	}

	generator := codegen.NewCodeGenerator(codegen.GenerateOpts{
		SpecFile: specFile,
		Service:  service,
		Package:  packageName,
		OutDir:   outDir,
	})
	if err := generator.Run(); err != nil {
		return fmt.Errorf("❌ failed to generate bindings: %w", err)
	}
	return nil
}
