package validate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/utils"
)

var (
	templates      []string
	definitionFile string
	stacks         []string
)

func NewValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:           "validate [template...]",
		Short:         "Validate CloudFormation templates or a definition file",
		Long:          "Check templates for structural problems, dangling references and dependency cycles. With --definition, also check that every stack of the definition synthesizes.",
		SilenceErrors: true,
		PreRunE:       preRunValidate,
		RunE:          runValidate,
	}

	inputFlags := pflag.NewFlagSet("input", pflag.ExitOnError)
	inputFlags.SortFlags = false
	inputFlags.StringSliceVar(&templates, "template", []string{}, "Template file(s) to validate, JSON or YAML. Use - for stdin.")
	inputFlags.StringVar(&definitionFile, "definition", "", "A cfnkit definition file to validate.")
	inputFlags.StringSliceVar(&stacks, "stack", []string{}, "Only validate the named stack(s) of the definition.")
	validateCmd.Flags().AddFlagSet(inputFlags)

	utils.SetGroupedUsage(validateCmd, []*pflag.FlagSet{inputFlags}, []string{"Input Flags"})

	return validateCmd
}

func preRunValidate(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts := ValidatorOpts{
		Templates:      append(append([]string{}, templates...), args...),
		DefinitionFile: definitionFile,
		Stacks:         stacks,
	}
	if len(opts.Templates) == 0 && opts.DefinitionFile == "" {
		return fmt.Errorf("❌ nothing to validate: pass template files or --definition")
	}

	return NewValidator(opts, cmd.OutOrStdout()).Run(cmd.Context())
}
