package check

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/services/nag"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/internal/utils"
)

var (
	definitionFile   string
	stacks           []string
	packs            []string
	includeCompliant bool
	failOnError      bool
	reportFile       string
	sarifFile        string
	raw              bool
)

func NewCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:           "check",
		Short:         "Run nag rule packs against the stacks of a definition",
		Long:          "Synthesize the stacks of a definition in memory and report every nag finding, grouped by stack and rule. Nothing is written unless --report-file is set.",
		SilenceErrors: true,
		PreRunE:       preRunCheck,
		RunE:          runCheck,
	}

	inputFlags := pflag.NewFlagSet("input", pflag.ExitOnError)
	inputFlags.SortFlags = false
	inputFlags.StringVar(&definitionFile, "definition", types.DefaultDefinitionFile, "The cfnkit definition file describing the stacks.")
	inputFlags.StringSliceVar(&stacks, "stack", []string{}, "Only check the named stack(s).")
	checkCmd.Flags().AddFlagSet(inputFlags)

	nagFlags := pflag.NewFlagSet("nag", pflag.ExitOnError)
	nagFlags.SortFlags = false
	nagFlags.StringSliceVar(&packs, "pack", []string{}, "Nag rule pack(s) to run in addition to the definition's. Defaults to AwsSolutions when neither names one.")
	nagFlags.BoolVar(&includeCompliant, "include-compliant", true, "Include compliant and not applicable results. Overrides the definition's nag.include_compliant when set.")
	nagFlags.BoolVar(&failOnError, "fail-on-error", false, "Exit with an error when a pack reports an error level finding.")
	checkCmd.Flags().AddFlagSet(nagFlags)

	outputFlags := pflag.NewFlagSet("output", pflag.ExitOnError)
	outputFlags.SortFlags = false
	outputFlags.StringVar(&reportFile, "report-file", "", "Also save the markdown report to this file.")
	outputFlags.StringVar(&sarifFile, "sarif-file", "", "Also save the results as a SARIF 2.1.0 log to this file.")
	outputFlags.BoolVar(&raw, "raw", false, "Print plain markdown instead of rendering it for the terminal.")
	checkCmd.Flags().AddFlagSet(outputFlags)

	utils.SetGroupedUsage(checkCmd,
		[]*pflag.FlagSet{inputFlags, nagFlags, outputFlags},
		[]string{"Input Flags", "Nag Flags", "Output Flags"},
	)

	return checkCmd
}

func preRunCheck(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := parseCheckerOpts()
	if err != nil {
		return fmt.Errorf("❌ failed to parse check opts: %v", err)
	}
	if cmd.Flags().Changed("include-compliant") {
		opts.IncludeCompliant = &includeCompliant
	}
	return NewChecker(*opts, cmd.OutOrStdout()).Run(cmd.Context())
}

func parseCheckerOpts() (*CheckerOpts, error) {
	def, err := types.NewDefinitionFromFile(definitionFile)
	if err != nil {
		return nil, err
	}

	selected := packs
	if len(selected) == 0 && (def.Nag == nil || len(def.Nag.Packs) == 0) {
		selected = []string{nag.AwsSolutionsPack}
	}

	return &CheckerOpts{
		DefinitionFile: definitionFile,
		Stacks:         stacks,
		Packs:          selected,
		FailOnError:    failOnError,
		ReportFile:     reportFile,
		SarifFile:      sarifFile,
		Raw:            raw,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
