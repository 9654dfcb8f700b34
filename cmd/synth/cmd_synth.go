package synth

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/generators/synth"
	"github.com/confluentinc/cfnkit/internal/types"
	"github.com/confluentinc/cfnkit/internal/utils"
)

var (
	definitionFile   string
	outDir           string
	format           string
	stacks           []string
	parameters       []string
	nagPacks         []string
	includeCompliant bool
	failOnNagError   bool
)

func NewSynthCmd() *cobra.Command {
	synthCmd := &cobra.Command{
		Use:           "synth",
		Short:         "Synthesize CloudFormation templates from a definition file",
		Long:          "Build every stack of a cfnkit definition file into a CloudFormation template, run the configured nag packs and write templates, nag reports and a manifest to the output directory.",
		SilenceErrors: true,
		PreRunE:       preRunSynth,
		RunE:          runSynth,
	}

	inputFlags := pflag.NewFlagSet("input", pflag.ExitOnError)
	inputFlags.SortFlags = false
	inputFlags.StringVar(&definitionFile, "definition", types.DefaultDefinitionFile, "The cfnkit definition file describing the stacks.")
	inputFlags.StringSliceVar(&stacks, "stack", []string{}, "Only synthesize the named stack(s) (comma separated list or repeated flag).")
	inputFlags.StringSliceVar(&parameters, "parameter", []string{}, "Override a parameter default, as Key=Value (e.g. 'Env=prod'). Repeatable.")
	synthCmd.Flags().AddFlagSet(inputFlags)

	outputFlags := pflag.NewFlagSet("output", pflag.ExitOnError)
	outputFlags.SortFlags = false
	outputFlags.StringVar(&outDir, "out-dir", "cfnkit.out", "The directory templates, nag reports and the manifest are written to.")
	outputFlags.StringVar(&format, "format", "", "Template format: json or yaml. Defaults to the definition's format, then json.")
	synthCmd.Flags().AddFlagSet(outputFlags)

	nagFlags := pflag.NewFlagSet("nag", pflag.ExitOnError)
	nagFlags.SortFlags = false
	nagFlags.StringSliceVar(&nagPacks, "nag-pack", []string{}, "Additional nag rule pack(s) to run, e.g. AwsSolutions or HIPAA.Security.")
	nagFlags.BoolVar(&includeCompliant, "include-compliant", true, "Include compliant and not applicable results in nag reports. Overrides the definition's nag.include_compliant when set.")
	nagFlags.BoolVar(&failOnNagError, "fail-on-nag-error", false, "Exit with an error when a nag pack reports an error level finding.")
	synthCmd.Flags().AddFlagSet(nagFlags)

	utils.SetGroupedUsage(synthCmd,
		[]*pflag.FlagSet{inputFlags, outputFlags, nagFlags},
		[]string{"Input Flags", "Output Flags", "Nag Flags"},
	)

	return synthCmd
}

func preRunSynth(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runSynth(cmd *cobra.Command, args []string) error {
	opts, err := parseSynthOpts()
	if err != nil {
		return fmt.Errorf("❌ failed to parse synth opts: %v", err)
	}
	if cmd.Flags().Changed("include-compliant") {
		opts.IncludeCompliant = &includeCompliant
	}

	manifest, err := synth.NewSynthesizer(*opts).Run(cmd.Context())
	if errors.Is(err, synth.ErrNagFailed) {
		slog.Error("🚨 nag reported error level findings", "out_dir", opts.OutDir)
		return err
	}
	if err != nil {
		return fmt.Errorf("❌ failed to synthesize: %w", err)
	}

	for _, s := range manifest.Stacks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d resources\n", s.Name, s.TemplateFile, s.ResourceCount)
	}
	return nil
}

func parseSynthOpts() (*synth.SynthOpts, error) {
	if _, err := os.Stat(definitionFile); err != nil {
		return nil, fmt.Errorf("definition file does not exist: %s", definitionFile)
	}

	var outputFormat types.OutputFormat
	if format != "" {
		f, err := types.ToOutputFormat(format)
		if err != nil {
			return nil, err
		}
		outputFormat = f
	}

	overrides, err := utils.ParseKeyValuePairs(parameters)
	if err != nil {
		return nil, err
	}

	return &synth.SynthOpts{
		DefinitionFile: definitionFile,
		OutDir:         outDir,
		Format:         outputFormat,
		Stacks:         stacks,
		Parameters:     overrides,
		NagPacks:       nagPacks,
		FailOnNagError: failOnNagError,
	}, nil
}
