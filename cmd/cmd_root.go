package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/confluentinc/cfnkit/cmd/check"
	"github.com/confluentinc/cfnkit/cmd/diff"
	"github.com/confluentinc/cfnkit/cmd/export"
	"github.com/confluentinc/cfnkit/cmd/generate"
	"github.com/confluentinc/cfnkit/cmd/graph"
	"github.com/confluentinc/cfnkit/cmd/publish"
	"github.com/confluentinc/cfnkit/cmd/serve"
	"github.com/confluentinc/cfnkit/cmd/synth"
	"github.com/confluentinc/cfnkit/cmd/update"
	"github.com/confluentinc/cfnkit/cmd/validate"
	"github.com/confluentinc/cfnkit/cmd/version"
	"github.com/confluentinc/cfnkit/internal/build_info"
)

var (
	logLevel = new(slog.LevelVar)
	verbose  bool
	quiet    bool
)

var RootCmd = &cobra.Command{
	Use:   "cfnkit",
	Short: "A CLI tool for building CloudFormation templates from typed resources",
	Long:  "Synthesize, check, diff and export CloudFormation templates built from typed resource bindings. Docs: " + getDocURL(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logLevel.Set(slog.LevelDebug)
		}
		if quiet {
			return
		}

		if build_info.IsDev() {
			fmt.Fprintf(os.Stderr, "\n%s\n%s\n%s\n%s\n\n",
				color.RedString("┌─────────────────────────────────────────────────────────────────────────┐"),
				color.RedString("│ ⚠️  WARNING: This is a development build                                │"),
				color.RedString("│ Official releases: https://github.com/confluentinc/cfnkit/releases      │"),
				color.RedString("└─────────────────────────────────────────────────────────────────────────┘"))
		}

		fmt.Fprintf(os.Stderr, "%s %s %s %s\n",
			color.CyanString("Executing cfnkit with build"),
			color.GreenString("version=%s", build_info.Version),
			color.YellowString("commit=%s", build_info.Commit),
			color.BlueString("date=%s", build_info.Date))

		if err := checkWritePermissions(); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", color.RedString("Error: %v", err))
			os.Exit(1)
		}
	},
}

func init() {
	cobra.EnableTraverseRunHooks = true

	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Skip the build banner")

	lumberjackLogger := &lumberjack.Logger{
		Filename: "cfnkit.log",
		MaxSize:  25,
		Compress: true,
	}
	logLevel.Set(slog.LevelInfo)
	opts := PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: logLevel,
		},
	}
	// stdout carries command output (templates, DOT, diffs), logs go to stderr
	handler := NewPrettyHandler(io.MultiWriter(lumberjackLogger, os.Stderr), opts)
	slog.SetDefault(slog.New(handler))

	RootCmd.AddCommand(
		synth.NewSynthCmd(),
		validate.NewValidateCmd(),
		check.NewCheckCmd(),
		diff.NewDiffCmd(),
		graph.NewGraphCmd(),
		export.NewExportCmd(),
		publish.NewPublishCmd(),
		generate.NewGenerateCmd(),
		serve.NewServeCmd(),
		version.NewVersionCmd(),
		update.NewUpdateCmd(),
	)
}

func getDocURL() string {
	if build_info.IsDev() {
		return "https://github.com/confluentinc/cfnkit/tree/main/docs"
	}
	return "https://github.com/confluentinc/cfnkit/tree/v" + build_info.Version + "/docs"
}

func checkWritePermissions() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	testFile, err := os.CreateTemp(cwd, ".cfnkit-write-test-*")
	if err != nil {
		return fmt.Errorf("current working directory '%s' does not have write permissions for the current user", cwd)
	}

	defer os.Remove(testFile.Name())
	defer testFile.Close()

	return nil
}
