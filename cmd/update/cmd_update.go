package update

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/utils"
)

var (
	force     bool
	checkOnly bool
)

func NewUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "update",
		Short:         "Update the cfnkit binary to the latest version",
		Long:          "Updates the cfnkit binary by downloading the latest release from GitHub and installing it in place",
		SilenceErrors: true,
		PreRunE:       preRunUpdate,
		RunE:          runUpdate,
	}

	optionalFlags := pflag.NewFlagSet("optional", pflag.ExitOnError)
	optionalFlags.SortFlags = false
	optionalFlags.BoolVar(&force, "force", false, "Force update without user confirmation")
	optionalFlags.BoolVar(&checkOnly, "check-only", false, "Only check for updates, don't install")
	cmd.Flags().AddFlagSet(optionalFlags)

	utils.SetGroupedUsage(cmd, []*pflag.FlagSet{optionalFlags}, []string{"Optional Flags"})

	return cmd
}

func preRunUpdate(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	updater := NewUpdater(UpdaterOpts{Force: force, CheckOnly: checkOnly})
	if err := updater.Run(cmd.Context()); err != nil {
		return fmt.Errorf("❌ failed to update: %v", err)
	}
	return nil
}
