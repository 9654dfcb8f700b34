package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/generators/serve"
	"github.com/confluentinc/cfnkit/internal/utils"
	_ "github.com/confluentinc/cfnkit/pkg/cfn/all"
)

var (
	host   string
	port   string
	region string
)

func NewServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:           "serve",
		Short:         "Serve the validate, render, diff and export operations over HTTP",
		Long:          "Start an HTTP API exposing template validation, rendering, diffing and Terraform export as JSON endpoints.",
		SilenceErrors: true,
		PreRunE:       preRunServe,
		RunE:          runServe,
	}

	optionalFlags := pflag.NewFlagSet("optional", pflag.ExitOnError)
	optionalFlags.SortFlags = false
	optionalFlags.StringVar(&host, "host", "localhost", "The interface to listen on.")
	optionalFlags.StringVar(&port, "port", "5000", "The port to listen on.")
	optionalFlags.StringVar(&region, "region", "us-east-1", "The default region of Terraform exports.")
	serveCmd.Flags().AddFlagSet(optionalFlags)

	utils.SetGroupedUsage(serveCmd, []*pflag.FlagSet{optionalFlags}, []string{"Optional Flags"})

	return serveCmd
}

func preRunServe(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := serve.NewServer(serve.ServeOpts{Host: host, Port: port, Region: region})
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("❌ api server failed: %w", err)
	}
	return nil
}
