package publish

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confluentinc/cfnkit/internal/client"
	"github.com/confluentinc/cfnkit/internal/services/s3"
	"github.com/confluentinc/cfnkit/internal/utils"
)

var (
	s3Uri     string
	region    string
	templates []string
	outDir    string
	rateLimit float64
	burst     int
	asJSON    bool
)

func NewPublishCmd() *cobra.Command {
	publishCmd := &cobra.Command{
		Use:           "publish",
		Short:         "Upload templates to S3",
		Long:          "Upload templates to an S3 bucket under a content addressed key and print the template URLs. Templates already present are not uploaded again.",
		SilenceErrors: true,
		PreRunE:       preRunPublish,
		RunE:          runPublish,
	}

	requiredFlags := pflag.NewFlagSet("required", pflag.ExitOnError)
	requiredFlags.SortFlags = false
	requiredFlags.StringVar(&s3Uri, "s3-uri", "", "The destination, e.g. s3://my-bucket/templates.")
	requiredFlags.StringVar(&region, "region", "", "The AWS region of the bucket.")
	publishCmd.Flags().AddFlagSet(requiredFlags)

	inputFlags := pflag.NewFlagSet("input", pflag.ExitOnError)
	inputFlags.SortFlags = false
	inputFlags.StringSliceVar(&templates, "template", []string{}, "Template file(s) to publish.")
	inputFlags.StringVar(&outDir, "out-dir", "", "A synth output directory; every template in its manifest is published.")
	publishCmd.Flags().AddFlagSet(inputFlags)

	optionalFlags := pflag.NewFlagSet("optional", pflag.ExitOnError)
	optionalFlags.SortFlags = false
	optionalFlags.Float64Var(&rateLimit, "rate-limit", 10, "Maximum S3 requests per second.")
	optionalFlags.IntVar(&burst, "burst", 5, "Maximum burst of S3 requests.")
	optionalFlags.BoolVar(&asJSON, "json", false, "Print the results as JSON.")
	publishCmd.Flags().AddFlagSet(optionalFlags)

	utils.SetGroupedUsage(publishCmd,
		[]*pflag.FlagSet{requiredFlags, inputFlags, optionalFlags},
		[]string{"Required Flags", "Input Flags", "Optional Flags"},
	)

	publishCmd.MarkFlagRequired("s3-uri")
	publishCmd.MarkFlagRequired("region")
	publishCmd.MarkFlagsOneRequired("template", "out-dir")

	return publishCmd
}

func preRunPublish(cmd *cobra.Command, args []string) error {
	return utils.BindEnvToFlags(cmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	s3Client, err := client.NewS3Client(region, rateLimit, burst)
	if err != nil {
		return fmt.Errorf("❌ failed to create s3 client: %v", err)
	}

	publisher := NewPublisher(s3.NewS3Service(s3Client, region), PublisherOpts{
		Templates: templates,
		OutDir:    outDir,
		S3URI:     s3Uri,
	})
	results, err := publisher.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("❌ failed to publish templates: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, r := range results {
		state := "unchanged"
		if r.Uploaded {
			state = "uploaded"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.Source, r.URL, state)
	}
	return nil
}
