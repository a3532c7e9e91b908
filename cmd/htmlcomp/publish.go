package main

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/justinyaodu/htmlcomp/internal/config"
	"github.com/justinyaodu/htmlcomp/internal/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render pages and upload them to S3",
		Long: `Render every source page and upload the results to S3.

Credentials come from the standard AWS credential chain
(environment, shared config, instance role). The destination bucket
is read from htmlcomp.json or the --bucket flag.

Examples:
  htmlcomp publish
  htmlcomp publish --bucket=my-site --prefix=site/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromWorkingDir()
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}
			if err := cfg.ValidatePublish(); err != nil {
				return err
			}

			return runPublish(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination S3 bucket (default from htmlcomp.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix (default from htmlcomp.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from credential chain)")

	return cmd
}

func runPublish(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Publish.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Publish.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return err
	}

	client := s3.NewFromConfig(awsCfg)
	publisher := publish.New(client, cfg.Publish.Bucket, cfg.Publish.Prefix)

	info("Publishing %s to s3://%s/%s", cfg.SourcePath(), cfg.Publish.Bucket, cfg.Publish.Prefix)

	results, err := publisher.PublishDir(ctx, cfg.SourcePath())
	for _, res := range results {
		info("%s -> %s (%d bytes)", res.Page, res.Key, res.Size)
	}
	if err != nil {
		errorMsg("Publish failed after %d page(s)", len(results))
		return err
	}

	success("Published %d page(s) to s3://%s", len(results), cfg.Publish.Bucket)
	return nil
}
