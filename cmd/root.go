package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Devon-White/docs-redirector/internal/config"
	"github.com/Devon-White/docs-redirector/internal/output"
	"github.com/Devon-White/docs-redirector/internal/pipeline"
)

var (
	cfg     config.Config
	commit  bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docs-redirector",
	Short: "Rewrite rustdoc output to redirect to docs.rs",
	Long: `docs-redirector rewrites all HTML files in rustdoc-generated documentation
to point at https://docs.rs/ instead, so a previously self-hosted
documentation tree keeps working after the move.

By default it performs a dry run, listing everything it intends to do.
Review that output and re-run with --commit to apply it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&cfg.CrateName, "crate-name", "", "name of the crate being documented (required)")
	rootCmd.Flags().StringVar(&cfg.DocRoot, "doc-root", "", "root directory of the crate documentation (required)")
	rootCmd.Flags().BoolVar(&commit, "commit", false, "take the requested actions instead of performing a dry run")
	rootCmd.Flags().BoolVar(&cfg.DeleteOthers, "delete-others", false, "delete other, non-HTML files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")

	rootCmd.MarkFlagRequired("crate-name")
	rootCmd.MarkFlagRequired("doc-root")
}

func run(cmd *cobra.Command, args []string) error {
	output.SetupLogging(verbose)
	cfg.DryRun = !commit
	return pipeline.Run(&cfg, os.Stdout)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
