// Package pipeline sequences the rewrite passes that make up a run.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Devon-White/docs-redirector/internal/config"
	"github.com/Devon-White/docs-redirector/internal/output"
	"github.com/Devon-White/docs-redirector/internal/rewriter"
	"github.com/Devon-White/docs-redirector/internal/uritemplate"
)

// Run executes the full rewrite: the rendered documentation subtree, then
// the source listing subtree, then (with DeleteOthers) wholesale removal of
// the crate's implementors subtree. Progress is reported line by line on
// out; the first error aborts the run.
func Run(cfg *config.Config, out io.Writer) error {
	safe := cfg.SafeName()
	rw := rewriter.New(cfg, out, output.Logger)

	{
		dir := filepath.Join(cfg.DocRoot, safe)
		base := uritemplate.DocURI.Fill(cfg.CrateName, safe)
		fmt.Fprintf(out, "Rewriting %s...\n", dir)
		if err := rw.Rewrite(dir, base); err != nil {
			return err
		}
	}

	{
		dir := filepath.Join(cfg.DocRoot, "src", safe)
		base := uritemplate.SrcURI.Fill(cfg.CrateName, safe)
		fmt.Fprintf(out, "Rewriting %s...\n", dir)
		if err := rw.Rewrite(dir, base); err != nil {
			return err
		}
	}

	if cfg.DeleteOthers {
		// The implementors subtree is removed in one shot rather than
		// walked: nothing in it is worth a redirect.
		dir := filepath.Join(cfg.DocRoot, "implementors", safe)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fmt.Fprintf(out, "Removing %s...\n", dir)
			if !cfg.DryRun {
				if err := os.RemoveAll(dir); err != nil {
					return fmt.Errorf("removing %s: %w", dir, err)
				}
			}
		}
	}

	fmt.Fprintln(out, "Done.")

	if cfg.DeleteOthers {
		fmt.Fprintf(out, "You may also wish to remove files in %s.\n", cfg.DocRoot)
	}
	if cfg.DryRun {
		fmt.Fprintln(out, "Dry run complete; see `--help` for details.")
	}

	return nil
}
