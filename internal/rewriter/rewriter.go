// Package rewriter implements the recursive rewrite walk over a generated
// documentation subtree.
package rewriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/Devon-White/docs-redirector/internal/config"
	"github.com/Devon-White/docs-redirector/internal/redirect"
	"github.com/Devon-White/docs-redirector/internal/uritemplate"
)

// Rewriter walks a documentation subtree depth-first, overwriting HTML files
// with redirect stubs and optionally deleting everything else. A single
// Rewriter is reused across passes; it holds no per-walk state.
type Rewriter struct {
	cfg *config.Config
	out io.Writer   // line-oriented action report
	log *log.Logger // diagnostics only, never affects control flow
}

// New creates a Rewriter that reports every action on out.
func New(cfg *config.Config, out io.Writer, logger *log.Logger) *Rewriter {
	return &Rewriter{cfg: cfg, out: out, log: logger}
}

// Rewrite visits every entry under dir. Directories are descended into with
// the template extended by one segment; files ending in .html are rewritten
// to a redirect pointing at the resolved template; other files are deleted
// when DeleteOthers is set and left alone otherwise. Entries that are
// neither directory nor regular file are skipped. The first error aborts
// the walk; in dry-run mode every action is reported but nothing on disk
// changes.
func (r *Rewriter) Rewrite(dir string, tmpl uritemplate.Template) error {
	r.log.Debug("entering directory", "dir", dir, "template", string(tmpl))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !utf8.ValidString(name) {
			return fmt.Errorf("couldn't decode file name %q in %s", name, dir)
		}
		path := filepath.Join(dir, name)

		switch {
		case entry.IsDir():
			if err := r.Rewrite(path, tmpl.Descend(name)); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if strings.HasSuffix(name, ".html") {
				if err := r.rewriteHTML(path, tmpl.Resolve(name)); err != nil {
					return err
				}
			} else if r.cfg.DeleteOthers {
				if err := r.remove(path); err != nil {
					return err
				}
			}
		default:
			// Symlinks and special files contribute nothing to the
			// generated docs; skip them.
			r.log.Debug("skipping non-regular entry", "path", path)
		}
	}

	r.log.Debug("leaving directory", "dir", dir)
	return nil
}

// rewriteHTML overwrites path with a redirect page pointing at uri.
func (r *Rewriter) rewriteHTML(path, uri string) error {
	fmt.Fprintf(r.out, "- redir %s -> %s\n", path, uri)
	if r.cfg.DryRun {
		return nil
	}

	body := redirect.Render(r.cfg.CrateName, uri)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewriting %s: %w", path, err)
	}
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return fmt.Errorf("rewriting %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// remove deletes a non-HTML file.
func (r *Rewriter) remove(path string) error {
	fmt.Fprintf(r.out, "- rm %s\n", path)
	if r.cfg.DryRun {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
