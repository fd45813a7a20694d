package config

import "strings"

// Config holds all CLI options for a docs-redirector run. It is built once
// by the command layer and read-only afterwards.
type Config struct {
	CrateName    string // raw crate identifier, as given on the command line
	DocRoot      string // base directory containing the generated documentation
	DryRun       bool   // report every action without performing it
	DeleteOthers bool   // delete non-HTML files and the implementors subtree
}

// SafeName returns the crate name with "-" folded to "_", the form rustdoc
// uses for directory names. The raw name is kept for titles and URIs.
func (c *Config) SafeName() string {
	return strings.ReplaceAll(c.CrateName, "-", "_")
}
