// Package uritemplate implements the placeholder-carrying URI templates
// used to compute redirect destinations during a rewrite walk.
package uritemplate

import "strings"

// Placeholder tokens recognized in a template.
const (
	crateToken = "$CRATE"
	safeToken  = "$CRATESAFE"
	tailToken  = "$TAIL"
)

// DocURI is the base template for rendered documentation pages. The "*"
// version segment makes docs.rs serve the latest release.
const DocURI Template = "https://docs.rs/$CRATE/*/$CRATESAFE/$TAIL"

// SrcURI is the base template for source listing pages. docs.rs changes the
// structure of its source URIs between versions, so this is deliberately an
// approximation under the crate page rather than a byte-exact mirror.
const SrcURI Template = "https://docs.rs/crate/$CRATE/$TAIL"

// Template is an immutable URI template. Every method returns a new value,
// so each branch of a recursive walk carries its own independent copy.
type Template string

// Fill substitutes the crate-name tokens, leaving $TAIL unresolved.
// $CRATESAFE is replaced before $CRATE so the longer token is never clipped
// by the shorter one.
func (t Template) Fill(crateName, safeName string) Template {
	s := strings.ReplaceAll(string(t), safeToken, safeName)
	s = strings.ReplaceAll(s, crateToken, crateName)
	return Template(s)
}

// Descend accumulates one directory segment into $TAIL, keeping the
// placeholder live for the levels below.
func (t Template) Descend(segment string) Template {
	return Template(strings.ReplaceAll(string(t), tailToken, segment+"/"+tailToken))
}

// Resolve substitutes the final file name for $TAIL, producing the concrete
// destination URI.
func (t Template) Resolve(name string) string {
	return strings.ReplaceAll(string(t), tailToken, name)
}
