// Package redirect generates the static pages written over rustdoc-generated
// HTML files.
package redirect

import "strings"

// pageTemplate is the full document written over each matched file. $CRATE
// becomes the page title and $DEST the redirect destination.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>$CRATE</title>
    <style type="text/css">

        body {
            font-family: sans-serif;
            position: absolute;
            top: 40%;
            left: 50%;
            margin-right: -50%;
            transform: translate(-50%, -50%);
            margin-left: auto;
            margin-top: auto;
            margin-bottom: auto;
        }

    </style>
    <meta http-equiv="refresh" content="0; url=$DEST">
</head>
<body>
    <h1><a href="$DEST">Content Moved</a></h1>
    <p>This documentation is now being hosted on <a href="https://docs.rs/">docs.rs</a>.  <a href="$DEST">Follow the redirection</a> if it does not work automatically.</p>
</body>
</html>
`

// Render returns a redirect page for the given crate name and destination
// URI. Substitution is plain text replacement with no escaping: inputs
// containing a literal placeholder token or HTML metacharacters yield a
// mangled but well-terminated page.
func Render(crateName, destURI string) string {
	r := strings.NewReplacer(
		"$CRATE", crateName,
		"$DEST", destURI,
	)
	return r.Replace(pageTemplate)
}
