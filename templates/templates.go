// Package templates embeds the HTML page templates
package templates

import "embed"

// FS holds layout.html and every page template
//
//go:embed *.html
var FS embed.FS
