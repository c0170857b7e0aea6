// Package static holds the stylesheet and script inlined into the page.
package static

import "embed"

// FS exposes the page assets.
//
//go:embed *.css *.js
var FS embed.FS
